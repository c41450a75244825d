// Package blobstore provides the sinks search reports are written to.
//
// Store is the interface for writing and reading named blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem, atomic writes via rename
//   - MemoryStore: In-process map, for tests and embedding
//   - s3.Store: Amazon S3 through the multipart upload manager
//   - minio.Store: MinIO and other S3-compatible storage
//
// # Custom Implementations
//
// Implement the Store interface to support custom storage backends:
//
//	type Store interface {
//	    Put(ctx, name, data) error         // Atomic write
//	    Get(ctx, name) ([]byte, error)
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
package blobstore
