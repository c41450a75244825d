// Package s3 provides an S3 implementation of the blobstore.Store interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("slimefinder/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	err = slimefinder.WriteReport(ctx, store, "seed-42.json", report, codec.Default, codec.CompressionZstd)
//
// # Features
//
//   - CRC32C integrity checks on every upload
//   - Multipart uploads for large reports
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
