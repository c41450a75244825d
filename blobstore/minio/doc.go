// Package minio stores reports in MinIO or any other S3-compatible server
// (Ceph, SeaweedFS, Garage) through the minio-go client.
//
// Dial builds a client with static credentials, which is what the command
// line does for the minio_* keys of the [output] table:
//
//	store, err := minio.Dial("localhost:9000", "minioadmin", "minioadmin", false, "reports", "slimefinder/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	name, err := slimefinder.WriteReport(ctx, store, "seed-42.json", report, codec.Default, codec.CompressionZstd)
//
// Use NewStore to wrap a client configured elsewhere.
package minio
