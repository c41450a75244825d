package minio

import (
	"context"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/slimefinder/blobstore"
)

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	bucket := "test-slimefinder"

	store, err := Dial("localhost:9000", "minioadmin", "minioadmin", false, bucket, "test-prefix/")
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Check if MinIO is reachable
	if _, err := store.client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	// Ensure bucket exists
	exists, err := store.client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, store.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	// Test Put and Get
	data := []byte(`{"results":[{"chunkX":3,"chunkZ":-7,"score":42}]}`)
	require.NoError(t, store.Put(ctx, "report.json", data))

	got, err := store.Get(ctx, "report.json")
	require.NoError(t, err)
	require.Equal(t, data, got)

	// Test List
	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, "report.json")

	// Test Delete
	require.NoError(t, store.Delete(ctx, "report.json"))

	_, err = store.Get(ctx, "report.json")
	require.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestStore_Key(t *testing.T) {
	s := NewStore(nil, "b", "reports/")
	assert.Equal(t, "reports/seed-1.json", s.key("seed-1.json"))
	assert.Equal(t, "seed-1.json", NewStore(nil, "b", "").key("seed-1.json"))
}
