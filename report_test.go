package slimefinder

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/slimefinder/blobstore"
	"github.com/hupe1980/slimefinder/codec"
	"github.com/hupe1980/slimefinder/internal/scanner"
)

func testReport(t *testing.T) Report {
	t.Helper()
	q := Query{Seed: 12345, SearchRadius: 8, WindowRadius: 2, Workers: 2, TopN: 3, Shape: scanner.Odd}
	results, err := Search(context.Background(), q)
	require.NoError(t, err)
	return Report{Query: q, Elapsed: 1500 * time.Millisecond, Results: results}
}

func TestReport_MarshalText(t *testing.T) {
	r := testReport(t)

	text, err := r.MarshalText()
	require.NoError(t, err)

	lines := strings.Split(string(text), "\n")
	assert.Equal(t, "TOP 1: chunk [-8, 0] | block [-128, 0] | slime chunks: 5", lines[0])
	assert.Equal(t, ". + # . . ", lines[1])
	// One header plus five view rows per result.
	assert.Equal(t, "TOP 2: chunk [-8, 2] | block [-128, 32] | slime chunks: 4", lines[6])
	assert.Equal(t, "TOP 3: chunk [-7, 2] | block [-112, 32] | slime chunks: 4", lines[12])
}

func TestReport_JSONIsStructured(t *testing.T) {
	r := testReport(t)
	for _, c := range []codec.Codec{codec.GoJSON{}, codec.JSON{}} {
		data, err := c.Marshal(r)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(strings.TrimSpace(string(data)), "{"), c.Name())
		assert.Contains(t, string(data), `"shape": "odd"`)
	}
}

func TestWriteReadReport(t *testing.T) {
	ctx := context.Background()
	r := testReport(t)

	tests := []struct {
		codec codec.Codec
		comp  codec.Compression
		name  string
	}{
		{codec.GoJSON{}, codec.CompressionNone, "report.json"},
		{codec.JSON{}, codec.CompressionZstd, "report.json.zst"},
		{codec.GoJSON{}, codec.CompressionLZ4, "report.json.lz4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := blobstore.NewMemoryStore()
			name, err := WriteReport(ctx, store, "report.json", r, tt.codec, tt.comp)
			require.NoError(t, err)
			assert.Equal(t, tt.name, name)

			got, err := ReadReport(ctx, store, name, tt.codec, tt.comp)
			require.NoError(t, err)
			assert.Equal(t, r, got)
		})
	}
}

func TestWriteReport_Text(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	r := testReport(t)

	name, err := WriteReport(ctx, store, "report.txt", r, codec.Text{}, codec.CompressionNone)
	require.NoError(t, err)

	data, err := store.Get(ctx, name)
	require.NoError(t, err)
	want, err := r.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, want, data)
}

func TestReadReport_Missing(t *testing.T) {
	_, err := ReadReport(context.Background(), blobstore.NewMemoryStore(), "nope.json", nil, codec.CompressionNone)
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
