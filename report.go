package slimefinder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/hupe1980/slimefinder/blobstore"
	"github.com/hupe1980/slimefinder/codec"
)

// Report is the persisted outcome of one search.
type Report struct {
	Query   Query         `json:"query"`
	Elapsed time.Duration `json:"elapsedNanos"`
	Results []Result      `json:"results"`
}

// MarshalText renders the ranked results the way the command line prints
// them, each followed by its window view.
func (r Report) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for i, res := range r.Results {
		fmt.Fprintf(&sb, "TOP %d: chunk [%d, %d] | block [%d, %d] | slime chunks: %d\n",
			i+1, res.ChunkX, res.ChunkZ, res.BlockX, res.BlockZ, res.Score)
		sb.WriteString(res.View)
	}
	return []byte(sb.String()), nil
}

// MarshalJSON keeps the JSON codecs from encoding the report through
// MarshalText.
func (r Report) MarshalJSON() ([]byte, error) {
	type plain Report
	return json.Marshal(plain(r))
}

// WriteReport encodes r with c, compresses it and stores it under name plus
// the compression's extension. It returns the name actually written.
func WriteReport(ctx context.Context, store blobstore.Store, name string, r Report, c codec.Codec, comp codec.Compression) (string, error) {
	if c == nil {
		c = codec.Default
	}
	data, err := c.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("encode report with %s: %w", c.Name(), err)
	}
	data, err = comp.Compress(data)
	if err != nil {
		return "", err
	}
	name += comp.Extension()
	if err := store.Put(ctx, name, data); err != nil {
		return "", fmt.Errorf("store report %s: %w", name, err)
	}
	return name, nil
}

// ReadReport reverses WriteReport for the JSON codecs.
func ReadReport(ctx context.Context, store blobstore.Store, name string, c codec.Codec, comp codec.Compression) (Report, error) {
	if c == nil {
		c = codec.Default
	}
	var r Report
	data, err := store.Get(ctx, name)
	if err != nil {
		return r, err
	}
	data, err = comp.Decompress(data)
	if err != nil {
		return r, err
	}
	if err := c.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("decode report %s: %w", name, err)
	}
	return r, nil
}
