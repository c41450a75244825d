package blobstore

import (
	"bytes"
	"context"
	"sort"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"
)

// MemoryStore keeps reports in process memory. It is used by tests and by
// callers that want the encoded bytes without touching the filesystem.
// Safe for concurrent use.
type MemoryStore struct {
	blobs *xsync.MapOf[string, []byte]
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: xsync.NewMapOf[string, []byte]()}
}

// Put stores a copy of data under name.
func (m *MemoryStore) Put(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.blobs.Store(name, bytes.Clone(data))
	return nil
}

// Get returns a copy of the blob stored under name.
func (m *MemoryStore) Get(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, ok := m.blobs.Load(name)
	if !ok {
		return nil, ErrNotFound
	}
	return bytes.Clone(data), nil
}

// Delete removes name. A missing blob is not an error.
func (m *MemoryStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.blobs.Delete(name)
	return nil
}

// List returns the sorted names that start with prefix.
func (m *MemoryStore) List(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var names []string
	m.blobs.Range(func(name string, _ []byte) bool {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
		return true
	})
	sort.Strings(names)
	return names, nil
}
