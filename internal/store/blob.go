package store

import "sync"

// BlobStore is the key-value byte store the note collection persists into.
// SQLiteBlobStore is the durable implementation; MemoryBlobStore backs the
// WASM bridge, where the JS shell owns durability via export/import.
type BlobStore interface {
	// Get returns the value for key. The second return is false when the key
	// does not exist; that is not an error.
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// MemoryBlobStore is an in-memory BlobStore.
// Thread-safe for concurrent shell callbacks.
type MemoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryBlobStore creates an empty in-memory blob store.
func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{blobs: make(map[string][]byte)}
}

func (s *MemoryBlobStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (s *MemoryBlobStore) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.blobs[key] = stored
	return nil
}

func (s *MemoryBlobStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)
	return nil
}

func (s *MemoryBlobStore) Close() error {
	return nil
}

// Compile-time interface check
var _ BlobStore = (*MemoryBlobStore)(nil)
