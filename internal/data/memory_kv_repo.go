package data

import (
	"context"
	"errors"
	"sync"
)

// MemoryKVRepo implements core.KVRepository on a mutex-guarded map.
// Used in development mode and in tests; state does not survive restarts.
type MemoryKVRepo struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryKVRepo creates an empty in-memory key-value repo.
func NewMemoryKVRepo() *MemoryKVRepo {
	return &MemoryKVRepo{values: make(map[string][]byte)}
}

// Set stores a copy of value under key.
func (r *MemoryKVRepo) Set(_ context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	buf := make([]byte, len(value))
	copy(buf, value)
	r.values[key] = buf
	return nil
}

// Get retrieves a copy of the value by key. A missing key returns (nil, nil).
func (r *MemoryKVRepo) Get(_ context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	if !ok {
		return nil, nil
	}
	buf := make([]byte, len(v))
	copy(buf, v)
	return buf, nil
}

// Delete removes a key and reports whether it existed.
func (r *MemoryKVRepo) Delete(_ context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.New("key cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.values[key]
	delete(r.values, key)
	return ok, nil
}

// Health always succeeds for the in-memory repo.
func (r *MemoryKVRepo) Health(context.Context) error { return nil }
