package storage

import (
	"context"
	"sync"

	"github.com/musagunn/pomotimer/internal/ports"
)

// MemoryStore is an in-memory KeyValueStore. Nothing survives a restart;
// it backs tests and the --ephemeral mode.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// Verify interface compliance at compile time
var _ ports.KeyValueStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the stored value and whether the key exists
func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

// Set writes the value, replacing any previous one
func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Remove deletes the key; removing a missing key is a no-op
func (s *MemoryStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error { return nil }
