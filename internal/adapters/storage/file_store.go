package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/musagunn/pomotimer/internal/ports"
)

// FileStore is a KeyValueStore keeping one JSON file per key under a data
// directory. Writes go through a temp file and rename so a crash mid-write
// never leaves a half-written value behind.
type FileStore struct {
	dir string
}

// Verify interface compliance at compile time
var _ ports.KeyValueStore = (*FileStore)(nil)

// NewFileStore creates the data directory if needed and returns the store
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get returns the stored value and whether the key exists
func (s *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set writes the value atomically, replacing any previous one
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", key, err)
	}

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file for %s: %w", key, err)
	}

	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}

// Remove deletes the key; removing a missing key is a no-op
func (s *FileStore) Remove(ctx context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

// Close is a no-op; files are closed after every operation
func (s *FileStore) Close() error { return nil }
