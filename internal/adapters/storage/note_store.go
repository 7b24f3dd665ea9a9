package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/musagunn/pomotimer/internal/domain"
	"github.com/musagunn/pomotimer/internal/ports"
)

// NoteStore persists notes as a single JSON array under KeyNotes,
// most-recent-first
type NoteStore struct {
	kv ports.KeyValueStore
}

// Verify interface compliance at compile time
var _ ports.NoteRepository = (*NoteStore)(nil)

// NewNoteStore creates a NoteStore on top of the given KV store
func NewNoteStore(kv ports.KeyValueStore) *NoteStore {
	return &NoteStore{kv: kv}
}

// List returns all notes, most-recent-first
func (s *NoteStore) List(ctx context.Context) ([]domain.Note, error) {
	raw, ok, err := s.kv.Get(ctx, KeyNotes)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}
	if !ok {
		return []domain.Note{}, nil
	}

	var notes []domain.Note
	if err := json.Unmarshal([]byte(raw), &notes); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}
	return notes, nil
}

// Save persists the full note list
func (s *NoteStore) Save(ctx context.Context, notes []domain.Note) error {
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}
	if err := s.kv.Set(ctx, KeyNotes, string(data)); err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}
	return nil
}

// Clear removes all notes
func (s *NoteStore) Clear(ctx context.Context) error {
	if err := s.kv.Remove(ctx, KeyNotes); err != nil {
		return fmt.Errorf("failed to clear notes: %w", err)
	}
	return nil
}
