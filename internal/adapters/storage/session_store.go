package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/musagunn/pomotimer/internal/domain"
	"github.com/musagunn/pomotimer/internal/ports"
)

// SessionStore persists session records as a single JSON array under
// KeySessions, most-recent-first. The list is read, mutated, and written
// back whole; with a single UI caller lost updates are not a concern.
type SessionStore struct {
	kv ports.KeyValueStore
}

// Verify interface compliance at compile time
var _ ports.SessionRepository = (*SessionStore)(nil)

// NewSessionStore creates a SessionStore on top of the given KV store
func NewSessionStore(kv ports.KeyValueStore) *SessionStore {
	return &SessionStore{kv: kv}
}

// List returns all records, most-recent-first
func (s *SessionStore) List(ctx context.Context) ([]domain.SessionRecord, error) {
	raw, ok, err := s.kv.Get(ctx, KeySessions)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}
	if !ok {
		return []domain.SessionRecord{}, nil
	}

	var records []domain.SessionRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}
	return records, nil
}

// ListRange returns records whose LocalDate lies in [start, end], both
// bounds inclusive. YYYY-MM-DD strings order lexicographically, so plain
// string comparison is the whole filter.
func (s *SessionStore) ListRange(ctx context.Context, start, end string) ([]domain.SessionRecord, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.SessionRecord, 0, len(records))
	for _, record := range records {
		if record.LocalDate >= start && record.LocalDate <= end {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

// Append prepends the record and persists the full list
func (s *SessionStore) Append(ctx context.Context, record domain.SessionRecord) error {
	records, err := s.List(ctx)
	if err != nil {
		return err
	}

	updated := append([]domain.SessionRecord{record}, records...)
	data, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("failed to encode sessions: %w", err)
	}

	if err := s.kv.Set(ctx, KeySessions, string(data)); err != nil {
		return fmt.Errorf("failed to save sessions: %w", err)
	}
	return nil
}

// Clear removes all records
func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.kv.Remove(ctx, KeySessions); err != nil {
		return fmt.Errorf("failed to clear sessions: %w", err)
	}
	return nil
}
