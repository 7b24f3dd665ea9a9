package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/musagunn/pomotimer/internal/domain"
	"github.com/musagunn/pomotimer/internal/ports"
)

// StreakStore persists the single streak record as JSON under KeyStreak
type StreakStore struct {
	kv ports.KeyValueStore
}

// Verify interface compliance at compile time
var _ ports.StreakRepository = (*StreakStore)(nil)

// NewStreakStore creates a StreakStore on top of the given KV store
func NewStreakStore(kv ports.KeyValueStore) *StreakStore {
	return &StreakStore{kv: kv}
}

// Load returns the stored state, or the zero state if none exists
func (s *StreakStore) Load(ctx context.Context) (domain.StreakState, error) {
	raw, ok, err := s.kv.Get(ctx, KeyStreak)
	if err != nil {
		return domain.StreakState{}, fmt.Errorf("failed to load streak: %w", err)
	}
	if !ok {
		return domain.StreakState{}, nil
	}

	var state domain.StreakState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return domain.StreakState{}, fmt.Errorf("failed to decode streak: %w", err)
	}
	return state, nil
}

// Save persists the state
func (s *StreakStore) Save(ctx context.Context, state domain.StreakState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode streak: %w", err)
	}
	if err := s.kv.Set(ctx, KeyStreak, string(data)); err != nil {
		return fmt.Errorf("failed to save streak: %w", err)
	}
	return nil
}
