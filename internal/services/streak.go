package services

import (
	"context"
	"fmt"

	"github.com/musagunn/pomotimer/internal/domain"
	"github.com/musagunn/pomotimer/internal/logging"
	"github.com/musagunn/pomotimer/internal/ports"
)

// StreakService maintains the consecutive-day streak. Only focus sessions
// reach it; break sessions never touch streak state.
type StreakService struct {
	clock ports.Clock
	repo  ports.StreakRepository
}

// NewStreakService creates a new StreakService
func NewStreakService(repo ports.StreakRepository, clock ports.Clock) *StreakService {
	return &StreakService{
		clock: clock,
		repo:  repo,
	}
}

// Current returns the stored streak state, degrading to the zero state
// when the store cannot be read
func (s *StreakService) Current(ctx context.Context) domain.StreakState {
	state, err := s.repo.Load(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to load streak, treating as empty", "error", err)
		return domain.StreakState{}
	}
	return state
}

// RecordFocusCompletion applies one completed focus session to the streak
// and persists the result. Called exactly once per completed focus
// session. A second completion on the same local day changes nothing and
// skips the write. If persistence fails the update is lost; no retry.
func (s *StreakService) RecordFocusCompletion(ctx context.Context) (domain.StreakState, error) {
	state := s.Current(ctx)
	now := s.clock.Now()

	next, changed := state.Advance(now)
	if !changed {
		logging.Logger.Debug("Streak already counted today",
			"current", state.CurrentStreak)
		return state, nil
	}

	if err := s.repo.Save(ctx, next); err != nil {
		logging.Logger.Error("Failed to save streak", "error", err)
		return state, fmt.Errorf("failed to save streak: %w", err)
	}

	logging.Logger.Info("Streak updated",
		"current", next.CurrentStreak,
		"longest", next.LongestStreak)
	return next, nil
}

// Reset clears the streak back to the zero state
func (s *StreakService) Reset(ctx context.Context) error {
	if err := s.repo.Save(ctx, domain.StreakState{}); err != nil {
		return fmt.Errorf("failed to reset streak: %w", err)
	}
	logging.Logger.Info("Streak reset")
	return nil
}
