package services

import (
	"context"
	"fmt"

	"github.com/musagunn/pomotimer/internal/domain"
	"github.com/musagunn/pomotimer/internal/logging"
	"github.com/musagunn/pomotimer/internal/ports"
)

// SessionService records completed timer runs and drives the streak.
// Session append and streak update are two independent writes with no
// cross-key transaction; a crash between them leaves the session recorded
// and the streak one update behind, which the next focus session heals.
type SessionService struct {
	clock    ports.Clock
	sessions ports.SessionRepository
	streak   *StreakService
}

// NewSessionService creates a new SessionService
func NewSessionService(sessions ports.SessionRepository, streak *StreakService, clock ports.Clock) *SessionService {
	return &SessionService{
		clock:    clock,
		sessions: sessions,
		streak:   streak,
	}
}

// Record persists a completed session and, for focus sessions, advances
// the streak. The returned record is durably saved when err is nil. A
// failed streak write after a successful append is logged and swallowed;
// the session itself is already saved.
func (s *SessionService) Record(ctx context.Context, sessType domain.SessionType, durationSeconds int, task *domain.TaskSnapshot) (domain.SessionRecord, error) {
	record, err := domain.NewSessionRecord(sessType, durationSeconds, task, s.clock.Now())
	if err != nil {
		return domain.SessionRecord{}, err
	}

	if err := s.sessions.Append(ctx, record); err != nil {
		logging.Logger.Error("Failed to save session", "error", err)
		return domain.SessionRecord{}, fmt.Errorf("failed to save session: %w", err)
	}
	logging.Logger.Info("Session saved",
		"id", record.ID,
		"type", record.Type,
		"duration_seconds", record.DurationSeconds,
		"date", record.LocalDate)

	if record.Type == domain.TypeFocus {
		if _, err := s.streak.RecordFocusCompletion(ctx); err != nil {
			// Session is saved; a lost streak update heals on the next
			// focus session of a later day
			logging.Logger.Warn("Streak update lost", "error", err)
		}
	}

	return record, nil
}

// List returns all records, most-recent-first. A read failure degrades to
// an empty list so callers render "no data" instead of an error screen.
func (s *SessionService) List(ctx context.Context) []domain.SessionRecord {
	records, err := s.sessions.List(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to list sessions, treating as empty", "error", err)
		return []domain.SessionRecord{}
	}
	return records
}

// ListRange returns records with LocalDate in [start, end] inclusive,
// degrading to empty on read failure
func (s *SessionService) ListRange(ctx context.Context, start, end string) []domain.SessionRecord {
	records, err := s.sessions.ListRange(ctx, start, end)
	if err != nil {
		logging.Logger.Warn("Failed to list sessions in range, treating as empty",
			"error", err,
			"start", start,
			"end", end)
		return []domain.SessionRecord{}
	}
	return records
}

// Clear removes every session record (testing/reset path)
func (s *SessionService) Clear(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear sessions: %w", err)
	}
	logging.Logger.Info("All sessions cleared")
	return nil
}
