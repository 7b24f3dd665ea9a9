package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SessionType distinguishes focus work from breaks
type SessionType string

const (
	TypeBreak SessionType = "break"
	TypeFocus SessionType = "focus"
)

// ParseSessionType validates a raw session type string
func ParseSessionType(s string) (SessionType, error) {
	switch SessionType(s) {
	case TypeFocus:
		return TypeFocus, nil
	case TypeBreak:
		return TypeBreak, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSessionType, s)
	}
}

// TaskSnapshot is a copy of the task captured at completion time.
// Later edits or deletes of the task never change historical records.
type TaskSnapshot struct {
	Color string `json:"color"`
	ID    string `json:"id"`
	Icon  string `json:"icon"`
	Name  string `json:"name"`
}

// SessionRecord represents one completed timer run (domain entity).
// Records are append-only and never mutated after creation.
type SessionRecord struct {
	CompletedAt     time.Time     `json:"completedAt"`
	DurationSeconds int           `json:"duration"`
	ID              string        `json:"id"`
	LocalDate       string        `json:"date"`
	Task            *TaskSnapshot `json:"task"`
	Type            SessionType   `json:"type"`
}

// NewSessionRecord constructs a record for a run completed at now.
// LocalDate is derived from now's location, not UTC, so sessions near
// midnight land on the calendar day the user actually saw.
func NewSessionRecord(sessType SessionType, durationSeconds int, task *TaskSnapshot, now time.Time) (SessionRecord, error) {
	if durationSeconds <= 0 {
		return SessionRecord{}, fmt.Errorf("%w: %d", ErrInvalidDuration, durationSeconds)
	}
	if sessType != TypeFocus && sessType != TypeBreak {
		return SessionRecord{}, fmt.Errorf("%w: %q", ErrInvalidSessionType, sessType)
	}

	return SessionRecord{
		CompletedAt:     now,
		DurationSeconds: durationSeconds,
		ID:              NewSessionID(now),
		LocalDate:       LocalDate(now),
		Task:            task,
		Type:            sessType,
	}, nil
}

// NewSessionID generates a unique record id: completion timestamp plus
// a random suffix. No collision handling beyond the randomness.
func NewSessionID(now time.Time) string {
	return fmt.Sprintf("%d_%s", now.UnixMilli(), uuid.New().String()[:8])
}

// Snapshot copies a task into an immutable reference for a record
func (t Task) Snapshot() *TaskSnapshot {
	return &TaskSnapshot{
		Color: t.Color,
		ID:    t.ID,
		Icon:  t.Icon,
		Name:  t.Name,
	}
}
