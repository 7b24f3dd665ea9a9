package domain

import "errors"

// Validation errors surfaced synchronously to the caller for user-facing
// correction. Store failures are not in this taxonomy; they degrade to
// empty results at the service layer.
var (
	ErrEmptyNoteID        = errors.New("note id must not be empty")
	ErrInvalidDuration    = errors.New("duration must be a positive number of seconds")
	ErrInvalidSessionType = errors.New("session type must be focus or break")
	ErrInvalidTaskName    = errors.New("task name must be 1-30 characters")
)
