package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/musagunn/pomotimer/internal/domain"
	"github.com/musagunn/pomotimer/internal/logging"
	"github.com/musagunn/pomotimer/internal/ports"
)

// NoteService manages free-form notes, upserted by id
type NoteService struct {
	clock ports.Clock
	repo  ports.NoteRepository
}

// NewNoteService creates a new NoteService
func NewNoteService(repo ports.NoteRepository, clock ports.Clock) *NoteService {
	return &NoteService{
		clock: clock,
		repo:  repo,
	}
}

// List returns all notes, most-recent-first, degrading to empty on read
// failure
func (s *NoteService) List(ctx context.Context) []domain.Note {
	notes, err := s.repo.List(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to list notes, treating as empty", "error", err)
		return []domain.Note{}
	}
	return notes
}

// Save upserts a note by id: an existing note is replaced in place, a new
// one is prepended. An empty id gets a generated one; an empty date gets
// today's local date.
func (s *NoteService) Save(ctx context.Context, note domain.Note) (domain.Note, error) {
	now := s.clock.Now()
	if note.ID == "" {
		note.ID = strconv.FormatInt(now.UnixMilli(), 10)
	}
	if note.Date == "" {
		note.Date = domain.LocalDate(now)
	}

	notes := s.List(ctx)
	replaced := false
	for i, existing := range notes {
		if existing.ID == note.ID {
			notes[i] = note
			replaced = true
			break
		}
	}
	if !replaced {
		notes = append([]domain.Note{note}, notes...)
	}

	if err := s.repo.Save(ctx, notes); err != nil {
		return domain.Note{}, fmt.Errorf("failed to save note: %w", err)
	}

	logging.Logger.Info("Note saved", "id", note.ID, "updated", replaced)
	return note, nil
}

// Delete removes the note. A missing id is a no-op success.
func (s *NoteService) Delete(ctx context.Context, id string) error {
	notes := s.List(ctx)
	remaining := make([]domain.Note, 0, len(notes))
	for _, note := range notes {
		if note.ID != id {
			remaining = append(remaining, note)
		}
	}

	if err := s.repo.Save(ctx, remaining); err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}
	return nil
}

// Clear removes every note
func (s *NoteService) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear notes: %w", err)
	}
	logging.Logger.Info("All notes cleared")
	return nil
}
