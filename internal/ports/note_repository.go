package ports

import (
	"context"

	"github.com/musagunn/pomotimer/internal/domain"
)

// NoteRepository persists notes, most-recent-first
type NoteRepository interface {
	List(ctx context.Context) ([]domain.Note, error)
	Save(ctx context.Context, notes []domain.Note) error
	Clear(ctx context.Context) error
}
