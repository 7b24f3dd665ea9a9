package ports

import (
	"context"

	"github.com/musagunn/pomotimer/internal/domain"
)

// TaskRepository persists the user-defined task list
type TaskRepository interface {
	// List returns all tasks; (nil, false, nil) means nothing has been
	// stored yet and the caller should seed defaults
	List(ctx context.Context) ([]domain.Task, bool, error)
	Save(ctx context.Context, tasks []domain.Task) error
	Clear(ctx context.Context) error
}
