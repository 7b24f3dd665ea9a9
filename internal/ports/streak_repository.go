package ports

import (
	"context"

	"github.com/musagunn/pomotimer/internal/domain"
)

// StreakRepository persists the single streak record
type StreakRepository interface {
	// Load returns the stored state, or the zero state if none exists
	Load(ctx context.Context) (domain.StreakState, error)
	Save(ctx context.Context, state domain.StreakState) error
}
