package ports

import (
	"context"

	"github.com/musagunn/pomotimer/internal/domain"
)

// SessionReader reads completed session records
type SessionReader interface {
	// List returns all records, most-recent-first
	List(ctx context.Context) ([]domain.SessionRecord, error)
	// ListRange returns records whose LocalDate lies in [start, end],
	// both bounds inclusive, compared as local calendar date strings
	ListRange(ctx context.Context, start, end string) ([]domain.SessionRecord, error)
}

// SessionWriter appends and bulk-clears session records
type SessionWriter interface {
	// Append prepends the record to the persisted list
	Append(ctx context.Context, record domain.SessionRecord) error
	// Clear removes all records (testing/reset path)
	Clear(ctx context.Context) error
}

// SessionRepository is the composite interface
type SessionRepository interface {
	SessionReader
	SessionWriter
}
