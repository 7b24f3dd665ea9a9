package cmd

import (
	"fmt"

	"github.com/musagunn/pomotimer/internal/adapters/storage"
	"github.com/musagunn/pomotimer/internal/config"
	"github.com/musagunn/pomotimer/internal/ports"
	"github.com/musagunn/pomotimer/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	NoteService    *services.NoteService
	SessionService *services.SessionService
	StatsService   *services.StatsService
	StreakService  *services.StreakService
	TaskService    *services.TaskService

	// Internal - for cleanup only
	store ports.KeyValueStore
}

// NewContainer creates a new Container with all dependencies wired.
// The backend selects the key-value store implementation.
func NewContainer(backend string) (*Container, error) {
	store, err := newStore(backend)
	if err != nil {
		return nil, err
	}

	clock := ports.SystemClock{}

	noteRepo := storage.NewNoteStore(store)
	sessionRepo := storage.NewSessionStore(store)
	streakRepo := storage.NewStreakStore(store)
	taskRepo := storage.NewTaskStore(store)

	streakService := services.NewStreakService(streakRepo, clock)
	sessionService := services.NewSessionService(sessionRepo, streakService, clock)

	return &Container{
		NoteService:    services.NewNoteService(noteRepo, clock),
		SessionService: sessionService,
		StatsService:   services.NewStatsService(sessionService),
		StreakService:  streakService,
		TaskService:    services.NewTaskService(taskRepo, clock),
		store:          store,
	}, nil
}

// newStore builds the key-value store for the configured backend
func newStore(backend string) (ports.KeyValueStore, error) {
	switch backend {
	case config.BackendMemory:
		return storage.NewMemoryStore(), nil
	case config.BackendFile:
		return storage.NewFileStore(config.GetDataDir())
	case config.BackendSQLite:
		return storage.NewSQLiteStore(config.GetDBPath())
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}
