package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/musagunn/pomotimer/internal/domain"
	"github.com/musagunn/pomotimer/internal/ports"
)

// TaskStore persists the task list as a single JSON array under KeyTasks
type TaskStore struct {
	kv ports.KeyValueStore
}

// Verify interface compliance at compile time
var _ ports.TaskRepository = (*TaskStore)(nil)

// NewTaskStore creates a TaskStore on top of the given KV store
func NewTaskStore(kv ports.KeyValueStore) *TaskStore {
	return &TaskStore{kv: kv}
}

// List returns all tasks. The second return is false when nothing has
// been stored yet, which tells the service to seed defaults.
func (s *TaskStore) List(ctx context.Context) ([]domain.Task, bool, error) {
	raw, ok, err := s.kv.Get(ctx, KeyTasks)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load tasks: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	var tasks []domain.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, false, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return tasks, true, nil
}

// Save persists the full task list
func (s *TaskStore) Save(ctx context.Context, tasks []domain.Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	if err := s.kv.Set(ctx, KeyTasks, string(data)); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}

// Clear removes all tasks; the next List seeds defaults again
func (s *TaskStore) Clear(ctx context.Context) error {
	if err := s.kv.Remove(ctx, KeyTasks); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}
	return nil
}
