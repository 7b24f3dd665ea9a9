package services

import (
	"context"
	"fmt"

	"github.com/musagunn/pomotimer/internal/domain"
	"github.com/musagunn/pomotimer/internal/i18n"
	"github.com/musagunn/pomotimer/internal/logging"
	"github.com/musagunn/pomotimer/internal/ports"
)

// TaskService manages the user-defined task list. On first access the
// list is seeded with locale-appropriate defaults.
type TaskService struct {
	clock ports.Clock
	repo  ports.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(repo ports.TaskRepository, clock ports.Clock) *TaskService {
	return &TaskService{
		clock: clock,
		repo:  repo,
	}
}

// List returns all tasks, seeding the localized default set if nothing
// has been stored yet. A read failure degrades to the defaults without
// persisting them.
func (s *TaskService) List(ctx context.Context, language string) []domain.Task {
	tasks, seeded, err := s.repo.List(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to load tasks, falling back to defaults", "error", err)
		return i18n.DefaultTasks(language)
	}
	if !seeded {
		defaults := i18n.DefaultTasks(language)
		if err := s.repo.Save(ctx, defaults); err != nil {
			logging.Logger.Warn("Failed to seed default tasks", "error", err)
		} else {
			logging.Logger.Info("Seeded default tasks", "language", language, "count", len(defaults))
		}
		return defaults
	}
	return tasks
}

// Get finds a task by id
func (s *TaskService) Get(ctx context.Context, language, id string) (domain.Task, bool) {
	for _, task := range s.List(ctx, language) {
		if task.ID == id {
			return task, true
		}
	}
	return domain.Task{}, false
}

// Create validates the name, fills default color/icon, appends the task
// and persists the list
func (s *TaskService) Create(ctx context.Context, language, name, color, icon string) (domain.Task, error) {
	task, err := domain.NewTask(name, color, icon, s.clock.Now())
	if err != nil {
		return domain.Task{}, err
	}

	tasks := s.List(ctx, language)
	if err := s.repo.Save(ctx, append(tasks, task)); err != nil {
		return domain.Task{}, fmt.Errorf("failed to save tasks: %w", err)
	}

	logging.Logger.Info("Task created", "id", task.ID, "name", task.Name)
	return task, nil
}

// Update merges the provided fields into the task. A missing id is a
// no-op success.
func (s *TaskService) Update(ctx context.Context, language, id string, update domain.TaskUpdate) error {
	if update.Name != nil {
		if err := domain.ValidateTaskName(*update.Name); err != nil {
			return err
		}
	}

	tasks := s.List(ctx, language)
	for i, task := range tasks {
		if task.ID == id {
			tasks[i] = task.Apply(update)
			break
		}
	}

	if err := s.repo.Save(ctx, tasks); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}

// Delete removes the task. Deleting an id that does not exist leaves the
// list unchanged and reports success.
func (s *TaskService) Delete(ctx context.Context, language, id string) error {
	tasks := s.List(ctx, language)
	remaining := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.ID != id {
			remaining = append(remaining, task)
		}
	}

	if err := s.repo.Save(ctx, remaining); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}

	if len(remaining) < len(tasks) {
		logging.Logger.Info("Task deleted", "id", id)
	}
	return nil
}

// Clear removes every task; the next List seeds defaults again
func (s *TaskService) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}
	logging.Logger.Info("All tasks cleared")
	return nil
}
