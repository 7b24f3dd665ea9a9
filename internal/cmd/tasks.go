package cmd

import (
	"context"
	"fmt"

	"github.com/musagunn/pomotimer/internal/domain"
	"github.com/musagunn/pomotimer/internal/logging"
	"github.com/musagunn/pomotimer/internal/theme"
)

// TasksCmd manages tasks
type TasksCmd struct {
	Add  TasksAddCmd  `cmd:"add" help:"Add a new task"`
	Del  TasksDelCmd  `cmd:"del" help:"Delete a task"`
	List TasksListCmd `cmd:"list" help:"List all tasks" default:"1"`
	Set  TasksSetCmd  `cmd:"set" help:"Update a task's name, color, or icon"`
}

// TasksListCmd lists all tasks
type TasksListCmd struct{}

// Run executes the list command
func (t *TasksListCmd) Run(container *Container, cli *CLI) error {
	logging.Logger.Info("Executing tasks list command")

	tasks := container.TaskService.List(context.Background(), cli.resolveLanguage())
	if len(tasks) == 0 {
		fmt.Println(theme.MutedStyle.Render("No tasks."))
		return nil
	}
	for _, task := range tasks {
		fmt.Printf("%-4s %s %s %s\n", task.ID, theme.TaskSwatch(task.Color), task.Icon, task.Name)
	}
	return nil
}

// TasksAddCmd adds a new task
type TasksAddCmd struct {
	Color string `help:"Hex color for the task" default:""`
	Icon  string `help:"Icon (emoji) for the task" default:""`
	Name  string `arg:"" help:"Task name (max 30 characters)"`
}

// Run executes the add command
func (t *TasksAddCmd) Run(container *Container, cli *CLI) error {
	logging.Logger.Info("Executing tasks add command", "name", t.Name)

	task, err := container.TaskService.Create(context.Background(), cli.resolveLanguage(), t.Name, t.Color, t.Icon)
	if err != nil {
		return err
	}
	fmt.Printf("Added task %s: %s %s\n", task.ID, task.Icon, task.Name)
	return nil
}

// TasksDelCmd deletes a task
type TasksDelCmd struct {
	ID string `arg:"" help:"ID of the task to delete"`
}

// Run executes the del command
func (t *TasksDelCmd) Run(container *Container, cli *CLI) error {
	logging.Logger.Info("Executing tasks del command", "id", t.ID)

	if err := container.TaskService.Delete(context.Background(), cli.resolveLanguage(), t.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted task %s.\n", t.ID)
	return nil
}

// TasksSetCmd updates a task
type TasksSetCmd struct {
	Color *string `help:"New hex color"`
	Icon  *string `help:"New icon (emoji)"`
	ID    string  `arg:"" help:"ID of the task to update"`
	Name  *string `help:"New task name"`
}

// Run executes the set command
func (t *TasksSetCmd) Run(container *Container, cli *CLI) error {
	if t.Color == nil && t.Icon == nil && t.Name == nil {
		return fmt.Errorf("nothing to update: pass --name, --color, or --icon")
	}

	logging.Logger.Info("Executing tasks set command", "id", t.ID)

	update := domain.TaskUpdate{Color: t.Color, Icon: t.Icon, Name: t.Name}
	if err := container.TaskService.Update(context.Background(), cli.resolveLanguage(), t.ID, update); err != nil {
		return err
	}
	fmt.Printf("Updated task %s.\n", t.ID)
	return nil
}
