package cmd

import (
	"context"
	"fmt"

	"github.com/musagunn/pomotimer/internal/domain"
	"github.com/musagunn/pomotimer/internal/logging"
)

// RecordCmd records a completed pomodoro session
type RecordCmd struct {
	Minutes int    `help:"Session length in minutes" short:"m" default:"25"`
	Seconds int    `help:"Session length in seconds (overrides --minutes)" default:"0"`
	Task    string `help:"ID of the task this session was spent on" short:"t"`
	Type    string `help:"Session type" default:"focus" enum:"focus,break"`
}

// Run executes the record command
func (r *RecordCmd) Run(container *Container, cli *CLI) error {
	duration := r.Seconds
	if duration == 0 {
		duration = r.Minutes * 60
	}

	sessType, err := domain.ParseSessionType(r.Type)
	if err != nil {
		return err
	}

	var snapshot *domain.TaskSnapshot
	if r.Task != "" {
		task, ok := container.TaskService.Get(context.Background(), cli.resolveLanguage(), r.Task)
		if !ok {
			return fmt.Errorf("task %q not found", r.Task)
		}
		snapshot = task.Snapshot()
	}

	logging.Logger.Info("Executing record command", "type", r.Type, "duration", duration, "task", r.Task)

	record, err := container.SessionService.Record(context.Background(), sessType, duration, snapshot)
	if err != nil {
		return err
	}

	label := string(record.Type)
	if record.Task != nil {
		label = fmt.Sprintf("%s on %s", label, record.Task.Name)
	}
	fmt.Printf("Recorded %s session of %s (%s)\n", label, domain.FormatDuration(record.DurationSeconds), record.LocalDate)
	return nil
}
