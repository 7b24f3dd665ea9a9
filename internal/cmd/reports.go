package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/musagunn/pomotimer/internal/logging"
	"github.com/musagunn/pomotimer/internal/ui"
)

// ReportsCmd opens the interactive statistics viewer
type ReportsCmd struct{}

// Run executes the reports command
func (r *ReportsCmd) Run(container *Container) error {
	logging.Logger.Info("Starting reports viewer")

	streak := container.StreakService.Current(context.Background())
	model := ui.NewReportsModel(container.StatsService, streak, time.Now())

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("Reports viewer error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("Reports viewer exited normally")
	return nil
}
