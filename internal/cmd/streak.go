package cmd

import (
	"context"
	"fmt"

	"github.com/musagunn/pomotimer/internal/logging"
	"github.com/musagunn/pomotimer/internal/theme"
	"github.com/musagunn/pomotimer/internal/ui"
)

// StreakCmd shows or resets the daily streak
type StreakCmd struct {
	Reset StreakResetCmd `cmd:"reset" help:"Reset the streak counters to zero"`
	Show  StreakShowCmd  `cmd:"show" help:"Show the current and longest streak" default:"1"`
}

// StreakShowCmd shows the current streak
type StreakShowCmd struct{}

// Run executes the show command
func (s *StreakShowCmd) Run(container *Container) error {
	logging.Logger.Info("Executing streak show command")

	state := container.StreakService.Current(context.Background())
	fmt.Println(ui.RenderStreak(state))
	if state.LastSessionDate != nil {
		fmt.Println(theme.MutedStyle.Render("last session: " + state.LastSessionDate.Format("2006-01-02")))
	}
	return nil
}

// StreakResetCmd resets the streak
type StreakResetCmd struct {
	Force bool `help:"Skip confirmation" short:"f"`
}

// Run executes the reset command
func (s *StreakResetCmd) Run(container *Container) error {
	if !s.Force {
		fmt.Print("This will reset your streak to zero. Continue? [y/N]: ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			return nil
		}
	}

	logging.Logger.Info("Executing streak reset command")
	if err := container.StreakService.Reset(context.Background()); err != nil {
		return err
	}
	fmt.Println("Streak reset.")
	return nil
}
