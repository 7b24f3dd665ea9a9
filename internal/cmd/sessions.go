package cmd

import (
	"context"
	"fmt"

	"github.com/musagunn/pomotimer/internal/domain"
	"github.com/musagunn/pomotimer/internal/logging"
	"github.com/musagunn/pomotimer/internal/theme"
)

// SessionsCmd manages recorded sessions
type SessionsCmd struct {
	Clear SessionsClearCmd `cmd:"clear" help:"Delete all recorded sessions"`
	List  SessionsListCmd  `cmd:"list" help:"List recorded sessions, newest first" default:"1"`
}

// SessionsListCmd lists recorded sessions
type SessionsListCmd struct {
	Date  string `help:"Only show sessions from this date (YYYY-MM-DD)"`
	From  string `help:"Start of date range, inclusive (YYYY-MM-DD)"`
	Limit int    `help:"Maximum number of sessions to show (0 = all)" short:"n" default:"0"`
	To    string `help:"End of date range, inclusive (YYYY-MM-DD)"`
}

// Run executes the list command
func (s *SessionsListCmd) Run(container *Container) error {
	logging.Logger.Info("Executing sessions list command", "date", s.Date, "from", s.From, "to", s.To)

	ctx := context.Background()
	var records []domain.SessionRecord
	switch {
	case s.Date != "":
		records = container.SessionService.ListRange(ctx, s.Date, s.Date)
	case s.From != "" || s.To != "":
		from, to := s.From, s.To
		if to == "" {
			to = "9999-12-31"
		}
		records = container.SessionService.ListRange(ctx, from, to)
	default:
		records = container.SessionService.List(ctx)
	}

	if s.Limit > 0 && len(records) > s.Limit {
		records = records[:s.Limit]
	}

	if len(records) == 0 {
		fmt.Println(theme.MutedStyle.Render("No sessions recorded."))
		return nil
	}

	for _, record := range records {
		style := theme.FocusStyle
		if record.Type == domain.TypeBreak {
			style = theme.BreakStyle
		}
		line := fmt.Sprintf("%s  %-5s  %8s", record.LocalDate, record.Type, domain.FormatDuration(record.DurationSeconds))
		if record.Task != nil {
			line += "  " + record.Task.Name
		}
		fmt.Println(style.Render(line))
	}
	fmt.Printf("\n%d sessions\n", len(records))
	return nil
}

// SessionsClearCmd deletes all recorded sessions
type SessionsClearCmd struct {
	Force bool `help:"Skip confirmation" short:"f"`
}

// Run executes the clear command
func (s *SessionsClearCmd) Run(container *Container) error {
	if !s.Force {
		fmt.Print("This will delete all recorded sessions. Continue? [y/N]: ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			return nil
		}
	}

	logging.Logger.Info("Executing sessions clear command")
	if err := container.SessionService.Clear(context.Background()); err != nil {
		return err
	}
	fmt.Println("Sessions cleared.")
	return nil
}
