package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/musagunn/pomotimer/internal/logging"
	"github.com/musagunn/pomotimer/internal/ui"
)

// StatsCmd shows focus statistics
type StatsCmd struct {
	Month StatsMonthCmd `cmd:"month" help:"Show statistics for a calendar month"`
	Week  StatsWeekCmd  `cmd:"week" help:"Show statistics for a week (Sunday to Saturday)" default:"1"`
}

// StatsWeekCmd shows weekly statistics
type StatsWeekCmd struct {
	Date   string `help:"Any date inside the week (YYYY-MM-DD), defaults to today"`
	Format string `help:"Output format" default:"chart" enum:"chart,json"`
}

// Run executes the week command
func (s *StatsWeekCmd) Run(container *Container) error {
	ref := time.Now()
	if s.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", s.Date, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", s.Date, err)
		}
		ref = parsed
	}

	logging.Logger.Info("Executing stats week command", "ref", ref.Format("2006-01-02"), "format", s.Format)

	stats := container.StatsService.Weekly(context.Background(), ref)
	if s.Format == "json" {
		return writeJSON(stats)
	}
	fmt.Print(ui.RenderWeeklyStats(stats))
	return nil
}

// StatsMonthCmd shows monthly statistics
type StatsMonthCmd struct {
	Format string `help:"Output format" default:"chart" enum:"chart,json"`
	Month  int    `help:"Month (1-12), defaults to the current month" default:"0"`
	Year   int    `help:"Year, defaults to the current year" default:"0"`
}

// Run executes the month command
func (s *StatsMonthCmd) Run(container *Container) error {
	now := time.Now()
	year, month := s.Year, time.Month(s.Month)
	if year == 0 {
		year = now.Year()
	}
	if s.Month == 0 {
		month = now.Month()
	} else if s.Month < 1 || s.Month > 12 {
		return fmt.Errorf("invalid month %d", s.Month)
	}

	logging.Logger.Info("Executing stats month command", "year", year, "month", int(month), "format", s.Format)

	stats := container.StatsService.Monthly(context.Background(), year, month)
	if s.Format == "json" {
		return writeJSON(stats)
	}
	fmt.Print(ui.RenderMonthlyStats(stats))
	return nil
}

// writeJSON prints v as indented JSON on stdout
func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
