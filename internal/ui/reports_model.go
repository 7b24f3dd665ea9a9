package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/musagunn/pomotimer/internal/domain"
	"github.com/musagunn/pomotimer/internal/services"
	"github.com/musagunn/pomotimer/internal/theme"
)

// reportPeriod selects the active report view
type reportPeriod int

const (
	periodWeekly reportPeriod = iota
	periodMonthly
)

// ReportsModel is a read-only bubbletea viewer for weekly and monthly
// statistics. Stats are recomputed on every navigation step; there is no
// cache to invalidate.
type ReportsModel struct {
	period reportPeriod
	ref    time.Time
	stats  *services.StatsService
	streak domain.StreakState
}

// NewReportsModel creates the viewer anchored at now
func NewReportsModel(stats *services.StatsService, streak domain.StreakState, now time.Time) ReportsModel {
	return ReportsModel{
		period: periodWeekly,
		ref:    now,
		stats:  stats,
		streak: streak,
	}
}

// Init implements tea.Model
func (m ReportsModel) Init() tea.Cmd { return nil }

// Update implements tea.Model
func (m ReportsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "w":
		m.period = periodWeekly
	case "m":
		m.period = periodMonthly
	case "left", "h":
		m.ref = m.step(-1)
	case "right", "l":
		m.ref = m.step(1)
	case "t":
		m.ref = time.Now()
	}
	return m, nil
}

// step moves the reference date one period in either direction
func (m ReportsModel) step(direction int) time.Time {
	if m.period == periodMonthly {
		return m.ref.AddDate(0, direction, 0)
	}
	return m.ref.AddDate(0, 0, 7*direction)
}

// View implements tea.Model
func (m ReportsModel) View() string {
	var body string
	if m.period == periodMonthly {
		body = RenderMonthlyStats(m.stats.Monthly(context.Background(), m.ref.Year(), m.ref.Month()))
	} else {
		body = RenderWeeklyStats(m.stats.Weekly(context.Background(), m.ref))
	}

	help := theme.MutedStyle.Render("←/→ prev/next • w week • m month • t today • q quit")
	return body + "\n" + RenderStreak(m.streak) + "\n\n" + help + "\n"
}
