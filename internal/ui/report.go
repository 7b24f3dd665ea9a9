package ui

import (
	"fmt"
	"strings"

	"github.com/musagunn/pomotimer/internal/domain"
	"github.com/musagunn/pomotimer/internal/services"
	"github.com/musagunn/pomotimer/internal/theme"
)

// chartBarWidth is the widest daily bar in the focus chart
const chartBarWidth = 30

// RenderWeeklyStats renders a weekly summary with a per-day focus chart.
// Used by both the CLI and the TUI to keep the formats identical.
func RenderWeeklyStats(stats services.WeeklyStats) string {
	var sb strings.Builder

	sb.WriteString(theme.TitleStyle.Render(fmt.Sprintf("Week %s to %s", stats.StartDate, stats.EndDate)))
	sb.WriteString("\n\n")
	sb.WriteString(renderTotals(stats.TotalFocusSeconds, stats.FocusSessions, stats.TotalBreakSeconds, stats.BreakSessions))
	sb.WriteString("\n\n")

	maxMinutes := 0
	for _, day := range stats.Daily {
		if day.TotalMinutes > maxMinutes {
			maxMinutes = day.TotalMinutes
		}
	}
	for _, day := range stats.Daily {
		sb.WriteString(renderDayBar(day.Day, day.TotalMinutes, day.Sessions, maxMinutes))
		sb.WriteString("\n")
	}

	sb.WriteString(renderTopTasks(stats.TopTasks))
	return sb.String()
}

// RenderMonthlyStats renders a monthly summary. Days without focus
// sessions are collapsed to keep the chart readable.
func RenderMonthlyStats(stats services.MonthlyStats) string {
	var sb strings.Builder

	sb.WriteString(theme.TitleStyle.Render(fmt.Sprintf("Month %s to %s", stats.StartDate, stats.EndDate)))
	sb.WriteString("\n\n")
	sb.WriteString(renderTotals(stats.TotalFocusSeconds, stats.FocusSessions, stats.TotalBreakSeconds, stats.BreakSessions))
	sb.WriteString("\n")
	sb.WriteString(theme.LabelStyle.Render("Avg focus:  "))
	sb.WriteString(domain.FormatDuration(stats.AvgFocusSeconds))
	sb.WriteString("\n\n")

	maxMinutes := 0
	for _, day := range stats.Daily {
		if day.TotalMinutes > maxMinutes {
			maxMinutes = day.TotalMinutes
		}
	}
	active := 0
	for _, day := range stats.Daily {
		if day.Sessions == 0 {
			continue
		}
		active++
		sb.WriteString(renderDayBar(fmt.Sprintf("%2d", day.Day), day.TotalMinutes, day.Sessions, maxMinutes))
		sb.WriteString("\n")
	}
	if active == 0 {
		sb.WriteString(theme.MutedStyle.Render("No focus sessions this month."))
		sb.WriteString("\n")
	}

	sb.WriteString(renderTopTasks(stats.TopTasks))
	return sb.String()
}

// RenderStreak renders the streak line shown on the home views
func RenderStreak(state domain.StreakState) string {
	if state.CurrentStreak == 0 {
		return theme.MutedStyle.Render("No active streak")
	}
	return theme.StreakStyle.Render(fmt.Sprintf("🔥 %d day streak", state.CurrentStreak)) +
		theme.MutedStyle.Render(fmt.Sprintf("  (longest: %d)", state.LongestStreak))
}

func renderTotals(focusSeconds, focusCount, breakSeconds, breakCount int) string {
	return theme.LabelStyle.Render("Focus:      ") +
		theme.FocusStyle.Render(domain.FormatDuration(focusSeconds)) +
		theme.MutedStyle.Render(fmt.Sprintf("  (%d sessions)", focusCount)) +
		"\n" +
		theme.LabelStyle.Render("Break:      ") +
		theme.BreakStyle.Render(domain.FormatDuration(breakSeconds)) +
		theme.MutedStyle.Render(fmt.Sprintf("  (%d sessions)", breakCount))
}

func renderDayBar(label string, minutes, sessions, maxMinutes int) string {
	width := 0
	if maxMinutes > 0 {
		width = minutes * chartBarWidth / maxMinutes
	}
	if minutes > 0 && width == 0 {
		width = 1
	}

	bar := theme.FocusStyle.Render(strings.Repeat("█", width))
	detail := ""
	if sessions > 0 {
		detail = theme.MutedStyle.Render(fmt.Sprintf(" %s (%d)", domain.FormatDuration(minutes*60), sessions))
	}
	return fmt.Sprintf("%s %s%s", theme.LabelStyle.Render(label), bar, detail)
}

func renderTopTasks(topTasks []services.TaskStat) string {
	if len(topTasks) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(theme.SubtitleStyle.Render("Top tasks"))
	sb.WriteString("\n")
	for i, stat := range topTasks {
		sb.WriteString(fmt.Sprintf("%d. %s %s %s %s\n",
			i+1,
			theme.TaskSwatch(stat.Task.Color),
			stat.Task.Icon,
			stat.Task.Name,
			theme.MutedStyle.Render(fmt.Sprintf("%s, %d sessions", domain.FormatDuration(stat.DurationSeconds), stat.Count)),
		))
	}
	return sb.String()
}
