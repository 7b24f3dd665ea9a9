package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/musagunn/pomotimer/internal/domain"
	"github.com/musagunn/pomotimer/internal/services"
)

func TestRenderWeeklyStats(t *testing.T) {
	stats := services.WeeklyStats{
		BreakSessions: 1,
		Daily: []services.WeekDayStat{
			{Date: "2024-06-02", Day: "Sun", Sessions: 0, TotalMinutes: 0},
			{Date: "2024-06-03", Day: "Mon", Sessions: 2, TotalMinutes: 50},
			{Date: "2024-06-04", Day: "Tue", Sessions: 1, TotalMinutes: 25},
		},
		EndDate:       "2024-06-08",
		FocusSessions: 3,
		StartDate:     "2024-06-02",
		TopTasks: []services.TaskStat{
			{Count: 3, DurationSeconds: 4500, Task: domain.TaskSnapshot{ID: "1", Name: "Study", Color: "#FF6B6B", Icon: "📚"}},
		},
		TotalBreakSeconds: 300,
		TotalFocusSeconds: 4500,
	}

	out := RenderWeeklyStats(stats)

	assert.Contains(t, out, "Week 2024-06-02 to 2024-06-08")
	assert.Contains(t, out, "1h 15m")
	assert.Contains(t, out, "(3 sessions)")
	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "Top tasks")
	assert.Contains(t, out, "Study")
}

func TestRenderMonthlyStats(t *testing.T) {
	t.Run("WithSessions", func(t *testing.T) {
		stats := services.MonthlyStats{
			AvgFocusSeconds: 1500,
			Daily: []services.MonthDayStat{
				{Date: "2024-06-01", Day: 1, Sessions: 0, TotalMinutes: 0},
				{Date: "2024-06-02", Day: 2, Sessions: 1, TotalMinutes: 25},
			},
			EndDate:           "2024-06-30",
			FocusSessions:     1,
			StartDate:         "2024-06-01",
			TotalFocusSeconds: 1500,
		}

		out := RenderMonthlyStats(stats)

		assert.Contains(t, out, "Month 2024-06-01 to 2024-06-30")
		assert.Contains(t, out, "Avg focus:")
		assert.Contains(t, out, "25m (1)")
	})

	t.Run("Empty", func(t *testing.T) {
		stats := services.MonthlyStats{
			Daily:     []services.MonthDayStat{{Date: "2024-07-01", Day: 1}},
			EndDate:   "2024-07-31",
			StartDate: "2024-07-01",
		}

		out := RenderMonthlyStats(stats)

		assert.Contains(t, out, "No focus sessions this month.")
	})
}

func TestRenderStreak(t *testing.T) {
	t.Run("Active", func(t *testing.T) {
		last := time.Date(2024, 6, 5, 9, 0, 0, 0, time.Local)
		state := domain.StreakState{CurrentStreak: 4, LastSessionDate: &last, LongestStreak: 9}

		out := RenderStreak(state)

		assert.Contains(t, out, "4 day streak")
		assert.Contains(t, out, "longest: 9")
	})

	t.Run("Zero", func(t *testing.T) {
		out := RenderStreak(domain.StreakState{})

		assert.Contains(t, out, "No active streak")
	})
}
