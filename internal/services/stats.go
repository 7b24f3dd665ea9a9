package services

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/musagunn/pomotimer/internal/domain"
	"github.com/musagunn/pomotimer/internal/logging"
)

// topTaskLimit caps the per-period task ranking
const topTaskLimit = 5

var weekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// StatsService derives weekly and monthly summaries by scanning session
// records. Nothing is cached; every call recomputes from storage.
type StatsService struct {
	sessions *SessionService
}

// NewStatsService creates a new StatsService
func NewStatsService(sessions *SessionService) *StatsService {
	return &StatsService{sessions: sessions}
}

// Weekly summarizes the Sunday-through-Saturday week containing ref.
// With no sessions in range every sum is zero, the seven daily entries
// all show zero, and TopTasks is empty; that is a valid result, not an
// error.
func (s *StatsService) Weekly(ctx context.Context, ref time.Time) WeeklyStats {
	start, end := domain.WeekBounds(ref)
	startDate := domain.LocalDate(start)
	endDate := domain.LocalDate(end)

	sessions := s.sessions.ListRange(ctx, startDate, endDate)
	focus, breaks := partition(sessions)

	daily := make([]WeekDayStat, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		date := domain.LocalDate(day)
		minutes, count := dayFocusTotals(focus, date)
		daily[i] = WeekDayStat{
			Date:         date,
			Day:          weekdayLabels[i],
			Sessions:     count,
			TotalMinutes: minutes,
		}
	}

	logging.Logger.Debug("Weekly stats computed",
		"start", startDate,
		"end", endDate,
		"sessions", len(sessions))

	return WeeklyStats{
		BreakSessions:     len(breaks),
		Daily:             daily,
		EndDate:           endDate,
		FocusSessions:     len(focus),
		Sessions:          sessions,
		StartDate:         startDate,
		TopTasks:          topTasks(focus),
		TotalBreakSeconds: sumDurations(breaks),
		TotalFocusSeconds: sumDurations(focus),
	}
}

// Monthly summarizes one calendar month, with one daily entry per
// day-of-month and the average focus session length
func (s *StatsService) Monthly(ctx context.Context, year int, month time.Month) MonthlyStats {
	start, end := domain.MonthBounds(year, month, time.Local)
	startDate := domain.LocalDate(start)
	endDate := domain.LocalDate(end)

	sessions := s.sessions.ListRange(ctx, startDate, endDate)
	focus, breaks := partition(sessions)

	daysInMonth := end.Day()
	daily := make([]MonthDayStat, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := domain.LocalDate(start.AddDate(0, 0, day-1))
		minutes, count := dayFocusTotals(focus, date)
		daily[day-1] = MonthDayStat{
			Date:         date,
			Day:          day,
			Sessions:     count,
			TotalMinutes: minutes,
		}
	}

	totalFocus := sumDurations(focus)
	avgFocus := 0
	if len(focus) > 0 {
		avgFocus = int(math.Round(float64(totalFocus) / float64(len(focus))))
	}

	logging.Logger.Debug("Monthly stats computed",
		"start", startDate,
		"end", endDate,
		"sessions", len(sessions))

	return MonthlyStats{
		AvgFocusSeconds:   avgFocus,
		BreakSessions:     len(breaks),
		Daily:             daily,
		EndDate:           endDate,
		FocusSessions:     len(focus),
		Sessions:          sessions,
		StartDate:         startDate,
		TopTasks:          topTasks(focus),
		TotalBreakSeconds: sumDurations(breaks),
		TotalFocusSeconds: totalFocus,
	}
}

// partition splits records into focus and break subsets, keeping order
func partition(records []domain.SessionRecord) (focus, breaks []domain.SessionRecord) {
	for _, record := range records {
		switch record.Type {
		case domain.TypeFocus:
			focus = append(focus, record)
		case domain.TypeBreak:
			breaks = append(breaks, record)
		}
	}
	return focus, breaks
}

func sumDurations(records []domain.SessionRecord) int {
	total := 0
	for _, record := range records {
		total += record.DurationSeconds
	}
	return total
}

// dayFocusTotals returns rounded focus minutes and session count for one
// local date
func dayFocusTotals(focus []domain.SessionRecord, date string) (minutes, count int) {
	seconds := 0
	for _, record := range focus {
		if record.LocalDate == date {
			seconds += record.DurationSeconds
			count++
		}
	}
	return int(math.Round(float64(seconds) / 60)), count
}

// topTasks groups focus sessions by task id (sessions without a task are
// excluded), sorts descending by total duration, and keeps the top 5.
// Ties keep first-encounter order.
func topTasks(focus []domain.SessionRecord) []TaskStat {
	index := make(map[string]int)
	stats := []TaskStat{}

	for _, record := range focus {
		if record.Task == nil {
			continue
		}
		i, ok := index[record.Task.ID]
		if !ok {
			i = len(stats)
			index[record.Task.ID] = i
			stats = append(stats, TaskStat{Task: *record.Task})
		}
		stats[i].Count++
		stats[i].DurationSeconds += record.DurationSeconds
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].DurationSeconds > stats[j].DurationSeconds
	})

	if len(stats) > topTaskLimit {
		stats = stats[:topTaskLimit]
	}
	return stats
}
