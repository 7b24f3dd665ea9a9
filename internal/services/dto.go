package services

import "github.com/musagunn/pomotimer/internal/domain"

// WeekDayStat is one day of a weekly breakdown. Days without sessions
// appear with zero values.
type WeekDayStat struct {
	Date         string `json:"date"`
	Day          string `json:"day"`
	Sessions     int    `json:"sessions"`
	TotalMinutes int    `json:"totalMinutes"`
}

// MonthDayStat is one day of a monthly breakdown
type MonthDayStat struct {
	Date         string `json:"date"`
	Day          int    `json:"day"`
	Sessions     int    `json:"sessions"`
	TotalMinutes int    `json:"totalMinutes"`
}

// TaskStat aggregates focus sessions of one task
type TaskStat struct {
	Count           int                 `json:"count"`
	DurationSeconds int                 `json:"duration"`
	Task            domain.TaskSnapshot `json:"task"`
}

// WeeklyStats summarizes the Sunday-through-Saturday week containing the
// reference date
type WeeklyStats struct {
	BreakSessions     int
	Daily             []WeekDayStat
	EndDate           string
	FocusSessions     int
	Sessions          []domain.SessionRecord
	StartDate         string
	TopTasks          []TaskStat
	TotalBreakSeconds int
	TotalFocusSeconds int
}

// MonthlyStats summarizes one calendar month
type MonthlyStats struct {
	AvgFocusSeconds   int
	BreakSessions     int
	Daily             []MonthDayStat
	EndDate           string
	FocusSessions     int
	Sessions          []domain.SessionRecord
	StartDate         string
	TopTasks          []TaskStat
	TotalBreakSeconds int
	TotalFocusSeconds int
}
