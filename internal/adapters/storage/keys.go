package storage

// Storage keys for the three independent logical records plus notes.
// Each key holds one JSON document; there are no cross-key transactions.
const (
	KeyNotes    = "pomodoro_notes"
	KeySessions = "pomodoro_sessions"
	KeyStreak   = "pomodoro_streak"
	KeyTasks    = "pomodoro_tasks"
)
