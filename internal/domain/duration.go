package domain

import "fmt"

// FormatDuration renders a second count for display: "0m" for zero,
// "1m" for anything under a minute (activity happened, so never show
// "0m" for it), otherwise "{h}h {m}m" or "{m}m".
func FormatDuration(seconds int) string {
	if seconds == 0 {
		return "0m"
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	if hours == 0 && minutes == 0 {
		return "1m"
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
