package theme

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles for CLI and TUI rendering
var (
	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	SubtitleStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorSubtle)
	MutedStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	FocusStyle    = lipgloss.NewStyle().Foreground(ColorFocus)
	BreakStyle    = lipgloss.NewStyle().Foreground(ColorBreak)
	StreakStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorStreak)
	ErrorStyle    = lipgloss.NewStyle().Foreground(ColorError)
)

// TaskSwatch renders a colored block in the task's own hex color
func TaskSwatch(hexColor string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor)).Render("■")
}
