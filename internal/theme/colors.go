package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "203" // Tomato - app name, titles
	ColorSecondary Color = "86"  // Cyan - subtitles
)

// Session type colors
const (
	ColorBreak Color = "4" // Blue - break sessions
	ColorFocus Color = "2" // Green - focus sessions
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorStreak    Color = "208" // Orange - streak flame
	ColorSubtle    Color = "245" // Light gray - labels
)
