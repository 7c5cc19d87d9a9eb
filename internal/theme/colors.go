package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - headers
)

// Session status colors
const (
	ColorRunning    Color = "2" // Green
	ColorTerminated Color = "8" // Gray
)

// UI semantic colors
const (
	ColorBorder    Color = "238" // Table borders
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorPinned    Color = "226" // Yellow
	ColorSticky    Color = "141" // Purple
)
