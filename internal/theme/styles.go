package theme

import "github.com/charmbracelet/lipgloss"

// Main output styles
var (
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)

// Table styles
var (
	BorderStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	CellStyle = lipgloss.NewStyle().
			Foreground(ColorNormal).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary).
			Padding(0, 1)
)

// Session status styles
var (
	RunningStyle = lipgloss.NewStyle().
			Foreground(ColorRunning)

	TerminatedStyle = lipgloss.NewStyle().
			Foreground(ColorTerminated)
)

// Mark styles
var (
	PinnedStyle = lipgloss.NewStyle().
			Foreground(ColorPinned).
			Bold(true)

	StickyStyle = lipgloss.NewStyle().
			Foreground(ColorSticky)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// StatusText renders the status word of a session
func StatusText(running bool) string {
	if running {
		return RunningStyle.Render("running")
	}
	return TerminatedStyle.Render("terminated")
}
