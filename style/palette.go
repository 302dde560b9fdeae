package style

import "github.com/charmbracelet/lipgloss"

// Colors named after what they paint.
var (
	// Text is the foreground of control bar buttons and body copy.
	Text = lipgloss.Color("#cdd6f4")

	// Panel backs the control bar buttons and draws its border.
	Panel = lipgloss.Color("#313244")

	// Hint colors key hints and other secondary text.
	Hint = lipgloss.Color("#6c7086")

	// Accent highlights commands the user is invited to run.
	Accent = lipgloss.Color("#cba6f7")

	// Per playback state, shared by the status line and the buttons that reflect it.
	PlayingColor    = lipgloss.Color("#a6e3a1")
	PausedColor     = lipgloss.Color("#f9e2af")
	MutedColor      = lipgloss.Color("#fab387")
	FullscreenColor = lipgloss.Color("#89b4fa")
	ErrorColor      = lipgloss.Color("#f38ba8")
)
