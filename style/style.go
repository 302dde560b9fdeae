// Package style renders the player's terminal text with lipgloss.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// New returns an empty style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a renderer applying a foreground color.
func Fg(c lipgloss.TerminalColor) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Title renders the media title above the control bar.
func Title(s string) string {
	return New().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1).Render(s)
}

// ErrorTitle renders the banner over a playback failure.
func ErrorTitle(s string) string {
	return New().Foreground(lipgloss.Color("230")).Background(ErrorColor).Padding(0, 1).Render(s)
}

// Button renders a control bar button, tinted while its state is engaged.
func Button(label string, engaged lipgloss.TerminalColor) string {
	s := New().Foreground(Text).Background(Panel).Padding(0, 1)
	if engaged != nil {
		s = s.Foreground(engaged)
	}
	return s.Render(label)
}
