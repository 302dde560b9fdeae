// Package color holds the ANSI colors of ava's command line output. They follow
// the terminal theme, unlike the fixed palette of the player screen in style.
package color

import "github.com/charmbracelet/lipgloss"

// Base ANSI colors.
var (
	Red    = lipgloss.Color("1")
	Green  = lipgloss.Color("2")
	Yellow = lipgloss.Color("3")
	Blue   = lipgloss.Color("4")
	Purple = lipgloss.Color("5")
	Cyan   = lipgloss.Color("6")
)

// Bright variants used for headings.
var (
	HiRed    = lipgloss.Color("9")
	HiPurple = lipgloss.Color("13")
)
