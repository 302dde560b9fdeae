// Package controlbar renders playback controls from a state snapshot and turns
// user input into intents. It never talks to the engine or to whoever owns it:
// intents are emitted as messages and whichever ancestor cares picks them up.
package controlbar

import (
	"strings"

	"github.com/ava-cli/ava/icon"
	"github.com/ava-cli/ava/intent"
	"github.com/ava-cli/ava/style"
	"github.com/charmbracelet/lipgloss"
)

// Source identifies intents emitted by the control bar.
const Source = "controlbar"

// Snapshot is the read-only state the bar renders.
type Snapshot struct {
	IsPlaying    bool
	IsMuted      bool
	IsFullscreen bool
}

// button is a single control: the intent it emits, the icon it shows and the
// tint it takes while its axis is engaged.
type button struct {
	intent intent.Intent
	icon   func(Snapshot) icon.Icon
	tint   func(Snapshot) lipgloss.TerminalColor
	hint   string
}

var buttons = []button{
	{intent: intent.PlayPause, icon: playPauseIcon, tint: tintWhen(func(s Snapshot) bool { return s.IsPlaying }, style.PlayingColor), hint: "space"},
	{intent: intent.VolumeToggle, icon: volumeIcon, tint: tintWhen(func(s Snapshot) bool { return s.IsMuted }, style.MutedColor), hint: "m"},
	{intent: intent.FullscreenToggle, icon: fullscreenIcon, tint: tintWhen(func(s Snapshot) bool { return s.IsFullscreen }, style.FullscreenColor), hint: "f"},
}

func tintWhen(engaged func(Snapshot) bool, c lipgloss.Color) func(Snapshot) lipgloss.TerminalColor {
	return func(s Snapshot) lipgloss.TerminalColor {
		if engaged(s) {
			return c
		}
		return nil
	}
}

func playPauseIcon(s Snapshot) icon.Icon {
	if s.IsPlaying {
		return icon.Pause
	}
	return icon.Play
}

func volumeIcon(s Snapshot) icon.Icon {
	if s.IsMuted {
		return icon.VolumeMute
	}
	return icon.VolumeOn
}

func fullscreenIcon(s Snapshot) icon.Icon {
	if s.IsFullscreen {
		return icon.FullscreenExit
	}
	return icon.Fullscreen
}

var (
	containerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.Panel).
			Padding(0, 1)
	hintStyle = lipgloss.NewStyle().Foreground(style.Hint)
)

const buttonGap = " "

// Icons returns the icon of every button for the snapshot, in display order.
func Icons(s Snapshot) []icon.Icon {
	icons := make([]icon.Icon, len(buttons))
	for i, b := range buttons {
		icons[i] = b.icon(s)
	}
	return icons
}

// renderButtons renders each button on its own.
func renderButtons(s Snapshot) []string {
	rendered := make([]string, len(buttons))
	for i, b := range buttons {
		rendered[i] = style.Button(icon.Get(b.icon(s))+" "+hintStyle.Render(b.hint), b.tint(s))
	}
	return rendered
}

// Render draws the bar for a snapshot. The output depends on nothing else.
func Render(s Snapshot) string {
	return containerStyle.Render(strings.Join(renderButtons(s), buttonGap))
}

// hitTest returns the intent of the button covering column x of the bar, where
// x is relative to the bar's left edge.
func hitTest(s Snapshot, x int) (intent.Intent, bool) {
	// border + left padding
	pos := containerStyle.GetBorderLeftSize() + containerStyle.GetPaddingLeft()
	gap := lipgloss.Width(buttonGap)

	for i, r := range renderButtons(s) {
		w := lipgloss.Width(r)
		if x >= pos && x < pos+w {
			return buttons[i].intent, true
		}
		pos += w + gap
	}

	return intent.Unknown, false
}
