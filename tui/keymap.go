package tui

import (
	"github.com/ava-cli/ava/controlbar"
	"github.com/charmbracelet/bubbles/key"
)

// statefulKeymap holds the host bindings; playback keys belong to the control bar.
type statefulKeymap struct {
	state state
	bar   controlbar.KeyMap

	quit, forceQuit,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap(bar controlbar.KeyMap) *statefulKeymap {
	return &statefulKeymap{
		bar: bar,
		quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case loadingState:
		return to2(h(k.forceQuit))
	case playingState:
		return h(k.bar.PlayPause, k.bar.VolumeToggle, k.bar.FullscreenToggle, k.quit, k.showHelp),
			h(k.bar.PlayPause, k.bar.VolumeToggle, k.bar.FullscreenToggle, k.quit, k.forceQuit, k.showHelp)
	case endedState, errorState:
		return to2(h(k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}
