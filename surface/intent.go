package surface

import (
	"github.com/ava-cli/ava/intent"
	tea "github.com/charmbracelet/bubbletea"
)

// HandleIntent is the only entry point for user driven changes. It issues the
// matching engine command; state changes arrive later as notifications.
func (s *Surface) HandleIntent(i intent.Intent) tea.Cmd {
	if !s.attached {
		return nil
	}

	switch i {
	case intent.PlayPause:
		// toggles on the last confirmed state, a drift is corrected by the next notification
		if s.state.IsPlaying {
			return s.command("pause", s.primitive.Pause)
		}
		return s.command("play", s.primitive.Play)
	case intent.VolumeToggle:
		muted := !s.state.IsMuted
		return s.command("mute", func() error {
			return s.primitive.SetMuted(muted)
		})
	case intent.FullscreenToggle:
		return s.toggleFullscreen()
	default:
		s.logger.Debugf("ignoring intent %v", i)
		return nil
	}
}

// command runs an engine command off the update loop. A failure is reported
// back, success is silent.
func (s *Surface) command(op string, f func() error) tea.Cmd {
	gen := s.generation
	return func() tea.Msg {
		if err := f(); err != nil {
			return commandFailedMsg{gen: gen, op: op, err: err}
		}
		return nil
	}
}
