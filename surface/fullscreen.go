package surface

import (
	"errors"

	"github.com/ava-cli/ava/player"
	tea "github.com/charmbracelet/bubbletea"
)

// toggleFullscreen requests or exits fullscreen depending on whether anything
// holds it. Toggles arriving while a transition is in flight are ignored.
func (s *Surface) toggleFullscreen() tea.Cmd {
	if s.fullscreenPending {
		s.logger.Debug("fullscreen transition in flight, ignoring toggle")
		return nil
	}

	if s.fullscreen == nil {
		s.logger.Warn("no fullscreen subsystem")
		return nil
	}

	s.fullscreenPending = true
	gen, fs, ctx := s.generation, s.fullscreen, s.ctx

	return func() tea.Msg {
		holder, err := fs.Holder(ctx)
		if err != nil {
			return fullscreenDoneMsg{gen: gen, err: err}
		}

		if holder.IsAbsent() {
			return fullscreenDoneMsg{gen: gen, fullscreen: true, err: fs.Request(ctx)}
		}
		return fullscreenDoneMsg{gen: gen, fullscreen: false, err: fs.Exit(ctx)}
	}
}

// onFullscreenDone applies a fullscreen completion. Rejections leave the state as it was.
func (s *Surface) onFullscreenDone(msg fullscreenDoneMsg) {
	if !s.current(msg.gen) {
		s.logger.Debug("dropping fullscreen completion of a detached surface")
		return
	}

	s.fullscreenPending = false

	if msg.err != nil {
		if errors.Is(msg.err, player.ErrFullscreenDenied) {
			s.logger.Infof("fullscreen denied: %v", msg.err)
		} else {
			s.logger.Warnf("fullscreen transition failed: %v", msg.err)
		}
		return
	}

	s.state.IsFullscreen = msg.fullscreen
}
