package surface

import (
	"github.com/ava-cli/ava/player"
)

// OnNotification applies an engine notification. play, pause and volumechange
// update the state; the other kinds only reach the host callbacks.
func (s *Surface) OnNotification(n player.Notification) {
	h := s.handlers

	switch n.Kind {
	case player.KindPlay:
		s.state.IsPlaying = true
		call(h.OnPlay)
	case player.KindPause:
		s.state.IsPlaying = false
		call(h.OnPause)
	case player.KindVolumeChange:
		// the engine is authoritative, mute may change outside the control bar
		s.state.IsMuted = n.Muted
		call(h.OnVolumeChange)
	case player.KindEnded:
		call(h.OnEnded)
	case player.KindLoadedMetadata:
		call(h.OnLoadMetadata)
	case player.KindTimeUpdate:
		if h.OnTimeUpdate != nil {
			h.OnTimeUpdate(n.Position)
		}
	case player.KindError:
		err := n.Err
		if err == nil {
			err = &player.PlaybackError{Code: player.CodeDecode, Message: "unknown engine error"}
		}
		s.logger.Errorf("playback error: %v", err)
		if h.OnError != nil {
			h.OnError(err)
		}
	default:
		s.logger.Debugf("ignoring notification %q", n.Kind)
	}
}
