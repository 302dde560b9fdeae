package surface

import "github.com/ava-cli/ava/player"

// Every internal message carries the attachment generation it was issued for,
// so results arriving after a detach or re-attach are dropped.

type loadedMsg struct {
	gen uint64
}

type loadFailedMsg struct {
	gen uint64
	err error
}

type notificationMsg struct {
	gen uint64
	n   player.Notification
}

type engineClosedMsg struct {
	gen uint64
}

type fullscreenDoneMsg struct {
	gen        uint64
	fullscreen bool
	err        error
}

type commandFailedMsg struct {
	gen uint64
	op  string
	err error
}

// ClosedMsg is emitted once the engine of the current attachment has gone away.
type ClosedMsg struct{}
