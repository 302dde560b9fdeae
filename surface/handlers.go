package surface

import "github.com/ava-cli/ava/player"

// Handlers are optional host callbacks. They observe the engine and are never
// needed for the surface to stay consistent.
type Handlers struct {
	OnPlay         func()
	OnPause        func()
	OnEnded        func()
	OnError        func(err *player.PlaybackError)
	OnLoadMetadata func()
	OnTimeUpdate   func(position float64)
	OnVolumeChange func()
}

func call(f func()) {
	if f != nil {
		f()
	}
}
