// Package player defines the playback engine abstraction and its mpv implementation.
// The engine is the only ground truth for play, pause and mute state: callers
// issue commands and learn the outcome from the notifications it emits.
package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-cli/ava/media"
	"github.com/samber/mo"
)

// Primitive encapsulates the capabilities of a media playback engine.
type Primitive interface {
	// Load binds the engine to the source and configuration and starts emitting notifications.
	// Calling it again while loaded is a no-op.
	Load(ctx context.Context, source media.Source, configuration media.Configuration) error

	// Play asks the engine to resume playback. Success is reported by a play notification.
	Play() error

	// Pause asks the engine to suspend playback. Success is reported by a pause notification.
	Pause() error

	// SetMuted sets the engine mute flag. The change is reported by a volumechange notification.
	SetMuted(muted bool) error

	// Notifications delivers engine notifications in the order the engine emitted them.
	// The channel is closed once the engine is gone.
	Notifications() <-chan Notification

	// Close terminates the engine and releases all associated resources.
	Close() error
}

// Fullscreen is the subsystem deciding which window, if any, occupies the whole screen.
type Fullscreen interface {
	// Holder reports the current fullscreen holder, if any.
	Holder(ctx context.Context) (mo.Option[string], error)

	// Request asks for fullscreen. A nil error means it was granted.
	Request(ctx context.Context) error

	// Exit leaves fullscreen. A nil error means it was left.
	Exit(ctx context.Context) error
}

// ErrFullscreenDenied wraps every rejection of a fullscreen request or exit.
var ErrFullscreenDenied = errors.New("fullscreen denied")

// Kind names a notification emitted by the engine.
type Kind string

const (
	KindPlay           Kind = "play"
	KindPause          Kind = "pause"
	KindVolumeChange   Kind = "volumechange"
	KindEnded          Kind = "ended"
	KindLoadedMetadata Kind = "loadedmetadata"
	KindTimeUpdate     Kind = "timeupdate"
	KindError          Kind = "error"
)

// Notification is a single engine state change.
type Notification struct {
	Kind Kind

	// Muted is the engine mute flag at the time of a volumechange.
	Muted bool

	// Position is the playback position in seconds for a timeupdate.
	Position float64

	// Err describes the failure for an error notification.
	Err *PlaybackError
}

// MediaErrorCode classifies playback failures.
type MediaErrorCode string

const (
	CodeAborted         MediaErrorCode = "aborted"
	CodeNetwork         MediaErrorCode = "network"
	CodeDecode          MediaErrorCode = "decode"
	CodeSrcNotSupported MediaErrorCode = "src-not-supported"
	CodeLaunch          MediaErrorCode = "launch"
)

// PlaybackError is a structured description of an engine failure.
type PlaybackError struct {
	Code    MediaErrorCode
	Message string
}

func (e *PlaybackError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrorNotification builds an error notification.
func ErrorNotification(code MediaErrorCode, message string) Notification {
	return Notification{
		Kind: KindError,
		Err:  &PlaybackError{Code: code, Message: message},
	}
}
