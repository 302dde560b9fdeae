// Package intent defines the vocabulary a control surface uses to ask for a
// playback change. An intent carries no state, only the action.
package intent

import tea "github.com/charmbracelet/bubbletea"

// Intent is a semantic, state-free user action request.
type Intent int

const (
	// Unknown is any tag outside the known set. Consumers must ignore it.
	Unknown Intent = iota
	PlayPause
	VolumeToggle
	FullscreenToggle
)

// Wire tags of the known intents.
const (
	TagPlayPause        = "play-pause"
	TagVolumeToggle     = "volume-toggle"
	TagFullscreenToggle = "fullscreen-toggle"
)

// Parse maps a tag to its Intent. Unrecognized tags yield Unknown, never an error,
// so new actions can be emitted before every consumer understands them.
func Parse(tag string) Intent {
	switch tag {
	case TagPlayPause:
		return PlayPause
	case TagVolumeToggle:
		return VolumeToggle
	case TagFullscreenToggle:
		return FullscreenToggle
	default:
		return Unknown
	}
}

// Tag returns the wire tag, or an empty string for Unknown.
func (i Intent) Tag() string {
	switch i {
	case PlayPause:
		return TagPlayPause
	case VolumeToggle:
		return TagVolumeToggle
	case FullscreenToggle:
		return TagFullscreenToggle
	default:
		return ""
	}
}

func (i Intent) String() string {
	if tag := i.Tag(); tag != "" {
		return tag
	}
	return "unknown"
}

// Msg is an intent travelling up from whichever component emitted it.
// Raw keeps the original tag so unknown intents can still be logged.
type Msg struct {
	Source string
	Intent Intent
	Raw    string
}

// Ensure Msg implements tea.Msg (compile-time check).
var _ tea.Msg = Msg{}

// Emit returns a command delivering the intent to the program.
func Emit(source string, i Intent) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Intent: i, Raw: i.Tag()}
	}
}

// EmitTag is like Emit for an untrusted tag.
func EmitTag(source, tag string) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Intent: Parse(tag), Raw: tag}
	}
}
