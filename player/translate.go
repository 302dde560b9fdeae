package player

import "strings"

// translator maps raw mpv events to Notifications. It keeps the last mute
// flag so volume changes can report it without a round trip.
type translator struct {
	muted      bool
	mutedKnown bool
}

func (t *translator) translate(msg ipcMessage) (Notification, bool) {
	switch msg.Event {
	case "property-change":
		return t.property(msg.Name, msg.Data)
	case "file-loaded":
		return Notification{Kind: KindLoadedMetadata}, true
	case "end-file":
		switch msg.Reason {
		case "eof":
			return Notification{Kind: KindEnded}, true
		case "error":
			return ErrorNotification(classifyFileError(msg.FileError), msg.FileError), true
		}
	}
	return Notification{}, false
}

func (t *translator) property(name string, data interface{}) (Notification, bool) {
	switch name {
	case "pause":
		paused, ok := data.(bool)
		if !ok {
			return Notification{}, false
		}
		if paused {
			return Notification{Kind: KindPause}, true
		}
		return Notification{Kind: KindPlay}, true
	case "mute":
		muted, ok := data.(bool)
		if !ok {
			return Notification{}, false
		}
		t.muted, t.mutedKnown = muted, true
		return Notification{Kind: KindVolumeChange, Muted: muted}, true
	case "volume":
		if _, ok := data.(float64); !ok || !t.mutedKnown {
			return Notification{}, false
		}
		return Notification{Kind: KindVolumeChange, Muted: t.muted}, true
	case "time-pos":
		pos, ok := data.(float64)
		if !ok {
			return Notification{}, false
		}
		return Notification{Kind: KindTimeUpdate, Position: pos}, true
	}
	return Notification{}, false
}

// classifyFileError maps mpv's file_error strings onto media error codes.
func classifyFileError(fileError string) MediaErrorCode {
	switch e := strings.ToLower(fileError); {
	case strings.Contains(e, "loading failed"), strings.Contains(e, "network"):
		return CodeNetwork
	case strings.Contains(e, "unrecognized file format"), strings.Contains(e, "unsupported"):
		return CodeSrcNotSupported
	case strings.Contains(e, "aborted"):
		return CodeAborted
	default:
		return CodeDecode
	}
}
