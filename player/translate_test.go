package player

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTranslator(t *testing.T) {
	Convey("Given a fresh translator", t, func() {
		var tr translator

		change := func(name string, data interface{}) ipcMessage {
			return ipcMessage{Event: "property-change", Name: name, Data: data}
		}

		Convey("pause=false should become play", func() {
			n, ok := tr.translate(change("pause", false))
			So(ok, ShouldBeTrue)
			So(n.Kind, ShouldEqual, KindPlay)
		})

		Convey("pause=true should become pause", func() {
			n, ok := tr.translate(change("pause", true))
			So(ok, ShouldBeTrue)
			So(n.Kind, ShouldEqual, KindPause)
		})

		Convey("pause without data should be skipped", func() {
			_, ok := tr.translate(change("pause", nil))
			So(ok, ShouldBeFalse)
		})

		Convey("mute should become volumechange carrying the flag", func() {
			n, ok := tr.translate(change("mute", true))
			So(ok, ShouldBeTrue)
			So(n, ShouldResemble, Notification{Kind: KindVolumeChange, Muted: true})

			Convey("and a later volume change should repeat it", func() {
				n, ok := tr.translate(change("volume", 40.0))
				So(ok, ShouldBeTrue)
				So(n, ShouldResemble, Notification{Kind: KindVolumeChange, Muted: true})
			})
		})

		Convey("volume before any mute flag should be skipped", func() {
			_, ok := tr.translate(change("volume", 100.0))
			So(ok, ShouldBeFalse)
		})

		Convey("time-pos should become timeupdate", func() {
			n, ok := tr.translate(change("time-pos", 12.5))
			So(ok, ShouldBeTrue)
			So(n.Kind, ShouldEqual, KindTimeUpdate)
			So(n.Position, ShouldEqual, 12.5)
		})

		Convey("file-loaded should become loadedmetadata", func() {
			n, ok := tr.translate(ipcMessage{Event: "file-loaded"})
			So(ok, ShouldBeTrue)
			So(n.Kind, ShouldEqual, KindLoadedMetadata)
		})

		Convey("end-file", func() {
			Convey("at eof should become ended", func() {
				n, ok := tr.translate(ipcMessage{Event: "end-file", Reason: "eof"})
				So(ok, ShouldBeTrue)
				So(n.Kind, ShouldEqual, KindEnded)
			})

			Convey("with an error should carry a structured error", func() {
				n, ok := tr.translate(ipcMessage{Event: "end-file", Reason: "error", FileError: "loading failed"})
				So(ok, ShouldBeTrue)
				So(n.Kind, ShouldEqual, KindError)
				So(n.Err, ShouldResemble, &PlaybackError{Code: CodeNetwork, Message: "loading failed"})
			})

			Convey("when stopped should be skipped", func() {
				_, ok := tr.translate(ipcMessage{Event: "end-file", Reason: "stop"})
				So(ok, ShouldBeFalse)
			})
		})

		Convey("other events should be skipped", func() {
			_, ok := tr.translate(ipcMessage{Event: "playback-restart"})
			So(ok, ShouldBeFalse)
		})
	})
}

func TestClassifyFileError(t *testing.T) {
	Convey("classifyFileError", t, func() {
		So(classifyFileError("loading failed"), ShouldEqual, CodeNetwork)
		So(classifyFileError("unrecognized file format"), ShouldEqual, CodeSrcNotSupported)
		So(classifyFileError("no audio or video data played"), ShouldEqual, CodeDecode)
		So(classifyFileError(""), ShouldEqual, CodeDecode)
	})
}

func TestPlaybackError(t *testing.T) {
	Convey("PlaybackError", t, func() {
		n := ErrorNotification(CodeDecode, "corrupt frame")
		So(n.Kind, ShouldEqual, KindError)
		So(n.Err.Error(), ShouldEqual, "decode: corrupt frame")
	})
}
