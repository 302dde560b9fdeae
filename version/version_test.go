package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		So(must(Compare("1.2.3", "1.2.3")), ShouldEqual, 0)
		So(must(Compare("v0.35.1", "0.17.0")), ShouldEqual, 1)
		So(must(Compare("0.16.9", "0.17.0")), ShouldEqual, -1)

		Convey("Should ignore build suffixes", func() {
			So(must(Compare("0.38.0-417-g1d4f8a2", "0.38.0")), ShouldEqual, 0)
			So(must(Compare("0.38.0-dirty", "0.37.9")), ShouldEqual, 1)
		})

		Convey("Minor versions should outweigh patch versions", func() {
			So(must(Compare("0.18.0", "0.17.9")), ShouldEqual, 1)
		})

		Convey("Should fail on garbage", func() {
			_, err := Compare("latest", "0.17.0")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParseEngineVersion(t *testing.T) {
	Convey("ParseEngineVersion", t, func() {
		Convey("Should read release builds", func() {
			v, err := ParseEngineVersion("mpv 0.35.1 Copyright © 2000-2023 mpv/MPlayer/mplayer2 projects")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "0.35.1")
		})

		Convey("Should read git builds", func() {
			v, err := ParseEngineVersion("mpv v0.38.0-417-g1d4f8a2 Copyright © 2000-2024 mpv/MPlayer/mplayer2 projects\n built on ...")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "0.38.0")
		})

		Convey("Should reject other output", func() {
			_, err := ParseEngineVersion("vlc 3.0.20")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSupported(t *testing.T) {
	Convey("Supported", t, func() {
		So(Supported("0.35.1"), ShouldBeTrue)
		So(Supported("0.17.0"), ShouldBeTrue)
		So(Supported("0.16.0"), ShouldBeFalse)
		So(Supported("nope"), ShouldBeFalse)
	})
}

func must(v int, _ error) int { return v }
