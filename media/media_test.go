package media

import (
	"strings"
	"testing"

	"github.com/ava-cli/ava/key"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSource(t *testing.T) {
	Convey("Given a default source", t, func() {
		s := DefaultSource("https://example.com/video.mp4")

		Convey("It should carry the default dimensions", func() {
			So(s.Width, ShouldEqual, "100%")
			So(s.Height, ShouldEqual, "auto")
			So(s.Validate(), ShouldBeNil)
		})

		Convey("Title should prefer alt text", func() {
			So(s.Title(), ShouldEqual, "https://example.com/video.mp4")
			s.Alt = "Trailer"
			So(s.Title(), ShouldEqual, "Trailer")
		})
	})

	Convey("Validate", t, func() {
		Convey("Should accept local paths", func() {
			So(DefaultSource("/home/me/clip.mkv").Validate(), ShouldBeNil)
		})

		Convey("Should reject flag-looking sources", func() {
			So(DefaultSource("--script=evil.lua").Validate(), ShouldNotBeNil)
		})

		Convey("Should reject empty sources", func() {
			So(DefaultSource("  ").Validate(), ShouldNotBeNil)
		})

		Convey("Should reject unknown schemes", func() {
			So(DefaultSource("ftp://example.com/a.mp4").Validate(), ShouldNotBeNil)
		})

		Convey("Should reject bad dimensions", func() {
			s := DefaultSource("a.mp4")
			s.Width = "wide"
			So(s.Validate(), ShouldNotBeNil)
			s.Width = "150%"
			So(s.Validate(), ShouldNotBeNil)
		})
	})
}

func TestConfiguration(t *testing.T) {
	Convey("DefaultConfiguration", t, func() {
		viper.Set(key.PlayerMuted, true)
		viper.Set(key.PlayerPreload, "")
		viper.Set(key.PlayerCrossOrigin, "")
		defer viper.Set(key.PlayerMuted, false)

		c, err := DefaultConfiguration()
		So(err, ShouldBeNil)
		So(c.Muted, ShouldBeTrue)
		So(c.Preload.IsAbsent(), ShouldBeTrue)
		So(c.CrossOrigin.IsAbsent(), ShouldBeTrue)

		Convey("Should reject unknown enumerations", func() {
			viper.Set(key.PlayerPreload, "everything")
			defer viper.Set(key.PlayerPreload, "")
			_, err := DefaultConfiguration()
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Setters", t, func() {
		var c Configuration
		So(c.SetPreload("metadata"), ShouldBeNil)
		So(c.Preload.MustGet(), ShouldEqual, PreloadMetadata)
		So(c.SetCrossOrigin("use-credentials"), ShouldBeNil)
		So(c.CrossOrigin.MustGet(), ShouldEqual, CrossOriginUseCredentials)
		So(c.SetCrossOrigin(""), ShouldBeNil)
		So(c.CrossOrigin.IsPresent(), ShouldBeFalse)
		So(c.SetCrossOrigin("same-origin"), ShouldNotBeNil)
	})

	Convey("Validate should catch values set without parsing", t, func() {
		c := Configuration{Preload: mo.Some(Preload("eager"))}
		So(c.Validate(), ShouldNotBeNil)
		So(Configuration{}.Validate(), ShouldBeNil)
	})
}

func TestMPVArgs(t *testing.T) {
	Convey("MPVArgs", t, func() {
		s := DefaultSource("clip.mp4")

		Convey("Defaults should start paused, unmuted and without looping", func() {
			args := MPVArgs(s, Configuration{})
			So(args, ShouldContain, "--force-media-title=clip.mp4")
			So(args, ShouldContain, "--pause=yes")
			So(args, ShouldContain, "--mute=no")
			So(args, ShouldContain, "--osc=no")
			So(args, ShouldContain, "--loop-file=no")
			So(args, ShouldContain, "--autofit=100%")
		})

		Convey("Flags should pass through", func() {
			c := Configuration{Autoplay: true, Loop: true, Muted: true, Controls: true}
			So(c.SetPreload("none"), ShouldBeNil)
			So(c.SetCrossOrigin("anonymous"), ShouldBeNil)

			args := MPVArgs(s, c)
			So(args, ShouldContain, "--pause=no")
			So(args, ShouldContain, "--mute=yes")
			So(args, ShouldContain, "--osc=yes")
			So(args, ShouldContain, "--loop-file=inf")
			So(args, ShouldContain, "--cache=no")
			So(args, ShouldContain, "--cookies=no")
		})

		Convey("Unset enumerations should not emit options", func() {
			for _, arg := range MPVArgs(s, Configuration{}) {
				So(arg, ShouldNotStartWith, "--cache=")
				So(arg, ShouldNotStartWith, "--cookies=")
			}
		})

		Convey("Pixel dimensions should map to geometry", func() {
			s.Width, s.Height = "640", "360px"
			So(MPVArgs(s, Configuration{}), ShouldContain, "--geometry=640x360")
			s.Height = "auto"
			So(MPVArgs(s, Configuration{}), ShouldContain, "--geometry=640")
		})

		Convey("Percentages should map to autofit on either axis", func() {
			s.Width, s.Height = "auto", "50%"
			args := MPVArgs(s, Configuration{})
			So(args, ShouldContain, "--autofit=x50%")
			So(strings.Join(args, " "), ShouldNotContainSubstring, "--geometry")

			s.Width = "80%"
			So(MPVArgs(s, Configuration{}), ShouldContain, "--autofit=80%x50%")
		})

		Convey("Mixed units should keep both dimensions", func() {
			s.Width, s.Height = "640", "50%"
			args := MPVArgs(s, Configuration{})
			So(args, ShouldContain, "--geometry=640")
			So(args, ShouldContain, "--autofit=x50%")
		})

		Convey("Titles should stay on one line", func() {
			s.Alt = "Episode\n1"
			So(MPVArgs(s, Configuration{}), ShouldContain, "--force-media-title=Episode 1")
		})
	})
}
