package config

import (
	"testing"

	"github.com/ava-cli/ava/filesystem"
	"github.com/ava-cli/ava/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
		})

		Convey("Playback defaults should match the documented ones", func() {
			_ = Setup()
			So(viper.GetString(key.PlayerWidth), ShouldEqual, "100%")
			So(viper.GetString(key.PlayerHeight), ShouldEqual, "auto")
			So(viper.GetString(key.PlayerCrossOrigin), ShouldBeEmpty)
			So(viper.GetBool(key.PlayerMuted), ShouldBeFalse)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("player.plays_inline")
			So(result, ShouldEqual, "player_plays_inline")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.PlayerAutoplay]

		Convey("Env should carry the application prefix", func() {
			So(field.Env(), ShouldEqual, "AVA_PLAYER_AUTOPLAY")
		})

		Convey("Type name should follow the default value", func() {
			So(field.typeName(), ShouldEqual, "bool")
			timeout := Default[key.MPVIPCTimeout]
			So(timeout.typeName(), ShouldEqual, "int")
		})

		Convey("plays_inline should be documented as ignored", func() {
			So(Default[key.PlayerPlaysInline].Description, ShouldContainSubstring, "ignores")
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given keys limited to a fixed set", t, func() {
		Convey("Accepted values should pass", func() {
			So(Validate(key.PlayerPreload, "metadata"), ShouldBeNil)
			So(Validate(key.PlayerCrossOrigin, ""), ShouldBeNil)
			So(Validate(key.IconsVariant, "squares"), ShouldBeNil)
		})

		Convey("Other values should be rejected with the choices", func() {
			err := Validate(key.PlayerCrossOrigin, "credentials")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "anonymous, use-credentials")
		})

		Convey("Choices should list the accepted values", func() {
			c, ok := Choices(key.LogsLevel)
			So(ok, ShouldBeTrue)
			So(c, ShouldContain, "debug")
		})
	})

	Convey("Free-form keys should accept anything", t, func() {
		So(Validate(key.MPVBinary, "/opt/mpv/bin/mpv"), ShouldBeNil)
		_, ok := Choices(key.MPVBinary)
		So(ok, ShouldBeFalse)
	})
}
