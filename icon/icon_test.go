package icon

import (
	"testing"

	"github.com/ava-cli/ava/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given a registered icon", t, func() {
		target := Play

		Convey("It renders correctly for each variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.IconsVariant, variant)
					result := Get(target)
					So(result, ShouldNotBeEmpty)
				})
			}
		})

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			result := Get(target)
			So(result, ShouldBeEmpty)
		})
	})

	Convey("Given an unregistered icon", t, func() {
		viper.Set(key.IconsVariant, string(Plain))
		So(Get(Icon("scrub")), ShouldBeEmpty)
	})
}

func TestLookup(t *testing.T) {
	Convey("Lookup", t, func() {
		Convey("Should resolve canonical ids", func() {
			i, ok := Lookup("pause")
			So(ok, ShouldBeTrue)
			So(i, ShouldEqual, Pause)
		})

		Convey("Should resolve aliases", func() {
			for alias, want := range map[string]Icon{
				"volume-high":      VolumeOn,
				"volume-muted":     VolumeMute,
				"fullscreen-open":  Fullscreen,
				"fullscreen-close": FullscreenExit,
			} {
				i, ok := Lookup(alias)
				So(ok, ShouldBeTrue)
				So(i, ShouldEqual, want)
			}
		})

		Convey("Should resolve the placeholders", func() {
			_, ok := Lookup("captions")
			So(ok, ShouldBeTrue)
			_, ok = Lookup("mini-player")
			So(ok, ShouldBeTrue)
		})

		Convey("Should reject unknown ids", func() {
			_, ok := Lookup("scrub")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestResolve(t *testing.T) {
	Convey("Given the plain variant", t, func() {
		viper.Set(key.IconsVariant, string(Plain))

		Convey("Aliases should render like their canonical icon", func() {
			glyph, ok := Resolve("volume-muted")
			So(ok, ShouldBeTrue)
			So(glyph, ShouldEqual, Get(VolumeMute))
			So(glyph, ShouldEqual, "mute")
		})

		Convey("Unknown ids should not resolve", func() {
			_, ok := Resolve("scrub")
			So(ok, ShouldBeFalse)
		})

		Convey("IDs should be sorted and canonical", func() {
			ids := IDs()
			So(ids, ShouldContain, FullscreenExit)
			So(ids, ShouldNotContain, Icon("fullscreen-close"))
			for i := 1; i < len(ids); i++ {
				So(ids[i-1] < ids[i], ShouldBeTrue)
			}
		})
	})
}
