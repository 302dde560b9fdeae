package constant

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMPVInstallCommands(t *testing.T) {
	Convey("Every supported platform should have an install command for mpv", t, func() {
		for _, platform := range []string{Windows, Darwin, Linux, Android} {
			So(MPVInstallCommands[platform], ShouldContainSubstring, MPV)
		}
	})

	Convey("Unknown platforms should get no suggestion", t, func() {
		So(MPVInstallCommands["plan9"], ShouldBeEmpty)
	})
}
