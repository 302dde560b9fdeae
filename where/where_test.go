package where

import (
	"path/filepath"
	"testing"

	"github.com/ava-cli/ava/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Sockets()", func() {
			path := Sockets()
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			So(filepath.Dir(path), ShouldEqual, Temp())
		})

		Convey("EngineCache() should live in the cache", func() {
			So(filepath.Dir(EngineCache()), ShouldEqual, Cache())
		})
	})

	Convey("Config override", t, func() {
		t.Setenv(EnvConfigPath, "/custom/ava")
		So(Config(), ShouldEqual, "/custom/ava")
	})
}
