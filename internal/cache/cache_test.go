package cache

import (
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/ava-cli/ava/filesystem"
	"github.com/ava-cli/ava/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func exists(path string) bool {
	return lo.Must(filesystem.API().Exists(path))
}

func TestCollectGarbage(t *testing.T) {
	Convey("Given leftovers from earlier sessions", t, func() {
		fs := filesystem.API()

		old := filepath.Join(where.Cache(), "old.json")
		fresh := filepath.Join(where.Cache(), "fresh.json")
		socket := filepath.Join(where.Sockets(), "ava-dead.sock")
		other := filepath.Join(where.Sockets(), "notes.txt")

		for _, path := range []string{old, fresh, socket, other} {
			So(fs.WriteFile(path, []byte("{}"), 0o644), ShouldBeNil)
		}

		stale := time.Now().Add(-TTL - time.Hour)
		So(fs.Chtimes(old, stale, stale), ShouldBeNil)

		CollectGarbage()

		Convey("Expired cache entries should be removed", func() {
			So(exists(old), ShouldBeFalse)
			So(exists(fresh), ShouldBeTrue)
		})

		Convey("Sockets nobody listens on should be removed", func() {
			So(exists(socket), ShouldBeFalse)
			So(exists(other), ShouldBeTrue)
		})
	})
}

func TestAbandoned(t *testing.T) {
	Convey("Given a socket on the OS filesystem", t, func() {
		filesystem.SetOsFs()
		Reset(filesystem.SetMemMapFs)

		path := filepath.Join(t.TempDir(), "ava-live.sock")
		listener, err := net.Listen("unix", path)
		So(err, ShouldBeNil)

		Convey("It should be kept while an engine listens", func() {
			defer listener.Close()
			So(abandoned(path, nil), ShouldBeFalse)
		})

		Convey("It should be abandoned once the engine is gone", func() {
			So(listener.Close(), ShouldBeNil)
			So(abandoned(path, nil), ShouldBeTrue)
		})
	})

	Convey("Given a socket on the in-memory backend", t, func() {
		So(abandoned(filepath.Join(where.Sockets(), "ava-live.sock"), nil), ShouldBeTrue)
	})

	Convey("Files other than sockets are never abandoned", t, func() {
		So(abandoned("notes.txt", nil), ShouldBeFalse)
	})
}
