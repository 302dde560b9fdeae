package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ava-cli/ava/media"
	. "github.com/smartystreets/goconvey/convey"
)

// propertyServer answers get_property and set_property for a single mpv
// property and records every value it was asked to set.
type propertyServer struct {
	mu     sync.Mutex
	value  interface{}
	reject string
	sets   []interface{}
}

func (p *propertyServer) handle(conn net.Conn) {
	defer conn.Close()

	r := bufio.NewReader(conn)
	cmd, err := readCommand(r)
	if err != nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.reject != "" {
		fmt.Fprintf(conn, `{"request_id":%d,"error":%q}`+"\n", cmd.RequestID, p.reject)
		return
	}

	switch cmd.Command[0] {
	case "set_property":
		p.sets = append(p.sets, cmd.Command[2])
		p.value = cmd.Command[2]
		fmt.Fprintf(conn, `{"request_id":%d,"error":"success"}`+"\n", cmd.RequestID)
	default:
		fmt.Fprintf(conn, `{"data":%v,"request_id":%d,"error":"success"}`+"\n", p.value, cmd.RequestID)
	}
}

func (p *propertyServer) setValues() []interface{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]interface{}(nil), p.sets...)
}

// attachedMPV is an MPV talking to path without a process of its own.
func attachedMPV(path string) *MPV {
	return &MPV{
		socketPath: path,
		timeout:    time.Second,
		exited:     make(chan struct{}),
	}
}

func TestFullscreenBinding(t *testing.T) {
	Convey("Given mpv in windowed mode", t, func() {
		server := &propertyServer{value: false}
		m := attachedMPV(fakeMPV(t, server.handle))
		ctx := context.Background()

		Convey("Nothing should hold fullscreen", func() {
			holder, err := m.Holder(ctx)
			So(err, ShouldBeNil)
			So(holder.IsAbsent(), ShouldBeTrue)
		})

		Convey("A granted request should set the property", func() {
			So(m.Request(ctx), ShouldBeNil)
			So(server.setValues(), ShouldResemble, []interface{}{true})

			Convey("and make the window the holder", func() {
				holder, err := m.Holder(ctx)
				So(err, ShouldBeNil)
				So(holder.MustGet(), ShouldEqual, m.socketPath)
			})

			Convey("and exit should clear it", func() {
				So(m.Exit(ctx), ShouldBeNil)
				So(server.setValues(), ShouldResemble, []interface{}{true, false})

				holder, err := m.Holder(ctx)
				So(err, ShouldBeNil)
				So(holder.IsPresent(), ShouldBeFalse)
			})
		})
	})

	Convey("Given mpv that refuses the fullscreen property", t, func() {
		server := &propertyServer{value: false, reject: "property unavailable"}
		m := attachedMPV(fakeMPV(t, server.handle))
		ctx := context.Background()

		Convey("Request should be denied", func() {
			err := m.Request(ctx)
			So(errors.Is(err, ErrFullscreenDenied), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "property unavailable")
		})

		Convey("Exit should be denied", func() {
			So(errors.Is(m.Exit(ctx), ErrFullscreenDenied), ShouldBeTrue)
		})

		Convey("Holder should report the failure, not a holder", func() {
			holder, err := m.Holder(ctx)
			So(err, ShouldNotBeNil)
			So(holder.IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("Given no mpv at all", t, func() {
		m := attachedMPV(filepath.Join(t.TempDir(), "gone.sock"))

		Convey("Request should be denied", func() {
			So(errors.Is(m.Request(context.Background()), ErrFullscreenDenied), ShouldBeTrue)
		})
	})
}

func TestLiveness(t *testing.T) {
	Convey("Given mpv answering on its socket", t, func() {
		server := &propertyServer{value: 4242}
		m := attachedMPV(fakeMPV(t, server.handle))

		Convey("It should be running", func() {
			So(m.IsRunning(), ShouldBeTrue)
		})

		Convey("Once the process exited it should not be running", func() {
			close(m.exited)
			So(m.IsRunning(), ShouldBeFalse)
		})
	})

	Convey("Given a socket nobody listens on", t, func() {
		m := attachedMPV(filepath.Join(t.TempDir(), "gone.sock"))
		So(m.IsRunning(), ShouldBeFalse)
	})

	Convey("Given a closed player", t, func() {
		m := NewMPV()
		So(m.Close(), ShouldBeNil)

		Convey("It should refuse to load again", func() {
			err := m.Load(context.Background(), media.Source{Src: "clip.mp4"}, media.Configuration{})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "closed")
		})

		Convey("Closing twice should be harmless", func() {
			So(m.Close(), ShouldBeNil)
		})
	})
}
