package ui

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given an empty notifier", t, func() {
		m := &Model{}

		Convey("View should leave content untouched", func() {
			So(m.View("a\nb"), ShouldEqual, "a\nb")
		})

		Convey("A notification should be appended to the last line", func() {
			cmd := m.Update(Notify("muted")())
			So(cmd, ShouldNotBeNil)
			So(m.Notification(), ShouldEqual, "muted")
			So(m.View("a\nb"), ShouldStartWith, "a\nb  ")
			So(m.View("a\nb"), ShouldContainSubstring, "muted")
		})

		Convey("Only the latest timer should clear", func() {
			m.Update(NotificationMsg("first"))
			stale := ClearNotificationMsg{issuedAt: m.notifiedAt}
			m.notifiedAt = m.notifiedAt.Add(1)
			m.notification = "second"

			m.Update(stale)
			So(m.Notification(), ShouldEqual, "second")

			m.Update(ClearNotificationMsg{issuedAt: m.notifiedAt})
			So(m.Notification(), ShouldBeEmpty)
		})
	})
}
