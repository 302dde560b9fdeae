// Package ui provides the ephemeral status line used by the player host.
package ui

import (
	"strings"
	"time"

	"github.com/ava-cli/ava/style"
	tea "github.com/charmbracelet/bubbletea"
)

// Lifetime is how long a notification stays on screen.
const Lifetime = 3 * time.Second

// Model holds the notification currently shown, if any.
type Model struct {
	notification string
	notifiedAt   time.Time
}

// NotificationMsg asks the model to show a notification.
type NotificationMsg string

// ClearNotificationMsg clears the notification it was issued for.
type ClearNotificationMsg struct {
	issuedAt time.Time
}

// Notify returns a command that shows text on the status line.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg(text)
	}
}

func clearNotification(issuedAt time.Time) tea.Cmd {
	return tea.Tick(Lifetime, func(time.Time) tea.Msg {
		return ClearNotificationMsg{issuedAt: issuedAt}
	})
}

// Notification returns the text currently shown.
func (m *Model) Notification() string {
	return m.notification
}

// Update handles notification messages and ignores everything else.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		m.notification = string(msg)
		m.notifiedAt = time.Now()
		return clearNotification(m.notifiedAt)
	case ClearNotificationMsg:
		// a newer notification has its own timer
		if msg.issuedAt.Equal(m.notifiedAt) {
			m.notification = ""
		}
	}
	return nil
}

// View appends the notification to the last line of content.
func (m *Model) View(content string) string {
	if m.notification == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + style.Faint(m.notification)
	return strings.Join(lines, "\n")
}
