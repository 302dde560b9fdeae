package tui

import (
	"github.com/ava-cli/ava/internal/ui"
	"github.com/ava-cli/ava/log"
	"github.com/ava-cli/ava/surface"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Init attaches the surface and starts the loading indicator.
func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(
		b.surface.Attach(b.ctx, b.options.Source, b.options.Configuration),
		b.spinnerC.Tick,
	)
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keymap.forceQuit), key.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case key.Matches(msg, b.keymap.showHelp):
			b.helpC.ShowAll = !b.helpC.ShowAll
			return b, nil
		}
	case surface.ClosedMsg:
		log.Info("engine exited, quitting")
		return b, tea.Quit
	case spinner.TickMsg:
		if b.state != loadingState {
			return b, nil
		}
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, cmd
	case ui.NotificationMsg, ui.ClearNotificationMsg:
		return b, b.notifier.Update(msg)
	}

	return b, b.flush(b.surface.Update(msg))
}
