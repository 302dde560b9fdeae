package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/ava-cli/ava/internal/ui"
	"github.com/ava-cli/ava/key"
	"github.com/ava-cli/ava/log"
	"github.com/ava-cli/ava/player"
	"github.com/ava-cli/ava/surface"
	"github.com/ava-cli/ava/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

// statefulBubble is the host of a single playback session.
type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	// components
	surface  *surface.Surface
	spinnerC spinner.Model
	helpC    help.Model
	notifier *ui.Model

	position  float64
	lastError *player.PlaybackError

	// commands queued by surface callbacks while a message is processed
	pending []tea.Cmd

	width, height int
	ctx           context.Context
	options       *Options
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// notify queues a status line notification, or prints it when headless.
func (b *statefulBubble) notify(text string) {
	if b.options.Headless {
		fmt.Fprintln(b.options.Output, text)
		return
	}
	b.pending = append(b.pending, ui.Notify(text))
}

// flush returns the queued commands together with cmd.
func (b *statefulBubble) flush(cmd tea.Cmd) tea.Cmd {
	cmds := append(b.pending, cmd)
	b.pending = nil
	return tea.Batch(cmds...)
}

// err is the failure the session ended with, if any.
func (b *statefulBubble) err() error {
	if b.state == errorState && b.lastError != nil {
		return b.lastError
	}
	return nil
}

func (b *statefulBubble) handlers() surface.Handlers {
	return surface.Handlers{
		OnPlay:  func() { b.notify("play") },
		OnPause: func() { b.notify("pause") },
		OnEnded: func() {
			b.setState(endedState)
			b.notify("ended")
		},
		OnError: func(err *player.PlaybackError) {
			b.lastError = err
			// a rejected command leaves playback running
			if err.Code != player.CodeAborted {
				b.setState(errorState)
			}
			b.notify(err.Error())

			// nobody is there to read the error screen
			if b.options.Headless && b.state == errorState {
				log.Errorf("stopping headless session: %v", err)
				b.pending = append(b.pending, tea.Quit)
			}
		},
		OnLoadMetadata: func() {
			if b.state == loadingState {
				b.setState(playingState)
			}
			b.notify("loadedmetadata")
		},
		OnTimeUpdate: func(position float64) {
			b.position = position
		},
		OnVolumeChange: func() {
			if b.surface.State().IsMuted {
				b.notify("volumechange muted")
			} else {
				b.notify("volumechange unmuted")
			}
		},
	}
}

// resize propagates terminal dimension changes to the components.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y
	b.helpC.Width = b.width
}

func newBubble(ctx context.Context, options *Options, engine surface.Engine) *statefulBubble {
	bubble := &statefulBubble{
		ctx:      ctx,
		options:  options,
		notifier: &ui.Model{},
	}

	bubble.surface = surface.New(engine, bubble.handlers())
	bubble.surface.SetOrigin(paddingStyle.GetPaddingLeft(), paddingStyle.GetPaddingTop())
	bubble.keymap = newStatefulKeymap(bubble.surface.Help())

	bubble.helpC = help.New()
	bubble.helpC.ShowAll = false

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	bubble.setState(loadingState)

	if !viper.GetBool(key.TUIShowHelp) {
		bubble.keymap.showHelp.SetEnabled(false)
	}

	if w, h, err := util.TerminalSize(); err == nil && !options.Headless {
		bubble.resize(w, h)
	}

	if options.Output == nil {
		options.Output = io.Discard
	}

	return bubble
}
