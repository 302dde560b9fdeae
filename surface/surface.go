// Package surface owns the playback engine and reconciles user intents, engine
// notifications and the snapshot shown by the control bar.
//
// State only moves on confirmation: play, pause and mute follow engine
// notifications, fullscreen follows the completion of the request. Intents
// issue commands and nothing else.
package surface

import (
	"context"

	"github.com/ava-cli/ava/controlbar"
	"github.com/ava-cli/ava/intent"
	"github.com/ava-cli/ava/log"
	"github.com/ava-cli/ava/media"
	"github.com/ava-cli/ava/player"
	"github.com/ava-cli/ava/style"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// State is the last confirmed state of the engine and the fullscreen subsystem.
// The three axes are independent.
type State struct {
	IsPlaying    bool
	IsMuted      bool
	IsFullscreen bool
}

// Engine creates the engine and fullscreen subsystem for one attachment.
// An engine is closed on Detach and never reused, so every Attach asks for a new one.
type Engine func() (player.Primitive, player.Fullscreen)

// Surface is the single authority over playback state.
type Surface struct {
	engine     Engine
	primitive  player.Primitive
	fullscreen player.Fullscreen
	handlers   Handlers

	bar    controlbar.Model
	state  State
	source media.Source

	attached          bool
	generation        uint64
	fullscreenPending bool

	ctx    context.Context
	cancel context.CancelFunc

	subscribers []func(controlbar.Snapshot)
	published   controlbar.Snapshot

	originX, originY int

	logger log.Entry
}

// New creates a detached surface. The engine is created on Attach.
func New(engine Engine, handlers Handlers) *Surface {
	return &Surface{
		engine:   engine,
		handlers: handlers,
		bar:      controlbar.New(),
		ctx:      context.Background(),
		cancel:   func() {},
	}
}

// State returns the current confirmed state.
func (s *Surface) State() State {
	return s.state
}

// Snapshot returns the state subset handed to the control bar.
func (s *Surface) Snapshot() controlbar.Snapshot {
	return controlbar.Snapshot(s.state)
}

// Attached reports whether the surface currently owns a live engine.
func (s *Surface) Attached() bool {
	return s.attached
}

// FullscreenPending reports whether a fullscreen transition awaits its completion.
func (s *Surface) FullscreenPending() bool {
	return s.fullscreenPending
}

// Subscribe registers an observer called with the new snapshot whenever a
// processed message changed it. Several changes within one message produce a
// single call.
func (s *Surface) Subscribe(f func(controlbar.Snapshot)) {
	s.subscribers = append(s.subscribers, f)
}

// Attach creates an engine and binds it to the source and configuration. It is
// a no-op while attached. Changing the source is a Detach followed by an Attach.
// Load failures are reported as error notifications, never returned.
func (s *Surface) Attach(ctx context.Context, source media.Source, configuration media.Configuration) tea.Cmd {
	if s.attached {
		return nil
	}

	s.primitive, s.fullscreen = s.engine()
	s.attached = true
	s.generation++
	s.logger = log.With(log.Fields{log.FieldAttachment: s.generation, log.FieldSource: source.Src})
	s.fullscreenPending = false
	s.source = source
	s.state = State{IsMuted: configuration.Muted}
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.publish()
	s.placeBar()

	gen, primitive, attachCtx := s.generation, s.primitive, s.ctx
	s.logger.Info("attaching")

	return func() tea.Msg {
		if err := primitive.Load(attachCtx, source, configuration); err != nil {
			return loadFailedMsg{gen: gen, err: err}
		}
		return loadedMsg{gen: gen}
	}
}

// Detach closes the engine. Pending results of this attachment are discarded
// when they arrive and no further commands are issued.
func (s *Surface) Detach() {
	if !s.attached {
		return
	}

	s.attached = false
	s.fullscreenPending = false
	s.cancel()

	if err := s.primitive.Close(); err != nil {
		s.logger.Warnf("closing engine: %v", err)
	}
	s.logger.Info("detached")
}

// current reports whether a message issued for gen still applies.
func (s *Surface) current(gen uint64) bool {
	return s.attached && gen == s.generation
}

// listen waits for the next engine notification. Only one listen is ever
// outstanding per attachment, which keeps notifications in delivery order.
func (s *Surface) listen() tea.Cmd {
	gen, ch := s.generation, s.primitive.Notifications()
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return engineClosedMsg{gen: gen}
		}
		return notificationMsg{gen: gen, n: n}
	}
}

// Update processes a message and returns follow-up commands.
func (s *Surface) Update(msg tea.Msg) tea.Cmd {
	cmd := s.update(msg)
	s.publish()
	return cmd
}

func (s *Surface) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case intent.Msg:
		if msg.Intent == intent.Unknown {
			s.logger.Debugf("ignoring unknown intent %q from %s", msg.Raw, msg.Source)
			return nil
		}
		return s.HandleIntent(msg.Intent)
	case tea.KeyMsg, tea.MouseMsg:
		var cmd tea.Cmd
		s.bar, cmd = s.bar.Update(msg)
		return cmd
	case loadedMsg:
		if !s.current(msg.gen) {
			return nil
		}
		return s.listen()
	case loadFailedMsg:
		if !s.current(msg.gen) {
			return nil
		}
		s.logger.Errorf("engine failed to load: %v", msg.err)
		s.OnNotification(player.ErrorNotification(player.CodeLaunch, msg.err.Error()))
		return nil
	case notificationMsg:
		if !s.current(msg.gen) {
			return nil
		}
		s.OnNotification(msg.n)
		return s.listen()
	case engineClosedMsg:
		if !s.current(msg.gen) {
			return nil
		}
		s.logger.Info("engine closed")
		return func() tea.Msg { return ClosedMsg{} }
	case fullscreenDoneMsg:
		s.onFullscreenDone(msg)
		return nil
	case commandFailedMsg:
		if !s.current(msg.gen) {
			return nil
		}
		s.logger.Warnf("engine command %s failed: %v", msg.op, msg.err)
		if s.handlers.OnError != nil {
			s.handlers.OnError(&player.PlaybackError{Code: player.CodeAborted, Message: msg.op + ": " + msg.err.Error()})
		}
		return nil
	}

	return nil
}

// publish hands a changed snapshot to the bar and the subscribers.
func (s *Surface) publish() {
	snapshot := s.Snapshot()
	if snapshot == s.published {
		return
	}
	s.published = snapshot
	s.bar.SetSnapshot(snapshot)

	for _, f := range s.subscribers {
		f(snapshot)
	}
}

// SetOrigin places the surface on screen so clicks reach the right button.
func (s *Surface) SetOrigin(x, y int) {
	s.originX, s.originY = x, y
	s.placeBar()
}

// placeBar moves the bar below the header, whose height depends on the source.
func (s *Surface) placeBar() {
	s.bar.SetOrigin(s.originX, s.originY+lipgloss.Height(s.header()))
}

// Help exposes the bar's key bindings.
func (s *Surface) Help() controlbar.KeyMap {
	return s.bar.KeyMap
}

func (s *Surface) header() string {
	lines := []string{style.Title(s.source.Title())}
	if s.source.Poster != "" {
		lines = append(lines, style.Faint("poster "+s.source.Poster))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// View renders the title and the control bar.
func (s *Surface) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, s.header(), s.bar.View())
}
