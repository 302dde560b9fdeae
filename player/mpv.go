package player

import (
	"context"
	"crypto/rand"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/ava-cli/ava/constant"
	"github.com/ava-cli/ava/key"
	"github.com/ava-cli/ava/log"
	"github.com/ava-cli/ava/media"
	"github.com/ava-cli/ava/where"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
	quitGrace         = 3 * time.Second
)

// MPV implements Primitive and Fullscreen using mpv's JSON-IPC protocol.
type MPV struct {
	binary     string
	timeout    time.Duration
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{} // closed when mpv process exits
	listener   *EventListener
	closed     bool
	mu         sync.Mutex // Protects socket writes
	loadMu     sync.Mutex // Serializes Load and Close
	logger     log.Entry
}

var (
	_ Primitive  = (*MPV)(nil)
	_ Fullscreen = (*MPV)(nil)
)

// NewMPV creates a new MPV player instance (does not start playback).
func NewMPV() *MPV {
	m := &MPV{
		binary:     viper.GetString(key.MPVBinary),
		timeout:    time.Duration(viper.GetInt(key.MPVIPCTimeout)) * time.Millisecond,
		socketPath: newSocketPath(),
		exited:     make(chan struct{}),
	}
	m.logger = log.With(log.Fields{log.FieldSocket: m.socketPath})

	if m.binary == "" {
		m.binary = constant.MPV
	}
	if m.timeout <= 0 {
		m.timeout = readDeadline
	}

	return m
}

// newSocketPath picks a socket path unique to this process and instance.
func newSocketPath() string {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		suffix = []byte(fmt.Sprint(time.Now().UnixNano()))
	}
	return filepath.Join(where.Sockets(), fmt.Sprintf("ava-%d-%x.sock", os.Getpid(), suffix))
}

// Load starts mpv on the source and subscribes to its events.
func (m *MPV) Load(ctx context.Context, source media.Source, configuration media.Configuration) error {
	m.loadMu.Lock()
	defer m.loadMu.Unlock()

	if m.closed {
		return fmt.Errorf("mpv player is closed")
	}

	if m.cmd != nil {
		return nil
	}

	if err := source.Validate(); err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	if err := configuration.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Pass only what the host asked for and respect the user's mpv.conf otherwise.
	args := []string{
		"--no-terminal",
		"--really-quiet",
		fmt.Sprintf("--input-ipc-server=%s", m.socketPath),
		"--force-window=yes",
		"--idle=yes",
	}
	args = append(args, media.MPVArgs(source, configuration)...)
	args = append(args, "--", source.Src)

	m.cmd = exec.Command(m.binary, args...)

	m.cmd.SysProcAttr = engineProcAttr()

	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	m.logger.Debugf("starting %s %v", m.binary, args)
	if err := m.cmd.Start(); err != nil {
		m.cmd = nil
		return fmt.Errorf("start mpv: %w", err)
	}

	// Background goroutine to reap the process and prevent zombies
	go func(cmd *exec.Cmd, exited chan struct{}) {
		_ = cmd.Wait()
		close(exited)
	}(m.cmd, m.exited)

	if err := m.waitForSocket(ctx); err != nil {
		m.logger.Warnf("killing mpv: socket never became ready")
		_ = killEngine(m.cmd, m.exited)
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	m.listener = NewEventListener(m.socketPath)
	if err := m.listener.Start(); err != nil {
		_ = killEngine(m.cmd, m.exited)
		return err
	}

	return nil
}

// waitForSocket polls until the mpv IPC socket is accepting connections.
func (m *MPV) waitForSocket(ctx context.Context) error {
	for i := 0; i < socketWaitRetries; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.exited:
			return fmt.Errorf("mpv exited before socket was ready")
		case <-time.After(socketWaitDelay):
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// Notifications implements Primitive.
func (m *MPV) Notifications() <-chan Notification {
	if m.listener == nil {
		closed := make(chan Notification)
		close(closed)
		return closed
	}
	return m.listener.Notifications()
}

// Play implements Primitive.
func (m *MPV) Play() error {
	return m.Set("pause", false)
}

// Pause implements Primitive.
func (m *MPV) Pause() error {
	return m.Set("pause", true)
}

// SetMuted implements Primitive.
func (m *MPV) SetMuted(muted bool) error {
	return m.Set("mute", muted)
}

// Holder implements Fullscreen. The mpv window is the only possible holder.
func (m *MPV) Holder(ctx context.Context) (mo.Option[string], error) {
	data, err := m.sendCommandContext(ctx, []interface{}{"get_property", "fullscreen"})
	if err != nil {
		return mo.None[string](), err
	}

	if full, ok := data.(bool); ok && full {
		return mo.Some(m.socketPath), nil
	}
	return mo.None[string](), nil
}

// Request implements Fullscreen.
func (m *MPV) Request(ctx context.Context) error {
	return m.setFullscreen(ctx, true)
}

// Exit implements Fullscreen.
func (m *MPV) Exit(ctx context.Context) error {
	return m.setFullscreen(ctx, false)
}

func (m *MPV) setFullscreen(ctx context.Context, on bool) error {
	if _, err := m.sendCommandContext(ctx, []interface{}{"set_property", "fullscreen", on}); err != nil {
		return fmt.Errorf("%w: %v", ErrFullscreenDenied, err)
	}
	return nil
}

// sendCommandContext is a single attempt bounded by ctx, for callers that own their deadline.
func (m *MPV) sendCommandContext(ctx context.Context, command []interface{}) (interface{}, error) {
	if m.socketPath == "" {
		return nil, fmt.Errorf("mpv is not running")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}
	return doSendCommand(ctx, m.socketPath, command)
}

// IsRunning reports whether mpv is alive and answering on its socket.
func (m *MPV) IsRunning() bool {
	select {
	case <-m.exited:
		return false
	default:
	}

	_, err := m.sendCommand([]interface{}{"get_property", "pid"})
	return err == nil
}

// Close shuts down the mpv process and cleans up resources. A closed player
// cannot be loaded again.
func (m *MPV) Close() error {
	m.loadMu.Lock()
	defer m.loadMu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	if m.listener != nil {
		m.listener.Stop()
	}

	if m.cmd == nil {
		return nil
	}

	// a responsive mpv is asked to quit, a hung one is killed right away
	if m.IsRunning() {
		_, _ = m.sendCommand([]interface{}{"quit"})

		select {
		case <-m.exited:
		case <-time.After(quitGrace):
			m.logger.Warn("mpv ignored quit, killing it")
		}
	}
	_ = killEngine(m.cmd, m.exited)

	_ = os.Remove(m.socketPath)

	return nil
}

// Set a property
func (m *MPV) Set(property string, value interface{}) error {
	if m.socketPath == "" {
		return fmt.Errorf("mpv is not running")
	}
	_, err := m.sendCommand([]interface{}{"set_property", property, value})
	return err
}
