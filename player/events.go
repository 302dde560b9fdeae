package player

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/ava-cli/ava/log"
)

// observedProperties are subscribed with observe_property on the event connection.
// mute precedes volume so a volume change always has a known mute flag.
var observedProperties = []string{"pause", "mute", "volume", "time-pos"}

// EventListener turns mpv's event stream into Notifications.
type EventListener struct {
	socketPath string
	conn       net.Conn
	out        chan Notification
	stopCh     chan struct{}
	done       chan struct{}
	mu         sync.Mutex
	listening  bool
	started    bool

	translator translator
	logger     log.Entry
}

// NewEventListener creates a new event listener for the given socket.
func NewEventListener(socketPath string) *EventListener {
	return &EventListener{
		socketPath: socketPath,
		out:        make(chan Notification, 64),
		stopCh:     make(chan struct{}),
		done:       make(chan struct{}),
		logger:     log.With(log.Fields{log.FieldSocket: socketPath}),
	}
}

// Notifications returns the channel notifications are delivered on.
// It is closed when the listener stops.
func (el *EventListener) Notifications() <-chan Notification {
	return el.out
}

// Start connects, subscribes to the observed properties and starts the read loop.
// A listener only ever starts once; later calls are no-ops.
func (el *EventListener) Start() error {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.started {
		return nil
	}

	conn, err := net.Dial("unix", el.socketPath)
	if err != nil {
		return fmt.Errorf("event listener connect: %w", err)
	}

	// Observers are bound to the connection that registered them, so they have
	// to be registered on the one we keep reading from.
	for i, name := range observedProperties {
		if err := writeCommand(conn, nextRequestID(), []interface{}{"observe_property", i + 1, name}); err != nil {
			conn.Close()
			return fmt.Errorf("observe %s: %w", name, err)
		}
	}

	el.conn = conn
	el.listening = true
	el.started = true

	go el.readLoop()

	el.logger.Infof("event listener started, observing %v", observedProperties)
	return nil
}

// Stop terminates the event listener and waits for the read loop to exit.
func (el *EventListener) Stop() {
	el.mu.Lock()
	if !el.listening {
		el.mu.Unlock()
		return
	}
	el.listening = false
	close(el.stopCh)
	if el.conn != nil {
		el.conn.Close()
	}
	el.mu.Unlock()

	<-el.done
}

// readLoop reads newline-delimited JSON from mpv until the connection closes.
func (el *EventListener) readLoop() {
	defer func() {
		el.mu.Lock()
		el.listening = false
		el.mu.Unlock()
		close(el.out)
		close(el.done)
	}()

	reader := bufio.NewReader(el.conn)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			select {
			case <-el.stopCh:
			default:
				if !errors.Is(err, net.ErrClosed) {
					el.logger.Warnf("event listener read error: %v", err)
				}
			}
			return
		}

		n, ok := el.processEvent(line)
		if !ok {
			continue
		}

		select {
		case el.out <- n:
		case <-el.stopCh:
			return
		}
	}
}

// processEvent parses a single line and translates it, skipping replies and noise.
func (el *EventListener) processEvent(line []byte) (Notification, bool) {
	var msg ipcMessage
	if err := json.Unmarshal(line, &msg); err != nil {
		return Notification{}, false
	}

	if msg.Event == "" {
		if msg.Error != "" && msg.Error != "success" {
			el.logger.Warnf("mpv rejected event subscription: %s", msg.Error)
		}
		return Notification{}, false
	}

	return el.translator.translate(msg)
}
