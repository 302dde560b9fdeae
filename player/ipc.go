package player

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync/atomic"
	"time"
)

// ipcCommand is the JSON structure sent to mpv's IPC socket.
type ipcCommand struct {
	Command   []interface{} `json:"command"`
	RequestID int64         `json:"request_id"`
}

// ipcMessage is any line received from mpv's IPC socket: either a reply
// (request_id + error) or an asynchronous event.
type ipcMessage struct {
	Event     string      `json:"event"`
	Name      string      `json:"name"`
	Data      interface{} `json:"data"`
	Error     string      `json:"error"`
	RequestID int64       `json:"request_id"`
	Reason    string      `json:"reason"`
	FileError string      `json:"file_error"`
}

const (
	maxRetries   = 3
	retryDelay   = 100 * time.Millisecond
	readDeadline = 1 * time.Second
)

var requestSeq atomic.Int64

func nextRequestID() int64 {
	return requestSeq.Add(1)
}

// sendCommand sends a JSON-IPC command to mpv via Unix domain socket.
// It retries transient connection errors and serializes writers.
func (m *MPV) sendCommand(command []interface{}) (interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(retryDelay)
		}

		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		result, err := doSendCommand(ctx, m.socketPath, command)
		cancel()
		if err == nil {
			return result, nil
		}
		var rejected *mpvError
		if errors.As(err, &rejected) {
			// mpv understood and refused the command, retrying won't help
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("ipc command failed after %d attempts: %w", maxRetries, lastErr)
}

// mpvError is a command mpv received and rejected.
type mpvError struct {
	command string
	reason  string
}

func (e *mpvError) Error() string {
	return fmt.Sprintf("mpv error: %s: %s", e.command, e.reason)
}

// doSendCommand performs a single IPC command attempt on a fresh connection.
func doSendCommand(ctx context.Context, socketPath string, command []interface{}) (interface{}, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(readDeadline)
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return nil, fmt.Errorf("set deadline: %w", err)
	}

	id := nextRequestID()
	if err := writeCommand(conn, id, command); err != nil {
		return nil, err
	}

	// mpv broadcasts events to every client, so skip lines until our reply shows up
	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			return nil, fmt.Errorf("read: %w", err)
		}

		var msg ipcMessage
		if err := json.Unmarshal(line, &msg); err != nil {
			return nil, fmt.Errorf("unmarshal: %w", err)
		}

		if msg.Event != "" || msg.RequestID != id {
			continue
		}

		if msg.Error != "" && msg.Error != "success" {
			return nil, &mpvError{command: fmt.Sprint(command[0]), reason: msg.Error}
		}

		return msg.Data, nil
	}
}

// writeCommand marshals a command and writes it as one newline-terminated line.
func writeCommand(conn net.Conn, id int64, command []interface{}) error {
	payload, err := json.Marshal(ipcCommand{Command: command, RequestID: id})
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	if _, err := conn.Write(append(payload, '\n')); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
