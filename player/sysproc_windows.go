//go:build windows

package player

import (
	"os/exec"
	"syscall"
)

// engineProcAttr starts mpv in a new process group, detached from ctrl+c in the console.
func engineProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP}
}

// killEngine kills mpv unless it already exited.
func killEngine(cmd *exec.Cmd, exited <-chan struct{}) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}

	select {
	case <-exited:
		return nil
	default:
	}

	return cmd.Process.Kill()
}
