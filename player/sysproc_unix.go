//go:build !windows

package player

import (
	"os/exec"
	"syscall"
)

// engineProcAttr puts mpv in its own process group so a terminal signal
// aimed at ava does not reach it, and killEngine can take its children too.
func engineProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}

// killEngine kills mpv and its process group unless it already exited.
func killEngine(cmd *exec.Cmd, exited <-chan struct{}) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}

	select {
	case <-exited:
		return nil
	default:
	}

	_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	return cmd.Process.Kill()
}
