//go:build linux || darwin

package proc

import (
	"golang.org/x/sys/unix"
)

// Terminate sends a graceful termination request. It never escalates to
// SIGKILL; callers re-check liveness after the grace period instead.
func Terminate(pid int) error {
	return unix.Kill(pid, unix.SIGTERM)
}

// Alive reports whether the process still exists. Signal 0 performs the
// existence check without delivering anything.
func Alive(pid int) bool {
	err := unix.Kill(pid, 0)
	if err == nil {
		return true
	}
	// EPERM means the process exists but belongs to someone else.
	return err == unix.EPERM
}
