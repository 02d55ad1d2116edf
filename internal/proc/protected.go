package proc

import (
	"os"
	"path/filepath"
	"strings"
)

// protectedNames are base command names that must never become
// termination targets: kernel and init, display/window servers, the
// login UI, file managers, and terminal/shell families. Config may add
// names on top of these but can never remove one.
var protectedNames = map[string]struct{}{
	"kernel_task":        {},
	"launchd":            {},
	"init":               {},
	"systemd":            {},
	"WindowServer":       {},
	"Xorg":               {},
	"Xwayland":           {},
	"loginwindow":        {},
	"gdm":                {},
	"gdm-session":        {},
	"Finder":             {},
	"Dock":               {},
	"SystemUIServer":     {},
	"ControlCenter":      {},
	"NotificationCenter": {},
	"Terminal":           {},
	"iTerm2":             {},
	"bash":               {},
	"zsh":                {},
	"fish":               {},
	"sh":                 {},
	"tmux":               {},
	"sshd":               {},
}

// Guard decides whether a process may be targeted. Identity checks (the
// tool's own pid and its parent) are resolved once at construction so a
// session sees a stable answer.
type Guard struct {
	names   map[string]struct{}
	selfPID int
	parent  int
}

// NewGuard builds a guard over the built-in protected names plus extra
// names from configuration.
func NewGuard(extra []string) *Guard {
	names := make(map[string]struct{}, len(protectedNames)+len(extra))
	for n := range protectedNames {
		names[n] = struct{}{}
	}
	for _, n := range extra {
		n = strings.TrimSpace(n)
		if n != "" {
			names[n] = struct{}{}
		}
	}
	return &Guard{
		names:   names,
		selfPID: os.Getpid(),
		parent:  os.Getppid(),
	}
}

// Protected reports whether the given pid/command must not be touched.
// Command may be a full path; only the base name is matched.
func (g *Guard) Protected(pid int, command string) bool {
	if pid == g.selfPID || pid == g.parent {
		return true
	}
	_, ok := g.names[filepath.Base(command)]
	return ok
}
