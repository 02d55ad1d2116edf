package model

// Process is one row of the process inventory.
type Process struct {
	PID           int
	PPID          int
	ResidentBytes uint64
	Command       string

	// Protected marks processes that must never become termination targets:
	// members of the protected-name set, the tool itself, and its parent.
	Protected bool
}
