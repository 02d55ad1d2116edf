package model

// TargetKind says what a CleanupTarget points at.
type TargetKind int

const (
	// KindFile targets a filesystem path (file or directory tree).
	KindFile TargetKind = iota
	// KindProcess targets a running process by pid.
	KindProcess
	// KindCommand targets an external reclamation command (purge,
	// cache flush).
	KindCommand
)

func (k TargetKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindProcess:
		return "process"
	case KindCommand:
		return "command"
	default:
		return "unknown"
	}
}

// CleanupTarget is a single planned reclamation action. Targets are
// created during planning and never mutated afterwards.
type CleanupTarget struct {
	Kind TargetKind

	// Path is set for KindFile.
	Path string
	// PID is set for KindProcess.
	PID int
	// Argv is set for KindCommand.
	Argv []string

	// SizeBytes is the recursively-summed on-disk size for KindFile.
	// Zero for processes and commands: their effect is only visible in
	// the baseline/final snapshot delta.
	SizeBytes uint64

	Label string
}
