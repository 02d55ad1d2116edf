package model

// Status is the outcome of one cleanup action.
type Status int

const (
	StatusSuccess Status = iota
	StatusSkipped
	StatusFailed
	StatusDryRun
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusSkipped:
		return "SKIPPED"
	case StatusFailed:
		return "FAILED"
	case StatusDryRun:
		return "DRY_RUN"
	default:
		return "UNKNOWN"
	}
}

// ActionResult records what happened to one target.
//
// BytesFreed is nonzero only for StatusSuccess on file targets (the
// precomputed tree size) and StatusDryRun (the would-be size).
type ActionResult struct {
	Target     CleanupTarget
	Status     Status
	BytesFreed uint64
	Err        error
}
