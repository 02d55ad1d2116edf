// Package account aggregates action outcomes and computes before/after
// deltas. Everything here is a pure function of its inputs.
package account

import "memsweep/pkg/model"

// Summary holds the aggregate view of one session's action log.
type Summary struct {
	// TotalFreed counts bytes from Success results only. Dry-run
	// would-be bytes are reported per line but never accumulate here.
	TotalFreed uint64

	Succeeded int
	Skipped   int
	Failed    int
	DryRun    int
}

// Summarize folds the action log into totals and per-status counts.
func Summarize(actions []model.ActionResult) Summary {
	var s Summary
	for _, a := range actions {
		switch a.Status {
		case model.StatusSuccess:
			s.Succeeded++
			s.TotalFreed += a.BytesFreed
		case model.StatusSkipped:
			s.Skipped++
		case model.StatusFailed:
			s.Failed++
		case model.StatusDryRun:
			s.DryRun++
		}
	}
	return s
}

// ComputeDelta is final available minus baseline available, in bytes.
// Deliberately unclamped: a negative delta means external consumption
// outpaced reclamation during the session window, and is reported as
// an increase in usage rather than floored at zero.
func ComputeDelta(baseline, final model.ResourceSnapshot) int64 {
	return int64(final.AvailableBytes) - int64(baseline.AvailableBytes)
}

// DiskDelta is free-space gained on disk, unclamped like ComputeDelta.
func DiskDelta(before, after model.DiskUsage) int64 {
	return int64(after.FreeBytes) - int64(before.FreeBytes)
}
