package model

import (
	"fmt"
	"time"
)

// ResourceSnapshot is a point-in-time view of system memory, in bytes.
// UsedBytes and AvailableBytes are derived from the raw page counts:
// used = active + wired + compressed, available = free + inactive.
type ResourceSnapshot struct {
	TotalBytes      uint64
	UsedBytes       uint64
	FreeBytes       uint64
	InactiveBytes   uint64
	WiredBytes      uint64
	CompressedBytes uint64
	AvailableBytes  uint64

	// PressurePercent is the OS-reported memory pressure. nil means the
	// platform did not report one; it is rendered as "unknown", never as 0.
	PressurePercent *int

	Timestamp time.Time
}

// Validate checks the accounting invariant used + available == total.
func (s ResourceSnapshot) Validate() error {
	if s.UsedBytes+s.AvailableBytes != s.TotalBytes {
		return fmt.Errorf("snapshot accounting mismatch: used %d + available %d != total %d",
			s.UsedBytes, s.AvailableBytes, s.TotalBytes)
	}
	return nil
}

// DiskUsage holds filesystem space for the volume a cleanup run targets.
type DiskUsage struct {
	TotalBytes uint64
	FreeBytes  uint64
	UsedBytes  uint64
}
