package model

import (
	"fmt"
	"time"
)

// Stage tracks how far a session has progressed. Transitions are strictly
// forward; nothing produced by an earlier stage is mutated by a later one.
type Stage int

const (
	StageCreated Stage = iota
	StageBaselineCollected
	StagePlanned
	StageExecuted
	StageFinalCollected
	StageReported
)

func (s Stage) String() string {
	switch s {
	case StageCreated:
		return "created"
	case StageBaselineCollected:
		return "baseline-collected"
	case StagePlanned:
		return "planned"
	case StageExecuted:
		return "executed"
	case StageFinalCollected:
		return "final-collected"
	case StageReported:
		return "reported"
	default:
		return "unknown"
	}
}

// Session owns everything a single cleanup run produces. It is created
// empty, populated in stage order, and discarded at process exit.
type Session struct {
	Baseline ResourceSnapshot
	Final    ResourceSnapshot

	// DiskBefore/DiskAfter are set by the disk pipeline only.
	DiskBefore *DiskUsage
	DiskAfter  *DiskUsage

	Targets []CleanupTarget
	Actions []ActionResult

	StartTime time.Time
	EndTime   time.Time

	DryRun bool

	// PartialDelta is set when the final snapshot could not be collected
	// and the baseline was reused in its place.
	PartialDelta bool

	// Cancelled is set when an interrupt stopped the executor before it
	// reached the end of the target list.
	Cancelled bool

	stage Stage
}

// NewSession returns an empty session in StageCreated.
func NewSession(dryRun bool) *Session {
	return &Session{
		StartTime: time.Now(),
		DryRun:    dryRun,
	}
}

// Stage returns the current lifecycle stage.
func (s *Session) Stage() Stage {
	return s.stage
}

func (s *Session) advance(from, to Stage) error {
	if s.stage != from {
		return fmt.Errorf("session stage is %s, cannot move to %s", s.stage, to)
	}
	s.stage = to
	return nil
}

// SetBaseline records the baseline snapshot and moves to BaselineCollected.
func (s *Session) SetBaseline(snap ResourceSnapshot) error {
	if err := s.advance(StageCreated, StageBaselineCollected); err != nil {
		return err
	}
	s.Baseline = snap
	return nil
}

// SetPlanned records the ordered target list and moves to Planned.
// Skip results recorded during planning (absent optional paths) may
// already be present in Actions.
func (s *Session) SetPlanned(targets []CleanupTarget) error {
	if err := s.advance(StageBaselineCollected, StagePlanned); err != nil {
		return err
	}
	s.Targets = targets
	return nil
}

// Append adds one action result. The action log is append-only.
func (s *Session) Append(r ActionResult) {
	s.Actions = append(s.Actions, r)
}

// MarkExecuted moves to Executed once the executor has finished (or was
// cancelled between targets).
func (s *Session) MarkExecuted() error {
	return s.advance(StagePlanned, StageExecuted)
}

// SetFinal records the final snapshot. When collection failed, pass the
// baseline with partial=true; the delta is then flagged as incomplete.
func (s *Session) SetFinal(snap ResourceSnapshot, partial bool) error {
	if err := s.advance(StageExecuted, StageFinalCollected); err != nil {
		return err
	}
	s.Final = snap
	s.PartialDelta = partial
	return nil
}

// MarkReported closes the session.
func (s *Session) MarkReported() error {
	if err := s.advance(StageFinalCollected, StageReported); err != nil {
		return err
	}
	s.EndTime = time.Now()
	return nil
}

// Elapsed is the wall-clock duration of the run. Zero until reported.
func (s *Session) Elapsed() time.Duration {
	if s.EndTime.IsZero() {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}
