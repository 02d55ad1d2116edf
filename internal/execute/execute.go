//go:build linux || darwin

// Package execute applies (or simulates) planned cleanup targets.
//
// Failures are isolated per target: a permission error, a vanished
// path, or a stubborn process marks that one result Failed and the
// run moves on. Only an external interrupt stops scheduling, and even
// then everything already aggregated is kept for the report.
package execute

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"

	"memsweep/internal/proc"
	"memsweep/pkg/model"
)

// errStillAlive is recorded when a process survives the grace period.
var errStillAlive = errors.New("process still alive after grace period")

// Options configures an Executor.
type Options struct {
	DryRun         bool
	GracePeriod    time.Duration
	CommandTimeout time.Duration
	Guard          *proc.Guard
	Logger         zerolog.Logger
}

// Executor walks a target list in planned order and appends one
// ActionResult per target to the session.
type Executor struct {
	opts  Options
	sleep func(time.Duration)
}

// New creates an executor. Zero durations get safe defaults.
func New(opts Options) *Executor {
	if opts.GracePeriod <= 0 {
		opts.GracePeriod = 3 * time.Second
	}
	if opts.CommandTimeout <= 0 {
		opts.CommandTimeout = 60 * time.Second
	}
	return &Executor{opts: opts, sleep: time.Sleep}
}

// Run executes every target in order. Cancellation is honored between
// targets, never mid-action: on ctx cancellation the remaining targets
// are not scheduled and the session is flagged Cancelled.
func (e *Executor) Run(ctx context.Context, session *model.Session, targets []model.CleanupTarget) {
	for i, target := range targets {
		select {
		case <-ctx.Done():
			e.opts.Logger.Warn().
				Int("remaining", len(targets)-i).
				Msg("interrupted, skipping remaining targets")
			session.Cancelled = true
			return
		default:
		}

		result := e.apply(ctx, target)
		session.Append(result)

		e.opts.Logger.Debug().
			Str("kind", target.Kind.String()).
			Str("label", target.Label).
			Str("status", result.Status.String()).
			Uint64("bytes", result.BytesFreed).
			Msg("action applied")
	}
}

// apply executes one target. In dry-run mode nothing is mutated,
// whatever the kind.
func (e *Executor) apply(ctx context.Context, target model.CleanupTarget) model.ActionResult {
	if e.opts.DryRun {
		return model.ActionResult{
			Target:     target,
			Status:     model.StatusDryRun,
			BytesFreed: target.SizeBytes,
		}
	}

	switch target.Kind {
	case model.KindFile:
		return e.removeFile(target)
	case model.KindProcess:
		return e.terminate(target)
	case model.KindCommand:
		return e.runCommand(ctx, target)
	default:
		return model.ActionResult{Target: target, Status: model.StatusSkipped}
	}
}

func (e *Executor) removeFile(target model.CleanupTarget) model.ActionResult {
	// A path that vanished between planning and execution is a failure
	// for this target, not for the session.
	if _, err := os.Lstat(target.Path); err != nil {
		return model.ActionResult{Target: target, Status: model.StatusFailed, Err: err}
	}

	if err := os.RemoveAll(target.Path); err != nil {
		return model.ActionResult{Target: target, Status: model.StatusFailed, Err: err}
	}

	return model.ActionResult{
		Target:     target,
		Status:     model.StatusSuccess,
		BytesFreed: target.SizeBytes,
	}
}

// terminate sends SIGTERM and re-checks liveness after the grace
// period. No SIGKILL escalation, no retry: a survivor is Failed.
// A successful exit frees no attributable bytes; the memory effect
// shows up only in the final/baseline delta.
func (e *Executor) terminate(target model.CleanupTarget) model.ActionResult {
	if e.opts.Guard != nil && e.opts.Guard.Protected(target.PID, target.Label) {
		return model.ActionResult{Target: target, Status: model.StatusSkipped}
	}

	if err := proc.Terminate(target.PID); err != nil {
		return model.ActionResult{Target: target, Status: model.StatusFailed, Err: err}
	}

	deadline := time.Now().Add(e.opts.GracePeriod)
	for time.Now().Before(deadline) {
		if !proc.Alive(target.PID) {
			return model.ActionResult{Target: target, Status: model.StatusSuccess}
		}
		e.sleep(100 * time.Millisecond)
	}

	if proc.Alive(target.PID) {
		return model.ActionResult{Target: target, Status: model.StatusFailed, Err: errStillAlive}
	}
	return model.ActionResult{Target: target, Status: model.StatusSuccess}
}

// runCommand executes an external reclamation command with a fixed
// timeout. A deadline hit is the same as any other command failure.
func (e *Executor) runCommand(ctx context.Context, target model.CleanupTarget) model.ActionResult {
	if len(target.Argv) == 0 {
		return model.ActionResult{Target: target, Status: model.StatusSkipped}
	}

	cmdCtx, cancel := context.WithTimeout(ctx, e.opts.CommandTimeout)
	defer cancel()

	if _, err := proc.RunContext(cmdCtx, target.Argv[0], target.Argv[1:]...); err != nil {
		return model.ActionResult{Target: target, Status: model.StatusFailed, Err: err}
	}

	return model.ActionResult{Target: target, Status: model.StatusSuccess}
}
