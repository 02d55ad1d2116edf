//go:build linux || darwin

package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"memsweep/internal/config"
	"memsweep/internal/execute"
	"memsweep/internal/logging"
	"memsweep/internal/metrics"
	"memsweep/internal/plan"
	"memsweep/internal/proc"
	"memsweep/internal/report"
	"memsweep/internal/tui"
	"memsweep/pkg/model"
)

type pipelineMode int

const (
	modeMemory pipelineMode = iota
	modeDisk
)

// runPipeline is the shared session flow: baseline -> plan -> gate ->
// execute -> final -> report. Only a baseline-collection failure is
// fatal; everything after planning always reaches the report.
func runPipeline(cmd *cobra.Command, mode pipelineMode) error {
	logger := logging.GetLogger("pipeline")

	cfg, err := config.Load()
	if err != nil {
		logger.Warn().Err(err).Msg("config unreadable, using defaults")
	}
	guard := proc.NewGuard(cfg.ExtraProtected)

	session := model.NewSession(flagDryRun)

	baseline, err := metrics.Collect()
	if err != nil {
		return fmt.Errorf("baseline snapshot: %w", err)
	}
	if err := session.SetBaseline(baseline); err != nil {
		return err
	}
	logger.Info().
		Uint64("available", baseline.AvailableBytes).
		Uint64("used", baseline.UsedBytes).
		Msg("baseline collected")

	if mode == modeDisk {
		if du, err := metrics.Disk(homeDir()); err == nil {
			session.DiskBefore = &du
		}
	}

	p := buildPlan(cfg, guard, mode, logger)
	if err := session.SetPlanned(p.Targets()); err != nil {
		return err
	}
	for _, skip := range p.Skips {
		session.Append(skip)
	}

	accepted := confirm(cmd, session, p)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		// Stop first so the close cannot race a delivery.
		signal.Stop(sigCh)
		close(sigCh)
	}()
	go func() {
		if sig, ok := <-sigCh; ok {
			if s, isSys := sig.(syscall.Signal); isSys {
				exitSignal.Store(int32(s))
			}
			cancel()
		}
	}()

	exec := execute.New(execute.Options{
		DryRun:         flagDryRun,
		GracePeriod:    cfg.GracePeriod,
		CommandTimeout: cfg.CommandTimeout,
		Guard:          guard,
		Logger:         logging.GetLogger("execute"),
	})
	exec.Run(ctx, session, accepted)
	if err := session.MarkExecuted(); err != nil {
		return err
	}

	// Final collection degrades gracefully: the baseline is reused and
	// the delta flagged incomplete.
	final, err := metrics.Collect()
	if err != nil {
		logger.Warn().Err(err).Msg("final snapshot unavailable, reusing baseline")
		final = baseline
	}
	if serr := session.SetFinal(final, err != nil); serr != nil {
		return serr
	}

	if mode == modeDisk {
		if du, derr := metrics.Disk(homeDir()); derr == nil {
			session.DiskAfter = &du
		}
	}

	if err := session.MarkReported(); err != nil {
		return err
	}

	color := isatty.IsTerminal(os.Stdout.Fd())
	if flagSummary {
		fmt.Fprint(cmd.OutOrStdout(), report.Render(session, color))
	} else {
		fmt.Fprint(cmd.OutOrStdout(), report.RenderShort(session))
	}

	return nil
}

// buildPlan assembles the deterministic target list for the mode: file
// groups for disk cleanup; purge commands, optional process targets,
// and optional aggressive actions for memory optimization. File groups
// always come before process groups.
func buildPlan(cfg config.Config, guard *proc.Guard, mode pipelineMode, logger zerolog.Logger) plan.Plan {
	if mode == modeDisk {
		return plan.Files(cfg.Categories, logger)
	}

	var p plan.Plan
	p.Groups = append(p.Groups, plan.MemoryCommands())

	if flagQuitApps {
		procs, err := proc.List(cfg.MinProcessBytes, guard)
		if err != nil {
			logger.Warn().Err(err).Msg("process inventory unavailable, skipping process targets")
		} else if group := plan.Processes(procs, cfg.MinProcessBytes); len(group.Targets) > 0 {
			p.Groups = append(p.Groups, group)
		}
	}

	if flagAggressive {
		p.Groups = append(p.Groups, plan.Aggressive())
	}

	return p
}

// confirm runs the per-category gate. Dry-run sessions and --yes accept
// everything; declined categories are recorded as Skipped so the report
// still accounts for them. An abort declines all remaining categories.
func confirm(cmd *cobra.Command, session *model.Session, p plan.Plan) []model.CleanupTarget {
	var accepted []model.CleanupTarget
	aborted := false

	for _, group := range p.Groups {
		decision := tui.DecisionAccept
		switch {
		case flagDryRun || flagYes:
			// gate skipped
		case aborted:
			decision = tui.DecisionDecline
		case isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd()):
			d, err := tui.RunConfirm(group.Category, group.Targets)
			if err != nil {
				d = tui.DecisionDecline
			}
			decision = d
		default:
			decision = tui.Ask(group.Category, group.Targets, cmd.InOrStdin(), cmd.OutOrStdout())
		}

		if decision == tui.DecisionAbort {
			aborted = true
			decision = tui.DecisionDecline
		}

		switch decision {
		case tui.DecisionAccept:
			accepted = append(accepted, group.Targets...)
		case tui.DecisionDecline:
			for _, t := range group.Targets {
				session.Append(model.ActionResult{Target: t, Status: model.StatusSkipped})
			}
		}
	}

	return accepted
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "/"
	}
	return home
}
