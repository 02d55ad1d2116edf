//go:build linux || darwin

// Package app wires the CLI: command tree, flags, logging setup, and
// the shared reclamation pipeline behind the memory and disk commands.
package app

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/spf13/cobra"

	"memsweep/internal/logging"
)

// Populated at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
)

var (
	flagYes        bool
	flagVerbosity  int
	flagDryRun     bool
	flagSummary    bool
	flagAggressive bool
	flagQuitApps   bool
)

var rootCmd = &cobra.Command{
	Use:     "memsweep",
	Short:   "Reclaim memory and disk space",
	Version: version,
	Long: `memsweep takes a resource snapshot, plans reclaimable targets
(cache paths and oversized processes), applies them behind a dry-run and
confirmation gate, and reports an exact before/after accounting.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(flagVerbosity)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Free up memory",
	Long: `Run the memory-optimization pipeline: purge reclaimable memory and,
with --quit-apps, terminate non-protected processes above the size
threshold. The before/after memory delta is verified from snapshots.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline(cmd, modeMemory)
	},
}

var diskCmd = &cobra.Command{
	Use:   "disk",
	Short: "Free up disk space",
	Long: `Run the disk-cleanup pipeline: remove configured cache, log, and
trash paths, with exact byte accounting per target.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline(cmd, modeDisk)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "memsweep version %s (commit %s)\n", version, commit)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flagYes, "yes", "y", false, "skip per-category confirmation")
	pf.CountVarP(&flagVerbosity, "verbose", "v", "increase verbosity (-v info, -vv debug)")
	pf.BoolVarP(&flagDryRun, "dry-run", "d", false, "report would-be effects without mutating anything")
	pf.BoolVarP(&flagSummary, "summary", "s", false, "render the full session report instead of one line")
	pf.BoolVarP(&flagAggressive, "aggressive", "a", false, "enable riskier service actions outside the core set")
	pf.BoolVarP(&flagQuitApps, "quit-apps", "q", false, "plan termination targets for oversized processes")

	rootCmd.AddCommand(memoryCmd)
	rootCmd.AddCommand(diskCmd)
	rootCmd.AddCommand(versionCmd)
}

// exitSignal records an interrupt so Execute can exit 128+signal after
// the report is out. Atomic: the signal watcher stores from its own
// goroutine, and the signal can land at any point of the run, not just
// where the executor checks the context.
var exitSignal atomic.Int32

// Execute runs the CLI and returns the process exit code: 0 on normal
// completion (including dry-run and per-target failures), 1 on fatal
// errors, 130/143 after an interrupt or terminate.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if sig := exitSignal.Load(); sig != 0 {
		return 128 + int(sig)
	}
	return 0
}
