// Package report renders a completed session into the human-readable
// before/after summary. Rendering is a pure function of the session
// value: the same session renders identically no matter how often it
// is asked for.
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"memsweep/internal/account"
	"memsweep/pkg/model"
)

// Render produces the full structured summary: baseline and final
// snapshots, per-action status lines, totals, delta, and elapsed time.
func Render(s *model.Session, colorEnabled bool) string {
	var b strings.Builder
	sum := account.Summarize(s.Actions)
	st := newStyles(colorEnabled)

	mode := "live"
	if s.DryRun {
		mode = "dry-run"
	}
	fmt.Fprintf(&b, "%s\n\n", st.title.Render("memsweep session ("+mode+")"))

	renderSnapshot(&b, "Baseline", s.Baseline)
	renderSnapshot(&b, "Final", s.Final)

	if s.DiskBefore != nil && s.DiskAfter != nil {
		fmt.Fprintf(&b, "Disk free: %s -> %s\n\n",
			humanize.IBytes(s.DiskBefore.FreeBytes), humanize.IBytes(s.DiskAfter.FreeBytes))
	}

	if len(s.Actions) > 0 {
		tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		for _, a := range s.Actions {
			fmt.Fprintf(tw, " %s\t| %s\t| %s\n",
				st.status(a.Status), a.Target.Label, humanize.IBytes(a.BytesFreed))
		}
		tw.Flush()
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Actions: %d succeeded, %d skipped, %d failed, %d dry-run\n",
		sum.Succeeded, sum.Skipped, sum.Failed, sum.DryRun)
	fmt.Fprintf(&b, "Total freed on disk: %s\n", humanize.IBytes(sum.TotalFreed))

	b.WriteString(deltaLine(s))
	if s.Cancelled {
		b.WriteString("Session interrupted; remaining targets were not executed.\n")
	}
	fmt.Fprintf(&b, "Elapsed: %s\n", s.Elapsed().Round(10*time.Millisecond))

	return b.String()
}

// RenderShort is the one-line result used when --summary is off.
func RenderShort(s *model.Session) string {
	sum := account.Summarize(s.Actions)
	if s.DryRun {
		total, n := dryRunTotals(s.Actions)
		return fmt.Sprintf("dry-run: %d targets, %s would be freed on disk\n",
			n, humanize.IBytes(total))
	}
	delta := account.ComputeDelta(s.Baseline, s.Final)
	return fmt.Sprintf("%s freed on disk, memory delta %s (%d succeeded, %d failed)\n",
		humanize.IBytes(sum.TotalFreed), signedBytes(delta), sum.Succeeded, sum.Failed)
}

// deltaLine words the memory delta: freed when positive, an increase in
// usage when negative. Never clamped.
func deltaLine(s *model.Session) string {
	delta := account.ComputeDelta(s.Baseline, s.Final)
	suffix := ""
	if s.PartialDelta {
		suffix = " (incomplete: final snapshot unavailable, baseline reused)"
	}

	switch {
	case delta >= 0:
		return fmt.Sprintf("Memory freed: %s%s\n", humanize.IBytes(uint64(delta)), suffix)
	default:
		return fmt.Sprintf("Memory usage increased by %s during the run%s\n",
			humanize.IBytes(uint64(-delta)), suffix)
	}
}

func renderSnapshot(b *strings.Builder, label string, snap model.ResourceSnapshot) {
	pressure := "unknown"
	if snap.PressurePercent != nil {
		pressure = fmt.Sprintf("%d%%", *snap.PressurePercent)
	}
	fmt.Fprintf(b, "%s: total %s, used %s, available %s (free %s, inactive %s, wired %s, compressed %s), pressure %s\n",
		label,
		humanize.IBytes(snap.TotalBytes),
		humanize.IBytes(snap.UsedBytes),
		humanize.IBytes(snap.AvailableBytes),
		humanize.IBytes(snap.FreeBytes),
		humanize.IBytes(snap.InactiveBytes),
		humanize.IBytes(snap.WiredBytes),
		humanize.IBytes(snap.CompressedBytes),
		pressure)
}

func signedBytes(delta int64) string {
	if delta < 0 {
		return "-" + humanize.IBytes(uint64(-delta))
	}
	return "+" + humanize.IBytes(uint64(delta))
}

// dryRunTotals counts DryRun results only; planning-time skips in the
// action log are not targets.
func dryRunTotals(actions []model.ActionResult) (total uint64, count int) {
	for _, a := range actions {
		if a.Status == model.StatusDryRun {
			total += a.BytesFreed
			count++
		}
	}
	return total, count
}
