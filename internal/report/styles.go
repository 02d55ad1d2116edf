package report

import (
	"github.com/charmbracelet/lipgloss"

	"memsweep/pkg/model"
)

type styles struct {
	enabled bool
	title   lipgloss.Style
	success lipgloss.Style
	skipped lipgloss.Style
	failed  lipgloss.Style
	dryRun  lipgloss.Style
}

func newStyles(enabled bool) styles {
	st := styles{enabled: enabled}
	if !enabled {
		return st
	}
	st.title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	st.success = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	st.skipped = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	st.failed = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	st.dryRun = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	return st
}

// status renders a status tag, colored when enabled. The uncolored form
// is what equality checks and tests see.
func (st styles) status(s model.Status) string {
	if !st.enabled {
		return s.String()
	}
	switch s {
	case model.StatusSuccess:
		return st.success.Render(s.String())
	case model.StatusSkipped:
		return st.skipped.Render(s.String())
	case model.StatusFailed:
		return st.failed.Render(s.String())
	case model.StatusDryRun:
		return st.dryRun.Render(s.String())
	default:
		return s.String()
	}
}
