//go:build linux || darwin

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"memsweep/pkg/model"
)

func confirmTargets() []model.CleanupTarget {
	return []model.CleanupTarget{
		{Kind: model.KindFile, Path: "/tmp/cache", SizeBytes: 2048, Label: "caches: /tmp/cache"},
	}
}

func TestConfirmKeyDecisions(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Decision
	}{
		{"y accepts", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, DecisionAccept},
		{"enter accepts", tea.KeyMsg{Type: tea.KeyEnter}, DecisionAccept},
		{"n declines", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, DecisionDecline},
		{"esc declines", tea.KeyMsg{Type: tea.KeyEsc}, DecisionDecline},
		{"q aborts", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, DecisionAbort},
		{"ctrl+c aborts", tea.KeyMsg{Type: tea.KeyCtrlC}, DecisionAbort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewConfirm("user caches", confirmTargets())
			updated, cmd := m.Update(tt.msg)
			got := updated.(ConfirmModel)

			if got.Decision() != tt.want {
				t.Errorf("decision = %d, want %d", got.Decision(), tt.want)
			}
			if cmd == nil {
				t.Error("a decision key must quit the program")
			}
		})
	}
}

func TestConfirmViewShowsBindings(t *testing.T) {
	m := NewConfirm("user caches", confirmTargets())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	view := updated.(ConfirmModel).View()

	if !strings.Contains(view, "Clean user caches?") {
		t.Errorf("view missing title: %q", view)
	}
	// The help line is generated from the key map, so every binding's
	// help text must show up.
	for _, want := range []string{"clean", "skip", "abort"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q binding help", want)
		}
	}
}
