//go:build linux || darwin

// Package tui implements the interactive per-category confirmation
// gate shown before live execution.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/wrap"

	"memsweep/pkg/model"
)

// ConfirmModel shows one category's planned targets and waits for a
// yes/no/abort answer.
type ConfirmModel struct {
	category string
	targets  []model.CleanupTarget
	viewport viewport.Model
	keys     KeyMap
	help     help.Model
	decision Decision
	width    int
	height   int
	done     bool
}

// NewConfirm builds the confirmation model for one category.
func NewConfirm(category string, targets []model.CleanupTarget) ConfirmModel {
	vp := viewport.New(0, 0)
	m := ConfirmModel{
		category: category,
		targets:  targets,
		viewport: vp,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		decision: DecisionDecline,
	}
	m.viewport.SetContent(m.content())
	return m
}

// Decision returns the user's answer once the program has quit.
func (m ConfirmModel) Decision() Decision {
	return m.decision
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Accept):
			m.decision = DecisionAccept
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Decline):
			m.decision = DecisionDecline
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Abort):
			m.decision = DecisionAbort
			m.done = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width - 6
		if m.viewport.Width < 0 {
			m.viewport.Width = 0
		}
		m.viewport.Height = msg.Height - 7
		if m.viewport.Height < 3 {
			m.viewport.Height = 3
		}
		m.viewport.SetContent(m.content())
	}

	return m, nil
}

func (m ConfirmModel) View() string {
	if m.done {
		return ""
	}

	var total uint64
	for _, t := range m.targets {
		total += t.SizeBytes
	}

	title := titleStyle.Render(fmt.Sprintf("Clean %s?", m.category))
	summary := fmt.Sprintf("%d targets, %s", len(m.targets), sizeStyle.Render(humanize.IBytes(total)))

	return strings.Join([]string{
		title,
		summary,
		panelStyle.Render(m.viewport.View()),
		m.help.View(m.keys),
	}, "\n")
}

func (m ConfirmModel) content() string {
	var b strings.Builder
	for _, t := range m.targets {
		switch t.Kind {
		case model.KindFile:
			fmt.Fprintf(&b, "%s  %s\n", humanize.IBytes(t.SizeBytes), t.Path)
		case model.KindProcess:
			fmt.Fprintf(&b, "pid %d  %s\n", t.PID, t.Label)
		case model.KindCommand:
			fmt.Fprintf(&b, "run: %s\n", strings.Join(t.Argv, " "))
		}
	}
	content := b.String()
	if m.viewport.Width > 0 {
		content = wrap.String(content, m.viewport.Width)
	}
	return content
}

// RunConfirm shows the confirmation view and blocks for the answer.
func RunConfirm(category string, targets []model.CleanupTarget) (Decision, error) {
	p := tea.NewProgram(NewConfirm(category, targets))
	final, err := p.Run()
	if err != nil {
		return DecisionAbort, fmt.Errorf("confirmation ui: %w", err)
	}
	m, ok := final.(ConfirmModel)
	if !ok {
		return DecisionAbort, fmt.Errorf("confirmation ui returned unexpected model")
	}
	return m.Decision(), nil
}
