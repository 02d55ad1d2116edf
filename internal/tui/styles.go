//go:build linux || darwin

package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorWarning = lipgloss.Color("#F59E0B") // Amber
	colorBorder  = lipgloss.Color("#374151") // Dark gray
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	sizeStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)
)
