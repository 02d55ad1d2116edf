//go:build linux || darwin

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the confirmation view
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Accept  key.Binding
	Decline key.Binding
	Abort   key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Accept: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "clean"),
		),
		Decline: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "skip"),
		),
		Abort: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "abort"),
		),
	}
}

// ShortHelp returns key bindings for the help line
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Accept, k.Decline, k.Abort}
}

// FullHelp returns key bindings for the full help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Accept, k.Decline, k.Abort},
	}
}
