// Package ui provides the Charmbracelet TUI framework integration for LeaseGuard.
package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keyboard shortcuts available in the TUI.
// It implements the help.KeyMap interface for automatic help text generation.
type KeyMap struct {
	// ═══════════════════════════════════════════════════════════════════════════
	// CORE ACTIONS
	// ═══════════════════════════════════════════════════════════════════════════

	// Send submits the current input (question or slash command)
	Send key.Binding

	// Quit exits the application
	Quit key.Binding

	// ═══════════════════════════════════════════════════════════════════════════
	// NAVIGATION
	// ═══════════════════════════════════════════════════════════════════════════

	// Up scrolls the report up
	Up key.Binding

	// Down scrolls the report down
	Down key.Binding

	// PageUp scrolls up one page
	PageUp key.Binding

	// PageDown scrolls down one page
	PageDown key.Binding

	// ═══════════════════════════════════════════════════════════════════════════
	// APPLICATION
	// ═══════════════════════════════════════════════════════════════════════════

	// Help toggles the help overlay
	Help key.Binding

	// Theme toggles between the light and dark palettes
	Theme key.Binding

	// NewSession clears the current analysis and starts over
	NewSession key.Binding

	// Close dismisses the help overlay
	Close key.Binding
}

// DefaultKeyMap returns the standard key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Core actions
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "ask / run command"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup/ctrl+u", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn/ctrl+d", "page down"),
		),

		// Application
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "toggle theme"),
		),
		NewSession: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new session"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp returns a slice of key bindings to show in the short help view.
// This implements part of the help.KeyMap interface.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Send,
		k.Help,
		k.Quit,
	}
}

// FullHelp returns a slice of slices of key bindings to show in the full help view.
// This implements part of the help.KeyMap interface.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Column 1: Core actions
		{
			k.Send,
			k.NewSession,
			k.Quit,
		},
		// Column 2: Navigation
		{
			k.Up,
			k.Down,
			k.PageUp,
			k.PageDown,
		},
		// Column 3: Application
		{
			k.Help,
			k.Theme,
			k.Close,
		},
	}
}
