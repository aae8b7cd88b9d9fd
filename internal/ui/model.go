// Package ui provides the Charmbracelet TUI framework integration for LeaseGuard.
package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/normanking/leaseguard/internal/prefs"
	"github.com/normanking/leaseguard/internal/session"
)

// Model is the main Bubble Tea model for the LeaseGuard TUI.
// It implements the tea.Model interface and follows Elm Architecture principles.
type Model struct {
	// ═══════════════════════════════════════════════════════════════════════════
	// DIMENSIONS AND LAYOUT
	// ═══════════════════════════════════════════════════════════════════════════

	// width is the current terminal width
	width int

	// height is the current terminal height
	height int

	// ready indicates if the terminal has been sized (initial WindowSizeMsg received)
	ready bool

	// ═══════════════════════════════════════════════════════════════════════════
	// THEME AND STYLES
	// ═══════════════════════════════════════════════════════════════════════════

	// styles contains all lipgloss styles for rendering
	styles Styles

	// prefs persists the dark-mode preference across runs
	prefs *prefs.Store

	// ═══════════════════════════════════════════════════════════════════════════
	// SESSION STATE
	// ═══════════════════════════════════════════════════════════════════════════

	// session holds the document, analysis, transcript and insight state.
	// It is only touched from the update loop.
	session *session.Session

	// showHelp indicates whether the help overlay is displayed
	showHelp bool

	// notice is a transient status line from the last slash command
	notice string

	// ═══════════════════════════════════════════════════════════════════════════
	// BUBBLE TEA COMPONENTS
	// ═══════════════════════════════════════════════════════════════════════════

	// viewport is the scrollable report/chat view area
	viewport viewport.Model

	// input is the text input area
	input textarea.Model

	// spinner is the loading indicator
	spinner spinner.Model

	// help is the help/keybindings component
	help help.Model

	// keys contains the key bindings
	keys KeyMap

	// ═══════════════════════════════════════════════════════════════════════════
	// BACKEND INTERFACE
	// ═══════════════════════════════════════════════════════════════════════════

	// backend is the interface to the analysis service
	backend Backend
}

// Init initializes the model and returns the initial command.
// This implements the tea.Model interface.
func (m Model) Init() tea.Cmd {
	// Start the spinner animation
	return m.spinner.Tick
}

// Update handles messages and updates the model state.
// This implements the tea.Model interface.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Delegate to update.go for the actual implementation
	return update(m, msg)
}

// View renders the model to a string.
// This implements the tea.Model interface.
func (m Model) View() string {
	// Delegate to view.go for the actual implementation
	return view(m)
}

// ═══════════════════════════════════════════════════════════════════════════════
// HELPER METHODS
// ═══════════════════════════════════════════════════════════════════════════════

// Session exposes the session state, primarily for tests.
func (m Model) Session() *session.Session {
	return m.session
}

// DarkMode reports whether the dark palette is active.
func (m Model) DarkMode() bool {
	return m.styles.Theme().Dark
}

// applyTheme rebuilds all styles for the given dark-mode flag.
func (m *Model) applyTheme(dark bool) {
	m.styles = NewStyles(ThemeForMode(dark))
	m.help.Styles.ShortKey = m.styles.Muted
	m.help.Styles.FullKey = m.styles.Muted
}

// refreshReport re-renders the report into the viewport, keeping the
// scroll position pinned to the bottom when new content arrives.
func (m *Model) refreshReport() {
	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(renderReport(*m))
	if atBottom {
		m.viewport.GotoBottom()
	}
}
