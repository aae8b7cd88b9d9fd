// Package ui provides the Charmbracelet TUI framework integration for LeaseGuard.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/normanking/leaseguard/internal/prefs"
	"github.com/normanking/leaseguard/internal/session"
)

// ═══════════════════════════════════════════════════════════════════════════════
// APPLICATION CONFIGURATION
// ═══════════════════════════════════════════════════════════════════════════════

// Config holds configuration options for initializing the TUI.
type Config struct {
	// Backend is the interface to the analysis service
	Backend Backend

	// Prefs is the persistent dark-mode preference store.
	// When nil, a store at the default path is used.
	Prefs *prefs.Store

	// InitialDocument, when non-empty, is selected for analysis on startup
	InitialDocument string

	// EnableMouseSupport enables mouse interactions
	EnableMouseSupport bool
}

// ═══════════════════════════════════════════════════════════════════════════════
// APPLICATION INITIALIZATION
// ═══════════════════════════════════════════════════════════════════════════════

// New creates a new TUI application with the given configuration.
// This is the main entry point for initializing the LeaseGuard TUI.
func New(cfg *Config) (*tea.Program, error) {
	if cfg == nil {
		return nil, fmt.Errorf("initialize tui: nil config")
	}
	if cfg.Backend == nil {
		return nil, fmt.Errorf("initialize tui: nil backend")
	}

	model, err := newModel(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize model: %w", err)
	}

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	if cfg.EnableMouseSupport {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	return tea.NewProgram(model, opts...), nil
}

// newModel creates and initializes the Model struct with all components.
func newModel(cfg *Config) (Model, error) {
	// ═══════════════════════════════════════════════════════════════════════════
	// INITIALIZE BUBBLE TEA COMPONENTS
	// ═══════════════════════════════════════════════════════════════════════════

	// Viewport for the report and transcript
	vp := viewport.New(0, 0) // Dimensions will be set on first WindowSizeMsg
	vp.SetContent("")

	// Textarea for user input
	ti := textarea.New()
	ti.Placeholder = "Ask about your lease, or /open <path> to analyze a document"
	ti.Focus()
	ti.CharLimit = 4000
	ti.SetHeight(3)
	ti.ShowLineNumbers = false
	ti.KeyMap.InsertNewline.SetEnabled(false) // Enter submits instead of inserting a newline

	// Spinner for loading states
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	// Help component
	h := help.New()
	h.ShowAll = false

	// ═══════════════════════════════════════════════════════════════════════════
	// RESOLVE THEME AND ASSEMBLE
	// ═══════════════════════════════════════════════════════════════════════════

	store := cfg.Prefs
	if store == nil {
		path, err := prefs.DefaultPath()
		if err != nil {
			return Model{}, fmt.Errorf("resolve preference path: %w", err)
		}
		store = prefs.NewStore(path)
	}

	m := Model{
		prefs:    store,
		session:  session.New(),
		viewport: vp,
		input:    ti,
		spinner:  sp,
		help:     h,
		keys:     DefaultKeyMap(),
		backend:  cfg.Backend,
	}
	m.applyTheme(store.IsDark())

	if cfg.InitialDocument != "" {
		m.session.SelectDocument(cfg.InitialDocument)
	}

	return m, nil
}
