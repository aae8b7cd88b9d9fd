// Package ui provides the Charmbracelet TUI framework integration for LeaseGuard.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// update handles all messages and updates the model state.
// This is called by Model.Update() and follows Elm Architecture principles.
func update(m Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	// ═══════════════════════════════════════════════════════════════════════════
	// TERMINAL EVENTS
	// ═══════════════════════════════════════════════════════════════════════════

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Update viewport dimensions (leaving space for header, input and footer)
		headerHeight := 3
		footerHeight := 3
		inputHeight := 5
		verticalMargin := headerHeight + footerHeight + inputHeight

		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - verticalMargin

		m.input.SetWidth(msg.Width - 4)

		if !m.ready {
			m.ready = true
			// Queue a pending document selected before the terminal was sized
			if m.session.Document() != "" && !m.session.HasAnalysis() {
				if m.session.BeginSubmit() {
					m.refreshReport()
					return m, tea.Batch(
						m.spinner.Tick,
						AnalyzeDocumentCmd(m.backend, m.session.Document()),
					)
				}
			}
		}

		m.refreshReport()
		return m, nil

	// ═══════════════════════════════════════════════════════════════════════════
	// KEYBOARD EVENTS
	// ═══════════════════════════════════════════════════════════════════════════

	case tea.KeyMsg:
		// Help overlay swallows everything except close/quit
		if m.showHelp {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Help):
				m.showHelp = false
				return m, nil
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Send):
			return handleSubmit(m)

		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil

		case key.Matches(msg, m.keys.Theme):
			return handleThemeToggle(m)

		case key.Matches(msg, m.keys.NewSession):
			return handleNewSession(m)
		}

		// Scrolling keys go to the viewport when the input is empty,
		// so arrow keys still navigate the report
		if m.input.Value() == "" {
			switch {
			case key.Matches(msg, m.keys.Up),
				key.Matches(msg, m.keys.Down),
				key.Matches(msg, m.keys.PageUp),
				key.Matches(msg, m.keys.PageDown):
				m.viewport, cmd = m.viewport.Update(msg)
				return m, cmd
			}
		}

		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)

		return m, tea.Batch(cmds...)

	// ═══════════════════════════════════════════════════════════════════════════
	// OPERATION RESULTS
	// ═══════════════════════════════════════════════════════════════════════════

	case AnalysisCompletedMsg:
		return handleAnalysisCompleted(m, msg)

	case AskCompletedMsg:
		return handleAskCompleted(m, msg)

	case InsightsLoadedMsg:
		return handleInsightsLoaded(m, msg)

	// ═══════════════════════════════════════════════════════════════════════════
	// SLASH COMMAND MESSAGES
	// ═══════════════════════════════════════════════════════════════════════════

	case OpenDocumentMsg:
		return handleOpenDocument(m, msg)

	case NewSessionMsg:
		return handleNewSession(m)

	case ToggleThemeMsg:
		return handleThemeToggle(m)

	case ShowHelpMsg:
		m.showHelp = true
		return m, nil

	case CommandErrorMsg:
		m.notice = msg.Error
		return m, nil

	// ═══════════════════════════════════════════════════════════════════════════
	// COMPONENT TICKS
	// ═══════════════════════════════════════════════════════════════════════════

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Pass everything else to the components
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// ═══════════════════════════════════════════════════════════════════════════════
// INPUT SUBMISSION
// ═══════════════════════════════════════════════════════════════════════════════

// handleSubmit routes the Enter key: slash commands go to the command router,
// anything else is treated as a question about the analyzed lease.
func handleSubmit(m Model) (tea.Model, tea.Cmd) {
	value := m.input.Value()
	m.notice = ""

	if strings.HasPrefix(strings.TrimSpace(value), "/") {
		m.input.Reset()
		return m, HandleCommand(strings.TrimSpace(value))
	}

	// Questions require an analysis and non-blank text; BeginAsk enforces
	// both and the single-flight rule, so a refused ask leaves the input alone.
	if !m.session.BeginAsk(value) {
		return m, nil
	}

	// The input keeps the question until the reply lands, so a failed
	// ask can be retried without retyping.
	m.refreshReport()

	return m, tea.Batch(
		m.spinner.Tick,
		AskQuestionCmd(m.backend, value, m.session.LeaseID()),
	)
}

// ═══════════════════════════════════════════════════════════════════════════════
// OPERATION RESULT HANDLERS
// ═══════════════════════════════════════════════════════════════════════════════

// handleOpenDocument selects a document and starts the upload.
func handleOpenDocument(m Model, msg OpenDocumentMsg) (tea.Model, tea.Cmd) {
	m.session.SelectDocument(msg.Path)

	if !m.session.BeginSubmit() {
		return m, nil
	}

	m.refreshReport()
	return m, tea.Batch(
		m.spinner.Tick,
		AnalyzeDocumentCmd(m.backend, m.session.Document()),
	)
}

// handleAnalysisCompleted applies the upload outcome. A fresh analysis
// replaces the whole session view and triggers exactly one insight
// fetch. The session drops results from uploads it no longer owns, so
// a reset mid-upload never resurrects the discarded document.
func handleAnalysisCompleted(m Model, msg AnalysisCompletedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.session.FailSubmit(msg.Err.Error())
		m.refreshReport()
		return m, nil
	}

	if !m.session.CompleteSubmit(msg.Analysis) {
		return m, nil
	}
	m.session.BeginInsights()
	m.refreshReport()

	return m, tea.Batch(
		m.spinner.Tick,
		LoadInsightsCmd(m.backend, m.session.LeaseID()),
	)
}

// handleAskCompleted appends the question/reply pair, or records the failure
// without touching the transcript. The input clears only once the pair
// is actually in the transcript; a failure keeps the typed question so
// the user can retry it.
func handleAskCompleted(m Model, msg AskCompletedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.session.FailAsk(msg.Err.Error())
	} else if m.session.CompleteAsk(msg.Question, msg.Answer) {
		m.input.Reset()
	}

	m.refreshReport()
	m.viewport.GotoBottom()
	return m, nil
}

// handleInsightsLoaded applies an insight snapshot. The session discards
// results dispatched for a lease that has since been replaced.
func handleInsightsLoaded(m Model, msg InsightsLoadedMsg) (tea.Model, tea.Cmd) {
	if m.session.ApplyInsights(msg.LeaseID, msg.Snapshot, msg.ErrMsg) {
		m.refreshReport()
	}
	return m, nil
}

// ═══════════════════════════════════════════════════════════════════════════════
// APPLICATION ACTIONS
// ═══════════════════════════════════════════════════════════════════════════════

// handleNewSession clears the analysis, transcript and insights.
func handleNewSession(m Model) (tea.Model, tea.Cmd) {
	m.session.Reset()
	m.notice = ""
	m.viewport.SetContent(renderReport(m))
	m.viewport.GotoTop()
	return m, nil
}

// handleThemeToggle flips the palette and persists the choice before
// re-rendering. Persistence failures are shown but do not block the switch.
func handleThemeToggle(m Model) (tea.Model, tea.Cmd) {
	dark, err := m.prefs.Toggle()
	if err != nil {
		m.notice = "Could not save theme preference"
	}

	m.applyTheme(dark)
	m.refreshReport()
	return m, nil
}
