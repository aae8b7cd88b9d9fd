// Package ui provides view rendering functions for the LeaseGuard TUI.
package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ═══════════════════════════════════════════════════════════════════════════════
// MAIN VIEW FUNCTION
// ═══════════════════════════════════════════════════════════════════════════════

// view renders the complete TUI interface.
// This is the main rendering function called by Model.View().
func view(m Model) string {
	// Show initialization message until terminal is sized
	if !m.ready {
		return m.styles.ReportArea.Render("Initializing LeaseGuard...")
	}

	header := viewHeader(m)
	report := m.viewport.View()
	input := viewInput(m)
	footer := viewFooter(m)

	main := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		report,
		input,
		footer,
	)

	if m.showHelp {
		return overlayHelp(m, main)
	}

	return main
}

// ═══════════════════════════════════════════════════════════════════════════════
// HEADER VIEW
// ═══════════════════════════════════════════════════════════════════════════════

// viewHeader renders the top header bar with logo, document name and status.
func viewHeader(m Model) string {
	headerStyle := m.styles.Header.Width(m.width)

	logo := m.styles.Logo.Render("⚖ LEASEGUARD")

	document := ""
	if m.session.Document() != "" {
		document = m.styles.HeaderContext.Render(filepath.Base(m.session.Document()))
	}

	status := viewAnalysisStatus(m)

	leftSection := lipgloss.JoinHorizontal(lipgloss.Left, logo, document)

	// Push the status to the right edge
	leftWidth := lipgloss.Width(leftSection)
	rightWidth := lipgloss.Width(status)
	spacerWidth := m.width - leftWidth - rightWidth - 4 // 4 for padding
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	spacer := strings.Repeat(" ", spacerWidth)

	headerContent := lipgloss.JoinHorizontal(lipgloss.Left, leftSection, spacer, status)

	return headerStyle.Render(headerContent)
}

// viewAnalysisStatus renders the right-side analysis status indicator.
func viewAnalysisStatus(m Model) string {
	switch {
	case m.session.Submitting():
		return m.styles.HeaderContext.Render("[analyzing]")
	case m.session.HasAnalysis():
		summary := m.session.Analysis().Summary
		text := fmt.Sprintf("[%d clauses, %d flagged]", summary.TotalClauses, summary.FlaggedClauses)
		return m.styles.HeaderStatus.Render(text)
	default:
		return m.styles.HeaderContext.Render("[no document]")
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// INPUT VIEW
// ═══════════════════════════════════════════════════════════════════════════════

// viewInput renders the input area with textarea and busy indicator.
func viewInput(m Model) string {
	inputStyle := m.styles.InputArea.Width(m.width - 2) // Account for border

	textareaView := m.input.View()

	if m.session.Busy() {
		label := busyLabel(m)
		statusText := m.styles.Spinner.Render(fmt.Sprintf(" %s %s", m.spinner.View(), label))
		textareaView = lipgloss.JoinHorizontal(lipgloss.Left, textareaView, statusText)
	}

	return inputStyle.Render(textareaView)
}

// busyLabel names the in-flight operation for the input-row indicator.
func busyLabel(m Model) string {
	switch {
	case m.session.Submitting():
		return "Analyzing document..."
	case m.session.Asking():
		return "Thinking..."
	case m.session.InsightPending():
		return "Loading insights..."
	default:
		return "Working..."
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// FOOTER VIEW
// ═══════════════════════════════════════════════════════════════════════════════

// viewFooter renders the bottom footer with the notice line and keybindings.
func viewFooter(m Model) string {
	footerStyle := m.styles.Footer.Width(m.width)

	left := viewThemeIndicator(m)
	if m.notice != "" {
		left = m.styles.ErrorBox.UnsetBorderStyle().Render(m.notice)
	}

	right := m.styles.Muted.Render("/open: analyze • ^T: theme • f1: help • ^C: quit")

	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	spacerWidth := m.width - leftWidth - rightWidth - 4 // 4 for padding
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	spacer := strings.Repeat(" ", spacerWidth)

	footerContent := lipgloss.JoinHorizontal(lipgloss.Left, left, spacer, right)

	return footerStyle.Render(footerContent)
}

// viewThemeIndicator shows which palette is active.
func viewThemeIndicator(m Model) string {
	if m.DarkMode() {
		return m.styles.Muted.Render("● dark")
	}
	return m.styles.Muted.Render("○ light")
}

// ═══════════════════════════════════════════════════════════════════════════════
// HELP OVERLAY
// ═══════════════════════════════════════════════════════════════════════════════

// overlayHelp renders the help panel centered over the main view.
func overlayHelp(m Model, main string) string {
	theme := m.styles.Theme()

	var b strings.Builder
	b.WriteString("Commands\n")
	b.WriteString("  /open <path>   analyze a lease document\n")
	b.WriteString("  /new           clear the session\n")
	b.WriteString("  /theme         toggle light/dark mode\n")
	b.WriteString("  /help          show this overlay\n")
	b.WriteString("  /quit          exit\n")
	b.WriteString("\nKeys\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))

	panel := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Foreground)).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Primary)).
		Padding(1, 3).
		Render(b.String())

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Primary)).
		Bold(true).
		Render("LeaseGuard Help")

	content := lipgloss.JoinVertical(lipgloss.Center, title, panel)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
