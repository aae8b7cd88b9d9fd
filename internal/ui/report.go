// Package ui provides the analysis report rendering for the LeaseGuard TUI.
package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/normanking/leaseguard/pkg/lease"
)

// ═══════════════════════════════════════════════════════════════════════════════
// REPORT COMPOSITION
// ═══════════════════════════════════════════════════════════════════════════════

// renderReport builds the full scrollable body: welcome text or analysis
// summary, violations, insights, and the chat transcript.
func renderReport(m Model) string {
	var sections []string

	if errMsg := m.session.Error(); errMsg != "" {
		sections = append(sections, m.styles.ErrorBox.Render(errMsg))
	}

	if !m.session.HasAnalysis() {
		sections = append(sections, renderWelcome(m))
		return m.styles.ReportArea.Render(strings.Join(sections, "\n\n"))
	}

	analysis := m.session.Analysis()

	sections = append(sections, renderSummaryCards(m, analysis.Summary))

	if len(analysis.Violations) > 0 {
		sections = append(sections, renderViolations(m, analysis.Violations))
	} else {
		sections = append(sections, m.styles.Muted.Render("No violations found in this lease."))
	}

	sections = append(sections, renderInsights(m))

	if len(m.session.Transcript()) > 0 || m.session.Asking() {
		sections = append(sections, renderTranscript(m))
	}

	return m.styles.ReportArea.Render(strings.Join(sections, "\n\n"))
}

// renderWelcome shows the empty-state instructions before any analysis.
func renderWelcome(m Model) string {
	var b strings.Builder
	b.WriteString(m.styles.SectionTitle.Render("Welcome to LeaseGuard"))
	b.WriteString("\n\n")
	b.WriteString("Upload a lease document to check it against tenant protection law.\n\n")
	b.WriteString(m.styles.Muted.Render("  /open <path>    analyze a document (.pdf, .jpg, .jpeg, .png, .tiff, .bmp)\n"))
	b.WriteString(m.styles.Muted.Render("  /help           all commands and keys"))

	if m.session.Submitting() {
		b.WriteString("\n\n")
		b.WriteString(m.styles.Spinner.Render(fmt.Sprintf("%s Analyzing %s...", m.spinner.View(), m.session.Document())))
	}

	return b.String()
}

// ═══════════════════════════════════════════════════════════════════════════════
// SUMMARY CARDS
// ═══════════════════════════════════════════════════════════════════════════════

// renderSummaryCards renders the four stat cards across the top of the report.
func renderSummaryCards(m Model, summary lease.Summary) string {
	cards := []string{
		renderCard(m, "Total Clauses", summary.TotalClauses, m.styles.Theme().Foreground),
		renderCard(m, "Flagged", summary.FlaggedClauses, m.styles.Theme().Warning),
		renderCard(m, "Critical", summary.CriticalCount, m.styles.Theme().SeverityCritical),
		renderCard(m, "Compliant", summary.Compliant(), m.styles.Theme().Success),
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.SectionTitle.Render("Analysis Summary"),
		row,
	)
}

// renderCard renders one stat card with a colored value.
func renderCard(m Model, label string, value int, color string) string {
	valueStyle := m.styles.CardValue.Foreground(lipgloss.Color(color))

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		valueStyle.Render(fmt.Sprintf("%d", value)),
		m.styles.CardLabel.Render(label),
	)

	return m.styles.Card.Render(content)
}

// ═══════════════════════════════════════════════════════════════════════════════
// VIOLATIONS
// ═══════════════════════════════════════════════════════════════════════════════

// renderViolations lists flagged clauses, most severe first.
func renderViolations(m Model, violations []lease.Violation) string {
	sorted := make([]lease.Violation, len(violations))
	copy(sorted, violations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity.Rank() > sorted[j].Severity.Rank()
	})

	var b strings.Builder
	b.WriteString(m.styles.SectionTitle.Render(fmt.Sprintf("Violations (%d)", len(sorted))))

	for _, v := range sorted {
		b.WriteString("\n")
		badge := m.styles.SeverityBadge(string(v.Severity))
		heading := lipgloss.JoinHorizontal(lipgloss.Left, badge, " ", m.styles.ViolationType.Render(v.Type))
		b.WriteString(heading)
		b.WriteString("\n")
		b.WriteString(m.styles.ViolationDetail.Render(v.Description))
		if v.LegalReference != "" {
			b.WriteString("\n")
			b.WriteString(m.styles.ViolationDetail.Render("Ref: " + v.LegalReference))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// ═══════════════════════════════════════════════════════════════════════════════
// INSIGHTS
// ═══════════════════════════════════════════════════════════════════════════════

// renderInsights shows the fee-related passages and the processing-time
// average, or the pending/error state of the aggregation.
func renderInsights(m Model) string {
	title := m.styles.SectionTitle.Render("Lease Insights")

	if m.session.InsightPending() {
		body := m.styles.Muted.Render(fmt.Sprintf("%s Loading insights...", m.spinner.View()))
		return lipgloss.JoinVertical(lipgloss.Left, title, m.styles.InsightPanel.Render(body))
	}

	var b strings.Builder

	if errMsg := m.session.InsightError(); errMsg != "" {
		b.WriteString(m.styles.Muted.Render(errMsg))
		b.WriteString("\n")
	}

	snap := m.session.Insights()
	if snap == nil {
		snap = &lease.InsightSnapshot{}
	}

	if len(snap.Matches) == 0 {
		b.WriteString(m.styles.Muted.Render("No fee-related passages found."))
	} else {
		b.WriteString(m.styles.ViolationType.Render("Fee-related passages"))
		for _, match := range snap.Matches {
			b.WriteString("\n")
			b.WriteString(m.styles.ViolationDetail.Render("• " + match.Text))
			if detail := matchDetail(match); detail != "" {
				b.WriteString("\n")
				b.WriteString(m.styles.Muted.Render("  " + detail))
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("Avg processing time (24h): %.0f ms", snap.AvgProcessingMs)))

	return lipgloss.JoinVertical(lipgloss.Left, title, m.styles.InsightPanel.Render(b.String()))
}

// matchDetail formats the relevance score and any severity tag carried
// in the match metadata.
func matchDetail(match lease.SearchMatch) string {
	var parts []string
	if match.Score != nil {
		parts = append(parts, fmt.Sprintf("score: %.3f", *match.Score))
	}
	if sev, ok := match.Metadata["severity"].(string); ok && sev != "" {
		parts = append(parts, "severity: "+sev)
	}
	return strings.Join(parts, "  ")
}

// ═══════════════════════════════════════════════════════════════════════════════
// TRANSCRIPT
// ═══════════════════════════════════════════════════════════════════════════════

// renderTranscript renders the question-and-answer history. Assistant
// replies are markdown, rendered through Glamour.
func renderTranscript(m Model) string {
	var b strings.Builder
	b.WriteString(m.styles.SectionTitle.Render("Questions"))

	for _, msg := range m.session.Transcript() {
		b.WriteString("\n")
		switch msg.Role {
		case lease.RoleUser:
			b.WriteString(m.styles.UserLabel.Render("You:"))
			b.WriteString("\n")
			b.WriteString(m.styles.UserMessage.Render(msg.Content))
		case lease.RoleAssistant:
			b.WriteString(m.styles.AssistantLabel.Render("LeaseGuard:"))
			b.WriteString("\n")
			b.WriteString(renderMarkdown(msg.Content, m.viewport.Width-4))
		}
		b.WriteString("\n")
	}

	if m.session.Asking() {
		b.WriteString("\n")
		b.WriteString(m.styles.Spinner.Render(fmt.Sprintf("%s Thinking...", m.spinner.View())))
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderMarkdown renders markdown content using Glamour.
// This wraps glamour.Render() with error handling; on failure the raw
// text is returned so the reply is never lost.
func renderMarkdown(content string, width int) string {
	if width < 20 {
		width = 20
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimRight(rendered, "\n")
}
