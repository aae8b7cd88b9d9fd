package ui

import "github.com/charmbracelet/lipgloss"

// ═══════════════════════════════════════════════════════════════════════════════
// STYLES STRUCT
// ═══════════════════════════════════════════════════════════════════════════════

// Styles contains pre-computed lipgloss styles for all UI components.
// This separates visual styling from business logic and layout code.
type Styles struct {
	// Theme reference
	theme Theme

	// ─────────────────────────────────────────────────────────────────────────
	// Layout Styles - Main UI regions
	// ─────────────────────────────────────────────────────────────────────────

	// Header is the top title bar
	Header lipgloss.Style

	// ReportArea is the main scrollable report/chat container
	ReportArea lipgloss.Style

	// InputArea is the user input region
	InputArea lipgloss.Style

	// Footer is the bottom status/help bar
	Footer lipgloss.Style

	// ─────────────────────────────────────────────────────────────────────────
	// Header Component Styles
	// ─────────────────────────────────────────────────────────────────────────

	// Logo is the LeaseGuard branding/title in the header
	Logo lipgloss.Style

	// HeaderContext shows the selected document name
	HeaderContext lipgloss.Style

	// HeaderStatus shows the analysis status on the right
	HeaderStatus lipgloss.Style

	// ─────────────────────────────────────────────────────────────────────────
	// Report Styles - Analysis summary components
	// ─────────────────────────────────────────────────────────────────────────

	// SectionTitle is the heading above each report section
	SectionTitle lipgloss.Style

	// Card is a summary stat card container
	Card lipgloss.Style

	// CardLabel is the small label inside a summary card
	CardLabel lipgloss.Style

	// CardValue is the large number inside a summary card
	CardValue lipgloss.Style

	// ViolationType is the clause type line of a violation entry
	ViolationType lipgloss.Style

	// ViolationDetail is the description and legal reference text
	ViolationDetail lipgloss.Style

	// InsightPanel is the container for fee matches and processing stats
	InsightPanel lipgloss.Style

	// ─────────────────────────────────────────────────────────────────────────
	// Message Styles - Chat transcript components
	// ─────────────────────────────────────────────────────────────────────────

	// UserLabel is the "You:" label prefix
	UserLabel lipgloss.Style

	// UserMessage is the user's question text
	UserMessage lipgloss.Style

	// AssistantLabel is the "LeaseGuard:" label prefix
	AssistantLabel lipgloss.Style

	// AssistantMessage is the assistant's reply text
	AssistantMessage lipgloss.Style

	// ─────────────────────────────────────────────────────────────────────────
	// Utility Styles
	// ─────────────────────────────────────────────────────────────────────────

	// Spinner is for loading indicators
	Spinner lipgloss.Style

	// Separator is for horizontal dividers
	Separator lipgloss.Style

	// Timestamp is for message timestamps
	Timestamp lipgloss.Style

	// ErrorBox is for error banners
	ErrorBox lipgloss.Style

	// Muted is for dimmed hint text
	Muted lipgloss.Style
}

// ═══════════════════════════════════════════════════════════════════════════════
// STYLE INITIALIZATION
// ═══════════════════════════════════════════════════════════════════════════════

// NewStyles creates a complete Styles instance from a theme.
// All styles are pre-computed for maximum rendering performance.
func NewStyles(theme Theme) Styles {
	s := Styles{
		theme: theme,
	}

	// ─────────────────────────────────────────────────────────────────────────
	// Layout Styles
	// ─────────────────────────────────────────────────────────────────────────

	s.Header = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Foreground)).
		Background(lipgloss.Color(theme.HeaderBg)).
		Bold(true).
		Padding(0, 2).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color(theme.Border))

	s.ReportArea = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Foreground)).
		Padding(1, 2)

	s.InputArea = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Foreground)).
		Background(lipgloss.Color(theme.InputBg)).
		Padding(1, 2).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(lipgloss.Color(theme.Border))

	s.Footer = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Muted)).
		Background(lipgloss.Color(theme.FooterBg)).
		Padding(0, 2).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(lipgloss.Color(theme.Border))

	// ─────────────────────────────────────────────────────────────────────────
	// Header Component Styles
	// ─────────────────────────────────────────────────────────────────────────

	s.Logo = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Primary)).
		Background(lipgloss.Color(theme.HeaderBg)).
		Bold(true)

	s.HeaderContext = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Secondary)).
		Background(lipgloss.Color(theme.HeaderBg)).
		Italic(true).
		MarginLeft(2)

	s.HeaderStatus = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Success)).
		Background(lipgloss.Color(theme.HeaderBg)).
		MarginLeft(1)

	// ─────────────────────────────────────────────────────────────────────────
	// Report Styles
	// ─────────────────────────────────────────────────────────────────────────

	s.SectionTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Primary)).
		Bold(true).
		MarginBottom(1)

	s.Card = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.CardBg)).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		Padding(0, 2).
		MarginRight(1).
		Align(lipgloss.Center)

	s.CardLabel = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Muted)).
		Background(lipgloss.Color(theme.CardBg))

	s.CardValue = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Foreground)).
		Background(lipgloss.Color(theme.CardBg)).
		Bold(true)

	s.ViolationType = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Foreground)).
		Bold(true)

	s.ViolationDetail = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Muted)).
		PaddingLeft(2)

	s.InsightPanel = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Foreground)).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		Padding(0, 1)

	// ─────────────────────────────────────────────────────────────────────────
	// Message Styles
	// ─────────────────────────────────────────────────────────────────────────

	s.UserLabel = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Primary)).
		Bold(true).
		MarginRight(1)

	s.UserMessage = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.UserMessageFg)).
		PaddingLeft(1)

	s.AssistantLabel = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Secondary)).
		Bold(true).
		MarginRight(1)

	s.AssistantMessage = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.AssistantMessageFg)).
		PaddingLeft(1)

	// ─────────────────────────────────────────────────────────────────────────
	// Utility Styles
	// ─────────────────────────────────────────────────────────────────────────

	s.Spinner = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Primary)).
		Bold(true)

	s.Separator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Border))

	s.Timestamp = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Muted)).
		Italic(true).
		MarginLeft(1)

	s.ErrorBox = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Error)).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Error)).
		Padding(0, 1).
		Bold(true)

	s.Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Muted))

	return s
}

// ═══════════════════════════════════════════════════════════════════════════════
// STYLE HELPERS
// ═══════════════════════════════════════════════════════════════════════════════

// Theme returns the underlying theme used by these styles.
func (s *Styles) Theme() Theme {
	return s.theme
}

// SeverityBadge renders a colored severity badge like [CRITICAL].
func (s *Styles) SeverityBadge(severity string) string {
	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.theme.Background)).
		Background(lipgloss.Color(s.theme.SeverityColor(severity))).
		Bold(true).
		Padding(0, 1)
	return badge.Render(severity)
}

// RenderHorizontalLine renders a horizontal separator line of the given width.
func (s *Styles) RenderHorizontalLine(width int) string {
	line := ""
	for i := 0; i < width; i++ {
		line += "─"
	}
	return s.Separator.Render(line)
}
