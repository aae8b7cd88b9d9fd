// Package ui provides the theming and styling system for LeaseGuard's TUI.
// It implements a two-mode color palette system using Charmbracelet's lipgloss library.
package ui

// ═══════════════════════════════════════════════════════════════════════════════
// THEME DEFINITION
// ═══════════════════════════════════════════════════════════════════════════════

// Theme defines a complete color palette for the LeaseGuard TUI.
// Each theme provides semantic colors that are applied consistently across all UI components.
// Colors are stored as strings (hex codes) for compatibility with lipgloss.Color().
type Theme struct {
	// Metadata
	Name string // Human-readable theme name
	Dark bool   // True for the dark palette

	// Base Colors - Foundation of the UI (as hex strings)
	Background string // Main background color
	Foreground string // Primary text color
	Border     string // Borders and dividers

	// Semantic Colors - Component-level meaning
	Primary   string // Primary actions, emphasis, focus
	Secondary string // Supporting elements, subtitles
	Success   string // Compliant clauses, confirmations
	Warning   string // Flagged clauses, important notices
	Error     string // Error states, critical alerts
	Muted     string // Dimmed text, placeholders

	// Severity Colors - Violation badge ramp
	SeverityCritical string // Critical violations
	SeverityHigh     string // High violations
	SeverityMedium   string // Medium violations
	SeverityLow      string // Low violations

	// Layout Background Colors - Layered UI elements
	HeaderBg string // Header/title bar background
	FooterBg string // Footer/status bar background
	InputBg  string // Input field background
	CardBg   string // Summary card background

	// Message Colors - Chat message styling
	UserMessageFg      string // User message text color
	AssistantMessageFg string // Assistant message text color

	// Markdown Rendering
	GlamourStyle string // Glamour theme name for markdown rendering
}

// ═══════════════════════════════════════════════════════════════════════════════
// BUILT-IN THEMES
// ═══════════════════════════════════════════════════════════════════════════════

// ThemeDark is the dark palette, used when the stored preference or the
// terminal background resolves to dark mode.
var ThemeDark = Theme{
	Name: "Dark",
	Dark: true,

	// Base Colors
	Background: "#1e1e1e", // Editor-style dark background
	Foreground: "#d4d4d4", // Standard text
	Border:     "#3e3e42", // Subtle borders

	// Semantic Colors
	Primary:   "#007acc", // Blue - actions, focus
	Secondary: "#9cdcfe", // Cyan - secondary info
	Success:   "#4ec9b0", // Teal - compliant counts
	Warning:   "#dcdcaa", // Yellow - flagged counts
	Error:     "#f48771", // Salmon - errors
	Muted:     "#6a737d", // Gray - muted text

	// Severity ramp
	SeverityCritical: "#f44747",
	SeverityHigh:     "#ff8c00",
	SeverityMedium:   "#dcdcaa",
	SeverityLow:      "#4ec9b0",

	// Layout Backgrounds
	HeaderBg: "#252526",
	FooterBg: "#181818",
	InputBg:  "#1e1e1e",
	CardBg:   "#252526",

	// Message Colors
	UserMessageFg:      "#d4d4d4",
	AssistantMessageFg: "#9cdcfe",

	// Markdown
	GlamourStyle: "dark",
}

// ThemeLight is the light palette, the default when no preference is stored
// and the terminal background cannot be determined.
var ThemeLight = Theme{
	Name: "Light",
	Dark: false,

	// Base Colors
	Background: "#ffffff",
	Foreground: "#24292f",
	Border:     "#d0d7de",

	// Semantic Colors
	Primary:   "#0969da", // Blue - actions, focus
	Secondary: "#0550ae", // Darker blue - secondary info
	Success:   "#1a7f37", // Green - compliant counts
	Warning:   "#9a6700", // Amber - flagged counts
	Error:     "#cf222e", // Red - errors
	Muted:     "#6e7781", // Gray - muted text

	// Severity ramp
	SeverityCritical: "#cf222e",
	SeverityHigh:     "#bc4c00",
	SeverityMedium:   "#9a6700",
	SeverityLow:      "#1a7f37",

	// Layout Backgrounds
	HeaderBg: "#f6f8fa",
	FooterBg: "#f6f8fa",
	InputBg:  "#ffffff",
	CardBg:   "#f6f8fa",

	// Message Colors
	UserMessageFg:      "#24292f",
	AssistantMessageFg: "#0550ae",

	// Markdown
	GlamourStyle: "light",
}

// ═══════════════════════════════════════════════════════════════════════════════
// THEME SELECTION
// ═══════════════════════════════════════════════════════════════════════════════

// ThemeForMode returns the palette for the given dark-mode flag.
func ThemeForMode(dark bool) Theme {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}

// SeverityColor returns the badge color for a violation severity label.
// Unknown labels fall back to the muted color.
func (t Theme) SeverityColor(severity string) string {
	switch severity {
	case "Critical":
		return t.SeverityCritical
	case "High":
		return t.SeverityHigh
	case "Medium":
		return t.SeverityMedium
	case "Low":
		return t.SeverityLow
	default:
		return t.Muted
	}
}
