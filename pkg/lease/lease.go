// Package lease defines shared types used across all LeaseGuard modules.
package lease

import "time"

// ═══════════════════════════════════════════════════════════════════════════════
// SEVERITY
// ═══════════════════════════════════════════════════════════════════════════════

// Severity ranks how badly a flagged clause violates tenant protections.
type Severity string

const (
	SeverityCritical Severity = "Critical" // Void or unenforceable clause
	SeverityHigh     Severity = "High"     // Likely violation, strong tenant remedy
	SeverityMedium   Severity = "Medium"   // Questionable clause, worth challenging
	SeverityLow      Severity = "Low"      // Minor issue or disclosure gap
)

// Rank returns the ordering weight of a severity, highest first.
// Unknown values sort below Low.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// ANALYSIS
// ═══════════════════════════════════════════════════════════════════════════════

// Summary aggregates clause counts for an analyzed lease.
type Summary struct {
	TotalClauses   int `json:"totalClauses"`
	FlaggedClauses int `json:"flaggedClauses"`
	CriticalCount  int `json:"criticalViolations"`
	HighCount      int `json:"highViolations"`
	MediumCount    int `json:"mediumViolations"`
	LowCount       int `json:"lowViolations"`
}

// Compliant returns the number of clauses that passed review.
func (s Summary) Compliant() int {
	n := s.TotalClauses - s.FlaggedClauses
	if n < 0 {
		return 0
	}
	return n
}

// Violation is a single flagged clause with its legal grounding.
type Violation struct {
	ClauseID       string   `json:"clauseId"`
	Type           string   `json:"type"`
	Description    string   `json:"description"`
	LegalReference string   `json:"legalReference"`
	Severity       Severity `json:"severity"`
}

// Analysis is the server's full verdict on one uploaded lease document.
// LeaseID identifies the document for all follow-up operations (chat,
// search, analytics correlation).
type Analysis struct {
	LeaseID    string      `json:"leaseId"`
	Summary    Summary     `json:"summary"`
	Violations []Violation `json:"violations"`
}

// ═══════════════════════════════════════════════════════════════════════════════
// CHAT
// ═══════════════════════════════════════════════════════════════════════════════

// ChatRole identifies the author of a transcript entry.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one entry in the question-and-answer transcript.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ═══════════════════════════════════════════════════════════════════════════════
// INSIGHTS
// ═══════════════════════════════════════════════════════════════════════════════

// SearchMatch is one passage returned by hybrid search over the
// analyzed corpus.
type SearchMatch struct {
	Text     string         `json:"text"`
	Document string         `json:"document,omitempty"`
	Score    *float64       `json:"score,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// InsightSnapshot is the merged result of the two insight fetches that
// run after an analysis lands: top fee-related passages plus the mean
// processing time over the trailing window. Either half may be its
// zero value when the corresponding fetch failed.
type InsightSnapshot struct {
	Matches         []SearchMatch
	AvgProcessingMs float64
}
