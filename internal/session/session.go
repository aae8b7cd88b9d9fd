// Package session holds the client-side state machine for one lease
// review session: the selected document, the current analysis, the
// question-and-answer transcript, and the insight snapshot.
//
// A Session is confined to the UI update loop. All async work happens
// elsewhere; results are merged back in through the Complete*/Fail*
// methods, so the type needs no locking.
package session

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/normanking/leaseguard/pkg/lease"
)

// Session is the mutable state of one review session.
type Session struct {
	document   string
	analysis   *lease.Analysis
	transcript []lease.ChatMessage
	insights   *lease.InsightSnapshot
	lastError  string

	insightError string

	submitting     bool
	asking         bool
	insightPending bool
}

// New returns an empty session.
func New() *Session {
	return &Session{}
}

// ═══════════════════════════════════════════════════════════════════════════════
// ACCESSORS
// ═══════════════════════════════════════════════════════════════════════════════

// Document returns the path of the currently selected document, or ""
// when none is selected.
func (s *Session) Document() string { return s.document }

// Analysis returns the current analysis, or nil before the first
// successful upload.
func (s *Session) Analysis() *lease.Analysis { return s.analysis }

// HasAnalysis reports whether an analysis is loaded.
func (s *Session) HasAnalysis() bool { return s.analysis != nil }

// LeaseID returns the current analysis lease identifier, or "" when no
// analysis is loaded.
func (s *Session) LeaseID() string {
	if s.analysis == nil {
		return ""
	}
	return s.analysis.LeaseID
}

// Transcript returns the chat history in order.
func (s *Session) Transcript() []lease.ChatMessage { return s.transcript }

// Insights returns the loaded insight snapshot, or nil while none has
// arrived for the current analysis.
func (s *Session) Insights() *lease.InsightSnapshot { return s.insights }

// Error returns the last operation error message, or "".
func (s *Session) Error() string { return s.lastError }

// InsightError returns the last insight aggregation error, or "".
func (s *Session) InsightError() string { return s.insightError }

// Submitting reports whether an upload is in flight.
func (s *Session) Submitting() bool { return s.submitting }

// Asking reports whether a chat question is in flight.
func (s *Session) Asking() bool { return s.asking }

// InsightPending reports whether the insight fetches for the current
// analysis are still running.
func (s *Session) InsightPending() bool { return s.insightPending }

// Busy reports whether any async operation is in flight.
func (s *Session) Busy() bool {
	return s.submitting || s.asking || s.insightPending
}

// ═══════════════════════════════════════════════════════════════════════════════
// DOCUMENT SUBMISSION
// ═══════════════════════════════════════════════════════════════════════════════

// SelectDocument records the document the user picked and clears any
// stale error from a previous attempt.
func (s *Session) SelectDocument(path string) {
	s.document = path
	s.lastError = ""
}

// BeginSubmit starts the upload lifecycle. It refuses to start when no
// document is selected or another upload is already in flight, keeping
// submission single-flight.
func (s *Session) BeginSubmit() bool {
	if s.submitting || s.document == "" {
		return false
	}
	s.submitting = true
	s.lastError = ""
	return true
}

// CompleteSubmit atomically replaces the session state with the fresh
// analysis: the transcript and insights from any previous document are
// cleared in the same step so no frame ever mixes old and new. A result
// arriving after the session was reset mid-flight belongs to a context
// that no longer exists and is discarded. Returns whether it applied.
func (s *Session) CompleteSubmit(analysis *lease.Analysis) bool {
	if !s.submitting {
		return false
	}
	s.analysis = analysis
	s.transcript = nil
	s.insights = nil
	s.lastError = ""
	s.insightError = ""
	s.submitting = false
	return true
}

// FailSubmit records the upload failure and leaves every other piece
// of state exactly as it was, prior analysis included. A failure from
// an upload the reset already discarded is dropped.
func (s *Session) FailSubmit(msg string) {
	if !s.submitting {
		return
	}
	s.lastError = msg
	s.submitting = false
}

// ═══════════════════════════════════════════════════════════════════════════════
// CHAT
// ═══════════════════════════════════════════════════════════════════════════════

// BeginAsk starts the chat lifecycle for question. It is a no-op,
// returning false, when the question is empty after trimming, no
// analysis is loaded, or another question is still in flight.
func (s *Session) BeginAsk(question string) bool {
	if s.asking || s.analysis == nil || strings.TrimSpace(question) == "" {
		return false
	}
	s.asking = true
	s.lastError = ""
	return true
}

// CompleteAsk appends the exchange to the transcript as a pair: the
// user's question exactly as typed, then the assistant's reply. The
// transcript never shows a question without its answer. A reply that
// resolves after the session was reset mid-flight is dropped. Returns
// whether the pair was appended.
func (s *Session) CompleteAsk(question, reply string) bool {
	if !s.asking {
		return false
	}
	s.asking = false
	if s.analysis == nil {
		return false
	}
	now := time.Now()
	s.transcript = append(s.transcript,
		lease.ChatMessage{
			ID:        uuid.New().String(),
			Role:      lease.RoleUser,
			Content:   question,
			Timestamp: now,
		},
		lease.ChatMessage{
			ID:        uuid.New().String(),
			Role:      lease.RoleAssistant,
			Content:   reply,
			Timestamp: now,
		},
	)
	return true
}

// FailAsk records the chat failure. The transcript is untouched so a
// failed question never leaves a dangling user message behind. A
// failure from a question the reset already discarded is dropped so
// it cannot surface as an error in the fresh session.
func (s *Session) FailAsk(msg string) {
	if !s.asking {
		return
	}
	s.lastError = msg
	s.asking = false
}

// ═══════════════════════════════════════════════════════════════════════════════
// INSIGHTS
// ═══════════════════════════════════════════════════════════════════════════════

// BeginInsights marks the insight fetches for the current analysis as
// in flight. A single indicator covers both underlying calls.
func (s *Session) BeginInsights() {
	s.insightPending = true
	s.insightError = ""
}

// ApplyInsights merges an insight result into the session. The result
// carries the lease identifier captured when the fetch was dispatched;
// when it no longer matches the current analysis the result is stale
// and is discarded without touching any state, pending indicator
// included. Returns whether the result was applied.
func (s *Session) ApplyInsights(leaseID string, snap lease.InsightSnapshot, errMsg string) bool {
	if s.analysis == nil || s.analysis.LeaseID != leaseID {
		return false
	}
	s.insights = &snap
	s.insightError = errMsg
	s.insightPending = false
	return true
}

// ═══════════════════════════════════════════════════════════════════════════════
// RESET
// ═══════════════════════════════════════════════════════════════════════════════

// Reset returns the session to its initial state: no document, no
// analysis, empty transcript, no insights, no errors. The in-flight
// flags drop too, so results from operations dispatched before the
// reset find their flag cleared and are discarded on arrival.
func (s *Session) Reset() {
	s.document = ""
	s.analysis = nil
	s.transcript = nil
	s.insights = nil
	s.lastError = ""
	s.insightError = ""
	s.submitting = false
	s.asking = false
	s.insightPending = false
}
