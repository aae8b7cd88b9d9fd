// Package ui provides Bubble Tea message types and command functions.
package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/normanking/leaseguard/internal/insight"
	"github.com/normanking/leaseguard/pkg/lease"
)

// ═══════════════════════════════════════════════════════════════════════════════
// MESSAGE TYPES
// ═══════════════════════════════════════════════════════════════════════════════

// AnalysisCompletedMsg carries the outcome of a document upload.
type AnalysisCompletedMsg struct {
	Analysis *lease.Analysis
	Err      error
}

// AskCompletedMsg carries the outcome of a chat question.
// Question holds the user's original text, preserved for the transcript.
type AskCompletedMsg struct {
	Question string
	Answer   string
	Err      error
}

// InsightsLoadedMsg carries the merged insight snapshot for a lease.
// LeaseID identifies the analysis the fetch was dispatched for, so stale
// results can be discarded when a newer analysis has replaced it.
type InsightsLoadedMsg struct {
	LeaseID  string
	Snapshot lease.InsightSnapshot
	ErrMsg   string
}

// ═══════════════════════════════════════════════════════════════════════════════
// COMMAND FUNCTIONS
// ═══════════════════════════════════════════════════════════════════════════════

// AnalyzeDocumentCmd uploads the document at path and reports the result.
func AnalyzeDocumentCmd(backend Backend, path string) tea.Cmd {
	return func() tea.Msg {
		analysis, err := backend.AnalyzeDocument(context.Background(), path)
		return AnalysisCompletedMsg{
			Analysis: analysis,
			Err:      err,
		}
	}
}

// AskQuestionCmd sends a question about the given lease and reports the reply.
// question is passed through untrimmed so the transcript shows what was
// typed; the client trims it on the wire.
func AskQuestionCmd(backend Backend, question, leaseID string) tea.Cmd {
	return func() tea.Msg {
		answer, err := backend.Ask(context.Background(), question, leaseID)
		return AskCompletedMsg{
			Question: question,
			Answer:   answer,
			Err:      err,
		}
	}
}

// LoadInsightsCmd runs the concurrent insight aggregation for the given lease.
func LoadInsightsCmd(backend Backend, leaseID string) tea.Cmd {
	return func() tea.Msg {
		snapshot, err := insight.Collect(context.Background(), backend, leaseID)

		errMsg := ""
		if err != nil {
			errMsg = "Failed to load lease insights"
		}

		return InsightsLoadedMsg{
			LeaseID:  leaseID,
			Snapshot: snapshot,
			ErrMsg:   errMsg,
		}
	}
}
