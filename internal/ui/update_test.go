package ui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/normanking/leaseguard/internal/prefs"
	"github.com/normanking/leaseguard/pkg/lease"
)

// ═══════════════════════════════════════════════════════════════════════════════
// TEST HELPERS
// ═══════════════════════════════════════════════════════════════════════════════

func newTestModel(t *testing.T, backend Backend) Model {
	t.Helper()

	store := prefs.NewStore(filepath.Join(t.TempDir(), "preferences.yaml"))

	m, err := newModel(&Config{
		Backend: backend,
		Prefs:   store,
	})
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}

	// Size the terminal so the model is ready
	sized, _ := update(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return sized.(Model)
}

func testAnalysis(leaseID string) *lease.Analysis {
	return &lease.Analysis{
		LeaseID: leaseID,
		Summary: lease.Summary{
			TotalClauses:   12,
			FlaggedClauses: 3,
			CriticalCount:  1,
			HighCount:      1,
			MediumCount:    1,
		},
		Violations: []lease.Violation{
			{
				ClauseID:       "c-7",
				Type:           "Late Fee",
				Description:    "Late fee exceeds the statutory ceiling",
				LegalReference: "RCW 59.18.170",
				Severity:       lease.SeverityCritical,
			},
		},
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// ANALYSIS FLOW
// ═══════════════════════════════════════════════════════════════════════════════

func TestOpenDocumentStartsSubmit(t *testing.T) {
	m := newTestModel(t, &MockBackend{})

	updated, cmd := update(m, OpenDocumentMsg{Path: "/tmp/lease.pdf"})
	got := updated.(Model)

	if !got.Session().Submitting() {
		t.Error("session should be submitting after OpenDocumentMsg")
	}
	if got.Session().Document() != "/tmp/lease.pdf" {
		t.Errorf("Document = %q, want selected path", got.Session().Document())
	}
	if cmd == nil {
		t.Error("expected an upload command")
	}
}

func TestOpenDocumentWhileSubmittingIsIgnored(t *testing.T) {
	m := newTestModel(t, &MockBackend{})

	updated, _ := update(m, OpenDocumentMsg{Path: "/tmp/first.pdf"})
	m = updated.(Model)

	updated, cmd := update(m, OpenDocumentMsg{Path: "/tmp/second.pdf"})
	got := updated.(Model)

	if cmd != nil {
		t.Error("second open during an in-flight upload should not start another")
	}
	// The selection still moves, the upload does not
	if got.Session().Document() != "/tmp/second.pdf" {
		t.Errorf("Document = %q", got.Session().Document())
	}
}

func TestAnalysisCompletedTriggersInsightFetch(t *testing.T) {
	m := newTestModel(t, &MockBackend{})
	m.Session().SelectDocument("/tmp/lease.pdf")
	m.Session().BeginSubmit()

	updated, cmd := update(m, AnalysisCompletedMsg{Analysis: testAnalysis("lease-1")})
	got := updated.(Model)

	if !got.Session().HasAnalysis() {
		t.Fatal("analysis should be applied")
	}
	if got.Session().LeaseID() != "lease-1" {
		t.Errorf("LeaseID = %q", got.Session().LeaseID())
	}
	if !got.Session().InsightPending() {
		t.Error("insight fetch should be pending after a fresh analysis")
	}
	if cmd == nil {
		t.Error("expected an insight aggregation command")
	}
}

func TestAnalysisFailureKeepsPriorState(t *testing.T) {
	m := newTestModel(t, &MockBackend{})
	m.Session().SelectDocument("/tmp/lease.pdf")
	m.Session().BeginSubmit()
	m.Session().CompleteSubmit(testAnalysis("lease-1"))

	m.Session().SelectDocument("/tmp/other.pdf")
	m.Session().BeginSubmit()

	updated, cmd := update(m, AnalysisCompletedMsg{Err: errors.New("Upload failed")})
	got := updated.(Model)

	if cmd != nil {
		t.Error("a failed upload should not trigger an insight fetch")
	}
	if got.Session().LeaseID() != "lease-1" {
		t.Error("prior analysis should survive a failed upload")
	}
	if got.Session().Error() != "Upload failed" {
		t.Errorf("Error = %q", got.Session().Error())
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// INSIGHT STALENESS
// ═══════════════════════════════════════════════════════════════════════════════

func TestStaleInsightResultDiscarded(t *testing.T) {
	m := newTestModel(t, &MockBackend{})
	m.Session().SelectDocument("/tmp/a.pdf")
	m.Session().BeginSubmit()

	updated, _ := update(m, AnalysisCompletedMsg{Analysis: testAnalysis("lease-A")})
	m = updated.(Model)

	// A second analysis lands before lease-A's insights resolve
	m.Session().SelectDocument("/tmp/b.pdf")
	m.Session().BeginSubmit()
	updated, _ = update(m, AnalysisCompletedMsg{Analysis: testAnalysis("lease-B")})
	m = updated.(Model)

	updated, _ = update(m, InsightsLoadedMsg{
		LeaseID:  "lease-A",
		Snapshot: lease.InsightSnapshot{AvgProcessingMs: 111},
	})
	m = updated.(Model)

	if m.Session().Insights() != nil {
		t.Error("stale snapshot should be discarded")
	}
	if !m.Session().InsightPending() {
		t.Error("pending indicator belongs to lease-B's fetch and must stay set")
	}

	updated, _ = update(m, InsightsLoadedMsg{
		LeaseID:  "lease-B",
		Snapshot: lease.InsightSnapshot{AvgProcessingMs: 222},
	})
	m = updated.(Model)

	if m.Session().InsightPending() {
		t.Error("matching snapshot should clear the pending indicator")
	}
	if got := m.Session().Insights(); got == nil || got.AvgProcessingMs != 222 {
		t.Errorf("Insights = %+v, want lease-B's snapshot", got)
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// ASK FLOW
// ═══════════════════════════════════════════════════════════════════════════════

func TestAskCompletedAppendsPair(t *testing.T) {
	m := newTestModel(t, &MockBackend{})
	m.Session().SelectDocument("/tmp/lease.pdf")
	m.Session().BeginSubmit()
	m.Session().CompleteSubmit(testAnalysis("lease-1"))
	m.input.SetValue("  is the late fee legal?  ")
	m.Session().BeginAsk("  is the late fee legal?  ")

	updated, _ := update(m, AskCompletedMsg{
		Question: "  is the late fee legal?  ",
		Answer:   "No. The fee exceeds the statutory ceiling.",
	})
	got := updated.(Model)

	transcript := got.Session().Transcript()
	if len(transcript) != 2 {
		t.Fatalf("transcript length = %d, want 2", len(transcript))
	}
	if transcript[0].Content != "  is the late fee legal?  " {
		t.Error("user entry should keep the original untrimmed text")
	}
	if transcript[1].Role != lease.RoleAssistant {
		t.Errorf("second entry role = %q", transcript[1].Role)
	}
	if got.input.Value() != "" {
		t.Error("input should clear once the reply is in the transcript")
	}
}

func TestAskFailureAppendsNothing(t *testing.T) {
	m := newTestModel(t, &MockBackend{})
	m.Session().SelectDocument("/tmp/lease.pdf")
	m.Session().BeginSubmit()
	m.Session().CompleteSubmit(testAnalysis("lease-1"))
	m.input.SetValue("question")
	m.Session().BeginAsk("question")

	updated, _ := update(m, AskCompletedMsg{
		Question: "question",
		Err:      errors.New("Failed to get response"),
	})
	got := updated.(Model)

	if len(got.Session().Transcript()) != 0 {
		t.Error("failed ask must not touch the transcript")
	}
	if got.Session().Error() != "Failed to get response" {
		t.Errorf("Error = %q", got.Session().Error())
	}
	if got.input.Value() != "question" {
		t.Error("failed ask should keep the typed question for retry")
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// THEME AND SESSION ACTIONS
// ═══════════════════════════════════════════════════════════════════════════════

func TestThemeTogglePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	store := prefs.NewStore(path)

	m, err := newModel(&Config{Backend: &MockBackend{}, Prefs: store})
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}
	sized, _ := update(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = sized.(Model)

	if m.DarkMode() {
		t.Fatal("fresh store should resolve to light mode")
	}

	updated, _ := update(m, ToggleThemeMsg{})
	got := updated.(Model)

	if !got.DarkMode() {
		t.Error("toggle should switch to dark mode")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("preference file not written: %v", err)
	}
	if !strings.Contains(string(data), "dark_mode: true") {
		t.Errorf("preference file = %q, want dark_mode: true", data)
	}
}

func TestNewSessionClearsEverything(t *testing.T) {
	m := newTestModel(t, &MockBackend{})
	m.Session().SelectDocument("/tmp/lease.pdf")
	m.Session().BeginSubmit()
	m.Session().CompleteSubmit(testAnalysis("lease-1"))
	m.Session().BeginAsk("q")
	m.Session().CompleteAsk("q", "a")

	updated, _ := update(m, NewSessionMsg{})
	got := updated.(Model)

	if got.Session().HasAnalysis() {
		t.Error("analysis should be cleared")
	}
	if got.Session().Document() != "" {
		t.Error("document selection should be cleared")
	}
	if len(got.Session().Transcript()) != 0 {
		t.Error("transcript should be cleared")
	}
}

func TestNewSessionDuringUploadDiscardsLateAnalysis(t *testing.T) {
	m := newTestModel(t, &MockBackend{})

	updated, _ := update(m, OpenDocumentMsg{Path: "/tmp/lease.pdf"})
	m = updated.(Model)

	// The user starts over while the upload is still in flight
	updated, _ = update(m, NewSessionMsg{})
	m = updated.(Model)

	updated, cmd := update(m, AnalysisCompletedMsg{Analysis: testAnalysis("lease-old")})
	got := updated.(Model)

	if got.Session().HasAnalysis() {
		t.Error("analysis from before the reset should be discarded")
	}
	if got.Session().InsightPending() {
		t.Error("a discarded analysis must not start an insight fetch")
	}
	if cmd != nil {
		t.Error("no command should fire for a discarded analysis")
	}
}

func TestNewSessionDuringAskDropsLateFailure(t *testing.T) {
	m := newTestModel(t, &MockBackend{})
	m.Session().SelectDocument("/tmp/lease.pdf")
	m.Session().BeginSubmit()
	m.Session().CompleteSubmit(testAnalysis("lease-1"))
	m.Session().BeginAsk("q")

	updated, _ := update(m, NewSessionMsg{})
	m = updated.(Model)

	updated, _ = update(m, AskCompletedMsg{
		Question: "q",
		Err:      errors.New("Failed to get response"),
	})
	got := updated.(Model)

	if got.Session().Error() != "" {
		t.Errorf("Error = %q, a failure from before the reset should not surface", got.Session().Error())
	}
	if len(got.Session().Transcript()) != 0 {
		t.Error("transcript should stay empty")
	}
}

func TestCommandErrorShowsNotice(t *testing.T) {
	m := newTestModel(t, &MockBackend{})

	updated, _ := update(m, CommandErrorMsg{Command: "bogus", Error: "unknown command: /bogus (try /help)"})
	got := updated.(Model)

	if got.notice == "" {
		t.Error("command errors should surface in the notice line")
	}
}
