package ui

import (
	"strings"
	"testing"

	"github.com/normanking/leaseguard/pkg/lease"
)

func TestMatchDetail(t *testing.T) {
	score := 0.8734
	match := lease.SearchMatch{
		Text:     "Late fee of 10% per month",
		Score:    &score,
		Metadata: map[string]any{"severity": "high"},
	}

	detail := matchDetail(match)
	if !strings.Contains(detail, "score: 0.873") {
		t.Errorf("detail = %q, want the relevance score", detail)
	}
	if !strings.Contains(detail, "severity: high") {
		t.Errorf("detail = %q, want the severity tag", detail)
	}

	if got := matchDetail(lease.SearchMatch{Text: "bare match"}); got != "" {
		t.Errorf("detail for a match without score or metadata = %q, want empty", got)
	}
}

func TestRenderInsightsShowsMatchDetail(t *testing.T) {
	m := newTestModel(t, &MockBackend{})
	m.Session().SelectDocument("/tmp/lease.pdf")
	m.Session().BeginSubmit()
	m.Session().CompleteSubmit(testAnalysis("lease-1"))
	m.Session().BeginInsights()

	score := 0.91
	m.Session().ApplyInsights("lease-1", lease.InsightSnapshot{
		Matches: []lease.SearchMatch{{
			Text:     "Late entry fee clause",
			Score:    &score,
			Metadata: map[string]any{"severity": "critical"},
		}},
		AvgProcessingMs: 120,
	}, "")

	out := renderInsights(m)
	if !strings.Contains(out, "score: 0.910") {
		t.Errorf("insight panel should show the match score, got:\n%s", out)
	}
	if !strings.Contains(out, "severity: critical") {
		t.Errorf("insight panel should show the severity tag, got:\n%s", out)
	}
}
