package ui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/normanking/leaseguard/internal/api"
	"github.com/normanking/leaseguard/pkg/lease"
)

// ═══════════════════════════════════════════════════════════════════════════════
// MOCK BACKEND FOR TESTING
// ═══════════════════════════════════════════════════════════════════════════════

type MockBackend struct {
	analysis    *lease.Analysis
	analysisErr error
	matches     []lease.SearchMatch
	searchErr   error
	avg         float64
	avgErr      error
	answer      string
	askErr      error
}

func (m *MockBackend) AnalyzeDocument(ctx context.Context, path string) (*lease.Analysis, error) {
	return m.analysis, m.analysisErr
}

func (m *MockBackend) Search(ctx context.Context, req api.SearchRequest) ([]lease.SearchMatch, error) {
	return m.matches, m.searchErr
}

func (m *MockBackend) AverageProcessingTime(ctx context.Context, metric, operation string, from, to time.Time) (float64, error) {
	return m.avg, m.avgErr
}

func (m *MockBackend) Ask(ctx context.Context, question, leaseID string) (string, error) {
	return m.answer, m.askErr
}

// ═══════════════════════════════════════════════════════════════════════════════
// COMMAND ROUTER TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func TestHandleCommand_Help(t *testing.T) {
	tests := []string{"/help", "/h", "/?"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			cmd := HandleCommand(input)
			msg := cmd()

			if _, ok := msg.(ShowHelpMsg); !ok {
				t.Errorf("HandleCommand(%q) returned %T, want ShowHelpMsg", input, msg)
			}
		})
	}
}

func TestHandleCommand_Open(t *testing.T) {
	cmd := HandleCommand("/open /tmp/lease.pdf")
	msg := cmd()

	open, ok := msg.(OpenDocumentMsg)
	if !ok {
		t.Fatalf("HandleCommand returned %T, want OpenDocumentMsg", msg)
	}
	if open.Path != "/tmp/lease.pdf" {
		t.Errorf("Path = %q, want %q", open.Path, "/tmp/lease.pdf")
	}
}

func TestHandleCommand_OpenPathWithSpaces(t *testing.T) {
	cmd := HandleCommand("/open /tmp/my lease scan.png")
	msg := cmd()

	open, ok := msg.(OpenDocumentMsg)
	if !ok {
		t.Fatalf("HandleCommand returned %T, want OpenDocumentMsg", msg)
	}
	if open.Path != "/tmp/my lease scan.png" {
		t.Errorf("Path = %q, want the full joined path", open.Path)
	}
}

func TestHandleCommand_OpenWithoutPath(t *testing.T) {
	cmd := HandleCommand("/open")
	msg := cmd()

	cmdErr, ok := msg.(CommandErrorMsg)
	if !ok {
		t.Fatalf("HandleCommand returned %T, want CommandErrorMsg", msg)
	}
	if cmdErr.Command != "open" {
		t.Errorf("Command = %q, want %q", cmdErr.Command, "open")
	}
}

func TestHandleCommand_New(t *testing.T) {
	tests := []string{"/new", "/n"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			cmd := HandleCommand(input)
			msg := cmd()

			if _, ok := msg.(NewSessionMsg); !ok {
				t.Errorf("HandleCommand(%q) returned %T, want NewSessionMsg", input, msg)
			}
		})
	}
}

func TestHandleCommand_Theme(t *testing.T) {
	tests := []string{"/theme", "/t"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			cmd := HandleCommand(input)
			msg := cmd()

			if _, ok := msg.(ToggleThemeMsg); !ok {
				t.Errorf("HandleCommand(%q) returned %T, want ToggleThemeMsg", input, msg)
			}
		})
	}
}

func TestHandleCommand_Quit(t *testing.T) {
	tests := []string{"/quit", "/q", "/exit"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			cmd := HandleCommand(input)
			msg := cmd()

			if _, ok := msg.(tea.QuitMsg); !ok {
				t.Errorf("HandleCommand(%q) returned %T, want tea.QuitMsg", input, msg)
			}
		})
	}
}

func TestHandleCommand_Unknown(t *testing.T) {
	cmd := HandleCommand("/bogus")
	msg := cmd()

	cmdErr, ok := msg.(CommandErrorMsg)
	if !ok {
		t.Fatalf("HandleCommand returned %T, want CommandErrorMsg", msg)
	}
	if cmdErr.Command != "bogus" {
		t.Errorf("Command = %q, want %q", cmdErr.Command, "bogus")
	}
}

func TestHandleCommand_CaseInsensitive(t *testing.T) {
	cmd := HandleCommand("/HELP")
	msg := cmd()

	if _, ok := msg.(ShowHelpMsg); !ok {
		t.Errorf("HandleCommand(/HELP) returned %T, want ShowHelpMsg", msg)
	}
}
