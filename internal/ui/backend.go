// Package ui provides the Charmbracelet TUI framework integration for LeaseGuard.
// It defines the interface between the Bubble Tea UI and the analysis service.
package ui

import (
	"context"
	"time"

	"github.com/normanking/leaseguard/internal/api"
	"github.com/normanking/leaseguard/pkg/lease"
)

// Backend defines the interface for TUI-service communication.
// This abstraction allows the TUI to work with different backend implementations
// (the HTTP client, a mock for testing, etc.). *api.Client satisfies it directly.
type Backend interface {
	// AnalyzeDocument uploads a lease document and returns its analysis.
	AnalyzeDocument(ctx context.Context, path string) (*lease.Analysis, error)

	// Search runs a hybrid search over the indexed lease content.
	Search(ctx context.Context, req api.SearchRequest) ([]lease.SearchMatch, error)

	// AverageProcessingTime returns the mean value of the given metric over
	// the [from, to] window.
	AverageProcessingTime(ctx context.Context, metric, operation string, from, to time.Time) (float64, error)

	// Ask sends a question about the analyzed lease and returns the reply.
	Ask(ctx context.Context, question, leaseID string) (string, error)
}
