// Package insight aggregates the two fetches that run after a lease
// analysis lands: a hybrid search for fee-related passages and an
// analytics query for the mean processing time over the trailing day.
//
// The two halves are independent. Each falls back to its
// empty-equivalent on failure so one slow or broken backend never
// blanks the other half of the panel.
package insight

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/normanking/leaseguard/internal/api"
	"github.com/normanking/leaseguard/internal/logging"
	"github.com/normanking/leaseguard/pkg/lease"
)

// Fixed parameters of the insight fetches. The panel always shows the
// same slice of data, so these are constants rather than config.
const (
	// FeeQuery is the hybrid search query for the passages panel.
	FeeQuery = "fee entry"
	// MatchLimit caps how many passages the panel shows.
	MatchLimit = 3
	// QueryLanguage is the default analyzer language.
	QueryLanguage = "en"

	// MetricProcessingTime is the analytics metric name.
	MetricProcessingTime = "processing_time"
	// OperationTotal selects the end-to-end processing measurement.
	OperationTotal = "total_processing"
	// Window is the trailing period the average covers.
	Window = 24 * time.Hour
)

// Fetcher is the slice of the backend client the aggregation needs.
type Fetcher interface {
	Search(ctx context.Context, req api.SearchRequest) ([]lease.SearchMatch, error)
	AverageProcessingTime(ctx context.Context, metric, operation string, from, to time.Time) (float64, error)
}

// Collect runs both insight fetches concurrently for the given lease
// and merges the results. Per-call failures, panics included, degrade
// to the empty-equivalent for that half (no matches, zero average) and
// are not reported as errors. The returned error is non-nil only when
// the aggregation as a whole cannot produce fresh data, e.g. a missing
// lease id or a cancelled context; the snapshot then holds both
// fallbacks.
func Collect(ctx context.Context, f Fetcher, leaseID string) (lease.InsightSnapshot, error) {
	log := logging.Global().WithComponent("insight")
	fallback := lease.InsightSnapshot{Matches: []lease.SearchMatch{}}

	if leaseID == "" {
		return fallback, fmt.Errorf("collect insights: missing lease id")
	}

	var (
		wg      sync.WaitGroup
		matches = []lease.SearchMatch{}
		avgMs   float64
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Error("fee passage search panicked, showing none: %v", r)
			}
		}()
		results, ferr := f.Search(ctx, api.SearchRequest{
			Query:    FeeQuery,
			LeaseID:  leaseID,
			Limit:    MatchLimit,
			Language: QueryLanguage,
		})
		if ferr != nil {
			log.Warn("fee passage search failed, showing none: %v", ferr)
			return
		}
		if len(results) > MatchLimit {
			results = results[:MatchLimit]
		}
		if results != nil {
			matches = results
		}
	}()

	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Error("processing time query panicked, showing zero: %v", r)
			}
		}()
		now := time.Now()
		avg, ferr := f.AverageProcessingTime(ctx, MetricProcessingTime, OperationTotal, now.Add(-Window), now)
		if ferr != nil {
			log.Warn("processing time query failed, showing zero: %v", ferr)
			return
		}
		avgMs = avg
	}()

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return fallback, fmt.Errorf("collect insights: %w", err)
	}

	return lease.InsightSnapshot{
		Matches:         matches,
		AvgProcessingMs: avgMs,
	}, nil
}
