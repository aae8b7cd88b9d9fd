// Package api implements the HTTP client for the LeaseGuard backend.
// It covers the four remote operations the client depends on: document
// upload and analysis, hybrid search, analytics queries, and chat.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/normanking/leaseguard/pkg/lease"
)

// Security limits to prevent unbounded memory usage
const (
	// MaxErrorBodySize limits how much error response body we read (1MB)
	MaxErrorBodySize = 1 * 1024 * 1024
)

// readLimitedBody reads up to maxBytes from r, returning the bytes read.
// This is used for error responses to prevent unbounded memory allocation.
func readLimitedBody(r io.Reader, maxBytes int64) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, maxBytes))
}

// ═══════════════════════════════════════════════════════════════════════════════
// CLIENT
// ═══════════════════════════════════════════════════════════════════════════════

// Client talks to a LeaseGuard backend over HTTP.
type Client struct {
	endpoint string
	client   *http.Client
	log      zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Mostly used by
// tests that need custom transports.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithLogger attaches a zerolog logger for request tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithTimeouts sets the connection and whole-request timeouts.
func WithTimeouts(connect, request time.Duration) Option {
	return func(c *Client) {
		if t, ok := c.client.Transport.(*http.Transport); ok {
			t.ResponseHeaderTimeout = connect
		}
		c.client.Timeout = request
	}
}

// NewClient creates a Client for the given base endpoint, e.g.
// "http://127.0.0.1:3000". The endpoint must not include the /api
// prefix; each operation appends its own path.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		client: &http.Client{
			// Whole-request ceiling. Uploads push megabytes and the
			// server analyzes the document inline before answering.
			Timeout: 120 * time.Second,
			Transport: &http.Transport{
				ResponseHeaderTimeout: 10 * time.Second,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
			},
		},
		log: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Endpoint returns the configured base URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Available checks whether the backend is reachable. Any HTTP response
// counts; this only probes connectivity, not correctness.
func (c *Client) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", c.endpoint+"/", nil)
	if err != nil {
		return false
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, MaxErrorBodySize))

	return true
}

// ═══════════════════════════════════════════════════════════════════════════════
// WIRE TYPES
// ═══════════════════════════════════════════════════════════════════════════════

// SearchRequest is the body of a hybrid search call.
type SearchRequest struct {
	// Query is the search text.
	Query string `json:"query"`
	// LeaseID scopes results to one analyzed document.
	LeaseID string `json:"leaseId"`
	// Limit caps the number of returned passages.
	Limit int `json:"limit"`
	// Language selects the analyzer language, e.g. "en".
	Language string `json:"language"`
}

type searchResponse struct {
	Results []lease.SearchMatch `json:"results"`
}

type analyticsResponse struct {
	Stats struct {
		Avg float64 `json:"avg"`
	} `json:"stats"`
}

type chatRequest struct {
	Question string `json:"question"`
	LeaseID  string `json:"leaseId"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// extractError pulls the server's human-readable message out of a
// non-2xx response body, falling back to the supplied generic message
// when the body carries none.
func extractError(body io.Reader, fallback string) error {
	data, _ := readLimitedBody(body, MaxErrorBodySize)

	var er errorResponse
	if err := json.Unmarshal(data, &er); err == nil && er.Error != "" {
		return fmt.Errorf("%s", er.Error)
	}
	return fmt.Errorf("%s", fallback)
}

// ═══════════════════════════════════════════════════════════════════════════════
// OPERATIONS
// ═══════════════════════════════════════════════════════════════════════════════

// Search runs a hybrid (keyword plus semantic) search over the
// analyzed corpus, scoped to one lease.
func (c *Client) Search(ctx context.Context, req SearchRequest) ([]lease.SearchMatch, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.endpoint+"/api/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("op", "search").
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("search request finished")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, extractError(resp.Body, "search failed")
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return sr.Results, nil
}

// AverageProcessingTime queries the analytics endpoint for the mean of
// the given metric over [from, to]. The window bounds travel as epoch
// milliseconds.
func (c *Client) AverageProcessingTime(ctx context.Context, metric, operation string, from, to time.Time) (float64, error) {
	q := url.Values{}
	q.Set("metric", metric)
	q.Set("operation", operation)
	q.Set("from", strconv.FormatInt(from.UnixMilli(), 10))
	q.Set("to", strconv.FormatInt(to.UnixMilli(), 10))

	httpReq, err := http.NewRequestWithContext(ctx, "GET", c.endpoint+"/api/analytics?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("op", "analytics").
		Str("metric", metric).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("analytics request finished")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, extractError(resp.Body, "analytics query failed")
	}

	var ar analyticsResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}

	return ar.Stats.Avg, nil
}

// Ask sends a question about an analyzed lease and returns the
// assistant's reply text. The question goes over the wire trimmed;
// callers keep their own untrimmed copy for display.
func (c *Client) Ask(ctx context.Context, question, leaseID string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Question: strings.TrimSpace(question),
		LeaseID:  leaseID,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.endpoint+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("op", "chat").
		Str("lease_id", leaseID).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("chat request finished")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", extractError(resp.Body, "Failed to get response")
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return cr.Response, nil
}
