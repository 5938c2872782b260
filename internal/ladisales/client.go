// Package ladisales is the upstream client adapter for the LaDiSales REST
// API. It owns request construction, API key injection, response parsing,
// error classification, bounded retries, and pagination traversal. The
// gateway keeps no copy of upstream data; every call is a fresh round trip.
package ladisales

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	apiKeyHeader = "Api-Key"

	// maxResponseBytes bounds how much of an upstream body is read, so a
	// misbehaving upstream cannot exhaust memory.
	maxResponseBytes = 8 << 20

	// errSnippetLen bounds how much upstream error body ends up in logs and
	// error payloads.
	errSnippetLen = 512
)

// Document is a decoded upstream JSON object, passed through to callers
// without reinterpretation. Entity payload shapes belong to LaDiSales.
type Document = map[string]any

// Client performs authenticated calls against the LaDiSales API. It is safe
// for concurrent use; the underlying http.Client pools connections with a
// bounded number of idle connections per host.
type Client struct {
	httpClient      *http.Client
	baseURL         string
	locationBaseURL string
	apiKey          string
	timeout         time.Duration
	retryMax        int
	maxPages        int
	logger          *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLocationBaseURL points address lookups at a separate upstream host.
func WithLocationBaseURL(u string) Option {
	return func(c *Client) { c.locationBaseURL = u }
}

// WithTimeout bounds each upstream attempt.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRetryMax sets how many additional attempts a retryable failure gets.
func WithRetryMax(n int) Option {
	return func(c *Client) { c.retryMax = n }
}

// WithMaxPages caps pagination traversal.
func WithMaxPages(n int) Option {
	return func(c *Client) { c.maxPages = n }
}

// WithLogger sets the client logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// New creates a Client for the given base URL and API key.
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if apiKey == "" {
		return nil, errors.New("API key is required")
	}

	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		timeout:  10 * time.Second,
		retryMax: 2,
		maxPages: 50,
		logger:   slog.Default().WithGroup("ladisales"),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.locationBaseURL == "" {
		c.locationBaseURL = c.baseURL
	} else {
		c.locationBaseURL = strings.TrimRight(c.locationBaseURL, "/")
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        32,
				MaxIdleConnsPerHost: 8,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	return c, nil
}

// post performs one upstream operation with retries. All LaDiSales endpoints
// are JSON-over-POST; body may be nil for bodiless operations.
func (c *Client) post(ctx context.Context, base, op string, body any) (Document, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 100 * time.Millisecond
	bo.MaxInterval = 2 * time.Second

	attempt := 0
	operation := func() (Document, error) {
		attempt++
		doc, err := c.roundTrip(ctx, base, op, body)
		if err == nil {
			return doc, nil
		}
		if !retryable(err) {
			return nil, backoff.Permanent(err)
		}
		c.logger.Warn("upstream call failed",
			"op", op,
			"attempt", attempt,
			"kind", KindOf(err).String(),
			"error", err)
		return nil, err
	}

	doc, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(uint(c.retryMax+1)),
	)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) {
			return nil, apiErr
		}
		// Context cancellation between attempts surfaces bare.
		return nil, &Error{Kind: KindUpstreamUnavailable, Op: op, Err: err}
	}
	return doc, nil
}

// roundTrip performs a single attempt and classifies the outcome.
func (c *Client) roundTrip(ctx context.Context, base, op string, body any) (Document, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, NewValidation(op, "encoding request body: %v", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/"+op, payload)
	if err != nil {
		return nil, NewValidation(op, "building request: %v", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindUpstreamUnavailable, Op: op, Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &Error{Kind: KindUpstreamUnavailable, Op: op, Err: err}
	}

	switch {
	case resp.StatusCode >= 500:
		return nil, &Error{
			Kind:   KindUpstreamFault,
			Op:     op,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("%s", snippet(raw)),
		}
	case resp.StatusCode >= 400:
		return nil, &Error{
			Kind:   KindUpstreamRejected,
			Op:     op,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("%s", snippet(raw)),
		}
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &Error{
			Kind:   KindUpstreamFault,
			Op:     op,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("decoding response: %w", err),
		}
	}
	return doc, nil
}

func snippet(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if len(s) > errSnippetLen {
		return s[:errSnippetLen] + "..."
	}
	if s == "" {
		return "empty response body"
	}
	return s
}
