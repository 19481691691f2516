// Package upstream provides the HTTP client for ESPN (primary) and
// TheSportsDB (soccer cross-reference) and normalizes their raw JSON into
// the canonical types in package model.
//
// Retry/backoff uses cenkalti/backoff for a fixed schedule (3 attempts,
// waiting 1s and then 2s between them), and
// sony/gobreaker wraps each host so a sustained outage fails fast instead
// of re-exhausting the full retry budget on every call.
package upstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

// ErrUpstreamUnavailable is returned after the retry budget is exhausted or
// the circuit breaker is open. Callers treat this as "no data" and never
// escalate.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// ErrUpstreamMalformed signals a schema-drift / decode failure.
var ErrUpstreamMalformed = errors.New("upstream response malformed")

const (
	maxAttempts       = 3
	backoffBase       = 1 * time.Second
	perAttemptTimeout = 10 * time.Second
)

// Client is the shared, process-wide HTTP client for both upstream hosts
//.
type Client struct {
	http    *http.Client
	logger  *slog.Logger
	limiter *rate.Limiter

	espnBreaker *gobreaker.CircuitBreaker[[]byte]
	tsdbBreaker *gobreaker.CircuitBreaker[[]byte]

	espnBaseURL string
	tsdbBaseURL string
	tsdbAPIKey  string
}

// NewClient builds a Client with a connection pool sized for high
// concurrency against the primary host and a breaker per host.
func NewClient(espnBaseURL, tsdbBaseURL, tsdbAPIKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	transport := &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 120,
		MaxConnsPerHost:     120,
		IdleConnTimeout:     90 * time.Second,
	}
	return &Client{
		http:        &http.Client{Transport: transport, Timeout: perAttemptTimeout},
		logger:      logger,
		limiter:     rate.NewLimiter(rate.Limit(50), 10),
		espnBreaker: newBreaker("espn"),
		tsdbBreaker: newBreaker("tsdb"),
		espnBaseURL: espnBaseURL,
		tsdbBaseURL: tsdbBaseURL,
		tsdbAPIKey:  tsdbAPIKey,
	}
}

func newBreaker(name string) *gobreaker.CircuitBreaker[[]byte] {
	settings := gobreaker.Settings[[]byte]{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= 10 && float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
	}
	return gobreaker.NewCircuitBreaker[[]byte](settings)
}

// getJSON issues a GET with retry (3 attempts, 1s then 2s backoff) and
// breaker protection, returning the raw response body on HTTP 200.
func (c *Client) getJSON(ctx context.Context, breaker *gobreaker.CircuitBreaker[[]byte], url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	attempts := 0
	body, err := breaker.Execute(func() ([]byte, error) {
		var result []byte
		operation := func() error {
			attempts++
			b, retryable, err := c.doOnce(ctx, url)
			if err == nil {
				result = b
				return nil
			}
			if !retryable {
				return backoff.Permanent(err)
			}
			return err
		}

		bo := backoff.WithContext(&linearBackoff{base: backoffBase, maxAttempts: maxAttempts}, ctx)
		if err := backoff.Retry(operation, bo); err != nil {
			return nil, err
		}
		return result, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.logger.Warn("circuit breaker open, skipping upstream call", "url", url)
			return nil, fmt.Errorf("%w: breaker open: %s", ErrUpstreamUnavailable, url)
		}
		c.logger.Warn("upstream call failed after retries", "url", url, "attempts", attempts, "error", err)
		return nil, fmt.Errorf("%w: %s: %v", ErrUpstreamUnavailable, url, err)
	}
	return body, nil
}

// doOnce performs a single HTTP round-trip. retryable reports whether the
// failure class is one worth retrying (connection error, timeout, 5xx, 429)
// as opposed to other 4xx which must not be retried.
func (c *Client) doOnce(ctx context.Context, url string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, true, err // connection error / timeout
	}
	defer resp.Body.Close()

	b, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, true, fmt.Errorf("read body: %w", readErr)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return b, false, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, true, fmt.Errorf("http 429")
	case resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("http %d", resp.StatusCode)
	default:
		return nil, false, fmt.Errorf("http %d: %s", resp.StatusCode, truncate(b, 200))
	}
}

// linearBackoff implements backoff.BackOff with a fixed schedule: after
// attempt 1 it waits 1s, after attempt 2 it waits 2s, and after attempt
// maxAttempts (3) it stops.
type linearBackoff struct {
	base        time.Duration
	maxAttempts int
	attempt     int
}

func (l *linearBackoff) NextBackOff() time.Duration {
	l.attempt++
	if l.attempt >= l.maxAttempts {
		return backoff.Stop
	}
	return l.base * time.Duration(l.attempt)
}

func (l *linearBackoff) Reset() { l.attempt = 0 }

func decodeJSON[T any](body []byte) (T, error) {
	var v T
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&v); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrUpstreamMalformed, err)
	}
	return v, nil
}

func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
