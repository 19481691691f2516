package upstream

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, espnURL string) *Client {
	t.Helper()
	return NewClient(espnURL, "", "", slog.Default())
}

func TestFetchScoreboardSucceedsOnFirstTry(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"events":[]}`))
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	doc, err := c.FetchScoreboard(context.Background(), "football", "nfl", time.Now())

	require.NoError(t, err)
	assert.NotNil(t, doc)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetchScoreboardRetriesOn5xxThenSucceeds(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"events":[]}`))
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	doc, err := c.FetchScoreboard(context.Background(), "football", "nfl", time.Now())

	require.NoError(t, err)
	assert.NotNil(t, doc)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestFetchScoreboardDoesNotRetryOn4xx(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	_, err := c.FetchScoreboard(context.Background(), "football", "nfl", time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetchScoreboardExhaustsRetryBudgetOnSustained5xx(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	_, err := c.FetchScoreboard(context.Background(), "football", "nfl", time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.Equal(t, int32(maxAttempts), atomic.LoadInt32(&calls))
}

func TestFetchTeamReturnsMalformedOnBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{not valid json`))
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	_, err := c.FetchTeam(context.Background(), "football", "nfl", "1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamMalformed)
}

func TestLinearBackoffScheduleIsOneTwoThenStop(t *testing.T) {
	lb := &linearBackoff{base: time.Second, maxAttempts: maxAttempts}

	assert.Equal(t, time.Second, lb.NextBackOff())
	assert.Equal(t, 2*time.Second, lb.NextBackOff())
	assert.Equal(t, backoff.Stop, lb.NextBackOff())

	lb.Reset()
	assert.Equal(t, time.Second, lb.NextBackOff())
}

func TestTruncateLeavesShortStringsUntouched(t *testing.T) {
	assert.Equal(t, "short", truncate([]byte("short"), 200))
}

func TestTruncateEllipsesLongStrings(t *testing.T) {
	b := make([]byte, 250)
	for i := range b {
		b[i] = 'x'
	}
	got := truncate(b, 200)
	assert.Equal(t, 203, len(got))
	assert.Equal(t, "...", got[200:])
}
