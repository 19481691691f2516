package soccer

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/teamarr/internal/upstream"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *upstream.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return upstream.NewClient(srv.URL, "", "", slog.Default())
}

func TestCrawlLeagueBuildsLeagueFromUpstreamResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"sports": [{
				"leagues": [{
					"name": "English Premier League",
					"abbreviation": "EPL",
					"logos": [{"href": "https://example.com/epl.png"}],
					"teams": [
						{"team": {"id": "359"}},
						{"team": {"id": "360"}}
					]
				}]
			}]
		}`))
	})

	out := crawlLeague(context.Background(), client, "eng.1")

	require.NoError(t, out.err)
	assert.Equal(t, "eng.1", out.league.Slug)
	assert.Equal(t, "English Premier League", out.league.Name)
	assert.Equal(t, "EPL", out.league.Abbreviation)
	assert.Equal(t, "https://example.com/epl.png", out.league.LogoURL)
	assert.Equal(t, 2, out.league.TeamCount)
	assert.Equal(t, []string{"359", "360"}, out.providerTeamIDs)
	assert.Equal(t, DeriveTags("eng.1"), out.league.Tags)
}

func TestCrawlLeagueHandlesEmptyLeagueList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sports": []}`))
	})

	out := crawlLeague(context.Background(), client, "xyz.1")

	require.NoError(t, out.err)
	assert.Empty(t, out.providerTeamIDs)
	assert.Equal(t, "xyz.1", out.league.Slug)
}

func TestCrawlLeaguePropagatesUpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	out := crawlLeague(context.Background(), client, "eng.1")

	require.Error(t, out.err)
	assert.ErrorIs(t, out.err, upstream.ErrUpstreamUnavailable)
}

func TestCrawlLeagueSkipsTeamsWithEmptyID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"sports": [{
				"leagues": [{
					"name": "Test League",
					"teams": [
						{"team": {"id": "1"}},
						{"team": {"id": ""}}
					]
				}]
			}]
		}`))
	})

	out := crawlLeague(context.Background(), client, "test.1")

	require.NoError(t, out.err)
	assert.Equal(t, []string{"1"}, out.providerTeamIDs)
	assert.Equal(t, 1, out.league.TeamCount)
}
