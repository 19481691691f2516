package enrichment

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/albapepper/teamarr/internal/model"
	"github.com/albapepper/teamarr/internal/upstream"
)

// LeagueLookup resolves the set of league slugs a soccer team participates
// in, backed by Tier S's soccer_team_leagues reverse index.
type LeagueLookup interface {
	LeaguesForTeam(ctx context.Context, providerTeamID string) ([]string, error)
}

// soccerFanoutConcurrency caps the concurrent upstream calls per team in
// soccer's multi-league fan-out.
const soccerFanoutConcurrency = 5

// FetchSoccerEvents looks up every league a team plays in and fetches that
// team's full per-league schedule in parallel — not a single day's
// scoreboard — so the merged result carries both completed history (for
// streaks/H2H) and the full days_ahead lookahead (for future programmes),
// the same guarantee non-soccer sports get from FetchTeamSchedule. Events
// are merged by id and each is stamped with its SourceLeague.
func FetchSoccerEvents(ctx context.Context, client *upstream.Client, lookup LeagueLookup, providerTeamID string) ([]model.Event, error) {
	leagues, err := lookup.LeaguesForTeam(ctx, providerTeamID)
	if err != nil {
		return nil, err
	}
	if len(leagues) == 0 {
		return nil, nil
	}

	type leagueResult struct {
		league string
		events []model.Event
	}
	results := make([]leagueResult, len(leagues))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(soccerFanoutConcurrency)
	for i, league := range leagues {
		i, league := i, league
		g.Go(func() error {
			doc, err := client.FetchTeamSchedule(gctx, "soccer", league, providerTeamID)
			if err != nil {
				// One league failing must not sink the whole fan-out; this
				// team simply has no events from that league.
				return nil
			}
			events := upstream.Events(doc.Events, "espn", "soccer", league, league)
			results[i] = leagueResult{league: league, events: events}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make(map[string]model.Event)
	order := make([]string, 0)
	for _, r := range results {
		for _, e := range r.events {
			if _, seen := merged[e.ID]; !seen {
				order = append(order, e.ID)
			}
			merged[e.ID] = e
		}
	}

	out := make([]model.Event, 0, len(order))
	for _, id := range order {
		out = append(out, merged[id])
	}
	return out, nil
}
