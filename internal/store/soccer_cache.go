package store

import (
	"context"
	"fmt"
	"time"

	"github.com/albapepper/teamarr/internal/config"
)

// League is one entry of the Tier S soccer_leagues table.
type League struct {
	Slug          string
	Name          string
	Abbreviation  string
	Tags          []string
	LogoURL       string
	TeamCount     int
	LastRefreshed time.Time
}

// LeaguesForTeam implements enrichment.LeagueLookup against Tier S.
func (p *Pool) LeaguesForTeam(ctx context.Context, providerTeamID string) ([]string, error) {
	rows, err := p.Query(ctx, "soccer_leagues_for_team", providerTeamID)
	if err != nil {
		return nil, fmt.Errorf("leagues for team %s: %w", providerTeamID, err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("scan league slug: %w", err)
		}
		slugs = append(slugs, slug)
	}
	return slugs, rows.Err()
}

// UpsertLeague writes one league's metadata and its member teams.
func (p *Pool) UpsertLeague(ctx context.Context, league League, providerTeamIDs []string) error {
	if _, err := p.Exec(ctx, "upsert_soccer_league", league.Slug, league.Name, league.Abbreviation, league.Tags, league.LogoURL, league.TeamCount); err != nil {
		return fmt.Errorf("upsert league %s: %w", league.Slug, err)
	}
	if _, err := p.Exec(ctx, "clear_team_leagues", league.Slug); err != nil {
		return fmt.Errorf("clear team leagues for %s: %w", league.Slug, err)
	}
	for _, id := range providerTeamIDs {
		if _, err := p.Exec(ctx, "upsert_team_league", id, league.Slug); err != nil {
			return fmt.Errorf("upsert team league %s/%s: %w", id, league.Slug, err)
		}
	}
	return nil
}

// RecordRefresh stamps soccer_cache_meta after a full Tier S refresh.
func (p *Pool) RecordRefresh(ctx context.Context, leagueCount, teamCount int, duration time.Duration) error {
	_, err := p.Exec(ctx, "record_soccer_refresh", leagueCount, teamCount, duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("record soccer refresh: %w", err)
	}
	return nil
}

// IsStale reports whether Tier S was last refreshed more than cfg's staleness
// window ago, or has never been refreshed.
func (p *Pool) IsStale(ctx context.Context, cfg *config.Config) (bool, error) {
	var lastRefreshed time.Time
	err := p.QueryRow(ctx, "soccer_cache_staleness").Scan(&lastRefreshed)
	if err != nil {
		return true, nil // no row yet: treat as stale
	}
	return time.Since(lastRefreshed) > cfg.SoccerRefreshStaleness, nil
}
