package soccer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/albapepper/teamarr/internal/config"
	"github.com/albapepper/teamarr/internal/store"
	"github.com/albapepper/teamarr/internal/upstream"
)

// leagueWork is one crawl job: fetch a league's team list and stage its
// Tier S rows.
type leagueWork struct {
	slug string
}

type leagueOutcome struct {
	league          store.League
	providerTeamIDs []string
	err             error
}

// Result reports how much a Tier S refresh actually did, mirroring the
// documented RefreshSoccerCache control-plane contract.
type Result struct {
	LeaguesProcessed int
	TeamsIndexed     int
	Duration         time.Duration
}

// Refresh crawls every known league with a pool of cfg.SoccerRefreshWorkers
// workers (50 by default, at least 1)
// and writes the resulting soccer_leagues / soccer_team_leagues rows. It is
// idempotent: re-running with unchanged upstream data leaves team_count and
// tags unchanged.
func Refresh(ctx context.Context, client *upstream.Client, pool *store.Pool, cfg *config.Config, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	workers := cfg.SoccerRefreshWorkers
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan leagueWork, len(KnownLeagueSlugs))
	results := make(chan leagueOutcome, len(KnownLeagueSlugs))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results <- crawlLeague(ctx, client, job.slug)
			}
		}()
	}

	for _, slug := range KnownLeagueSlugs {
		jobs <- leagueWork{slug: slug}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	var leagueCount, teamCount int
	for res := range results {
		if res.err != nil {
			logger.Warn("soccer league crawl failed", "league", res.league.Slug, "error", res.err)
			continue
		}
		if err := pool.UpsertLeague(ctx, res.league, res.providerTeamIDs); err != nil {
			logger.Warn("soccer league upsert failed", "league", res.league.Slug, "error", err)
			continue
		}
		leagueCount++
		teamCount += len(res.providerTeamIDs)
	}

	duration := time.Since(start)
	logger.Info("soccer cache refresh finished",
		"leagues", leagueCount, "teams", teamCount, "duration", duration.Round(time.Millisecond))

	result := Result{LeaguesProcessed: leagueCount, TeamsIndexed: teamCount, Duration: duration}
	if err := pool.RecordRefresh(ctx, leagueCount, teamCount, duration); err != nil {
		return result, err
	}
	return result, nil
}

func crawlLeague(ctx context.Context, client *upstream.Client, slug string) leagueOutcome {
	doc, err := client.FetchLeagueTeams(ctx, slug)
	if err != nil {
		return leagueOutcome{league: store.League{Slug: slug}, err: err}
	}
	if len(doc.Sports) == 0 || len(doc.Sports[0].Leagues) == 0 {
		return leagueOutcome{league: store.League{Slug: slug}, err: nil, providerTeamIDs: nil}
	}
	l := doc.Sports[0].Leagues[0]

	ids := make([]string, 0, len(l.Teams))
	for _, t := range l.Teams {
		if t.Team.ID != "" {
			ids = append(ids, t.Team.ID)
		}
	}

	logo := ""
	if len(l.Logos) > 0 {
		logo = l.Logos[0].Href
	}

	return leagueOutcome{
		league: store.League{
			Slug:         slug,
			Name:         l.Name,
			Abbreviation: l.Abbreviation,
			Tags:         DeriveTags(slug),
			LogoURL:      logo,
			TeamCount:    len(ids),
		},
		providerTeamIDs: ids,
	}
}
