package enrichment

import (
	"context"
	"time"

	"github.com/albapepper/teamarr/internal/cache"
	"github.com/albapepper/teamarr/internal/config"
	"github.com/albapepper/teamarr/internal/model"
	"github.com/albapepper/teamarr/internal/upstream"
)

// TeamContext bundles everything the template engine needs about one team at
// generation time: its full near-term schedule, season aggregates, derived
// streaks, and head coach.
type TeamContext struct {
	Schedule []model.Event
	Stats    model.TeamStats
	Streaks  model.Streaks
	Coach    string
	Skipped  SkipCounts
}

// SkipCounts tallies the enrichment calls that degraded gracefully to "no
// data" for one team, surfaced so the generation-status channel can report
// how much of the requested detail a run actually delivered.
type SkipCounts struct {
	StatsUnavailable      bool // FetchTeam failed or returned nothing
	CoachUnavailable      bool // FetchRoster failed or no coach listed
	ScoreboardUnavailable bool // today's scoreboard fetch failed
	LeadersMissing        int // finished games in the schedule with no player leaders
	OddsMissing           int // scheduled games in the schedule with no odds
}

func countMissingLeadersAndOdds(schedule []model.Event) (leaders, odds int) {
	for _, e := range schedule {
		if e.Status == model.StatusFinal && len(e.PlayerLeaders) == 0 {
			leaders++
		}
		if e.Status == model.StatusScheduled && e.Odds == nil {
			odds++
		}
	}
	return leaders, odds
}

// Service is the Enrichment Service (C3): it turns raw upstream documents,
// routed through Tier E, into the derived context the rest of the pipeline
// consumes.
type Service struct {
	rc     *cache.RunContext
	lookup LeagueLookup // consulted only for soccer teams; may be nil
}

// NewService builds an enrichment Service bound to one generation run.
func NewService(rc *cache.RunContext, lookup LeagueLookup) *Service {
	return &Service{rc: rc, lookup: lookup}
}

// BuildTeamContext fetches and merges the team's schedule and today's
// scoreboard, then derives streaks, stats, and head coach.
func (s *Service) BuildTeamContext(ctx context.Context, team model.Team, today time.Time) (*TeamContext, error) {
	defaults, ok := config.SportRegistry[team.LeagueCode]
	if !ok {
		defaults = config.SportRegistry["nfl"]
	}

	var skipped SkipCounts

	schedule, err := s.fetchSchedule(ctx, team, defaults, today)
	if err != nil {
		return nil, err
	}

	scoreboard, sbErr := s.fetchScoreboard(ctx, team, defaults, today)
	if sbErr == nil && scoreboard != nil {
		schedule = MergeScoreboard(schedule, scoreboard.Events)
	} else if sbErr != nil {
		skipped.ScoreboardUnavailable = true
	}

	schedule = s.refreshRecentFinals(ctx, team, defaults, schedule, today)

	teamDoc, err := cache.GetOrFetch(s.rc.TierE, cache.TeamKey(team.LeagueCode, team.ProviderTeamID), func() (*upstream.TeamDoc, error) {
		return s.rc.Client.FetchTeam(ctx, defaults.Sport, defaults.LeagueCode, team.ProviderTeamID)
	})
	var stats model.TeamStats
	if err == nil && teamDoc != nil {
		stats = upstream.TeamStatsFromDoc(teamDoc)
	} else {
		skipped.StatsUnavailable = true
	}

	streaks := ComputeStreaks(schedule, team.ProviderTeamID)
	stats.StreakCount = streaks.Current

	coach := ""
	rosterDoc, err := cache.GetOrFetch(s.rc.TierE, cache.RosterKey(team.LeagueCode, team.ProviderTeamID), func() (*upstream.RosterDoc, error) {
		return s.rc.Client.FetchRoster(ctx, defaults.Sport, defaults.LeagueCode, team.ProviderTeamID)
	})
	if err == nil {
		coach = upstream.HeadCoach(rosterDoc)
	}
	if coach == "" {
		skipped.CoachUnavailable = true
	}
	stats.HeadCoach = coach

	skipped.LeadersMissing, skipped.OddsMissing = countMissingLeadersAndOdds(schedule)

	return &TeamContext{Schedule: schedule, Stats: stats, Streaks: streaks, Coach: coach, Skipped: skipped}, nil
}

// finalScoreRefreshWindow bounds how far back a completed event is worth
// re-fetching individually: scoreboard/schedule responses for very recent
// games sometimes lag the authoritative final score for a few hours.
const finalScoreRefreshWindow = 7 * 24 * time.Hour

// refreshRecentFinals re-fetches, one event at a time, any schedule entry
// that kicked off in the past within the refresh window but isn't yet
// marked final — the scoreboard/schedule endpoints occasionally report a
// recently-finished game as still live or in progress.
func (s *Service) refreshRecentFinals(ctx context.Context, team model.Team, defaults config.SportDefaults, schedule []model.Event, now time.Time) []model.Event {
	for i, e := range schedule {
		if e.Status == model.StatusFinal {
			continue
		}
		age := now.Sub(e.StartUTC)
		if age <= 0 || age > finalScoreRefreshWindow {
			continue
		}
		leagueCode := defaults.LeagueCode
		if e.SourceLeague != "" {
			leagueCode = e.SourceLeague // soccer: the event's own league, not the team's configured default
		}
		doc, err := cache.GetOrFetch(s.rc.TierE, cache.EventKey(leagueCode, e.ID), func() (*upstream.EventDoc, error) {
			return s.rc.Client.FetchEvent(ctx, defaults.Sport, leagueCode, e.ID)
		})
		if err != nil || doc == nil {
			continue
		}
		schedule[i] = upstream.RefreshFromEventDoc(e, doc, defaults.Sport)
	}
	return schedule
}

func (s *Service) fetchSchedule(ctx context.Context, team model.Team, defaults config.SportDefaults, today time.Time) ([]model.Event, error) {
	if defaults.Sport == "soccer" && s.lookup != nil {
		events, err := FetchSoccerEvents(ctx, s.rc.Client, s.lookup, team.ProviderTeamID)
		if err != nil {
			return nil, err
		}
		return events, nil
	}

	doc, err := cache.GetOrFetch(s.rc.TierE, cache.ScheduleKey(team.LeagueCode, team.ProviderTeamID), func() (*upstream.ScheduleDoc, error) {
		return s.rc.Client.FetchTeamSchedule(ctx, defaults.Sport, defaults.LeagueCode, team.ProviderTeamID)
	})
	if err != nil || doc == nil {
		return nil, err
	}
	return upstream.Events(doc.Events, "espn", defaults.Sport, team.LeagueCode, ""), nil
}

func (s *Service) fetchScoreboard(ctx context.Context, team model.Team, defaults config.SportDefaults, today time.Time) (*scoreboardResult, error) {
	if defaults.Sport == "soccer" {
		return nil, nil // soccer's per-league team schedules already cover past and future games
	}
	doc, err := cache.GetOrFetch(s.rc.TierE, cache.ScoreboardKey(team.LeagueCode, today.Format("2006-01-02")), func() (*upstream.ScoreboardDoc, error) {
		return s.rc.Client.FetchScoreboard(ctx, defaults.Sport, defaults.LeagueCode, today)
	})
	if err != nil || doc == nil {
		return nil, err
	}
	return &scoreboardResult{Events: upstream.Events(doc.Events, "espn", defaults.Sport, team.LeagueCode, "")}, nil
}

type scoreboardResult struct {
	Events []model.Event
}
