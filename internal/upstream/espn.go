package upstream

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/albapepper/teamarr/internal/model"
)

// espnCoreBaseURL is the separate Core-API host used only for basketball
// season leaders.
const espnCoreBaseURL = "https://sports.core.api.espn.com/v2/sports"

// collegeGroupParam returns the "groups" query parameter ESPN requires for
// full D1/FBS scoreboard coverage: men's/women's basketball -> 50,
// FBS football -> 80. Empty for non-college leagues.
func collegeGroupParam(sport, leagueCode string) string {
	switch leagueCode {
	case "mens-college-basketball", "womens-college-basketball":
		return "50"
	case "college-football":
		return "80"
	}
	return ""
}

// FetchScoreboard fetches the daily scoreboard for a league/date.
// On upstream failure it returns (nil, ErrUpstreamUnavailable) — the caller
// treats that as "no data for this day" and falls back to team schedules
//.
func (c *Client) FetchScoreboard(ctx context.Context, sport, leagueCode string, date time.Time) (*ScoreboardDoc, error) {
	q := url.Values{}
	q.Set("dates", date.Format("20060102"))
	if g := collegeGroupParam(sport, leagueCode); g != "" {
		q.Set("groups", g)
	}
	u := fmt.Sprintf("%s/%s/%s/scoreboard?%s", c.espnBaseURL, sport, leagueCode, q.Encode())

	body, err := c.getJSON(ctx, c.espnBreaker, u)
	if err != nil {
		return nil, err
	}
	doc, err := decodeJSON[ScoreboardDoc](body)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// FetchTeamSchedule fetches a team's schedule, used as a fallback when the
// scoreboard lacks a game and for extended lookahead.
func (c *Client) FetchTeamSchedule(ctx context.Context, sport, leagueCode, teamID string) (*ScheduleDoc, error) {
	u := fmt.Sprintf("%s/%s/%s/teams/%s/schedule", c.espnBaseURL, sport, leagueCode, teamID)
	body, err := c.getJSON(ctx, c.espnBreaker, u)
	if err != nil {
		return nil, err
	}
	doc, err := decodeJSON[ScheduleDoc](body)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// FetchTeam fetches team identity, standings, and record splits.
func (c *Client) FetchTeam(ctx context.Context, sport, leagueCode, teamID string) (*TeamDoc, error) {
	u := fmt.Sprintf("%s/%s/%s/teams/%s", c.espnBaseURL, sport, leagueCode, teamID)
	body, err := c.getJSON(ctx, c.espnBreaker, u)
	if err != nil {
		return nil, err
	}
	doc, err := decodeJSON[TeamDoc](body)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// FetchEvent refreshes a single event, used post-completion to pick up the
// final score.
func (c *Client) FetchEvent(ctx context.Context, sport, leagueCode, eventID string) (*EventDoc, error) {
	u := fmt.Sprintf("%s/%s/%s/summary?event=%s", c.espnBaseURL, sport, leagueCode, eventID)
	body, err := c.getJSON(ctx, c.espnBreaker, u)
	if err != nil {
		return nil, err
	}
	doc, err := decodeJSON[EventDoc](body)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// FetchRoster fetches a team roster, used to resolve the head coach.
func (c *Client) FetchRoster(ctx context.Context, sport, leagueCode, teamID string) (*RosterDoc, error) {
	u := fmt.Sprintf("%s/%s/%s/teams/%s/roster", c.espnBaseURL, sport, leagueCode, teamID)
	body, err := c.getJSON(ctx, c.espnBreaker, u)
	if err != nil {
		return nil, err
	}
	doc, err := decodeJSON[RosterDoc](body)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// LeagueTeamsDoc is the raw `soccer/{league}/teams` endpoint response, used
// by the Tier S crawl to discover league membership.
type LeagueTeamsDoc struct {
	Sports []struct {
		Leagues []struct {
			Name         string `json:"name"`
			Abbreviation string `json:"abbreviation"`
			Logos        []struct {
				Href string `json:"href"`
			} `json:"logos"`
			Teams []struct {
				Team rawTeam `json:"team"`
			} `json:"teams"`
		} `json:"leagues"`
	} `json:"sports"`
}

// FetchLeagueTeams lists every team registered in a soccer league, used by
// the Tier S crawl.
func (c *Client) FetchLeagueTeams(ctx context.Context, leagueSlug string) (*LeagueTeamsDoc, error) {
	u := fmt.Sprintf("%s/soccer/%s/teams?limit=500", c.espnBaseURL, leagueSlug)
	body, err := c.getJSON(ctx, c.espnBreaker, u)
	if err != nil {
		return nil, err
	}
	doc, err := decodeJSON[LeagueTeamsDoc](body)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// FetchGroup resolves conference/division names.
func (c *Client) FetchGroup(ctx context.Context, sport, leagueCode, groupID string) (*GroupDoc, error) {
	u := fmt.Sprintf("%s/%s/%s/groups/%s", c.espnBaseURL, sport, leagueCode, groupID)
	body, err := c.getJSON(ctx, c.espnBreaker, u)
	if err != nil {
		return nil, err
	}
	doc, err := decodeJSON[GroupDoc](body)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// FetchLeaders fetches season player leaders. Only the basketball Core API
// exposes this endpoint.
func (c *Client) FetchLeaders(ctx context.Context, leagueCode string, season int, teamID string) (*LeadersDoc, error) {
	u := fmt.Sprintf("%s/basketball/leagues/%s/seasons/%d/types/2/teams/%s/leaders", espnCoreBaseURL, leagueCode, season, teamID)
	body, err := c.getJSON(ctx, c.espnBreaker, u)
	if err != nil {
		return nil, err
	}
	doc, err := decodeJSON[LeadersDoc](body)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Events converts a ScoreboardDoc/ScheduleDoc's raw events to model.Event.
// Malformed individual entries are skipped, not fatal to the batch.
func Events(raw []rawEvent, provider, sport, leagueCode, sourceLeague string) []model.Event {
	out := make([]model.Event, 0, len(raw))
	for _, re := range raw {
		ev, err := toEvent(provider, leagueCode, sourceLeague, sport, re)
		if err != nil {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// TeamStatsFromDoc extracts TeamStats from a TeamDoc.
func TeamStatsFromDoc(doc *TeamDoc) model.TeamStats {
	var stats model.TeamStats
	stats.Conference = ""
	if doc.Team.Groups != nil {
		stats.Conference = doc.Team.Groups.Name
	}
	if doc.Team.Standing != nil {
		stats.GamesBack = doc.Team.Standing.Summary
	}
	for _, item := range doc.Team.Record.Items {
		if item.Type != "total" {
			continue
		}
		for _, s := range item.Stats {
			switch s.Name {
			case "avgPointsFor":
				stats.PPG = s.Value
			case "avgPointsAgainst":
				stats.PAPG = s.Value
			}
		}
	}
	return stats
}

// HeadCoach extracts the head coach name from a roster doc.
func HeadCoach(doc *RosterDoc) string {
	if doc == nil || len(doc.Coach) == 0 {
		return ""
	}
	c := doc.Coach[0]
	name := c.FirstName
	if c.LastName != "" {
		if name != "" {
			name += " "
		}
		name += c.LastName
	}
	return name
}
