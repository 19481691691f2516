package enrichment

import "github.com/albapepper/teamarr/internal/model"

// MergeScoreboard overlays today's scoreboard events onto a team's schedule:
// odds, broadcasts, live status, and score updates from the scoreboard
// override whatever came from the schedule endpoint, matched by event id
//. Schedule entries with no scoreboard match
// pass through unchanged.
func MergeScoreboard(schedule, scoreboard []model.Event) []model.Event {
	byID := make(map[string]model.Event, len(scoreboard))
	for _, e := range scoreboard {
		byID[e.ID] = e
	}

	out := make([]model.Event, len(schedule))
	for i, e := range schedule {
		if fresh, ok := byID[e.ID]; ok {
			e.Status = fresh.Status
			e.Home.Score = fresh.Home.Score
			e.Away.Score = fresh.Away.Score
			e.Odds = fresh.Odds
			e.Broadcasts = fresh.Broadcasts
			if fresh.PlayerLeaders != nil {
				e.PlayerLeaders = fresh.PlayerLeaders
			}
		}
		out[i] = e
	}
	return out
}
