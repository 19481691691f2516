package enrichment

import (
	"sort"
	"strconv"

	"github.com/albapepper/teamarr/internal/config"
	"github.com/albapepper/teamarr/internal/model"
	"github.com/albapepper/teamarr/internal/template"
)

// ComputeH2H filters schedule for completed games against opponentTeamID
// within seasonYear, accumulates the win/loss tally, and records the most
// recent prior meeting's score, date, and venue.
func ComputeH2H(schedule []model.Event, providerTeamID, opponentTeamID string, seasonYear int) model.H2H {
	var matches []model.Event
	for _, e := range schedule {
		if e.SeasonYear != seasonYear {
			continue
		}
		if e.Home.TeamID != opponentTeamID && e.Away.TeamID != opponentTeamID {
			continue
		}
		if e.Status != model.StatusFinal {
			continue
		}
		if _, ok := e.Home.Score.Int(); !ok {
			continue
		}
		if _, ok := e.Away.Score.Int(); !ok {
			continue
		}
		matches = append(matches, e)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].StartUTC.Before(matches[j].StartUTC) })

	var h model.H2H
	for _, m := range matches {
		switch outcome(m, providerTeamID) {
		case 1:
			h.TeamWins++
		case -1:
			h.OppWins++
		}
	}

	if len(matches) > 0 {
		prev := matches[len(matches)-1]
		av, _ := prev.Away.Score.Int()
		hv, _ := prev.Home.Score.Int()
		h.HasPrevious = true
		h.PreviousScore = template.Render(scoreFormatFor(prev), map[string]string{
			"home_abbrev": prev.Home.Abbrev,
			"home_score":  strconv.Itoa(hv),
			"away_abbrev": prev.Away.Abbrev,
			"away_score":  strconv.Itoa(av),
		})
		h.PreviousDate = prev.StartUTC
		h.PreviousVenue = prev.Venue
	}

	return h
}

// scoreFormatFor resolves the sport-specific ScoreFormat template for an
// event's abbreviated-score rendering — soccer events carry their ESPN
// competition slug (not the registry key) in LeagueCode, so a non-empty
// SourceLeague is the reliable soccer signal instead.
func scoreFormatFor(e model.Event) string {
	key := e.LeagueCode
	if e.SourceLeague != "" {
		key = "soccer"
	}
	if defaults, ok := config.SportRegistry[key]; ok && defaults.ScoreFormat != "" {
		return defaults.ScoreFormat
	}
	return config.DefaultScoreFormat
}
