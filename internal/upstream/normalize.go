package upstream

import (
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/albapepper/teamarr/internal/model"
)

// normalizeScore collapses either a bare scalar or {value, displayValue}
// object into model.ScoreValue.
func normalizeScore(raw json.RawMessage) model.ScoreValue {
	if len(raw) == 0 || string(raw) == "null" {
		return model.None()
	}

	// Try the object shape first: {"value": 10, "displayValue": "10"}
	var obj struct {
		Value *float64 `json:"value"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Value != nil {
		return model.Some(int(*obj.Value))
	}

	// Bare numeric scalar.
	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return model.Some(int(num))
	}

	// Bare string scalar, e.g. "10".
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return model.None()
		}
		if n, err := strconv.Atoi(s); err == nil {
			return model.Some(n)
		}
	}

	return model.None()
}

// normalizeStatus maps ESPN's STATUS_* enum to model.EventStatus.
func normalizeStatus(espnStatus string) model.EventStatus {
	switch espnStatus {
	case "STATUS_SCHEDULED":
		return model.StatusScheduled
	case "STATUS_IN_PROGRESS":
		return model.StatusLive
	case "STATUS_FINAL", "STATUS_FULL_TIME":
		return model.StatusFinal
	case "STATUS_POSTPONED":
		return model.StatusPostponed
	case "STATUS_CANCELED":
		return model.StatusCancelled
	default:
		return model.StatusScheduled
	}
}

// extractRecord scans records[] for the entry with type == "total" and
// returns its displayValue ("W-L" or "W-L-T") unparsed.
func extractRecord(records []rawRecord) string {
	for _, r := range records {
		if r.Type == "total" {
			return r.DisplayValue
		}
	}
	return ""
}

// normalizeBroadcasts flattens either the scoreboard shape (broadcasts[].names)
// or the schedule shape (geoBroadcasts.full[].shortName) into a flat list of
// display names.
func normalizeBroadcasts(comp rawCompetition) []model.Broadcast {
	var out []model.Broadcast
	for _, b := range comp.Broadcasts {
		for _, n := range b.Names {
			out = append(out, model.Broadcast{Network: n})
		}
	}
	if comp.Geo != nil {
		for _, f := range comp.Geo.Full {
			out = append(out, model.Broadcast{Network: f.ShortName})
		}
	}
	return out
}

func normalizeOdds(raw []rawOdds) *model.Odds {
	if len(raw) == 0 {
		return nil
	}
	o := raw[0]
	spread := o.Details
	overUnder := ""
	if o.OverUnder != 0 {
		overUnder = strconv.FormatFloat(o.OverUnder, 'f', 1, 64)
	}
	return &model.Odds{
		Spread:    spread,
		OverUnder: overUnder,
		HomeML:    strconv.Itoa(o.HomeTeamOdds.MoneyLine),
		AwayML:    strconv.Itoa(o.AwayTeamOdds.MoneyLine),
		Provider:  o.Provider.Name,
	}
}

func normalizeSeasonType(t int) model.SeasonType {
	switch t {
	case 1:
		return model.SeasonPreseason
	case 3:
		return model.SeasonPostseason
	default:
		return model.SeasonRegular
	}
}

// normalizeLeaders dispatches by sport: basketball surfaces only the
// scoring leader; football surfaces all
// three passing/rushing/receiving leader categories.
func normalizeLeaders(sport string, raw []rawLeaderCat) map[string]model.PlayerLeader {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]model.PlayerLeader)
	for _, cat := range raw {
		if len(cat.Leaders) == 0 {
			continue
		}
		switch sport {
		case "basketball":
			if cat.Name != "points" {
				continue
			}
		case "football":
			switch cat.Name {
			case "passingLeader", "rushingLeader", "receivingLeader":
			default:
				continue
			}
		default:
			continue
		}
		l := cat.Leaders[0]
		out[cat.Name] = model.PlayerLeader{
			Category:    cat.Name,
			DisplayName: cat.DisplayName,
			Value:       l.DisplayValue,
			PlayerName:  l.Athlete.DisplayName,
		}
	}
	return out
}

// calendarSeasonYear is the fallback used only when an upstream event
// carries no season block: North American leagues label a season by the
// year it finishes in, so a game played August or later belongs to next
// calendar year's season; a game played before August belongs to the
// season already labeled by the current calendar year.
func calendarSeasonYear(start time.Time) int {
	if start.Month() >= time.August {
		return start.Year() + 1
	}
	return start.Year()
}

// toEvent converts a single raw ESPN event + its primary competition into
// model.Event. provider is always "espn" for this client; sourceLeague is
// set by the caller for soccer multi-league fan-out.
func toEvent(provider, leagueCode, sourceLeague, sport string, re rawEvent) (model.Event, error) {
	if len(re.Competitions) == 0 {
		return model.Event{}, ErrUpstreamMalformed
	}
	comp := re.Competitions[0]

	// ESPN usually writes dates to the minute ("2026-01-01T19:00Z"), which
	// time.RFC3339 alone rejects, so both layouts are tried.
	var start time.Time
	err := ErrUpstreamMalformed
	for _, s := range []string{comp.Date, re.Date} {
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04Z07:00"} {
			if t, perr := time.Parse(layout, s); perr == nil {
				start, err = t, nil
				break
			}
		}
		if err == nil {
			break
		}
	}
	if err != nil {
		return model.Event{}, ErrUpstreamMalformed
	}

	var home, away rawCompetitor
	for _, c := range comp.Competitors {
		if c.HomeAway == "home" {
			home = c
		} else {
			away = c
		}
	}

	seasonYear := 0
	seasonTypeNum := 2
	if re.SeasonType != nil && re.SeasonType.Year != 0 {
		seasonYear = re.SeasonType.Year
		seasonTypeNum = re.SeasonType.Type
	} else {
		seasonYear = calendarSeasonYear(start)
		if re.SeasonType != nil {
			seasonTypeNum = re.SeasonType.Type
		}
	}

	venue := ""
	if comp.Venue != nil {
		venue = comp.Venue.FullName
	}

	ev := model.Event{
		ID:           re.ID,
		Provider:     provider,
		LeagueCode:   leagueCode,
		SourceLeague: sourceLeague,
		StartUTC:     start.UTC(),
		Status:       normalizeStatus(comp.Status.Type.Name),
		Home:         toCompetitor(home),
		Away:         toCompetitor(away),
		Venue:        venue,
		Broadcasts:   normalizeBroadcasts(comp),
		Odds:         normalizeOdds(comp.Odds),
		SeasonType:   normalizeSeasonType(seasonTypeNum),
		SeasonYear:   seasonYear,
	}

	// Player leaders are game-specific; only meaningful for completed games
	// but we normalize unconditionally — callers bind them to the
	// `.last` slot only.
	if len(home.Leaders) > 0 {
		ev.PlayerLeaders = normalizeLeaders(sport, home.Leaders)
	} else if len(away.Leaders) > 0 {
		ev.PlayerLeaders = normalizeLeaders(sport, away.Leaders)
	}

	return ev, nil
}

// RefreshFromEventDoc overlays a single-event summary fetch onto an
// already-normalized event: only the fields that change after kickoff
// (status, final score, player leaders) are replaced; schedule-derived
// fields (start time, venue, season, odds) are left untouched since the
// summary endpoint doesn't carry them in the same shape.
func RefreshFromEventDoc(existing model.Event, doc *EventDoc, sport string) model.Event {
	if doc == nil || len(doc.Header.Competitions) == 0 {
		return existing
	}
	comp := doc.Header.Competitions[0]

	var home, away rawCompetitor
	for _, c := range comp.Competitors {
		if c.HomeAway == "home" {
			home = c
		} else {
			away = c
		}
	}

	existing.Status = normalizeStatus(comp.Status.Type.Name)
	existing.Home = toCompetitor(home)
	existing.Away = toCompetitor(away)

	if len(home.Leaders) > 0 {
		existing.PlayerLeaders = normalizeLeaders(sport, home.Leaders)
	} else if len(away.Leaders) > 0 {
		existing.PlayerLeaders = normalizeLeaders(sport, away.Leaders)
	}

	return existing
}

func toCompetitor(rc rawCompetitor) model.Competitor {
	var rank *int
	if rc.CuratedRank != nil && rc.CuratedRank.Current > 0 && rc.CuratedRank.Current < 999 {
		r := rc.CuratedRank.Current
		rank = &r
	}
	return model.Competitor{
		TeamID: rc.Team.ID,
		Name:   rc.Team.DisplayName,
		Abbrev: rc.Team.Abbreviation,
		Score:  normalizeScore(rc.Score),
		Record: extractRecord(rc.Records),
		APRank: rank,
	}
}
