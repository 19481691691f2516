package upstream

import "encoding/json"

// Raw ESPN JSON shapes (subset). ESPN's site.api.espn.com responses vary
// shape between scoreboard and schedule/summary endpoints for the same
// logical fields; each raw type below
// models exactly the endpoint it comes from, and normalize.go reconciles
// them into model.Event / model.TeamStats / etc.

// rawScore accepts either a bare scalar or {value, displayValue}.
// json.RawMessage defers the shape decision to normalize.go.
type rawScore json.RawMessage

// ScoreboardDoc is the raw `scoreboard` endpoint response.
type ScoreboardDoc struct {
	Events []rawEvent `json:"events"`
}

// ScheduleDoc is the raw `teams/{id}/schedule` endpoint response.
type ScheduleDoc struct {
	Events []rawEvent `json:"events"`
}

// EventDoc is the raw `summary?event={id}` endpoint response, used for
// single-event refresh after completion.
type EventDoc struct {
	Header struct {
		ID           string `json:"id"`
		Competitions []rawCompetition `json:"competitions"`
	} `json:"header"`
}

type rawEvent struct {
	ID           string           `json:"id"`
	Date         string           `json:"date"`
	SeasonType   *rawSeasonType   `json:"season"`
	Competitions []rawCompetition `json:"competitions"`
}

type rawSeasonType struct {
	Year int `json:"year"`
	Type int `json:"type"` // 1=preseason, 2=regular, 3=postseason (ESPN convention)
}

type rawCompetition struct {
	ID          string            `json:"id"`
	Date        string            `json:"date"`
	Venue       *rawVenue         `json:"venue"`
	Competitors []rawCompetitor   `json:"competitors"`
	Status      rawStatus         `json:"status"`
	Broadcasts  []rawBroadcast    `json:"broadcasts"`  // scoreboard shape
	Geo         *rawBroadcastGeo  `json:"geoBroadcasts"` // schedule shape
	Odds        []rawOdds         `json:"odds"`
}

type rawVenue struct {
	FullName string `json:"fullName"`
}

type rawStatus struct {
	Type struct {
		Name string `json:"name"` // STATUS_SCHEDULED, STATUS_IN_PROGRESS, ...
	} `json:"type"`
}

type rawCompetitor struct {
	HomeAway string          `json:"homeAway"` // "home" | "away"
	Team     rawTeam         `json:"team"`
	Score    json.RawMessage `json:"score"`
	Records  []rawRecord     `json:"records"`
	Leaders  []rawLeaderCat  `json:"leaders"`
	CuratedRank *struct {
		Current int `json:"current"`
	} `json:"curatedRank"`
}

type rawTeam struct {
	ID           string `json:"id"`
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
	Logo         string `json:"logo"`
}

type rawRecord struct {
	Type        string `json:"type"` // "total" is the one we parse
	DisplayValue string `json:"displayValue"`
}

type rawLeaderCat struct {
	Name        string `json:"name"` // "points", "passingLeader", ...
	DisplayName string `json:"displayName"`
	Leaders     []struct {
		DisplayValue string `json:"displayValue"`
		Athlete      struct {
			DisplayName string `json:"displayName"`
		} `json:"athlete"`
	} `json:"leaders"`
}

type rawBroadcast struct {
	Names []string `json:"names"`
}

// rawBroadcastGeo is the schedule endpoint's alternate broadcast shape.
type rawBroadcastGeo struct {
	Full []struct {
		ShortName string `json:"shortName"`
	} `json:"full"`
}

type rawOdds struct {
	Provider struct {
		Name string `json:"name"`
	} `json:"provider"`
	Details     string  `json:"details"`
	OverUnder   float64 `json:"overUnder"`
	HomeTeamOdds struct {
		MoneyLine int `json:"moneyLine"`
	} `json:"homeTeamOdds"`
	AwayTeamOdds struct {
		MoneyLine int `json:"moneyLine"`
	} `json:"awayTeamOdds"`
}

// TeamDoc is the raw `teams/{id}` endpoint response.
type TeamDoc struct {
	Team struct {
		ID           string `json:"id"`
		Abbreviation string `json:"abbreviation"`
		DisplayName  string `json:"displayName"`
		Logo         []struct {
			Href string `json:"href"`
		} `json:"logos"`
		Record struct {
			Items []struct {
				Type  string `json:"type"`
				Stats []struct {
					Name  string  `json:"name"`
					Value float64 `json:"value"`
				} `json:"stats"`
			} `json:"items"`
		} `json:"record"`
		Standing *struct {
			Summary string `json:"summary"`
		} `json:"standingSummary"`
		Groups *struct {
			Name string `json:"name"`
		} `json:"groups"`
	} `json:"team"`
}

// RosterDoc is the raw `teams/{id}/roster` endpoint response (used for head
// coach).
type RosterDoc struct {
	Coach []struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"coach"`
}

// GroupDoc is the raw `groups/{id}` endpoint response (conference/division
// names).
type GroupDoc struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// LeadersDoc is the raw Core-API season-leaders response (basketball only).
type LeadersDoc struct {
	Categories []struct {
		Name    string `json:"name"`
		Leaders []struct {
			DisplayValue string `json:"displayValue"`
			Athlete      struct {
				DisplayName string `json:"displayName"`
			} `json:"athlete"`
		} `json:"leaders"`
	} `json:"categories"`
}

// TsdbTeamDoc is TheSportsDB's team-search response; espn_id is the
// documented cross-reference field used for soccer discovery.
type TsdbTeamDoc struct {
	Teams []struct {
		IDTeam  string `json:"idTeam"`
		Name    string `json:"strTeam"`
		League  string `json:"strLeague"`
		ESPNID  string `json:"idESPN"`
	} `json:"teams"`
}
