// Package model defines the canonical data types shared between the
// upstream client, enrichment service, template engine, programme
// synthesizer, and XMLTV writer. These are the contract every other
// package normalizes into or consumes — providers/enrichment produce them,
// the synthesizer and writer consume them.
package model

import "time"

// EventStatus is the normalized status of a game.
type EventStatus string

const (
	StatusScheduled EventStatus = "scheduled"
	StatusLive      EventStatus = "live"
	StatusFinal     EventStatus = "final"
	StatusPostponed EventStatus = "postponed"
	StatusCancelled EventStatus = "cancelled"
)

// SeasonType mirrors upstream preseason/regular/postseason classification.
type SeasonType string

const (
	SeasonPreseason  SeasonType = "preseason"
	SeasonRegular    SeasonType = "regular"
	SeasonPostseason SeasonType = "postseason"
)

// TemplateType distinguishes per-team channel templates from event-based
// ones. Event-based templates are consumed by the out-of-scope event-EPG
// path; the core only resolves "team" templates.
type TemplateType string

const (
	TemplateTeam  TemplateType = "team"
	TemplateEvent TemplateType = "event"
)

// GameDurationMode selects how a game's on-screen duration is computed.
type GameDurationMode string

const (
	DurationDefault GameDurationMode = "default"
	DurationSport   GameDurationMode = "sport"
	DurationCustom  GameDurationMode = "custom"
)

// MidnightCrossoverMode controls filler behavior across local midnight.
type MidnightCrossoverMode string

const (
	CrossoverPostgame MidnightCrossoverMode = "postgame"
	CrossoverIdle     MidnightCrossoverMode = "idle"
	CrossoverNone     MidnightCrossoverMode = "none"
)

// SourceKind labels the origin of a synthesized Programme.
type SourceKind string

const (
	SourceGame     SourceKind = "game"
	SourcePregame  SourceKind = "pregame"
	SourcePostgame SourceKind = "postgame"
	SourceIdle     SourceKind = "idle"
)

// Team is the identity record for a configured channel. Immutable for
// the duration of a generation run.
type Team struct {
	ID             int64
	ProviderTeamID string
	LeagueCode     string
	Name           string
	Abbrev         string
	LogoURL        string
	TemplateID     int64
	Active         bool
}

// ConditionRule is one entry of a Template's ordered description_options
// list. Priority 100 is the documented fallback slot.
type ConditionRule struct {
	Condition string // predicate expression, see template.EvalCondition
	Text      string
	Priority  int
}

// Template holds the per-channel formatting rules.
type Template struct {
	ID                    int64
	Name                  string
	Type                  TemplateType
	TitleFormat           string `validate:"required"`
	SubtitleFormat        string
	DescriptionOptions    []ConditionRule
	PregameEnabled        bool
	PregameMinutes        int
	PregameTemplate       string
	PostgameEnabled       bool
	PostgameMinutes       int
	PostgameTemplate      string
	IdleEnabled           bool
	IdleTemplate          string
	MaxProgramHours       float64 `validate:"gt=0"`
	GameDurationMode      GameDurationMode `validate:"oneof=default sport custom"`
	CustomDurationMinutes int
	MidnightCrossoverMode MidnightCrossoverMode `validate:"oneof=postgame idle none"`
	Categories            []string
	Flags                 map[string]bool
}

// ScoreValue is a typed optional integer score. Upstream returns scores as
// either a bare integer/string or a {value, displayValue} object; both
// shapes normalize into this.
type ScoreValue struct {
	Value *int
	Valid bool
}

// Some constructs a valid score.
func Some(v int) ScoreValue { return ScoreValue{Value: &v, Valid: true} }

// None constructs an absent score.
func None() ScoreValue { return ScoreValue{} }

// Int returns the underlying value and whether it is present.
func (s ScoreValue) Int() (int, bool) {
	if !s.Valid || s.Value == nil {
		return 0, false
	}
	return *s.Value, true
}

// Competitor is one side of an Event.
type Competitor struct {
	TeamID  string
	Name    string
	Abbrev  string
	Score   ScoreValue
	Record  string // e.g. "10-5" or "10-5-1", parsed from upstream "total" record
	APRank  *int   // college AP rank, nil if unranked/not-applicable
}

// Broadcast is a single normalized broadcast entry.
type Broadcast struct {
	Network string
}

// Odds is normalized betting-line data for an event.
type Odds struct {
	Spread      string
	OverUnder   string
	HomeML      string
	AwayML      string
	Provider    string
}

// PlayerLeader is one sport-dispatched leader category.
type PlayerLeader struct {
	Category    string // e.g. "points", "passingLeader"
	DisplayName string
	Value       string // full display-value stat line
	PlayerName  string
}

// Event is a single game.
type Event struct {
	ID              string
	Provider        string
	LeagueCode      string
	SourceLeague    string // soccer only; empty otherwise
	StartUTC        time.Time
	Status          EventStatus
	Home            Competitor
	Away            Competitor
	Venue           string
	Broadcasts      []Broadcast
	Odds            *Odds
	PlayerLeaders   map[string]PlayerLeader
	SeasonType      SeasonType
	SeasonYear      int
}

// IsHome reports whether the given provider team id played at home.
func (e Event) IsHome(providerTeamID string) bool { return e.Home.TeamID == providerTeamID }

// Opponent returns the competitor that is not the given team.
func (e Event) Opponent(providerTeamID string) Competitor {
	if e.Home.TeamID == providerTeamID {
		return e.Away
	}
	return e.Home
}

// Self returns the competitor record belonging to the given team.
func (e Event) Self(providerTeamID string) Competitor {
	if e.Home.TeamID == providerTeamID {
		return e.Home
	}
	return e.Away
}

// TeamStats is the season/record aggregate for a team.
type TeamStats struct {
	Record       string
	HomeRecord   string
	AwayRecord   string
	PPG          float64
	PAPG         float64
	Rank         *int
	PlayoffSeed  *int
	GamesBack    string
	StreakCount  int // signed: positive = win streak, negative = loss streak
	Conference   string
	Division     string
	HeadCoach    string
}

// H2H is head-to-head history against one opponent.
type H2H struct {
	TeamWins       int
	OppWins        int
	HasPrevious    bool
	PreviousScore  string // abbreviated form from the sport's ScoreFormat, "AWY {s} @ HOM {s}" by default
	PreviousDate   time.Time
	PreviousVenue  string
}

// Streaks bundles the derived streak/form fields.
type Streaks struct {
	Current      int // signed
	HomeStreak   int
	AwayStreak   int
	Last5Record  string
	Last10Record string
	RecentForm   string // W/L/T characters, newest last
}

// Programme is a single XMLTV listing entry.
type Programme struct {
	ChannelID  string
	Title      string
	Subtitle   string
	Description string
	StartUTC   time.Time
	StopUTC    time.Time
	Categories []string
	Icon       string
	SourceKind SourceKind
}

// Settings is the run-level configuration snapshot.
type Settings struct {
	EPGTimezone       string
	DaysAhead         int
	DefaultDurations  map[string]time.Duration // by sport/league code
	OutputPath        string
}
