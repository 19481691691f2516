// Package template implements the 112-variable resolver with .next/.last
// suffix semantics and priority-ranked conditional descriptions.
package template

import "strings"

// Strategy is the suffix-slot exposure rule for one variable.
type Strategy int

const (
	// Base exposes only {name}; team/season aggregates independent of any
	// specific Event (team identity, record, streak, coach, ...).
	Base Strategy = iota
	// Last exposes only {name.last}; meaningful only for a completed game
	// (result, score, player leaders).
	Last
	// BaseNext exposes {name} and {name.next}; odds variables.
	BaseNext
	// All exposes {name}, {name.next}, and {name.last}; per-game facts.
	All
)

// VariableDef is one row of the 112-variable table.
type VariableDef struct {
	Name     string
	Strategy Strategy
}

// Table is the full 112-variable definition table: 36 Base + 10 Last +
// 7 BaseNext + 59 All = 112 names, 36+10+14+177 = 237 exposed placeholders.
var Table = buildTable()

func buildTable() []VariableDef {
	var t []VariableDef
	add := func(s Strategy, names ...string) {
		for _, n := range names {
			t = append(t, VariableDef{Name: n, Strategy: s})
		}
	}

	// Base (36): team/season identity and aggregates.
	add(Base,
		"team_name", "team_abbrev", "team_city", "team_logo",
		"league_name", "league_code", "conference", "division",
		"head_coach", "record", "home_record", "away_record",
		"ppg", "papg", "rank", "playoff_seed", "games_back",
		"streak", "streak_display", "home_streak", "home_streak_display",
		"away_streak", "away_streak_display", "last_5_record", "last_10_record",
		"recent_form", "season_year", "wins", "losses", "ties", "win_pct",
		"current_date", "current_time", "current_day", "timezone_label",
		"generation_date",
	)

	// Last (10): result-only, meaningful only for a completed game.
	add(Last,
		"result", "score", "margin",
		"passing_leader", "rushing_leader", "receiving_leader",
		"points_leader", "assists_leader", "rebounds_leader",
		"game_recap",
	)

	// BaseNext (7): odds.
	add(BaseNext,
		"spread", "over_under", "home_moneyline", "away_moneyline",
		"odds_provider", "favored_team", "total_line_display",
	)

	// All (59): per-game facts resolved against current/next/last.
	add(All,
		"opponent_name", "opponent_abbrev", "opponent_city", "opponent_logo",
		"opponent_record", "opponent_rank", "opponent_ppg", "opponent_papg",
		"is_home", "is_away", "venue", "broadcast", "channel_name",
		"national_broadcast", "game_date", "game_time", "game_day",
		"game_datetime", "days_until", "days_since", "season_type",
		"is_playoff", "is_preseason", "source_league", "competition_name",
		"home_team_name", "away_team_name", "home_team_abbrev", "away_team_abbrev",
		"home_score", "away_score", "self_score", "opponent_score",
		"self_record", "self_rank", "h2h_season_series", "h2h_team_wins",
		"h2h_opp_wins", "h2h_previous_score", "h2h_previous_date", "h2h_previous_venue",
		"has_odds", "is_ranked_opponent", "is_top25_opponent", "is_top10_matchup",
		"game_status", "network_list", "attendance_note", "weather_note",
		"broadcast_count", "opponent_conference", "opponent_division",
		"opponent_streak", "opponent_last10", "rivalry_flag", "game_number",
		"week_number", "matchup_title", "game_summary_text",
	)

	return t
}

// byName indexes Table for O(1) strategy lookups.
var byName = func() map[string]Strategy {
	m := make(map[string]Strategy, len(Table))
	for _, v := range Table {
		m[v.Name] = v.Strategy
	}
	return m
}()

// StrategyOf returns the strategy for a variable name and whether it's known.
func StrategyOf(name string) (Strategy, bool) {
	s, ok := byName[name]
	return s, ok
}

// AllowsSlot reports whether the given suffix slot is valid for name.
func AllowsSlot(name string, slot Slot) bool {
	s, ok := byName[name]
	if !ok {
		return false
	}
	switch slot {
	case SlotBase:
		return s != Last // Last exposes only .last, never the bare key
	case SlotNext:
		return s == BaseNext || s == All
	case SlotLast:
		return s == Last || s == All
	}
	return false
}

// Slot is which temporal suffix a resolved value came from.
type Slot int

const (
	SlotBase Slot = iota
	SlotNext
	SlotLast
)

// ValidatePlaceholders scans format for every {name}/{name.next}/{name.last}
// placeholder and returns the tokens whose slot isn't allowed for that
// variable's strategy — e.g. a bare {result} (Last-only, .last required) or
// {spread.last} (BaseNext has no .last). A name not in Table at all is left
// alone here; Render substitutes unknown names with the empty string rather
// than erroring, so that's not a slot violation.
func ValidatePlaceholders(format string) []string {
	var bad []string
	for _, token := range placeholderPattern.FindAllString(format, -1) {
		name := token[1 : len(token)-1]
		slot := SlotBase
		switch {
		case strings.HasSuffix(name, ".next"):
			slot, name = SlotNext, strings.TrimSuffix(name, ".next")
		case strings.HasSuffix(name, ".last"):
			slot, name = SlotLast, strings.TrimSuffix(name, ".last")
		}
		if _, ok := StrategyOf(name); !ok {
			continue
		}
		if !AllowsSlot(name, slot) {
			bad = append(bad, token)
		}
	}
	return bad
}
