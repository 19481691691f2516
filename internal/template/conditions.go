package template

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/albapepper/teamarr/internal/model"
)

// todayGame reports whether the context's bound last-completed game started
// on the same local calendar day as ctx.Now — the "today_game" case named
// for postgame/idle filler that follows a same-day game. The game's end
// time is not considered, and ctx.Now is the generation instant, not the
// start of the filler segment being rendered.
func todayGame(ctx Context) bool {
	if ctx.Last == nil || ctx.Last.Event == nil {
		return false
	}
	l := loc(ctx)
	return ctx.Last.Event.StartUTC.In(l).Format(time.DateOnly) == ctx.Now.In(l).Format(time.DateOnly)
}

// FallbackPriority is the documented priority-100 fallback slot.
const FallbackPriority = 100

var containsPattern = regexp.MustCompile(`^opponent_name_contains\(([^)]*)\)$`)
var thresholdPattern = regexp.MustCompile(`^(streak_w|streak_l|home_streak_w|home_streak_l|away_streak_w|away_streak_l)\s*>=\s*(\d+)$`)

// EvalCondition evaluates one condition expression against the resolved
// variable map and the underlying Context, using a closed predicate set.
// An empty condition string is treated as always-true (the fallback
// entry's condition is conventionally empty).
func EvalCondition(cond string, ctx Context, vars map[string]string) bool {
	cond = strings.TrimSpace(cond)
	if cond == "" || cond == "always" {
		return true
	}

	if m := containsPattern.FindStringSubmatch(cond); m != nil {
		needle := strings.ToLower(m[1])
		return strings.Contains(strings.ToLower(vars["opponent_name"]), needle)
	}

	if m := thresholdPattern.FindStringSubmatch(cond); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return false
		}
		return evalStreakThreshold(m[1], n, ctx)
	}

	switch cond {
	case "is_home":
		return vars["is_home"] == "true"
	case "is_away":
		return vars["is_away"] == "true"
	case "is_playoff":
		return currentSeasonType(ctx) == model.SeasonPostseason
	case "is_preseason":
		return currentSeasonType(ctx) == model.SeasonPreseason
	case "has_odds":
		return vars["has_odds"] == "true"
	case "ranked_opponent_top25":
		return vars["is_top25_opponent"] == "true"
	case "top10_matchup":
		return vars["is_top10_matchup"] == "true"
	case "is_national_broadcast":
		return vars["national_broadcast"] == "true"
	case "today_game":
		return todayGame(ctx)
	}
	return false
}

func evalStreakThreshold(kind string, n int, ctx Context) bool {
	k := ctx.Streaks
	switch kind {
	case "streak_w":
		return k.Current >= n
	case "streak_l":
		return -k.Current >= n
	case "home_streak_w":
		return k.HomeStreak >= n
	case "home_streak_l":
		return -k.HomeStreak >= n
	case "away_streak_w":
		return k.AwayStreak >= n
	case "away_streak_l":
		return -k.AwayStreak >= n
	}
	return false
}

func currentSeasonType(ctx Context) model.SeasonType {
	if ctx.Current != nil && ctx.Current.Event != nil {
		return ctx.Current.Event.SeasonType
	}
	return ""
}

// SelectDescription evaluates rules in ascending priority order and returns
// the text of the first satisfied rule, falling back to the priority-100
// entry, else the empty string.
func SelectDescription(rules []model.ConditionRule, ctx Context, vars map[string]string) string {
	ordered := make([]model.ConditionRule, len(rules))
	copy(ordered, rules)
	sortByPriority(ordered)

	var fallback *model.ConditionRule
	for i := range ordered {
		r := ordered[i]
		if r.Priority == FallbackPriority && fallback == nil {
			fallback = &ordered[i]
		}
		if r.Priority == FallbackPriority {
			continue // fallback only applies if nothing else matches
		}
		if EvalCondition(r.Condition, ctx, vars) {
			return Render(r.Text, vars)
		}
	}
	if fallback != nil {
		return Render(fallback.Text, vars)
	}
	return ""
}

func sortByPriority(rules []model.ConditionRule) {
	for i := 1; i < len(rules); i++ {
		for j := i; j > 0 && rules[j].Priority < rules[j-1].Priority; j-- {
			rules[j], rules[j-1] = rules[j-1], rules[j]
		}
	}
}
