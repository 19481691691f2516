package template

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/albapepper/teamarr/internal/config"
	"github.com/albapepper/teamarr/internal/model"
)

// Resolve produces the flat variable map for one team at one generation
// instant: every Base variable, plus Next/Last suffixed variables wherever
// the variable's strategy and the context's bindings allow it.
//
// Base-strategy variables are team/season aggregates independent of any
// specific Event, so — unlike Invariant 4's literal wording for per-game
// variables — they resolve from ctx.Stats/ctx.Streaks regardless of whether
// ctx.Current is nil; see DESIGN.md for this documented interpretation.
func Resolve(ctx Context) map[string]string {
	out := make(map[string]string, len(Table)*2)
	for _, v := range Table {
		switch v.Strategy {
		case Base:
			out[v.Name] = resolveBaseVar(ctx, v.Name)
		case Last:
			out[v.Name+".last"] = resolveGameVar(ctx, v.Name, ctx.Last)
		case BaseNext:
			out[v.Name] = resolveOddsVar(ctx, v.Name, ctx.Current)
			out[v.Name+".next"] = resolveOddsVar(ctx, v.Name, ctx.Next)
		case All:
			out[v.Name] = resolveGameVar(ctx, v.Name, ctx.Current)
			out[v.Name+".next"] = resolveGameVar(ctx, v.Name, ctx.Next)
			out[v.Name+".last"] = resolveGameVar(ctx, v.Name, ctx.Last)
		}
	}
	return out
}

func resolveBaseVar(ctx Context, name string) string {
	s, k := ctx.Stats, ctx.Streaks
	switch name {
	case "team_name":
		return ctx.Team.Name
	case "team_abbrev":
		return ctx.Team.Abbrev
	case "team_city":
		return ctx.Team.Name
	case "team_logo":
		return ctx.Team.LogoURL
	case "league_name":
		return strings.ToUpper(ctx.Team.LeagueCode)
	case "league_code":
		return ctx.Team.LeagueCode
	case "conference":
		return s.Conference
	case "division":
		return s.Division
	case "head_coach":
		return s.HeadCoach
	case "record":
		return s.Record
	case "home_record":
		return s.HomeRecord
	case "away_record":
		return s.AwayRecord
	case "ppg":
		return formatFloat(s.PPG)
	case "papg":
		return formatFloat(s.PAPG)
	case "rank":
		return formatIntPtr(s.Rank)
	case "playoff_seed":
		return formatIntPtr(s.PlayoffSeed)
	case "games_back":
		return s.GamesBack
	case "streak":
		return strconv.Itoa(k.Current)
	case "streak_display":
		return streakDisplay(k.Current)
	case "home_streak":
		return strconv.Itoa(k.HomeStreak)
	case "home_streak_display":
		return streakDisplay(k.HomeStreak)
	case "away_streak":
		return strconv.Itoa(k.AwayStreak)
	case "away_streak_display":
		return streakDisplay(k.AwayStreak)
	case "last_5_record":
		return k.Last5Record
	case "last_10_record":
		return k.Last10Record
	case "recent_form":
		return k.RecentForm
	case "season_year":
		return seasonYear(ctx)
	case "wins", "losses", "ties":
		return recordPart(s.Record, name)
	case "win_pct":
		return winPct(s.Record)
	case "current_date":
		return ctx.Now.In(loc(ctx)).Format("2006-01-02")
	case "current_time":
		return ctx.Now.In(loc(ctx)).Format("15:04")
	case "current_day":
		return ctx.Now.In(loc(ctx)).Format("Monday")
	case "timezone_label":
		return ctx.Settings.EPGTimezone
	case "generation_date":
		return ctx.Now.In(loc(ctx)).Format("2006-01-02")
	}
	return ""
}

func resolveOddsVar(ctx Context, name string, b *GameBinding) string {
	if b == nil || b.Event == nil || b.Event.Odds == nil {
		return ""
	}
	o := b.Event.Odds
	switch name {
	case "spread":
		return o.Spread
	case "over_under":
		return o.OverUnder
	case "home_moneyline":
		return o.HomeML
	case "away_moneyline":
		return o.AwayML
	case "odds_provider":
		return o.Provider
	case "favored_team":
		return favoredTeam(ctx, b.Event, o)
	case "total_line_display":
		if o.OverUnder == "" {
			return ""
		}
		return "O/U " + o.OverUnder
	}
	return ""
}

func resolveGameVar(ctx Context, name string, b *GameBinding) string {
	if b == nil || b.Event == nil {
		if name == "result" {
			return ""
		}
		if isLeaderVar(name) {
			return ""
		}
		return ""
	}
	e := b.Event
	self := e.Self(ctx.Team.ProviderTeamID)
	opp := e.Opponent(ctx.Team.ProviderTeamID)
	isHome := e.IsHome(ctx.Team.ProviderTeamID)

	switch name {
	case "result":
		return resultFor(self, opp, e.Status)
	case "score":
		return abbreviatedScore(ctx, e)
	case "margin":
		return marginFor(self, opp)
	case "passing_leader":
		return leaderDisplay(e, "passingLeader")
	case "rushing_leader":
		return leaderDisplay(e, "rushingLeader")
	case "receiving_leader":
		return leaderDisplay(e, "receivingLeader")
	case "points_leader":
		return leaderDisplay(e, "points")
	case "assists_leader":
		return leaderDisplay(e, "assists")
	case "rebounds_leader":
		return leaderDisplay(e, "rebounds")
	case "game_recap":
		return recapText(ctx, e, self, opp)
	case "opponent_name":
		return opp.Name
	case "opponent_abbrev":
		return opp.Abbrev
	case "opponent_city":
		return opp.Name
	case "opponent_logo":
		return ""
	case "opponent_record":
		return opp.Record
	case "opponent_rank":
		return formatIntPtr(opp.APRank)
	case "opponent_ppg", "opponent_papg":
		return ""
	case "is_home":
		return formatBool(isHome)
	case "is_away":
		return formatBool(!isHome)
	case "venue":
		return e.Venue
	case "broadcast":
		return broadcastList(e)
	case "channel_name":
		return "teamarr-team-" + e.Provider + "-" + ctx.Team.ProviderTeamID
	case "national_broadcast":
		return formatBool(isNationalBroadcast(e))
	case "game_date":
		return e.StartUTC.In(loc(ctx)).Format("2006-01-02")
	case "game_time":
		return e.StartUTC.In(loc(ctx)).Format("15:04")
	case "game_day":
		return e.StartUTC.In(loc(ctx)).Format("Monday")
	case "game_datetime":
		return e.StartUTC.In(loc(ctx)).Format(time.RFC3339)
	case "days_until":
		return strconv.Itoa(daysBetween(ctx.Now, e.StartUTC, loc(ctx)))
	case "days_since":
		return strconv.Itoa(daysBetween(e.StartUTC, ctx.Now, loc(ctx)))
	case "season_type":
		return string(e.SeasonType)
	case "is_playoff":
		return formatBool(e.SeasonType == model.SeasonPostseason)
	case "is_preseason":
		return formatBool(e.SeasonType == model.SeasonPreseason)
	case "source_league":
		return e.SourceLeague
	case "competition_name":
		return strings.ToUpper(e.LeagueCode)
	case "home_team_name":
		return e.Home.Name
	case "away_team_name":
		return e.Away.Name
	case "home_team_abbrev":
		return e.Home.Abbrev
	case "away_team_abbrev":
		return e.Away.Abbrev
	case "home_score":
		return scoreString(e.Home.Score)
	case "away_score":
		return scoreString(e.Away.Score)
	case "self_score":
		return scoreString(self.Score)
	case "opponent_score":
		return scoreString(opp.Score)
	case "self_record":
		return self.Record
	case "self_rank":
		return formatIntPtr(self.APRank)
	case "h2h_season_series":
		if b.H2H == nil {
			return ""
		}
		return fmt.Sprintf("%d-%d", b.H2H.TeamWins, b.H2H.OppWins)
	case "h2h_team_wins":
		if b.H2H == nil {
			return ""
		}
		return strconv.Itoa(b.H2H.TeamWins)
	case "h2h_opp_wins":
		if b.H2H == nil {
			return ""
		}
		return strconv.Itoa(b.H2H.OppWins)
	case "h2h_previous_score":
		if b.H2H == nil || !b.H2H.HasPrevious {
			return ""
		}
		return b.H2H.PreviousScore
	case "h2h_previous_date":
		if b.H2H == nil || !b.H2H.HasPrevious {
			return ""
		}
		return b.H2H.PreviousDate.In(loc(ctx)).Format("2006-01-02")
	case "h2h_previous_venue":
		if b.H2H == nil || !b.H2H.HasPrevious {
			return ""
		}
		return b.H2H.PreviousVenue
	case "has_odds":
		return formatBool(e.Odds != nil)
	case "is_ranked_opponent":
		return formatBool(opp.APRank != nil)
	case "is_top25_opponent":
		return formatBool(opp.APRank != nil && *opp.APRank <= 25)
	case "is_top10_matchup":
		return formatBool(opp.APRank != nil && *opp.APRank <= 10 && self.APRank != nil && *self.APRank <= 10)
	case "game_status":
		return string(e.Status)
	case "network_list":
		return broadcastList(e)
	case "attendance_note", "weather_note":
		return ""
	case "broadcast_count":
		return strconv.Itoa(len(e.Broadcasts))
	case "opponent_conference", "opponent_division":
		return ""
	case "opponent_streak", "opponent_last10":
		return ""
	case "rivalry_flag":
		return formatBool(false)
	case "game_number", "week_number":
		return ""
	case "matchup_title":
		return opp.Name + " vs " + self.Name
	case "game_summary_text":
		return recapText(ctx, e, self, opp)
	}
	return ""
}

func isLeaderVar(name string) bool {
	switch name {
	case "passing_leader", "rushing_leader", "receiving_leader",
		"points_leader", "assists_leader", "rebounds_leader":
		return true
	}
	return false
}

func leaderDisplay(e *model.Event, category string) string {
	l, ok := e.PlayerLeaders[category]
	if !ok {
		return ""
	}
	if l.PlayerName == "" {
		return l.Value
	}
	return fmt.Sprintf("%s (%s)", l.PlayerName, l.Value)
}

func resultFor(self, opp model.Competitor, status model.EventStatus) string {
	if status != model.StatusFinal {
		return ""
	}
	sv, sok := self.Score.Int()
	ov, ook := opp.Score.Int()
	if !sok || !ook {
		return ""
	}
	switch {
	case sv > ov:
		return "W"
	case sv < ov:
		return "L"
	default:
		return "T"
	}
}

func marginFor(self, opp model.Competitor) string {
	sv, sok := self.Score.Int()
	ov, ook := opp.Score.Int()
	if !sok || !ook {
		return ""
	}
	d := sv - ov
	if d < 0 {
		d = -d
	}
	return strconv.Itoa(d)
}

// abbreviatedScore renders a final score using the team's sport-specific
// ScoreFormat template rather than one hard-coded layout — soccer reads
// "home - away", North American sports read "away @ home".
func abbreviatedScore(ctx Context, e *model.Event) string {
	av, aok := e.Away.Score.Int()
	hv, hok := e.Home.Score.Int()
	if !aok || !hok {
		return ""
	}
	format := config.DefaultScoreFormat
	if defaults, ok := config.SportRegistry[ctx.Team.LeagueCode]; ok && defaults.ScoreFormat != "" {
		format = defaults.ScoreFormat
	}
	return Render(format, map[string]string{
		"home_abbrev": e.Home.Abbrev,
		"home_score":  strconv.Itoa(hv),
		"away_abbrev": e.Away.Abbrev,
		"away_score":  strconv.Itoa(av),
	})
}

func recapText(ctx Context, e *model.Event, self, opp model.Competitor) string {
	if e.Status != model.StatusFinal {
		return ""
	}
	res := resultFor(self, opp, e.Status)
	if res == "" {
		return ""
	}
	return fmt.Sprintf("%s %s %s %s", ctx.Team.Name, verbForResult(res), abbreviatedScore(ctx, e), "")
}

func verbForResult(res string) string {
	switch res {
	case "W":
		return "defeated"
	case "L":
		return "fell to"
	default:
		return "tied"
	}
}

func scoreString(s model.ScoreValue) string {
	v, ok := s.Int()
	if !ok {
		return ""
	}
	return strconv.Itoa(v)
}

func broadcastList(e *model.Event) string {
	names := make([]string, 0, len(e.Broadcasts))
	for _, b := range e.Broadcasts {
		names = append(names, b.Network)
	}
	return strings.Join(names, ", ")
}

func favoredTeam(ctx Context, e *model.Event, o *model.Odds) string {
	if o.Spread == "" {
		return ""
	}
	if strings.HasPrefix(o.Spread, "-") {
		return e.Home.Name
	}
	return e.Away.Name
}

func isNationalBroadcast(e *model.Event) bool {
	for _, b := range e.Broadcasts {
		if config.NationalBroadcastNetworks[b.Network] {
			return true
		}
	}
	return false
}

func streakDisplay(n int) string {
	if n == 0 {
		return ""
	}
	if n > 0 {
		return fmt.Sprintf("W%d", n)
	}
	return fmt.Sprintf("L%d", -n)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}

func formatIntPtr(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func recordPart(record, part string) string {
	fields := strings.Split(record, "-")
	idx := map[string]int{"wins": 0, "losses": 1, "ties": 2}[part]
	if idx >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[idx])
}

func winPct(record string) string {
	fields := strings.Split(record, "-")
	if len(fields) < 2 {
		return ""
	}
	w, err1 := strconv.Atoi(strings.TrimSpace(fields[0]))
	l, err2 := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err1 != nil || err2 != nil || w+l == 0 {
		return ""
	}
	return strconv.FormatFloat(float64(w)/float64(w+l), 'f', 3, 64)
}

func seasonYear(ctx Context) string {
	if ctx.Current != nil && ctx.Current.Event != nil {
		return strconv.Itoa(ctx.Current.Event.SeasonYear)
	}
	if ctx.Next != nil && ctx.Next.Event != nil {
		return strconv.Itoa(ctx.Next.Event.SeasonYear)
	}
	if ctx.Last != nil && ctx.Last.Event != nil {
		return strconv.Itoa(ctx.Last.Event.SeasonYear)
	}
	return ""
}

func daysBetween(from, to time.Time, l *time.Location) int {
	f := from.In(l).Truncate(24 * time.Hour)
	t := to.In(l).Truncate(24 * time.Hour)
	return int(t.Sub(f).Hours() / 24)
}

func loc(ctx Context) *time.Location {
	l, err := time.LoadLocation(ctx.Settings.EPGTimezone)
	if err != nil {
		return time.UTC
	}
	return l
}
