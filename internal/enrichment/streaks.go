// Package enrichment computes the derived per-team context — streaks,
// head-to-head history, player leaders, head coach, and soccer's
// multi-league merge — that the template engine resolves against.
package enrichment

import (
	"sort"
	"strconv"

	"github.com/albapepper/teamarr/internal/model"
)

// completedGames returns games from schedule that have a final score, sorted
// chronologically ascending.
func completedGames(schedule []model.Event) []model.Event {
	out := make([]model.Event, 0, len(schedule))
	for _, e := range schedule {
		if e.Status != model.StatusFinal {
			continue
		}
		_, sok := e.Home.Score.Int()
		_, aok := e.Away.Score.Int()
		if !sok || !aok {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartUTC.Before(out[j].StartUTC) })
	return out
}

// outcome returns +1 for a win, -1 for a loss, 0 for a tie, for providerTeamID
// in e. Caller guarantees e is completed.
func outcome(e model.Event, providerTeamID string) int {
	self := e.Self(providerTeamID)
	opp := e.Opponent(providerTeamID)
	sv, _ := self.Score.Int()
	ov, _ := opp.Score.Int()
	switch {
	case sv > ov:
		return 1
	case sv < ov:
		return -1
	default:
		return 0
	}
}

// ComputeStreaks walks the completed portion of schedule in chronological
// order and derives the current overall streak, home/away-only streaks, and
// the last-5/last-10/recent-form summaries.
func ComputeStreaks(schedule []model.Event, providerTeamID string) model.Streaks {
	games := completedGames(schedule)

	return model.Streaks{
		Current:      terminalStreak(games, providerTeamID, nil),
		HomeStreak:   terminalStreak(games, providerTeamID, homeOnly(providerTeamID)),
		AwayStreak:   terminalStreak(games, providerTeamID, awayOnly(providerTeamID)),
		Last5Record:  formRecord(lastN(games, 5), providerTeamID),
		Last10Record: formRecord(lastN(games, 10), providerTeamID),
		RecentForm:   formString(lastN(games, 10), providerTeamID),
	}
}

func homeOnly(providerTeamID string) func(model.Event) bool {
	return func(e model.Event) bool { return e.IsHome(providerTeamID) }
}

func awayOnly(providerTeamID string) func(model.Event) bool {
	return func(e model.Event) bool { return !e.IsHome(providerTeamID) }
}

// terminalStreak returns the signed length of the run of identical outcomes
// ending at the most recent game matching filter (nil filter = all games).
func terminalStreak(games []model.Event, providerTeamID string, filter func(model.Event) bool) int {
	filtered := make([]model.Event, 0, len(games))
	for _, g := range games {
		if filter == nil || filter(g) {
			filtered = append(filtered, g)
		}
	}
	if len(filtered) == 0 {
		return 0
	}

	last := outcome(filtered[len(filtered)-1], providerTeamID)
	if last == 0 {
		return 0 // a tie breaks any streak
	}
	count := 0
	for i := len(filtered) - 1; i >= 0; i-- {
		if outcome(filtered[i], providerTeamID) != last {
			break
		}
		count++
	}
	if last < 0 {
		count = -count
	}
	return count
}

func lastN(games []model.Event, n int) []model.Event {
	if len(games) <= n {
		return games
	}
	return games[len(games)-n:]
}

func formRecord(games []model.Event, providerTeamID string) string {
	w, l, t := 0, 0, 0
	for _, g := range games {
		switch outcome(g, providerTeamID) {
		case 1:
			w++
		case -1:
			l++
		default:
			t++
		}
	}
	if t == 0 {
		return itoaPair(w, l)
	}
	return itoaTriple(w, l, t)
}

func formString(games []model.Event, providerTeamID string) string {
	b := make([]byte, 0, len(games))
	for _, g := range games {
		switch outcome(g, providerTeamID) {
		case 1:
			b = append(b, 'W')
		case -1:
			b = append(b, 'L')
		default:
			b = append(b, 'T')
		}
	}
	return string(b)
}

func itoaPair(a, b int) string       { return strconv.Itoa(a) + "-" + strconv.Itoa(b) }
func itoaTriple(a, b, c int) string { return strconv.Itoa(a) + "-" + strconv.Itoa(b) + "-" + strconv.Itoa(c) }
