package synth

import (
	"sort"
	"time"

	"github.com/albapepper/teamarr/internal/model"
)

// segment is one busy or filler span on a team's programme timeline, before
// template resolution.
type segment struct {
	Kind     model.SourceKind
	Start    time.Time
	Stop     time.Time
	Game     *model.Event // the game this segment is attached to; nil for gap-filling idle
}

// buildGameSegments converts one game into its pregame/game/postgame
// segments, honoring the template's filler toggles and the midnight
// crossover mode when the game itself spans local midnight.
func buildGameSegments(game model.Event, tpl model.Template, gameDur time.Duration, loc *time.Location) []segment {
	gameStart := game.StartUTC
	gameEnd := gameStart.Add(gameDur)

	var segs []segment

	if tpl.PregameEnabled && tpl.PregameMinutes > 0 {
		pregameStart := gameStart.Add(-time.Duration(tpl.PregameMinutes) * time.Minute)
		segs = append(segs, segment{Kind: model.SourcePregame, Start: pregameStart, Stop: gameStart, Game: &game})
	}

	segs = append(segs, segment{Kind: model.SourceGame, Start: gameStart, Stop: gameEnd, Game: &game})

	crossesMidnight := gameStart.In(loc).Format("2006-01-02") != gameEnd.In(loc).Format("2006-01-02")

	if crossesMidnight {
		switch tpl.MidnightCrossoverMode {
		case model.CrossoverPostgame:
			if tpl.PostgameMinutes > 0 {
				segs = append(segs, segment{Kind: model.SourcePostgame, Start: gameEnd,
					Stop: gameEnd.Add(time.Duration(tpl.PostgameMinutes) * time.Minute), Game: &game})
			}
		case model.CrossoverIdle:
			if tpl.PostgameMinutes > 0 {
				segs = append(segs, segment{Kind: model.SourceIdle, Start: gameEnd,
					Stop: gameEnd.Add(time.Duration(tpl.PostgameMinutes) * time.Minute), Game: &game})
			}
		case model.CrossoverNone:
			// Deliberate gap: the next day starts empty until pregame/game.
		}
		return segs
	}

	if tpl.PostgameEnabled && tpl.PostgameMinutes > 0 {
		segs = append(segs, segment{Kind: model.SourcePostgame, Start: gameEnd,
			Stop: gameEnd.Add(time.Duration(tpl.PostgameMinutes) * time.Minute), Game: &game})
	}

	return segs
}

// buildBusyTimeline produces the sorted, non-overlapping sequence of
// game/pregame/postgame segments for every game in games. Segments that end
// before windowStart or start at or after windowEnd are dropped, starts are
// clamped to windowStart, and a segment running past windowEnd keeps its
// full length.
func buildBusyTimeline(games []model.Event, tpl model.Template, leagueKey string, loc *time.Location, windowStart, windowEnd time.Time) []segment {
	gameDur := GameDuration(tpl, leagueKey)

	var all []segment
	for _, g := range games {
		all = append(all, buildGameSegments(g, tpl, gameDur, loc)...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Start.Before(all[j].Start) })

	out := make([]segment, 0, len(all))
	for _, s := range all {
		if s.Stop.Before(windowStart) || !s.Start.Before(windowEnd) {
			continue
		}
		if s.Start.Before(windowStart) {
			s.Start = windowStart
		}
		if s.Stop.After(windowEnd) {
			// Let the final in-progress game/filler complete rather than
			// truncating mid-programme; only the idle gap after it is
			// clipped at windowEnd.
		}
		out = append(out, s)
	}
	return out
}
