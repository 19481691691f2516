package synth

import (
	"sort"
	"time"

	"github.com/albapepper/teamarr/internal/enrichment"
	"github.com/albapepper/teamarr/internal/model"
	"github.com/albapepper/teamarr/internal/template"
)

// gameIndex indexes a team's schedule for nearest-future/nearest-past
// lookups relative to an arbitrary instant, used to bind filler segments'
// .next/.last slots.
type gameIndex struct {
	providerTeamID string
	sorted         []model.Event
}

func newGameIndex(providerTeamID string, schedule []model.Event) *gameIndex {
	sorted := make([]model.Event, len(schedule))
	copy(sorted, schedule)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartUTC.Before(sorted[j].StartUTC) })
	return &gameIndex{providerTeamID: providerTeamID, sorted: sorted}
}

// nearestFuture returns the earliest scheduled game starting at or after t.
func (idx *gameIndex) nearestFuture(t time.Time) *model.Event {
	for i := range idx.sorted {
		if !idx.sorted[i].StartUTC.Before(t) {
			g := idx.sorted[i]
			return &g
		}
	}
	return nil
}

// nearestPast returns the most recent completed game starting at or before t.
func (idx *gameIndex) nearestPast(t time.Time) *model.Event {
	var found *model.Event
	for i := range idx.sorted {
		g := idx.sorted[i]
		if g.Status != model.StatusFinal {
			continue
		}
		if g.StartUTC.After(t) {
			break
		}
		gc := g
		found = &gc
	}
	return found
}

// bindingFor builds the GameBinding for a game Event, computing H2H against
// its specific opponent.
func bindingFor(e *model.Event, providerTeamID string, schedule []model.Event, seasonYear int) *template.GameBinding {
	if e == nil {
		return nil
	}
	opp := e.Opponent(providerTeamID)
	h2h := enrichment.ComputeH2H(schedule, providerTeamID, opp.TeamID, seasonYear)
	return &template.GameBinding{Event: e, H2H: &h2h}
}

// contextFor builds the per-segment template.Context following the filler
// binding rules: pregame binds only .next; postgame binds .last (the game
// it follows) and .next (the next scheduled); idle binds both nearest
// future and nearest past.
func contextFor(s segment, team model.Team, tctx *enrichment.TeamContext, idx *gameIndex, settings model.Settings, now time.Time) template.Context {
	ctx := template.Context{
		Team:     team,
		Stats:    tctx.Stats,
		Streaks:  tctx.Streaks,
		Settings: settings,
		Now:      now,
	}

	seasonYear := now.Year()
	if s.Game != nil {
		seasonYear = s.Game.SeasonYear
	}

	switch s.Kind {
	case model.SourceGame:
		ctx.Current = bindingFor(s.Game, team.ProviderTeamID, tctx.Schedule, seasonYear)
	case model.SourcePregame:
		ctx.Next = bindingFor(s.Game, team.ProviderTeamID, tctx.Schedule, seasonYear)
	case model.SourcePostgame:
		ctx.Last = bindingFor(s.Game, team.ProviderTeamID, tctx.Schedule, seasonYear)
		ctx.Next = bindingFor(idx.nearestFuture(s.Stop), team.ProviderTeamID, tctx.Schedule, seasonYear)
	case model.SourceIdle:
		ctx.Next = bindingFor(idx.nearestFuture(s.Start), team.ProviderTeamID, tctx.Schedule, seasonYear)
		ctx.Last = bindingFor(idx.nearestPast(s.Start), team.ProviderTeamID, tctx.Schedule, seasonYear)
	}

	return ctx
}
