package synth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/teamarr/internal/enrichment"
	"github.com/albapepper/teamarr/internal/model"
)

func evt(id string, start time.Time, status model.EventStatus, homeID, awayID string) model.Event {
	return model.Event{
		ID: id, SeasonYear: start.Year(), StartUTC: start, Status: status,
		Home: model.Competitor{TeamID: homeID, Name: "Home " + homeID},
		Away: model.Competitor{TeamID: awayID, Name: "Away " + awayID},
	}
}

func TestNewGameIndexSortsByStartTime(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	schedule := []model.Event{
		evt("g3", base.Add(72*time.Hour), model.StatusScheduled, "team-1", "opp"),
		evt("g1", base, model.StatusFinal, "team-1", "opp"),
		evt("g2", base.Add(24*time.Hour), model.StatusScheduled, "team-1", "opp"),
	}
	idx := newGameIndex("team-1", schedule)

	require.Len(t, idx.sorted, 3)
	assert.Equal(t, "g1", idx.sorted[0].ID)
	assert.Equal(t, "g2", idx.sorted[1].ID)
	assert.Equal(t, "g3", idx.sorted[2].ID)
}

func TestNearestFutureReturnsEarliestGameAtOrAfterT(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	idx := newGameIndex("team-1", []model.Event{
		evt("g1", base, model.StatusFinal, "team-1", "opp"),
		evt("g2", base.Add(48*time.Hour), model.StatusScheduled, "team-1", "opp"),
	})

	g := idx.nearestFuture(base.Add(time.Hour))
	require.NotNil(t, g)
	assert.Equal(t, "g2", g.ID)

	assert.Nil(t, idx.nearestFuture(base.Add(100*time.Hour)))
}

func TestNearestPastReturnsMostRecentFinishedGameAtOrBeforeT(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	idx := newGameIndex("team-1", []model.Event{
		evt("g1", base, model.StatusFinal, "team-1", "opp"),
		evt("g2", base.Add(24*time.Hour), model.StatusScheduled, "team-1", "opp"),
		evt("g3", base.Add(48*time.Hour), model.StatusFinal, "team-1", "opp"),
	})

	g := idx.nearestPast(base.Add(72 * time.Hour))
	require.NotNil(t, g)
	assert.Equal(t, "g3", g.ID, "scheduled-but-not-final games must not count as past")

	assert.Nil(t, idx.nearestPast(base.Add(-time.Hour)))
}

func TestBindingForReturnsNilForNoGame(t *testing.T) {
	assert.Nil(t, bindingFor(nil, "team-1", nil, 2026))
}

func TestBindingForComputesH2HAgainstTheEventsOpponent(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	game := evt("g1", base, model.StatusScheduled, "team-1", "opp")
	schedule := []model.Event{game}

	b := bindingFor(&game, "team-1", schedule, 2026)
	require.NotNil(t, b)
	assert.Equal(t, &game, b.Event)
	require.NotNil(t, b.H2H)
}

func TestContextForBindsPregameOnlyToNextGame(t *testing.T) {
	base := time.Date(2026, 1, 1, 19, 0, 0, 0, time.UTC)
	game := evt("g1", base, model.StatusScheduled, "team-1", "opp")
	team := model.Team{ProviderTeamID: "team-1"}
	tctx := &enrichment.TeamContext{Schedule: []model.Event{game}}
	idx := newGameIndex("team-1", tctx.Schedule)
	settings := model.Settings{}

	s := segment{Kind: model.SourcePregame, Start: base.Add(-30 * time.Minute), Stop: base, Game: &game}
	ctx := contextFor(s, team, tctx, idx, settings, base.Add(-time.Hour))

	require.NotNil(t, ctx.Next)
	assert.Nil(t, ctx.Last)
	assert.Nil(t, ctx.Current)
}

func TestContextForBindsPostgameToLastAndNext(t *testing.T) {
	base := time.Date(2026, 1, 1, 19, 0, 0, 0, time.UTC)
	finishedGame := evt("g1", base, model.StatusFinal, "team-1", "opp")
	nextGame := evt("g2", base.Add(72*time.Hour), model.StatusScheduled, "team-1", "opp")
	team := model.Team{ProviderTeamID: "team-1"}
	tctx := &enrichment.TeamContext{Schedule: []model.Event{finishedGame, nextGame}}
	idx := newGameIndex("team-1", tctx.Schedule)
	settings := model.Settings{}

	postgameStop := base.Add(3 * time.Hour)
	s := segment{Kind: model.SourcePostgame, Start: base.Add(2 * time.Hour), Stop: postgameStop, Game: &finishedGame}
	ctx := contextFor(s, team, tctx, idx, settings, base)

	require.NotNil(t, ctx.Last)
	assert.Equal(t, "g1", ctx.Last.Event.ID)
	require.NotNil(t, ctx.Next)
	assert.Equal(t, "g2", ctx.Next.Event.ID)
}

func TestContextForBindsIdleToBothNearestPastAndFuture(t *testing.T) {
	base := time.Date(2026, 1, 1, 19, 0, 0, 0, time.UTC)
	pastGame := evt("g1", base, model.StatusFinal, "team-1", "opp")
	futureGame := evt("g2", base.Add(72*time.Hour), model.StatusScheduled, "team-1", "opp")
	team := model.Team{ProviderTeamID: "team-1"}
	tctx := &enrichment.TeamContext{Schedule: []model.Event{pastGame, futureGame}}
	idx := newGameIndex("team-1", tctx.Schedule)
	settings := model.Settings{}

	idleStart := base.Add(24 * time.Hour)
	s := segment{Kind: model.SourceIdle, Start: idleStart, Stop: idleStart.Add(6 * time.Hour)}
	ctx := contextFor(s, team, tctx, idx, settings, base)

	require.NotNil(t, ctx.Last)
	assert.Equal(t, "g1", ctx.Last.Event.ID)
	require.NotNil(t, ctx.Next)
	assert.Equal(t, "g2", ctx.Next.Event.ID)
}
