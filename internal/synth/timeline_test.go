package synth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/teamarr/internal/model"
)

func baseTemplate() model.Template {
	return model.Template{
		PregameEnabled:        true,
		PregameMinutes:        30,
		PostgameEnabled:       true,
		PostgameMinutes:       30,
		IdleEnabled:           true,
		MaxProgramHours:       4,
		GameDurationMode:      model.DurationDefault,
		MidnightCrossoverMode: model.CrossoverPostgame,
	}
}

func TestBuildGameSegmentsOrdinaryGame(t *testing.T) {
	game := model.Event{
		ID:       "g1",
		StartUTC: time.Date(2026, 1, 10, 19, 0, 0, 0, time.UTC),
	}
	segs := buildGameSegments(game, baseTemplate(), 3*time.Hour, time.UTC)

	require.Len(t, segs, 3)
	assert.Equal(t, model.SourcePregame, segs[0].Kind)
	assert.Equal(t, model.SourceGame, segs[1].Kind)
	assert.Equal(t, model.SourcePostgame, segs[2].Kind)

	// non-overlap: each segment's Start equals the previous one's Stop.
	for i := 1; i < len(segs); i++ {
		assert.True(t, !segs[i].Start.Before(segs[i-1].Stop), "segment %d overlaps segment %d", i, i-1)
	}
}

func TestBuildGameSegmentsMidnightCrossoverIdleMode(t *testing.T) {
	tpl := baseTemplate()
	tpl.MidnightCrossoverMode = model.CrossoverIdle

	game := model.Event{
		ID:       "g2",
		StartUTC: time.Date(2026, 1, 10, 23, 0, 0, 0, time.UTC),
	}
	// 3-hour game crossing midnight.
	segs := buildGameSegments(game, tpl, 3*time.Hour, time.UTC)

	require.Len(t, segs, 3)
	assert.Equal(t, model.SourceIdle, segs[2].Kind, "crossover mode idle downgrades the trailing filler")
}

func TestBuildGameSegmentsMidnightCrossoverNoneMode(t *testing.T) {
	tpl := baseTemplate()
	tpl.MidnightCrossoverMode = model.CrossoverNone

	game := model.Event{
		ID:       "g3",
		StartUTC: time.Date(2026, 1, 10, 23, 0, 0, 0, time.UTC),
	}
	segs := buildGameSegments(game, tpl, 3*time.Hour, time.UTC)

	require.Len(t, segs, 2, "crossover mode none drops the trailing filler entirely")
	assert.Equal(t, model.SourceGame, segs[1].Kind)
}

func TestBuildBusyTimelineNonOverlappingAcrossMultipleGames(t *testing.T) {
	tpl := baseTemplate()
	games := []model.Event{
		{ID: "a", StartUTC: time.Date(2026, 1, 10, 19, 0, 0, 0, time.UTC)},
		{ID: "b", StartUTC: time.Date(2026, 1, 11, 19, 0, 0, 0, time.UTC)},
	}
	windowStart := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2026, 1, 13, 0, 0, 0, 0, time.UTC)

	segs := buildBusyTimeline(games, tpl, "nfl", time.UTC, windowStart, windowEnd)
	require.NotEmpty(t, segs)
	for i := 1; i < len(segs); i++ {
		assert.True(t, !segs[i].Start.Before(segs[i-1].Stop), "timeline segments must not overlap")
	}
}
