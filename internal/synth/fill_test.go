package synth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/teamarr/internal/model"
)

func TestFillIdleGapsFillsBeforeBetweenAndAfter(t *testing.T) {
	windowStart := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	busy := []segment{
		{Kind: model.SourceGame, Start: time.Date(2026, 1, 1, 2, 0, 0, 0, time.UTC), Stop: time.Date(2026, 1, 1, 4, 0, 0, 0, time.UTC)},
		{Kind: model.SourceGame, Start: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC), Stop: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)},
	}

	filled := fillIdleGaps(busy, true, windowStart, windowEnd)

	require.Len(t, filled, 5)
	assert.Equal(t, model.SourceIdle, filled[0].Kind)
	assert.True(t, filled[0].Start.Equal(windowStart))
	assert.True(t, filled[0].Stop.Equal(busy[0].Start))

	assert.Equal(t, model.SourceIdle, filled[2].Kind)
	assert.True(t, filled[2].Start.Equal(busy[0].Stop))
	assert.True(t, filled[2].Stop.Equal(busy[1].Start))

	assert.Equal(t, model.SourceIdle, filled[4].Kind)
	assert.True(t, filled[4].Start.Equal(busy[1].Stop))
	assert.True(t, filled[4].Stop.Equal(windowEnd))
}

func TestFillIdleGapsDisabledLeavesGapsUntouched(t *testing.T) {
	busy := []segment{
		{Kind: model.SourceGame, Start: time.Date(2026, 1, 1, 2, 0, 0, 0, time.UTC), Stop: time.Date(2026, 1, 1, 4, 0, 0, 0, time.UTC)},
	}
	filled := fillIdleGaps(busy, false, time.Time{}, time.Time{})
	assert.Equal(t, busy, filled)
}

func TestSplitOversizedFillersChunksAtLimit(t *testing.T) {
	idle := segment{
		Kind:  model.SourceIdle,
		Start: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Stop:  time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC), // 10 hours
	}
	out := splitOversizedFillers([]segment{idle}, 4)

	require.Len(t, out, 3)
	assert.Equal(t, 4*time.Hour, out[0].Stop.Sub(out[0].Start))
	assert.Equal(t, 4*time.Hour, out[1].Stop.Sub(out[1].Start))
	assert.Equal(t, 2*time.Hour, out[2].Stop.Sub(out[2].Start), "final chunk may be shorter")
}

func TestSplitOversizedFillersNeverSplitsGameSegments(t *testing.T) {
	game := segment{
		Kind:  model.SourceGame,
		Start: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Stop:  time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC),
	}
	out := splitOversizedFillers([]segment{game}, 4)
	require.Len(t, out, 1)
	assert.Equal(t, game, out[0])
}
