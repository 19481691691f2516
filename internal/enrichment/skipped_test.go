package enrichment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/albapepper/teamarr/internal/model"
)

func TestCountMissingLeadersAndOddsCountsOnlyRelevantStatus(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	schedule := []model.Event{
		{Status: model.StatusFinal, StartUTC: now}, // finished, no leaders -> counts
		{Status: model.StatusFinal, StartUTC: now, PlayerLeaders: map[string]model.PlayerLeader{
			"points": {Category: "points"},
		}}, // finished, has leaders -> doesn't count
		{Status: model.StatusScheduled, StartUTC: now}, // scheduled, no odds -> counts
		{Status: model.StatusScheduled, StartUTC: now, Odds: &model.Odds{Spread: "-3.5"}}, // has odds -> doesn't count
		{Status: model.StatusLive, StartUTC: now}, // neither final nor scheduled -> doesn't count either way
	}

	leaders, odds := countMissingLeadersAndOdds(schedule)
	assert.Equal(t, 1, leaders)
	assert.Equal(t, 1, odds)
}

func TestCountMissingLeadersAndOddsEmptySchedule(t *testing.T) {
	leaders, odds := countMissingLeadersAndOdds(nil)
	assert.Equal(t, 0, leaders)
	assert.Equal(t, 0, odds)
}
