package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/albapepper/teamarr/internal/enrichment"
)

func TestAddSkippedAccumulatesAcrossMultipleTeams(t *testing.T) {
	var total SkippedCounts

	addSkipped(&total, enrichment.SkipCounts{StatsUnavailable: true, LeadersMissing: 2, OddsMissing: 1})
	addSkipped(&total, enrichment.SkipCounts{CoachUnavailable: true, ScoreboardUnavailable: true, LeadersMissing: 1})

	assert.Equal(t, 1, total.StatsUnavailable)
	assert.Equal(t, 1, total.CoachUnavailable)
	assert.Equal(t, 1, total.ScoreboardUnavailable)
	assert.Equal(t, 3, total.LeadersMissing)
	assert.Equal(t, 1, total.OddsMissing)
}
