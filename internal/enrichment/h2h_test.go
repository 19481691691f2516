package enrichment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/teamarr/internal/model"
)

func TestComputeH2HTalliesAndRecordsMostRecentMeeting(t *testing.T) {
	schedule := []model.Event{
		{
			SeasonYear: 2025, Status: model.StatusFinal, Venue: "Old Arena",
			StartUTC: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			Home:     model.Competitor{TeamID: teamID, Abbrev: "HME", Score: model.Some(10)},
			Away:     model.Competitor{TeamID: "opp", Abbrev: "AWY", Score: model.Some(3)},
		},
		{
			SeasonYear: 2025, Status: model.StatusFinal, Venue: "New Arena",
			StartUTC: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			Home:     model.Competitor{TeamID: "opp", Abbrev: "AWY", Score: model.Some(2)},
			Away:     model.Competitor{TeamID: teamID, Abbrev: "HME", Score: model.Some(1)},
		},
		// Different season year, must be excluded.
		{
			SeasonYear: 2024, Status: model.StatusFinal,
			StartUTC: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			Home:     model.Competitor{TeamID: "opp", Score: model.Some(9)},
			Away:     model.Competitor{TeamID: teamID, Score: model.Some(9)},
		},
	}

	h := ComputeH2H(schedule, teamID, "opp", 2025)

	assert.Equal(t, 1, h.TeamWins)
	assert.Equal(t, 1, h.OppWins)
	require.True(t, h.HasPrevious)
	assert.Equal(t, "HME 1 @ AWY 2", h.PreviousScore)
	assert.Equal(t, "New Arena", h.PreviousVenue)
}

func TestComputeH2HNoPreviousMeetings(t *testing.T) {
	h := ComputeH2H(nil, teamID, "opp", 2025)
	assert.False(t, h.HasPrevious)
	assert.Equal(t, 0, h.TeamWins)
	assert.Equal(t, 0, h.OppWins)
}
