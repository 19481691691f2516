package enrichment

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/albapepper/teamarr/internal/model"
)

const teamID = "team-1"

func finalGame(day int, homeScore, awayScore int, isHome bool) model.Event {
	home := model.Competitor{TeamID: "opp", Score: model.Some(homeScore)}
	away := model.Competitor{TeamID: "opp", Score: model.Some(awayScore)}
	if isHome {
		home.TeamID = teamID
	} else {
		away.TeamID = teamID
	}
	return model.Event{
		ID:       "g" + strconv.Itoa(day),
		Status:   model.StatusFinal,
		StartUTC: time.Date(2026, 1, day, 19, 0, 0, 0, time.UTC),
		Home:     home,
		Away:     away,
	}
}

func TestComputeStreaksWinStreak(t *testing.T) {
	schedule := []model.Event{
		finalGame(1, 3, 1, true),  // win (home 3 vs away 1, team is home)
		finalGame(2, 0, 2, false), // win (team away scores 2, opp home scores 0)
		finalGame(3, 5, 1, true),  // win
	}

	streaks := ComputeStreaks(schedule, teamID)
	assert.Equal(t, 3, streaks.Current)
	assert.Equal(t, "WWW", streaks.RecentForm)
}

func TestComputeStreaksLossBreaksStreak(t *testing.T) {
	schedule := []model.Event{
		finalGame(1, 3, 1, true),
		finalGame(2, 3, 1, false), // team away, loses 1-3
		finalGame(3, 1, 0, false), // team away, loses 0-1
	}

	streaks := ComputeStreaks(schedule, teamID)
	assert.Equal(t, -2, streaks.Current)
	assert.Equal(t, "WLL", streaks.RecentForm)
}

func TestComputeStreaksHomeAwaySplit(t *testing.T) {
	schedule := []model.Event{
		finalGame(1, 3, 1, true),  // home win
		finalGame(2, 0, 2, false), // away win
		finalGame(3, 1, 4, true),  // home loss
	}

	streaks := ComputeStreaks(schedule, teamID)
	assert.Equal(t, -1, streaks.HomeStreak, "most recent home game was a loss")
	assert.Equal(t, 1, streaks.AwayStreak, "only away game was a win")
}

func TestComputeStreaksIgnoresUnfinishedGames(t *testing.T) {
	schedule := []model.Event{
		finalGame(1, 3, 1, true),
		{
			ID:       "scheduled-game",
			Status:   model.StatusScheduled,
			StartUTC: time.Date(2026, 1, 2, 19, 0, 0, 0, time.UTC),
			Home:     model.Competitor{TeamID: teamID},
			Away:     model.Competitor{TeamID: "opp"},
		},
	}

	streaks := ComputeStreaks(schedule, teamID)
	assert.Equal(t, 1, streaks.Current)
	assert.Equal(t, "W", streaks.RecentForm)
}

func TestComputeStreaksTieBreaksRun(t *testing.T) {
	schedule := []model.Event{
		finalGame(1, 3, 1, true),
		finalGame(2, 2, 2, true),
	}

	streaks := ComputeStreaks(schedule, teamID)
	assert.Equal(t, 0, streaks.Current)
	assert.Equal(t, "WT", streaks.RecentForm)
}
