package template

import (
	"time"

	"github.com/albapepper/teamarr/internal/model"
)

// GameBinding pairs an Event with the head-to-head history computed against
// that event's specific opponent (H2H is opponent-dependent, so current,
// next, and last each carry their own binding).
type GameBinding struct {
	Event *model.Event
	H2H   *model.H2H
}

// Context is everything the resolver needs to flatten one team's variable
// map for one generation instant.
type Context struct {
	Team     model.Team
	Stats    model.TeamStats
	Streaks  model.Streaks
	Settings model.Settings
	Now      time.Time

	// Current is the game occupying "now" — nil for pregame/postgame/idle
	// filler, which instead bind Next and/or Last.
	Current *GameBinding
	Next    *GameBinding
	Last    *GameBinding
}
