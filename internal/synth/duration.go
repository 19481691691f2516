// Package synth assembles each team's time-ordered, non-overlapping
// programme stream: games plus pregame/postgame/idle filler across the
// lookahead window.
package synth

import (
	"time"

	"github.com/albapepper/teamarr/internal/config"
	"github.com/albapepper/teamarr/internal/model"
)

// GameDuration resolves a game's on-screen duration per the template's
// game_duration_mode.
func GameDuration(tpl model.Template, leagueKey string) time.Duration {
	switch tpl.GameDurationMode {
	case model.DurationCustom:
		if tpl.CustomDurationMinutes > 0 {
			return time.Duration(tpl.CustomDurationMinutes) * time.Minute
		}
		return config.DefaultGameDuration
	case model.DurationSport:
		if d, ok := config.SportRegistry[leagueKey]; ok {
			return d.GameDuration
		}
		return config.DefaultGameDuration
	default:
		return config.DefaultGameDuration
	}
}
