package synth

import (
	"time"

	"github.com/albapepper/teamarr/internal/enrichment"
	"github.com/albapepper/teamarr/internal/model"
	"github.com/albapepper/teamarr/internal/template"
	"github.com/albapepper/teamarr/internal/xmltv"
)

// Assemble produces the time-ordered, non-overlapping programme stream for
// one team across [now, now+days_ahead).
func Assemble(team model.Team, tpl model.Template, settings model.Settings, tctx *enrichment.TeamContext, now time.Time) ([]model.Programme, error) {
	loc, err := time.LoadLocation(settings.EPGTimezone)
	if err != nil {
		loc = time.UTC
	}

	windowStart := now
	windowEnd := now.Add(time.Duration(settings.DaysAhead) * 24 * time.Hour)

	busy := buildBusyTimeline(tctx.Schedule, tpl, team.LeagueCode, loc, windowStart, windowEnd)
	withIdle := fillIdleGaps(busy, tpl.IdleEnabled, windowStart, windowEnd)
	final := splitOversizedFillers(withIdle, tpl.MaxProgramHours)

	idx := newGameIndex(team.ProviderTeamID, tctx.Schedule)

	channelID := xmltv.ChannelIDFor("espn", team.ProviderTeamID)

	programmes := make([]model.Programme, 0, len(final))
	for _, s := range final {
		ctx := contextFor(s, team, tctx, idx, settings, now)
		vars := template.Resolve(ctx)

		p := model.Programme{
			ChannelID:  channelID,
			StartUTC:   s.Start,
			StopUTC:    s.Stop,
			Categories: tpl.Categories,
			Icon:       team.LogoURL,
			SourceKind: s.Kind,
		}

		switch s.Kind {
		case model.SourceGame:
			p.Title = template.Render(tpl.TitleFormat, vars)
			p.Subtitle = template.Render(tpl.SubtitleFormat, vars)
			p.Description = template.SelectDescription(tpl.DescriptionOptions, ctx, vars)
		case model.SourcePregame:
			p.Title = template.Render(tpl.PregameTemplate, vars)
		case model.SourcePostgame:
			p.Title = template.Render(tpl.PostgameTemplate, vars)
		case model.SourceIdle:
			p.Title = template.Render(tpl.IdleTemplate, vars)
		}

		programmes = append(programmes, p)
	}

	return programmes, nil
}
