package store

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/albapepper/teamarr/internal/model"
	"github.com/albapepper/teamarr/internal/template"
)

// templateValidator enforces Template's struct tags (required format
// strings, a positive max_program_hours, a closed set of duration/crossover
// modes) once per load, the same way the pack validates inbound payloads.
var templateValidator = validator.New()

// ListActiveTeams returns every configured team marked active.
func (p *Pool) ListActiveTeams(ctx context.Context) ([]model.Team, error) {
	rows, err := p.Query(ctx, "list_teams")
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	var teams []model.Team
	for rows.Next() {
		var t model.Team
		if err := rows.Scan(&t.ID, &t.ProviderTeamID, &t.LeagueCode, &t.Name, &t.Abbrev, &t.LogoURL, &t.TemplateID, &t.Active); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

// GetTemplate loads one template by id, unmarshaling its JSON-blob columns
// into typed in-memory representations.
func (p *Pool) GetTemplate(ctx context.Context, id int64) (model.Template, error) {
	var t model.Template
	var descRaw, categoriesRaw, flagsRaw []byte

	row := p.QueryRow(ctx, "get_template", id)
	err := row.Scan(
		&t.ID, &t.Name, &t.Type, &t.TitleFormat, &t.SubtitleFormat, &descRaw,
		&t.PregameEnabled, &t.PregameMinutes, &t.PregameTemplate,
		&t.PostgameEnabled, &t.PostgameMinutes, &t.PostgameTemplate,
		&t.IdleEnabled, &t.IdleTemplate,
		&t.MaxProgramHours, &t.GameDurationMode, &t.CustomDurationMinutes,
		&t.MidnightCrossoverMode, &categoriesRaw, &flagsRaw,
	)
	if err != nil {
		return model.Template{}, fmt.Errorf("get template %d: %w", id, err)
	}

	if len(descRaw) > 0 {
		if err := json.Unmarshal(descRaw, &t.DescriptionOptions); err != nil {
			return model.Template{}, fmt.Errorf("unmarshal description_options: %w", err)
		}
	}
	if len(categoriesRaw) > 0 {
		if err := json.Unmarshal(categoriesRaw, &t.Categories); err != nil {
			return model.Template{}, fmt.Errorf("unmarshal categories: %w", err)
		}
	}
	if len(flagsRaw) > 0 {
		if err := json.Unmarshal(flagsRaw, &t.Flags); err != nil {
			return model.Template{}, fmt.Errorf("unmarshal flags: %w", err)
		}
	}

	if err := templateValidator.StructCtx(ctx, t); err != nil {
		return model.Template{}, fmt.Errorf("invalid template %d: %w", id, err)
	}
	if err := template.ValidateTemplate(t); err != nil {
		return model.Template{}, fmt.Errorf("invalid template %d: %w", id, err)
	}

	return t, nil
}

// GetSettings loads the single run-level settings row.
func (p *Pool) GetSettings(ctx context.Context) (model.Settings, error) {
	var s model.Settings
	row := p.QueryRow(ctx, "get_settings")
	if err := row.Scan(&s.EPGTimezone, &s.DaysAhead, &s.OutputPath); err != nil {
		return model.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return s, nil
}
