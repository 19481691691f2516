// Package store persists Tier S (soccer league index), Tier P
// (fingerprint/history), and the configured team/template/settings records,
// all backed by Postgres via pgx.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albapepper/teamarr/internal/config"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

// registerPreparedStatements registers every statement the control plane and
// generation pipeline use, eliminating parse overhead on the hot path.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		"health_check": "SELECT 1",

		"list_teams":        "SELECT id, provider_team_id, league_code, name, abbrev, logo_url, template_id, active FROM teams WHERE active = true",
		"get_template":       "SELECT id, name, type, title_format, subtitle_format, description_options, pregame_enabled, pregame_minutes, pregame_template, postgame_enabled, postgame_minutes, postgame_template, idle_enabled, idle_template, max_program_hours, game_duration_mode, custom_duration_minutes, midnight_crossover_mode, categories, flags FROM templates WHERE id = $1",
		"get_settings":       "SELECT epg_timezone, days_ahead, output_path FROM settings WHERE id = 1",

		"soccer_leagues_for_team":  "SELECT league_slug FROM soccer_team_leagues WHERE provider_team_id = $1",
		"upsert_soccer_league":     "INSERT INTO soccer_leagues (league_slug, name, abbreviation, tags, logo_url, team_count, last_refreshed_at) VALUES ($1, $2, $3, $4, $5, $6, now()) ON CONFLICT (league_slug) DO UPDATE SET name = EXCLUDED.name, abbreviation = EXCLUDED.abbreviation, tags = EXCLUDED.tags, logo_url = EXCLUDED.logo_url, team_count = EXCLUDED.team_count, last_refreshed_at = now()",
		"upsert_team_league":       "INSERT INTO soccer_team_leagues (provider_team_id, league_slug) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		"clear_team_leagues":       "DELETE FROM soccer_team_leagues WHERE league_slug = $1",
		"record_soccer_refresh":    "INSERT INTO soccer_cache_meta (id, last_refreshed_at, league_count, team_count, duration_ms) VALUES (1, now(), $1, $2, $3) ON CONFLICT (id) DO UPDATE SET last_refreshed_at = now(), league_count = $1, team_count = $2, duration_ms = $3",
		"soccer_cache_staleness":   "SELECT last_refreshed_at FROM soccer_cache_meta WHERE id = 1",

		"upsert_fingerprint":       "INSERT INTO event_fingerprints (stream_name, event_id, last_seen_generation) VALUES ($1, $2, $3) ON CONFLICT (stream_name, event_id) DO UPDATE SET last_seen_generation = $3",
		"purge_stale_fingerprints": "DELETE FROM event_fingerprints WHERE $1 - last_seen_generation > $2",

		"insert_generation_run":  "INSERT INTO generation_runs (id, started_at, finished_at, team_count, programme_count, error_count, status) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		"list_generation_runs":   "SELECT id, started_at, finished_at, team_count, programme_count, error_count, status FROM generation_runs ORDER BY started_at DESC LIMIT $1",
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
