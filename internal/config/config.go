// Package config provides centralized configuration loaded from environment
// variables. Shared by the generation CLI and the control-plane server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Sport registry — default game durations and upstream league codes.
// --------------------------------------------------------------------------

// DefaultScoreFormat is the abbreviated-score rendering used by any sport
// that doesn't set its own ScoreFormat: away team first, "@" separator,
// matching how North American broadcasts read a final score aloud.
const DefaultScoreFormat = "{away_abbrev} {away_score} @ {home_abbrev} {home_score}"

// SportDefaults holds the per-sport defaults used by the
// game_duration_mode == "sport" table.
type SportDefaults struct {
	Sport          string // ESPN URL path segment: football, basketball, hockey, baseball, soccer
	LeagueCode     string
	GameDuration   time.Duration
	CollegeGroupID string // query-param value for college scoreboards, empty if N/A

	// ScoreFormat is a template string (same {placeholder} substitution as
	// programme descriptions) for rendering an abbreviated final score. Vars
	// available: home_abbrev, home_score, away_abbrev, away_score. Falls
	// back to DefaultScoreFormat when empty.
	ScoreFormat string
}

var SportRegistry = map[string]SportDefaults{
	"nfl":    {Sport: "football", LeagueCode: "nfl", GameDuration: 3*time.Hour + 30*time.Minute},
	"nba":    {Sport: "basketball", LeagueCode: "nba", GameDuration: 2*time.Hour + 30*time.Minute},
	"nhl":    {Sport: "hockey", LeagueCode: "nhl", GameDuration: 2*time.Hour + 30*time.Minute},
	"mlb":    {Sport: "baseball", LeagueCode: "mlb", GameDuration: 3*time.Hour + 30*time.Minute},
	"soccer": {Sport: "soccer", LeagueCode: "soccer", GameDuration: 2 * time.Hour,
		ScoreFormat: "{home_abbrev} {home_score} - {away_abbrev} {away_score}"},
	"ncaaf": {Sport: "football", LeagueCode: "college-football", GameDuration: 3*time.Hour + 30*time.Minute, CollegeGroupID: "80"},
	"ncaab": {Sport: "basketball", LeagueCode: "mens-college-basketball", GameDuration: 2*time.Hour + 30*time.Minute, CollegeGroupID: "50"},
}

// DefaultGameDuration is the global fallback for game_duration_mode == "default".
const DefaultGameDuration = 3 * time.Hour

// NationalBroadcastNetworks is the closed set used by the is_national_broadcast
// conditional predicate.
var NationalBroadcastNetworks = map[string]bool{
	"ABC": true, "CBS": true, "NBC": true, "FOX": true,
	"ESPN": true, "ESPN2": true, "TNT": true, "TBS": true,
	"Peacock": true, "Prime Video": true, "Apple TV+": true,
	"NFL Network": true, "NBA TV": true, "MLB Network": true,
}

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

// Config is the process-wide configuration snapshot, read once at startup.
// Mutations to the underlying store during a run do not affect an
// in-progress generation — callers take a Settings snapshot (see
// model.Settings) rather than re-reading Config mid-run.
type Config struct {
	// Database (Tier S / Tier P)
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// Control-plane HTTP server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	CORSAllowOrigins []string

	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Upstream providers
	ESPNBaseURL string
	TSDBBaseURL string
	TSDBAPIKey  string

	// Generation defaults (overridable per-run via Settings)
	EPGTimezone      string
	DaysAhead        int
	OutputPath       string
	GenerationDeadline time.Duration

	// Tier-S refresh
	SoccerRefreshStaleness time.Duration
	SoccerRefreshWorkers   int

	// Tier-P purge
	FingerprintPurgeAfterRuns int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	dbURL := envOr("TEAMARR_DATABASE_URL", envOr("DATABASE_URL", ""))
	if dbURL == "" {
		return nil, fmt.Errorf("TEAMARR_DATABASE_URL or DATABASE_URL must be set")
	}

	tz := envOr("EPG_TIMEZONE", envOr("TZ", "UTC"))

	return &Config{
		DatabaseURL:    dbURL,
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 2),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 60),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,

		ESPNBaseURL: envOr("ESPN_BASE_URL", "https://site.api.espn.com/apis/site/v2/sports"),
		TSDBBaseURL: envOr("TSDB_BASE_URL", "https://www.thesportsdb.com/api/v1/json"),
		TSDBAPIKey:  envOr("TSDB_API_KEY", "3"), // "3" is TheSportsDB's published free test key

		EPGTimezone:        tz,
		DaysAhead:          envInt("DAYS_AHEAD", 7),
		OutputPath:         envOr("OUTPUT_PATH", "./out/epg.xml"),
		GenerationDeadline: time.Duration(envInt("GENERATION_DEADLINE_MINUTES", 10)) * time.Minute,

		SoccerRefreshStaleness: time.Duration(envInt("SOCCER_REFRESH_STALENESS_DAYS", 7)) * 24 * time.Hour,
		SoccerRefreshWorkers:   envInt("SOCCER_REFRESH_WORKERS", 50),

		FingerprintPurgeAfterRuns: envInt("FINGERPRINT_PURGE_AFTER_RUNS", 30),
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
