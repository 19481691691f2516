package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("TEAMARR_DATABASE_URL", "")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("TEAMARR_DATABASE_URL", "postgres://localhost/teamarr")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/teamarr", cfg.DatabaseURL)
	assert.Equal(t, "UTC", cfg.EPGTimezone)
	assert.Equal(t, 7, cfg.DaysAhead)
	assert.Equal(t, "./out/epg.xml", cfg.OutputPath)
	assert.True(t, cfg.RateLimitEnabled)
	assert.Equal(t, 60, cfg.RateLimitRequests)
	assert.Equal(t, 60*time.Second, cfg.RateLimitWindow)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFallsBackFromDatabaseURLToTZEnv(t *testing.T) {
	t.Setenv("TEAMARR_DATABASE_URL", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/teamarr")
	t.Setenv("EPG_TIMEZONE", "")
	t.Setenv("TZ", "America/New_York")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/teamarr", cfg.DatabaseURL)
	assert.Equal(t, "America/New_York", cfg.EPGTimezone)
}

func TestLoadReadsOverridesAndIsProduction(t *testing.T) {
	t.Setenv("TEAMARR_DATABASE_URL", "postgres://localhost/teamarr")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DAYS_AHEAD", "14")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 14, cfg.DaysAhead)
	assert.False(t, cfg.RateLimitEnabled)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
}

func TestLoadIgnoresUnparsableIntAndFallsBack(t *testing.T) {
	t.Setenv("TEAMARR_DATABASE_URL", "postgres://localhost/teamarr")
	t.Setenv("DAYS_AHEAD", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.DaysAhead)
}

func TestSportRegistryCoversAllDeclaredLeagues(t *testing.T) {
	for code, defaults := range SportRegistry {
		assert.NotEmpty(t, defaults.Sport, "sport for %s", code)
		assert.NotEmpty(t, defaults.LeagueCode, "league code for %s", code)
		assert.Greater(t, defaults.GameDuration, time.Duration(0), "duration for %s", code)
	}
	assert.Contains(t, SportRegistry, "nfl")
	assert.Contains(t, SportRegistry, "soccer")
	assert.Equal(t, "80", SportRegistry["ncaaf"].CollegeGroupID)
}

func TestNationalBroadcastNetworksIsClosedSet(t *testing.T) {
	assert.True(t, NationalBroadcastNetworks["ESPN"])
	assert.False(t, NationalBroadcastNetworks["Local CW Affiliate"])
}
