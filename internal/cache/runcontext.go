package cache

import (
	"log/slog"

	"github.com/albapepper/teamarr/internal/model"
	"github.com/albapepper/teamarr/internal/upstream"
)

// RunContext carries everything a single generation run needs: the
// process-wide HTTP client, a fresh Tier-E cache, the immutable settings
// snapshot, and a logger. Passed explicitly into every component instead
// of relying on package-level globals.
type RunContext struct {
	Client   *upstream.Client
	TierE    *Ephemeral
	Settings model.Settings
	Logger   *slog.Logger
}

// New builds a fresh RunContext for one generation run, purging Tier E by
// constructing a new Ephemeral cache.
func New(client *upstream.Client, settings model.Settings, logger *slog.Logger) *RunContext {
	return &RunContext{
		Client:   client,
		TierE:    NewEphemeral(),
		Settings: settings,
		Logger:   logger,
	}
}
