package orchestrator

import (
	"context"

	"github.com/albapepper/teamarr/internal/soccer"
)

// RefreshSoccerCache runs the Tier S soccer league crawl. It is
// exposed here, not directly from internal/soccer, so the HTTP and CLI
// surfaces only ever depend on the orchestrator for control-plane
// operations.
func (e *Engine) RefreshSoccerCache(ctx context.Context) (soccer.Result, error) {
	e.Status.Update(0, "refreshing soccer league cache")
	result, err := soccer.Refresh(ctx, e.Client, e.Pool, e.Config, e.Logger)
	if err != nil {
		e.Status.Finish("soccer cache refresh failed")
		return result, err
	}
	e.Status.Finish("soccer cache refresh complete")
	return result, nil
}
