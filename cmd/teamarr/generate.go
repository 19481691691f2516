package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/albapepper/teamarr/internal/config"
	"github.com/albapepper/teamarr/internal/orchestrator"
	"github.com/albapepper/teamarr/internal/store"
	"github.com/albapepper/teamarr/internal/upstream"
)

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate the XMLTV EPG for every active team",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(ctx context.Context, engine *orchestrator.Engine) error {
				start := time.Now()
				result, err := engine.GenerateEPG(ctx)
				if err != nil {
					return fmt.Errorf("generate: %w", err)
				}
				logger.Info("generation finished",
					"teams_processed", result.TeamsProcessed,
					"teams_skipped", result.TeamsSkipped,
					"programmes", result.ProgrammeCount,
					"output", result.OutputPath,
					"duration", time.Since(start).Round(time.Millisecond))
				for _, e := range result.Errors {
					logger.Warn("team skipped", "team", e.Name, "error", e.Err)
				}
				return nil
			})
		},
	}
}

// withEngine handles config loading, DB/client setup, signal-aware
// cancellation, and teardown for any one-shot CLI operation.
func withEngine(fn func(ctx context.Context, engine *orchestrator.Engine) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := store.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	client := upstream.NewClient(cfg.ESPNBaseURL, cfg.TSDBBaseURL, cfg.TSDBAPIKey, logger)
	engine := orchestrator.NewEngine(pool, client, cfg, logger)

	return fn(ctx, engine)
}
