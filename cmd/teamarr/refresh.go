package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/albapepper/teamarr/internal/orchestrator"
)

func refreshCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Refresh cached upstream data",
	}
	cmd.AddCommand(refreshSoccerCmd())
	return cmd
}

func refreshSoccerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "soccer",
		Short: "Crawl every known soccer league and refresh the team/league cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(ctx context.Context, engine *orchestrator.Engine) error {
				result, err := engine.RefreshSoccerCache(ctx)
				if err != nil {
					return fmt.Errorf("refresh soccer: %w", err)
				}
				logger.Info("soccer cache refresh finished",
					"leagues", result.LeaguesProcessed, "teams", result.TeamsIndexed,
					"duration", result.Duration.Round(time.Second))
				return nil
			})
		},
	}
}
