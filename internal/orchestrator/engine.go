package orchestrator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/albapepper/teamarr/internal/cache"
	"github.com/albapepper/teamarr/internal/config"
	"github.com/albapepper/teamarr/internal/enrichment"
	"github.com/albapepper/teamarr/internal/model"
	"github.com/albapepper/teamarr/internal/store"
	"github.com/albapepper/teamarr/internal/synth"
	"github.com/albapepper/teamarr/internal/upstream"
	"github.com/albapepper/teamarr/internal/xmltv"
)

// Engine is the generation control plane: it owns the shared
// upstream client and database pool for the process lifetime and runs one
// generation at a time.
type Engine struct {
	Pool   *store.Pool
	Client *upstream.Client
	Config *config.Config
	Logger *slog.Logger
	Status *StatusTracker

	genMu sync.Mutex // serializes GenerateEPG calls
}

// NewEngine builds an Engine bound to the process-wide pool and client.
func NewEngine(pool *store.Pool, client *upstream.Client, cfg *config.Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{Pool: pool, Client: client, Config: cfg, Logger: logger, Status: NewStatusTracker()}
}

// GenerateEPG runs one full generation: load the immutable config snapshot,
// fan out across teams with a deadline, and write the merged XMLTV document
//.
func (e *Engine) GenerateEPG(ctx context.Context) (Result, error) {
	e.genMu.Lock()
	defer e.genMu.Unlock()

	result := Result{StartedAt: timeNow()}
	runID := uuid.New()

	ctx, cancel := context.WithTimeout(ctx, e.Config.GenerationDeadline)
	defer cancel()

	settings, err := e.Pool.GetSettings(ctx)
	if err != nil {
		e.Status.Finish("failed: could not load settings")
		return result, err
	}
	settings.DaysAhead = firstNonZero(settings.DaysAhead, e.Config.DaysAhead)
	settings.EPGTimezone = firstNonEmpty(settings.EPGTimezone, e.Config.EPGTimezone)
	settings.OutputPath = firstNonEmpty(settings.OutputPath, e.Config.OutputPath)

	teams, err := e.Pool.ListActiveTeams(ctx)
	if err != nil {
		e.Status.Finish("failed: could not load teams")
		return result, err
	}

	rc := cache.New(e.Client, settings, e.Logger)
	svc := enrichment.NewService(rc, e.Pool)

	var mu sync.Mutex
	channels := make([]xmltv.Channel, 0, len(teams))
	programmesByChannel := make(map[string][]model.Programme)

	g, gctx := errgroup.WithContext(ctx)
	for i, team := range teams {
		i, team := i, team
		g.Go(func() error {
			e.Status.Update(float64(i)/float64(len(teams))*100, "processing "+team.Name)

			tpl, err := e.Pool.GetTemplate(gctx, team.TemplateID)
			if err != nil {
				e.recordFailure(&result, &mu, team, err)
				return nil
			}

			tctx, err := svc.BuildTeamContext(gctx, team, timeNow())
			if err != nil {
				e.recordFailure(&result, &mu, team, err)
				return nil
			}

			programmes, err := synth.Assemble(team, tpl, settings, tctx, timeNow())
			if err != nil {
				e.recordFailure(&result, &mu, team, err)
				return nil
			}

			channelID := xmltv.ChannelIDFor("espn", team.ProviderTeamID)

			mu.Lock()
			channels = append(channels, xmltv.Channel{ID: channelID, DisplayName: team.Name, Icon: team.LogoURL})
			programmesByChannel[channelID] = programmes
			result.TeamsProcessed++
			result.ProgrammeCount += len(programmes)
			addSkipped(&result.Skipped, tctx.Skipped)
			mu.Unlock()

			return nil
		})
	}
	_ = g.Wait() // per-team errors are recorded, never propagated

	if err := xmltv.Write(settings.OutputPath, channels, programmesByChannel); err != nil {
		e.Status.Finish("failed: could not write xmltv output")
		return result, err
	}

	result.FinishedAt = timeNow()
	result.TeamsSkipped = len(result.Errors)
	result.OutputPath = settings.OutputPath

	status := "completed"
	if len(result.Errors) > 0 {
		status = "completed_with_errors"
	}
	if recordErr := e.Pool.RecordGenerationRun(ctx, store.GenerationRun{
		ID: runID, StartedAt: result.StartedAt, FinishedAt: result.FinishedAt,
		TeamCount: result.TeamsProcessed, ProgrammeCount: result.ProgrammeCount,
		ErrorCount: len(result.Errors), Status: status,
	}); recordErr != nil {
		e.Logger.Warn("failed to record generation run", "error", recordErr)
	}

	e.Status.Finish(status)
	return result, nil
}

func (e *Engine) recordFailure(result *Result, mu *sync.Mutex, team model.Team, err error) {
	e.Logger.Warn("team pipeline failed, skipping", "team", team.Name, "error", err)
	mu.Lock()
	result.Errors = append(result.Errors, TeamError{TeamID: team.ID, Name: team.Name, Err: err})
	mu.Unlock()
}

func addSkipped(total *SkippedCounts, s enrichment.SkipCounts) {
	if s.StatsUnavailable {
		total.StatsUnavailable++
	}
	if s.CoachUnavailable {
		total.CoachUnavailable++
	}
	if s.ScoreboardUnavailable {
		total.ScoreboardUnavailable++
	}
	total.LeadersMissing += s.LeadersMissing
	total.OddsMissing += s.OddsMissing
}

func firstNonZero(a, b int) int {
	if a != 0 {
		return a
	}
	return b
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// timeNow is the single time source for a generation run, kept as a function
// value so tests can substitute a fixed instant.
var timeNow = func() time.Time { return time.Now() }
