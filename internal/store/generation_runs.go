package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerationRun is one row of the generation_runs history table, a
// supplemented feature beyond the distilled core pipeline: operators can
// audit past runs without re-deriving state from logs.
type GenerationRun struct {
	ID             uuid.UUID
	StartedAt      time.Time
	FinishedAt     time.Time
	TeamCount      int
	ProgrammeCount int
	ErrorCount     int
	Status         string
}

// RecordGenerationRun persists one completed (or failed) generation run.
func (p *Pool) RecordGenerationRun(ctx context.Context, run GenerationRun) error {
	_, err := p.Exec(ctx, "insert_generation_run",
		run.ID, run.StartedAt, run.FinishedAt, run.TeamCount, run.ProgrammeCount, run.ErrorCount, run.Status)
	if err != nil {
		return fmt.Errorf("record generation run %s: %w", run.ID, err)
	}
	return nil
}

// ListGenerationRuns returns the most recent limit runs, newest first.
func (p *Pool) ListGenerationRuns(ctx context.Context, limit int) ([]GenerationRun, error) {
	rows, err := p.Query(ctx, "list_generation_runs", limit)
	if err != nil {
		return nil, fmt.Errorf("list generation runs: %w", err)
	}
	defer rows.Close()

	var runs []GenerationRun
	for rows.Next() {
		var r GenerationRun
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.FinishedAt, &r.TeamCount, &r.ProgrammeCount, &r.ErrorCount, &r.Status); err != nil {
			return nil, fmt.Errorf("scan generation run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
