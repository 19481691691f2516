// Package orchestrator wires the upstream client, enrichment service,
// template engine, programme synthesizer, and XMLTV writer into the three
// control-plane operations: generate, refresh, and status.
package orchestrator

import "time"

// TeamError records a per-team pipeline failure that did not abort the run:
// it is logged and the team is skipped while other teams proceed.
type TeamError struct {
	TeamID int64
	Name   string
	Err    error
}

// SkippedCounts totals, across every processed team, how much enrichment
// detail a run actually delivered versus degraded gracefully to "no data".
type SkippedCounts struct {
	StatsUnavailable      int
	CoachUnavailable      int
	ScoreboardUnavailable int
	LeadersMissing        int
	OddsMissing           int
}

// Result is what one GenerateEPG invocation returns.
type Result struct {
	StartedAt      time.Time
	FinishedAt     time.Time
	TeamsProcessed int
	TeamsSkipped   int
	ProgrammeCount int
	Errors         []TeamError
	OutputPath     string
	Skipped        SkippedCounts
}
