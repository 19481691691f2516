package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/albapepper/teamarr/internal/httpapi/respond"
	"github.com/albapepper/teamarr/internal/orchestrator"
)

// Handler exposes the three control-plane operations over HTTP (generate,
// refresh, and status), plus health checks and a read of the generation
// run history. It is deliberately not a CRUD surface — teams,
// templates, and settings are managed directly against Postgres.
type Handler struct {
	engine *orchestrator.Engine
}

// NewHandler builds a Handler bound to the process-wide orchestration engine.
func NewHandler(engine *orchestrator.Engine) *Handler {
	return &Handler{engine: engine}
}

// Root serves basic API info at /.
// @Summary API root info
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Teamarr",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies database connectivity.
// @Summary Database health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.Pool.HealthCheck(r.Context()); err != nil {
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":   "healthy",
		"database": "connected",
	})
}

// generateResponse is the JSON shape returned for a completed generation.
type generateResponse struct {
	TeamsProcessed int                        `json:"teams_processed"`
	TeamsSkipped   int                        `json:"teams_skipped"`
	ProgrammeCount int                        `json:"programme_count"`
	OutputPath     string                     `json:"output_path"`
	DurationMS     int64                      `json:"duration_ms"`
	Errors         []string                   `json:"errors,omitempty"`
	Skipped        orchestrator.SkippedCounts `json:"skipped_enrichment"`
}

// Generate triggers a full EPG generation run synchronously and returns a
// summary once it completes or its deadline elapses.
// @Summary Generate the XMLTV EPG for every active team
// @Tags generate
// @Produce json
// @Success 200 {object} generateResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /api/v1/generate [post]
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	result, err := h.engine.GenerateEPG(r.Context())
	if err != nil {
		respond.WriteErrorDetail(w, http.StatusInternalServerError, "GENERATION_FAILED", "generation failed", err.Error())
		return
	}

	errs := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		errs = append(errs, e.Name+": "+e.Err.Error())
	}

	respond.WriteJSONObject(w, http.StatusOK, generateResponse{
		TeamsProcessed: result.TeamsProcessed,
		TeamsSkipped:   result.TeamsSkipped,
		ProgrammeCount: result.ProgrammeCount,
		OutputPath:     result.OutputPath,
		DurationMS:     result.FinishedAt.Sub(result.StartedAt).Milliseconds(),
		Errors:         errs,
		Skipped:        result.Skipped,
	})
}

// refreshResponse is the documented RefreshSoccerCache control-plane
// contract: leagues processed, teams indexed, and wall-clock duration.
type refreshResponse struct {
	LeaguesProcessed int    `json:"leagues_processed"`
	TeamsIndexed     int    `json:"teams_indexed"`
	DurationMS       int64  `json:"duration_ms"`
	Status           string `json:"status"`
}

// RefreshSoccerCache triggers a Tier S soccer league crawl.
// @Summary Refresh the soccer league/team cache
// @Tags refresh
// @Produce json
// @Success 200 {object} refreshResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /api/v1/refresh/soccer [post]
func (h *Handler) RefreshSoccerCache(w http.ResponseWriter, r *http.Request) {
	result, err := h.engine.RefreshSoccerCache(r.Context())
	if err != nil {
		respond.WriteErrorDetail(w, http.StatusInternalServerError, "REFRESH_FAILED", "soccer cache refresh failed", err.Error())
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, refreshResponse{
		LeaguesProcessed: result.LeaguesProcessed,
		TeamsIndexed:     result.TeamsIndexed,
		DurationMS:       result.Duration.Milliseconds(),
		Status:           "refreshed",
	})
}

// Status reports whether a generation is currently in progress.
// @Summary Current generation status
// @Tags status
// @Produce json
// @Success 200 {object} orchestrator.Status
// @Router /api/v1/status [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, h.engine.Status.Get())
}

// History returns the most recent recorded generation runs, newest first.
// @Summary Recent generation run history
// @Tags status
// @Produce json
// @Param limit query int false "max rows to return (default 20)"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} respond.ErrorResponse
// @Router /api/v1/history [get]
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	runs, err := h.engine.Pool.ListGenerationRuns(r.Context(), limit)
	if err != nil {
		respond.WriteErrorDetail(w, http.StatusInternalServerError, "HISTORY_FAILED", "could not load generation history", err.Error())
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{"runs": runs})
}
