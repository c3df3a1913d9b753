/*
handlers.go - HTTP API handlers for the mortgage analysis engine

PURPOSE:
  Exposes the engine via REST. Handles HTTP request/response, JSON
  serialization, result caching, and delegates every computation to the
  mortgage package. The engine is pure, so handlers may run concurrently
  with no coordination.

ENDPOINTS:
  GET  /api/defaults   Default scenario for the dashboard form
  POST /api/analyze    Full analysis (metrics, charts, comparisons)
  POST /api/schedule   Amortization table, paged here in the API layer
  POST /api/report     PDF document export

REQUEST FLOW:
  1. Read scenario JSON body
  2. Cache lookup (analyze only; identical scenario = identical result)
  3. factory.Parse -> validated mortgage.Scenario
  4. mortgage.Analyze / Amortize
  5. Serialize DTOs

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: validation errors (with the offending field), malformed input
  - 500: render failures (PDF)

SEE ALSO:
  - dto.go: response structures
  - server.go: router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/warp/mortgage-engine/cache"
	"github.com/warp/mortgage-engine/config"
	"github.com/warp/mortgage-engine/factory"
	"github.com/warp/mortgage-engine/mortgage"
	"github.com/warp/mortgage-engine/report"
)

const defaultPageSize = 12

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Factory  *factory.ScenarioFactory
	Cache    cache.Cache
	Defaults factory.ScenarioJSON
}

// NewHandler wires the handler from configuration and a result cache.
func NewHandler(cfg *config.Config, c cache.Cache) *Handler {
	return &Handler{
		Factory:  factory.NewScenarioFactory(),
		Cache:    c,
		Defaults: cfg.DefaultScenario(time.Now()),
	}
}

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

// GetDefaults returns the default scenario the dashboard starts from.
// GET /api/defaults
func (h *Handler) GetDefaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Defaults)
}

// Analyze computes the full analysis for a scenario.
// POST /api/analyze
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	key := cache.Key(body)
	if h.Cache != nil {
		if data, ok := h.Cache.Get(r.Context(), key); ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(data)
			return
		}
	}

	scenario, ok := h.parseScenario(w, body)
	if !ok {
		return
	}

	analysis, err := mortgage.Analyze(scenario)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	data, err := json.Marshal(toAnalysisDTO(analysis))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode analysis", err)
		return
	}

	if h.Cache != nil {
		// Best effort: the result is already computed.
		_ = h.Cache.Set(r.Context(), key, data)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// GetSchedule returns one page of the amortization table. The engine
// always computes the complete schedule; slicing is this layer's job.
// POST /api/schedule?page=1&page_size=12
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	scenario, ok := h.parseScenario(w, body)
	if !ok {
		return
	}

	sched, err := mortgage.Amortize(scenario)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	page, pageSize := pagingParams(r, len(sched.Rows))
	totalRows := len(sched.Rows)
	totalPages := (totalRows + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > totalRows {
		end = totalRows
	}

	rows := make([]AmortizationRowDTO, 0, end-start)
	for _, row := range sched.Rows[start:end] {
		rows = append(rows, toRowDTO(row))
	}

	writeJSON(w, http.StatusOK, ScheduleResponse{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalRows:  totalRows,
		Rows:       rows,
	})
}

// GenerateReport renders the PDF document for a scenario.
// POST /api/report
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	scenario, ok := h.parseScenario(w, body)
	if !ok {
		return
	}

	analysis, err := mortgage.Analyze(scenario)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	data, err := report.Generate(analysis)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to render report", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="mortgage_report.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) parseScenario(w http.ResponseWriter, body []byte) (mortgage.Scenario, bool) {
	scenario, err := h.Factory.Parse(body)
	if err != nil {
		writeEngineError(w, err)
		return mortgage.Scenario{}, false
	}
	return scenario, true
}

func pagingParams(r *http.Request, totalRows int) (page, pageSize int) {
	q := r.URL.Query()

	page, _ = strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}

	switch raw := q.Get("page_size"); raw {
	case "full":
		pageSize = totalRows
	default:
		pageSize, _ = strconv.Atoi(raw)
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return page, pageSize
}

// writeEngineError maps engine errors to HTTP: validation failures are
// client errors with the offending field surfaced.
func writeEngineError(w http.ResponseWriter, err error) {
	var verr *mortgage.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: verr.Message,
			Field: verr.Field,
		})
		return
	}
	writeError(w, http.StatusBadRequest, "Invalid scenario", err)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
