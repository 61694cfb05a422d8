package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/nocturnelabs/sleep-metrics/internal/api/validation"
	"github.com/nocturnelabs/sleep-metrics/internal/domain"
	"github.com/nocturnelabs/sleep-metrics/internal/service"
	"github.com/nocturnelabs/sleep-metrics/pkg/problem"
)

type SleepDataHandler struct {
	service service.SleepDataService
}

func NewSleepDataHandler(service service.SleepDataService) *SleepDataHandler {
	return &SleepDataHandler{service: service}
}

// Sync handles POST /v1/users/{userId}/sleep-data
// @Summary Ingest a batch of sleep data
// @Description Store provider stage intervals and sensor readings. Replayed records are dropped by the dedup index, so the same export can be synced any number of times.
// @Tags sleep-data
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.SyncRequest true "Batch of intervals and samples"
// @Success 200 {object} domain.SyncResult "Received and stored counts"
// @Failure 400 {object} problem.Problem "Invalid request body or unknown stage/sensor label"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-data [post]
func (h *SleepDataHandler) Sync(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	result, err := h.service.SyncBatch(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidStage) {
			problem.BadRequest("Batch contains an unknown sleep stage label").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidSensor) {
			problem.BadRequest("Batch contains an unknown sensor kind").Write(w)
			return
		}
		if errors.Is(err, domain.ErrNegativeDuration) {
			problem.BadRequest("Interval end must not precede its start").Write(w)
			return
		}
		problem.InternalError("Failed to store sleep data").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// List handles GET /v1/users/{userId}/sleep-data
// @Summary List stored stage intervals
// @Description Fetch paginated stage intervals. Filter by time range and stage. Results sorted by start_at descending (newest first).
// @Tags sleep-data
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "Start of time range (RFC3339)" format(date-time) example(2024-03-01T00:00:00Z)
// @Param to query string false "End of time range (RFC3339)" format(date-time) example(2024-03-31T23:59:59Z)
// @Param stage query string false "Canonical stage label or accepted alias" example(REM)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.StageIntervalListResponse "Stage intervals with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-data [get]
func (h *SleepDataHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, fieldErrors := parseIntervalFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list sleep data").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseIntervalFilter(r *http.Request) (domain.IntervalFilter, []problem.FieldError) {
	var filter domain.IntervalFilter
	var fieldErrors []problem.FieldError

	// Parse 'from' parameter
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.From = &from
		}
	}

	// Parse 'to' parameter
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.To = &to
		}
	}

	// Parse 'stage' parameter; aliases normalize to the canonical label
	if stageStr := r.URL.Query().Get("stage"); stageStr != "" {
		stage, err := domain.ParseStageLabel(stageStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "stage",
				Message: "must be a known sleep stage label",
			})
		} else {
			filter.Stage = &stage
		}
	}

	// Parse 'limit' parameter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	// Parse 'cursor' parameter
	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
