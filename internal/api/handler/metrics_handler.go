package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/nocturnelabs/sleep-metrics/internal/domain"
	"github.com/nocturnelabs/sleep-metrics/internal/service"
	"github.com/nocturnelabs/sleep-metrics/pkg/problem"
)

// MetricsHandler serves derived per-night metrics and hypnograms.
type MetricsHandler struct {
	service service.MetricsService
}

func NewMetricsHandler(service service.MetricsService) *MetricsHandler {
	return &MetricsHandler{service: service}
}

// GetNight handles GET /v1/users/{userId}/sleep/metrics
// @Summary Get per-night sleep metrics
// @Description Derive the full metrics set for one local calendar day. Omitting date means today in the user's timezone; an empty today falls back to the previous night once.
// @Tags sleep-metrics
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param date query string false "Local calendar day (YYYY-MM-DD); defaults to today" example(2024-03-14)
// @Success 200 {object} domain.MetricsResult "Per-night metrics"
// @Failure 400 {object} problem.Problem "Invalid date or user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep/metrics [get]
func (h *MetricsHandler) GetNight(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	result, err := h.service.ComputeNight(r.Context(), userID, r.URL.Query().Get("date"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("date must be in YYYY-MM-DD format").Write(w)
			return
		}
		problem.InternalError("Failed to compute metrics").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetHypnogram handles GET /v1/users/{userId}/sleep/hypnogram
// @Summary Get the night's hypnogram
// @Description Resample the resolved night into fixed five-minute epochs for charting. Date resolution matches the metrics endpoint.
// @Tags sleep-metrics
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param date query string false "Local calendar day (YYYY-MM-DD); defaults to today" example(2024-03-14)
// @Success 200 {object} domain.HypnogramResponse "Resampled stage epochs"
// @Failure 400 {object} problem.Problem "Invalid date or user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep/hypnogram [get]
func (h *MetricsHandler) GetHypnogram(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	result, err := h.service.ComputeHypnogram(r.Context(), userID, r.URL.Query().Get("date"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("date must be in YYYY-MM-DD format").Write(w)
			return
		}
		problem.InternalError("Failed to compute hypnogram").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
