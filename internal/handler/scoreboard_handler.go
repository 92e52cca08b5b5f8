package handler

import (
	"net/http"
	"strconv"

	"festival-scoreboard/internal/container"
	"festival-scoreboard/pkg/errors"
	"github.com/go-chi/chi/v5"
)

// ScoreboardHandler serves the public read endpoints
type ScoreboardHandler struct {
	container *container.Container
}

// NewScoreboardHandler creates a new scoreboard handler
func NewScoreboardHandler(container *container.Container) *ScoreboardHandler {
	return &ScoreboardHandler{container: container}
}

// GetTeams handles GET /api/teams
func (h *ScoreboardHandler) GetTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.container.GetScoreboardService().GetTeams(r.Context())
	if err != nil {
		respondError(w, r, h.container.GetLogger(), err)
		return
	}
	respondJSON(w, h.container.GetLogger(), http.StatusOK, teams)
}

// GetCategories handles GET /api/categories
func (h *ScoreboardHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.container.GetScoreboardService().GetCategoriesWithEvents(r.Context())
	if err != nil {
		respondError(w, r, h.container.GetLogger(), err)
		return
	}
	respondJSON(w, h.container.GetLogger(), http.StatusOK, categories)
}

// GetStandings handles GET /api/standings
func (h *ScoreboardHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.container.GetScoreboardService().GetStandings(r.Context())
	if err != nil {
		respondError(w, r, h.container.GetLogger(), err)
		return
	}
	respondJSON(w, h.container.GetLogger(), http.StatusOK, standings)
}

// GetEvents handles GET /api/events
func (h *ScoreboardHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.container.GetScoreboardService().GetEvents(r.Context())
	if err != nil {
		respondError(w, r, h.container.GetLogger(), err)
		return
	}
	respondJSON(w, h.container.GetLogger(), http.StatusOK, events)
}

// GetEventResults handles GET /api/events/{eventId}/results
func (h *ScoreboardHandler) GetEventResults(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.Atoi(chi.URLParam(r, "eventId"))
	if err != nil {
		respondError(w, r, h.container.GetLogger(), errors.NewValidationError("Invalid event ID", nil))
		return
	}

	result, err := h.container.GetScoreboardService().GetEventResults(r.Context(), eventID)
	if err != nil {
		respondError(w, r, h.container.GetLogger(), err)
		return
	}
	respondJSON(w, h.container.GetLogger(), http.StatusOK, result)
}
