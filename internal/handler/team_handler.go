package handler

import (
	"net/http"
	"strconv"

	"festival-scoreboard/internal/container"
	"festival-scoreboard/internal/domain"
	"festival-scoreboard/pkg/errors"
	"github.com/go-chi/chi/v5"
)

// TeamHandler handles team maintenance requests
type TeamHandler struct {
	container *container.Container
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(container *container.Container) *TeamHandler {
	return &TeamHandler{container: container}
}

// UpdateIcon handles POST /api/teams/{teamId}/icon. A null icon clears it.
func (h *TeamHandler) UpdateIcon(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	teamID, err := strconv.Atoi(chi.URLParam(r, "teamId"))
	if err != nil {
		respondError(w, r, logger, errors.NewValidationError("Invalid team ID", nil))
		return
	}

	var req domain.UpdateIconRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, logger, err)
		return
	}

	team, err := h.container.GetScoreboardService().UpdateTeamIcon(r.Context(), teamID, req.Icon)
	if err != nil {
		respondError(w, r, logger, err)
		return
	}
	respondJSON(w, logger, http.StatusOK, team)
}
