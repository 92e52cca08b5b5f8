package handler

import (
	"net/http"

	"festival-scoreboard/internal/container"
	"festival-scoreboard/internal/domain"
	"festival-scoreboard/internal/middleware"
	"festival-scoreboard/pkg/errors"
)

// ResultHandler handles medal assignment requests
type ResultHandler struct {
	container *container.Container
}

// NewResultHandler creates a new result handler
func NewResultHandler(container *container.Container) *ResultHandler {
	return &ResultHandler{container: container}
}

// UpdateResult handles POST /api/results/update
func (h *ResultHandler) UpdateResult(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	var req domain.UpdateResultRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, logger, err)
		return
	}

	medal, err := validateUpdateResultRequest(&req)
	if err != nil {
		respondError(w, r, logger, err)
		return
	}

	if claims := middleware.GetClaims(r.Context()); claims != nil {
		logger = logger.WithField("admin", claims.Username)
	}

	resp, err := h.container.GetScoreboardService().UpdateResult(r.Context(), *req.TeamID, *req.EventID, medal)
	if err != nil {
		respondError(w, r, logger, err)
		return
	}

	logger.WithFields(map[string]interface{}{
		"team_id":  *req.TeamID,
		"event_id": *req.EventID,
		"medal":    medal,
	}).Info("Result updated")
	respondJSON(w, logger, http.StatusOK, resp)
}

// validateUpdateResultRequest checks that every field is present and the medal is known
func validateUpdateResultRequest(req *domain.UpdateResultRequest) (domain.Medal, error) {
	details := map[string]interface{}{}
	if req.TeamID == nil {
		details["teamId"] = "is required"
	}
	if req.EventID == nil {
		details["eventId"] = "is required"
	}

	var medal domain.Medal
	if req.Medal == nil {
		details["medal"] = "is required"
	} else if m, err := domain.ParseMedal(*req.Medal); err != nil {
		details["medal"] = err.Error()
	} else {
		medal = m
	}

	if len(details) > 0 {
		return "", errors.NewValidationError("Invalid request data", details)
	}
	return medal, nil
}
