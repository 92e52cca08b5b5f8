package handler

import (
	"net/http"
	"time"

	"festival-scoreboard/internal/container"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	container *container.Container
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(container *container.Container) *HealthHandler {
	return &HealthHandler{
		container: container,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status      string            `json:"status"`
	Timestamp   time.Time         `json:"timestamp"`
	Version     string            `json:"version"`
	Service     string            `json:"service"`
	MedalPolicy string            `json:"medalPolicy"`
	Checks      map[string]string `json:"checks"`
}

// Check handles GET /health. A failing cache degrades the status but the
// service keeps answering from the store.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	response := HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Version:     "1.0.0",
		Service:     "festival-scoreboard",
		MedalPolicy: h.container.Policy.Name(),
		Checks:      map[string]string{"store": "ok"},
	}

	switch {
	case !h.container.HasRedis():
		response.Checks["cache"] = "disabled"
	case h.container.GetCacheService().HealthCheck(r.Context()) != nil:
		response.Checks["cache"] = "unavailable"
		response.Status = "degraded"
	default:
		response.Checks["cache"] = "ok"
	}

	logger.WithField("status", response.Status).Debug("Health check completed")
	respondJSON(w, logger, http.StatusOK, response)
}
