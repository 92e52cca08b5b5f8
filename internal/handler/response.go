package handler

import (
	"encoding/json"
	"net/http"

	"festival-scoreboard/internal/middleware"
	"festival-scoreboard/pkg/errors"
	"festival-scoreboard/pkg/logger"
)

// respondJSON writes payload as JSON with the given status
func respondJSON(w http.ResponseWriter, log *logger.Logger, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.WithError(err).Error("Failed to encode response")
	}
}

// respondError translates err into the JSON error body. Errors that are not
// AppErrors become a generic internal error; their cause is only logged.
func respondError(w http.ResponseWriter, r *http.Request, log *logger.Logger, err error) {
	appErr := errors.AsAppError(err)
	requestID := middleware.GetRequestID(r.Context())

	entry := log.WithError(err).WithFields(map[string]interface{}{
		"request_id": requestID,
		"error_type": appErr.Type,
		"path":       r.URL.Path,
	})
	if appErr.StatusCode >= http.StatusInternalServerError {
		entry.Error("Request error")
	} else {
		entry.Debug("Request error")
	}

	respondJSON(w, log, appErr.StatusCode, errors.NewErrorResponse(appErr, requestID))
}

// decodeJSON decodes a request body into dst, rejecting trailing data
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(dst); err != nil {
		return errors.NewValidationError("Invalid request data", map[string]interface{}{
			"body": "must be a JSON object",
		})
	}
	if dec.More() {
		return errors.NewValidationError("Invalid request data", map[string]interface{}{
			"body": "must contain a single JSON object",
		})
	}
	return nil
}
