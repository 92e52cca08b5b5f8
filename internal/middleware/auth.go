package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"festival-scoreboard/internal/domain"
	"festival-scoreboard/internal/service"
	"festival-scoreboard/pkg/errors"
	"festival-scoreboard/pkg/logger"
	"github.com/google/uuid"
)

// ContextKey represents keys used in request context
type ContextKey string

const (
	// UserContextKey is the key for the session claims in context
	UserContextKey ContextKey = "user"
	// RequestIDContextKey is the key for request ID in context
	RequestIDContextKey ContextKey = "request_id"
)

// SessionCookieName is the cookie carrying the session token for browser clients
const SessionCookieName = "session"

// RequestIDHeader is echoed on every response
const RequestIDHeader = "X-Request-ID"

// Auth creates an authentication middleware. The token is read from a Bearer
// Authorization header, falling back to the session cookie.
func Auth(authService service.AuthService, logger *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, appErr := extractToken(r)
			if appErr != nil {
				writeErrorResponse(w, r, appErr, logger)
				return
			}

			ctx := r.Context()
			claims, err := authService.ValidateToken(ctx, token)
			if err != nil {
				writeErrorResponse(w, r, errors.NewAuthenticationError("Invalid or expired session"), logger)
				return
			}

			ctx = context.WithValue(ctx, UserContextKey, claims)
			r = r.WithContext(ctx)

			logger.WithField("user_id", claims.UserID).Debug("User authenticated successfully")

			next.ServeHTTP(w, r)
		})
	}
}

func extractToken(r *http.Request) (string, *errors.AppError) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return "", errors.NewAuthenticationError("Invalid authorization header format")
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token == "" {
			return "", errors.NewAuthenticationError("Token is required")
		}
		return token, nil
	}

	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", errors.NewAuthenticationError("Authentication required")
}

// GetClaims returns the session claims set by Auth, or nil
func GetClaims(ctx context.Context) *domain.SessionClaims {
	claims, _ := ctx.Value(UserContextKey).(*domain.SessionClaims)
	return claims
}

// RequestID creates a middleware that adds a unique request ID to each request.
// An incoming X-Request-ID is kept.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" || len(requestID) > 128 {
				requestID = uuid.NewString()
			}

			ctx := context.WithValue(r.Context(), RequestIDContextKey, requestID)
			r = r.WithContext(ctx)

			w.Header().Set(RequestIDHeader, requestID)

			next.ServeHTTP(w, r)
		})
	}
}

// GetRequestID returns the request ID set by RequestID, or ""
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDContextKey).(string)
	return id
}

// writeErrorResponse writes an error response to the client
func writeErrorResponse(w http.ResponseWriter, r *http.Request, appErr *errors.AppError, logger *logger.Logger) {
	requestID := GetRequestID(r.Context())
	logger.WithError(appErr).WithField("request_id", requestID).Warn("Request rejected")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode)

	if err := json.NewEncoder(w).Encode(errors.NewErrorResponse(appErr, requestID)); err != nil {
		logger.WithError(err).Error("Failed to encode error response")
	}
}
