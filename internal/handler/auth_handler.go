package handler

import (
	"net/http"
	"time"

	"festival-scoreboard/internal/container"
	"festival-scoreboard/internal/domain"
	"festival-scoreboard/internal/middleware"
	"festival-scoreboard/pkg/errors"
)

// AuthHandler handles authentication related requests
type AuthHandler struct {
	container *container.Container
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(container *container.Container) *AuthHandler {
	return &AuthHandler{
		container: container,
	}
}

// UserResponse represents the current user response
type UserResponse struct {
	User    *domain.User `json:"user"`
	Success bool         `json:"success"`
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	var req domain.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, logger, err)
		return
	}

	resp, err := h.container.GetAuthService().Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, r, logger, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(resp.Token, resp.ExpiresAt))
	respondJSON(w, logger, http.StatusOK, resp)
}

// Logout handles POST /api/logout by expiring the session cookie. Tokens are
// stateless, so a bearer token stays valid until it expires.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie := h.sessionCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)

	respondJSON(w, h.container.GetLogger(), http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Logged out",
	})
}

// GetUser handles GET /api/user
func (h *AuthHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		respondError(w, r, logger, errors.NewAuthenticationError("User not authenticated"))
		return
	}

	user, err := h.container.GetAuthService().GetUser(r.Context(), claims)
	if err != nil {
		respondError(w, r, logger, err)
		return
	}

	respondJSON(w, logger, http.StatusOK, UserResponse{User: user, Success: true})
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.container.GetConfig().SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
