package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"festival-scoreboard/internal/container"
	"festival-scoreboard/internal/middleware"
	"festival-scoreboard/pkg/errors"
)

// NewRouter configures and returns the HTTP router
func NewRouter(c *container.Container) *chi.Mux {
	cfg := c.GetConfig()
	log := c.GetLogger()
	authService := c.GetAuthService()

	r := chi.NewRouter()

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowedOrigins = cfg.AllowedOrigins

	// Setup middlewares
	r.Use(middleware.CORS(corsConfig, log))
	r.Use(middleware.RequestID())
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(log, c.GetMetrics()))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Compress(5))
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	healthHandler := NewHealthHandler(c)
	authHandler := NewAuthHandler(c)
	scoreboardHandler := NewScoreboardHandler(c)
	resultHandler := NewResultHandler(c)
	teamHandler := NewTeamHandler(c)

	r.Get("/health", healthHandler.Check)
	r.Method(http.MethodGet, "/metrics", c.GetMetrics().Handler())

	r.Route("/api", func(r chi.Router) {
		// Public scoreboard
		r.Get("/teams", scoreboardHandler.GetTeams)
		r.Get("/categories", scoreboardHandler.GetCategories)
		r.Get("/standings", scoreboardHandler.GetStandings)
		r.Get("/events", scoreboardHandler.GetEvents)
		r.Get("/events/{eventId}/results", scoreboardHandler.GetEventResults)

		// Session
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)

		// Admin only
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(authService, log))

			r.Get("/user", authHandler.GetUser)
			r.Post("/results/update", resultHandler.UpdateResult)
			r.Post("/teams/{teamId}/icon", teamHandler.UpdateIcon)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, log, errors.NewNotFoundError("Endpoint not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, log, http.StatusMethodNotAllowed, errors.NewErrorResponse(&errors.AppError{
			Type:       errors.ErrorTypeValidation,
			Message:    "Method not allowed",
			StatusCode: http.StatusMethodNotAllowed,
		}, middleware.GetRequestID(r.Context())))
	})

	log.Info("Router configured successfully")
	return r
}
