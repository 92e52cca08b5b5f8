package service

import (
	"context"
	"time"

	"festival-scoreboard/internal/domain"
)

// AuthService defines the interface for admin session operations
type AuthService interface {
	// Login verifies credentials and issues a signed session token
	Login(ctx context.Context, username, password string) (*domain.LoginResponse, error)

	// ValidateToken checks a session token and returns its claims
	ValidateToken(ctx context.Context, token string) (*domain.SessionClaims, error)

	// GetUser returns the admin account behind validated claims
	GetUser(ctx context.Context, claims *domain.SessionClaims) (*domain.User, error)

	// SessionTTL is how long issued tokens remain valid
	SessionTTL() time.Duration
}

// ScoreboardService defines the read and write operations behind the API
type ScoreboardService interface {
	GetTeams(ctx context.Context) ([]*domain.Team, error)
	GetEvents(ctx context.Context) ([]*domain.Event, error)
	GetCategoriesWithEvents(ctx context.Context) ([]*domain.CategoryWithEvents, error)
	GetStandings(ctx context.Context) ([]*domain.TeamStanding, error)

	// GetEventResults returns a not-found AppError when the event does not exist
	GetEventResults(ctx context.Context, eventID int) (*domain.EventResult, error)

	// UpdateResult assigns medal to the team for the event under the active policy
	UpdateResult(ctx context.Context, teamID, eventID int, medal domain.Medal) (*domain.UpdateResultResponse, error)

	// UpdateTeamIcon replaces a team's icon
	UpdateTeamIcon(ctx context.Context, teamID int, icon *string) (*domain.Team, error)
}

// Services aggregates all service interfaces
type Services struct {
	Auth       AuthService
	Scoreboard ScoreboardService
}
