package repository

import (
	"context"

	"festival-scoreboard/internal/domain"
)

// Lookups in every repository return nil when the entity does not exist,
// never an error. Callers translate absence into a not-found response.

// UserRepository defines the interface for admin account operations
type UserRepository interface {
	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, id int) *domain.User

	// GetUserByUsername retrieves a user by username
	GetUserByUsername(ctx context.Context, username string) *domain.User

	// CreateUser stores a new user and assigns its ID
	CreateUser(ctx context.Context, username, passwordHash string) *domain.User
}

// TeamRepository defines the interface for team operations
type TeamRepository interface {
	GetTeams(ctx context.Context) []*domain.Team
	GetTeam(ctx context.Context, id int) *domain.Team
	GetTeamByName(ctx context.Context, name string) *domain.Team
	CreateTeam(ctx context.Context, name, color string) *domain.Team

	// UpdateTeamIcon replaces the icon of a team; nil clears it
	UpdateTeamIcon(ctx context.Context, id int, icon *string) *domain.Team
}

// CategoryRepository defines the interface for category operations
type CategoryRepository interface {
	GetCategories(ctx context.Context) []*domain.Category
	GetCategory(ctx context.Context, id int) *domain.Category
	GetCategoryByName(ctx context.Context, name string) *domain.Category
	CreateCategory(ctx context.Context, name, color string) *domain.Category
}

// EventRepository defines the interface for event operations
type EventRepository interface {
	GetEvents(ctx context.Context) []*domain.Event
	GetEvent(ctx context.Context, id int) *domain.Event
	GetEventByName(ctx context.Context, name string, categoryID int) *domain.Event
	GetEventsByCategory(ctx context.Context, categoryID int) []*domain.Event
	CreateEvent(ctx context.Context, name string, categoryID int) *domain.Event
}

// ResultRepository defines the interface for result operations
type ResultRepository interface {
	GetResults(ctx context.Context) []*domain.Result
	GetResult(ctx context.Context, id int) *domain.Result

	// GetResultByTeamAndEvent returns the first result for the pair
	GetResultByTeamAndEvent(ctx context.Context, teamID, eventID int) *domain.Result

	// GetResultsByEvent and GetResultsByTeam return results in insertion order
	GetResultsByEvent(ctx context.Context, eventID int) []*domain.Result
	GetResultsByTeam(ctx context.Context, teamID int) []*domain.Result

	CreateResult(ctx context.Context, teamID, eventID int, medal domain.Medal, points int) *domain.Result

	// UpdateResult replaces medal and points in place, nil if id is unknown
	UpdateResult(ctx context.Context, id int, medal domain.Medal, points int) *domain.Result
}

// Store aggregates all repository interfaces
type Store interface {
	UserRepository
	TeamRepository
	CategoryRepository
	EventRepository
	ResultRepository
}
