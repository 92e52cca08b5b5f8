package service

import (
	"context"
	"fmt"
	"strings"

	"festival-scoreboard/internal/config"
	"festival-scoreboard/internal/domain"
	"festival-scoreboard/internal/repository"
	"festival-scoreboard/pkg/errors"
)

// Write outcomes reported by a MedalPolicy
const (
	OutcomeCreated  = "created"
	OutcomeUpdated  = "updated"
	OutcomeRejected = "rejected"
)

// MedalPolicy decides whether a medal may be assigned and how the assignment
// is written. Exactly one policy is active per process.
type MedalPolicy interface {
	Name() string

	// Assign validates and stores medal for team in event. Callers must
	// serialize Assign calls so validation and write happen atomically.
	Assign(ctx context.Context, store repository.Store, team *domain.Team, event *domain.Event, medal domain.Medal) (*domain.Result, string, error)
}

// NewMedalPolicy returns the policy configured by name
func NewMedalPolicy(name string) (MedalPolicy, error) {
	switch name {
	case config.MedalPolicyStrict, "":
		return StrictMedalPolicy{}, nil
	case config.MedalPolicyRelaxed:
		return RelaxedMedalPolicy{}, nil
	}
	return nil, fmt.Errorf("unknown medal policy %q", name)
}

// StrictMedalPolicy allows one holder per podium medal per event and keeps a
// single canonical result per team and event, updated in place.
type StrictMedalPolicy struct{}

func (StrictMedalPolicy) Name() string { return config.MedalPolicyStrict }

func (StrictMedalPolicy) Assign(ctx context.Context, store repository.Store, team *domain.Team, event *domain.Event, medal domain.Medal) (*domain.Result, string, error) {
	if err := CheckMedalAvailable(ctx, store, team.ID, event.ID, medal); err != nil {
		return nil, OutcomeRejected, err
	}

	points := medal.Points()
	existing := store.GetResultByTeamAndEvent(ctx, team.ID, event.ID)
	if existing == nil {
		return store.CreateResult(ctx, team.ID, event.ID, medal, points), OutcomeCreated, nil
	}

	updated := store.UpdateResult(ctx, existing.ID, medal, points)
	if updated == nil {
		return nil, OutcomeRejected, errors.NewInternalError("Failed to update result",
			fmt.Errorf("result %d vanished during update", existing.ID))
	}
	return updated, OutcomeUpdated, nil
}

// CheckMedalAvailable returns a conflict error when a team other than teamID
// already holds medal in the event. Non-podium medals are always available.
func CheckMedalAvailable(ctx context.Context, store repository.Store, teamID, eventID int, medal domain.Medal) error {
	if !medal.IsPodium() {
		return nil
	}

	for _, r := range store.GetResultsByEvent(ctx, eventID) {
		if r.Medal != medal || r.TeamID == teamID {
			continue
		}

		holder := fmt.Sprintf("team %d", r.TeamID)
		if t := store.GetTeam(ctx, r.TeamID); t != nil {
			holder = t.Name
		}
		return errors.NewConflictError(
			fmt.Sprintf("%s medal is already assigned to %s for this event", strings.ToUpper(string(medal)), holder),
			map[string]interface{}{
				"medal":    medal,
				"teamId":   r.TeamID,
				"teamName": holder,
			},
		)
	}
	return nil
}

// RelaxedMedalPolicy lets several representatives of a team each earn a
// medal: there is no conflict check and every assignment appends a result.
type RelaxedMedalPolicy struct{}

func (RelaxedMedalPolicy) Name() string { return config.MedalPolicyRelaxed }

func (RelaxedMedalPolicy) Assign(ctx context.Context, store repository.Store, team *domain.Team, event *domain.Event, medal domain.Medal) (*domain.Result, string, error) {
	return store.CreateResult(ctx, team.ID, event.ID, medal, medal.Points()), OutcomeCreated, nil
}
