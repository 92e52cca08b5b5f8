package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"festival-scoreboard/internal/domain"
	"festival-scoreboard/internal/repository"
	"festival-scoreboard/pkg/errors"
	"festival-scoreboard/pkg/logger"
	"festival-scoreboard/pkg/metrics"
	"festival-scoreboard/pkg/redis"
)

// Scoreboard implements ScoreboardService on top of a repository.Store.
// Standings and event results are recomputed from the current results on
// every cache miss; nothing aggregate is stored.
type Scoreboard struct {
	store   repository.Store
	policy  MedalPolicy
	cache   *CacheService
	metrics *metrics.Metrics
	logger  *logger.Logger

	// writeMu serializes medal assignments so that validation and write are
	// atomic with respect to other admins.
	writeMu sync.Mutex
}

var _ ScoreboardService = (*Scoreboard)(nil)

// NewScoreboardService creates a scoreboard service. cache and m may be nil.
func NewScoreboardService(store repository.Store, policy MedalPolicy, cache *CacheService, m *metrics.Metrics, log *logger.Logger) *Scoreboard {
	if policy == nil {
		policy = StrictMedalPolicy{}
	}
	return &Scoreboard{
		store:   store,
		policy:  policy,
		cache:   cache,
		metrics: m,
		logger:  log,
	}
}

// Policy returns the active medal policy
func (s *Scoreboard) Policy() MedalPolicy {
	return s.policy
}

func (s *Scoreboard) GetTeams(ctx context.Context) ([]*domain.Team, error) {
	return getOrLoad(ctx, s.cache, ViewTeams, s.key((*redis.KeyBuilder).KeyTeamsAll), redis.TTLTeams,
		func(ctx context.Context) ([]*domain.Team, error) {
			return s.store.GetTeams(ctx), nil
		})
}

func (s *Scoreboard) GetEvents(ctx context.Context) ([]*domain.Event, error) {
	return getOrLoad(ctx, s.cache, ViewEvents, s.key((*redis.KeyBuilder).KeyEventsAll), redis.TTLEvents,
		func(ctx context.Context) ([]*domain.Event, error) {
			return s.store.GetEvents(ctx), nil
		})
}

func (s *Scoreboard) GetCategoriesWithEvents(ctx context.Context) ([]*domain.CategoryWithEvents, error) {
	return getOrLoad(ctx, s.cache, ViewCategories, s.key((*redis.KeyBuilder).KeyCategoriesAll), redis.TTLCategories,
		func(ctx context.Context) ([]*domain.CategoryWithEvents, error) {
			categories := s.store.GetCategories(ctx)
			out := make([]*domain.CategoryWithEvents, 0, len(categories))
			for _, c := range categories {
				out = append(out, &domain.CategoryWithEvents{
					Category: c,
					Events:   s.store.GetEventsByCategory(ctx, c.ID),
				})
			}
			return out, nil
		})
}

func (s *Scoreboard) GetStandings(ctx context.Context) ([]*domain.TeamStanding, error) {
	return getOrLoad(ctx, s.cache, ViewStandings, s.key((*redis.KeyBuilder).KeyStandings), redis.TTLStandings,
		func(ctx context.Context) ([]*domain.TeamStanding, error) {
			return ComputeStandings(s.store.GetTeams(ctx), s.store.GetResults(ctx)), nil
		})
}

func (s *Scoreboard) GetEventResults(ctx context.Context, eventID int) (*domain.EventResult, error) {
	key := s.key(func(kb *redis.KeyBuilder) string { return kb.KeyEventResults(eventID) })
	return getOrLoad(ctx, s.cache, ViewEventResults, key, redis.TTLEventResults,
		func(ctx context.Context) (*domain.EventResult, error) {
			event := s.store.GetEvent(ctx, eventID)
			if event == nil {
				return nil, errors.NewNotFoundError("Event not found")
			}
			return ProjectEventResult(event, s.store.GetResultsByEvent(ctx, eventID), s.store.GetTeams(ctx)), nil
		})
}

func (s *Scoreboard) UpdateResult(ctx context.Context, teamID, eventID int, medal domain.Medal) (*domain.UpdateResultResponse, error) {
	if !medal.Valid() {
		return nil, errors.NewValidationError("Invalid request data", map[string]interface{}{
			"medal": fmt.Sprintf("must be one of %s", medalList()),
		})
	}

	event := s.store.GetEvent(ctx, eventID)
	if event == nil {
		return nil, errors.NewNotFoundError("Event not found")
	}
	team := s.store.GetTeam(ctx, teamID)
	if team == nil {
		return nil, errors.NewNotFoundError("Team not found")
	}

	log := s.logger.WithFields(map[string]interface{}{
		"team_id":  teamID,
		"event_id": eventID,
		"medal":    medal,
		"policy":   s.policy.Name(),
	})

	s.writeMu.Lock()
	result, outcome, err := s.policy.Assign(ctx, s.store, team, event, medal)
	if err == nil {
		s.cache.Invalidate(ctx)
	}
	s.writeMu.Unlock()

	s.metrics.RecordResultUpdate(string(medal), outcome)
	if err != nil {
		if errors.IsType(err, errors.ErrorTypeConflict) {
			s.metrics.RecordMedalConflict(string(medal))
			log.WithError(err).Info("Medal assignment rejected")
		} else {
			log.WithError(err).Error("Medal assignment failed")
		}
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"result_id": result.ID,
		"points":    result.Points,
		"outcome":   outcome,
	}).Info("Medal assigned")

	standings, err := s.GetStandings(ctx)
	if err != nil {
		return nil, err
	}
	eventResults, err := s.GetEventResults(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return &domain.UpdateResultResponse{
		Message:      "Result updated successfully",
		Result:       result,
		Standings:    standings,
		EventResults: eventResults,
	}, nil
}

func (s *Scoreboard) UpdateTeamIcon(ctx context.Context, teamID int, icon *string) (*domain.Team, error) {
	if icon != nil && strings.TrimSpace(*icon) == "" {
		return nil, errors.NewValidationError("Icon must not be empty", nil)
	}

	s.writeMu.Lock()
	team := s.store.UpdateTeamIcon(ctx, teamID, icon)
	if team != nil {
		s.cache.Invalidate(ctx)
	}
	s.writeMu.Unlock()

	if team == nil {
		return nil, errors.NewNotFoundError("Team not found")
	}

	s.logger.WithField("team_id", teamID).Info("Team icon updated")
	return team, nil
}

// key builds a cache key when caching is enabled
func (s *Scoreboard) key(build func(kb *redis.KeyBuilder) string) string {
	if s.cache == nil {
		return ""
	}
	return build(s.cache.Keys())
}

func medalList() string {
	names := make([]string, len(domain.AllMedals))
	for i, m := range domain.AllMedals {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
