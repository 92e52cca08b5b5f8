package repository

import (
	"context"
	"sync"

	"festival-scoreboard/internal/domain"
)

// MemoryStore keeps every entity in process memory. IDs are assigned from
// per-type counters starting at 1 and are never reused.
//
// All methods hand out copies, so callers cannot mutate stored records.
type MemoryStore struct {
	mu sync.RWMutex

	users      map[int]*domain.User
	teams      map[int]*domain.Team
	categories map[int]*domain.Category
	events     map[int]*domain.Event
	results    map[int]*domain.Result

	// insertion order per entity type
	userOrder     []int
	teamOrder     []int
	categoryOrder []int
	eventOrder    []int
	resultOrder   []int

	resultsByEvent map[int][]int
	resultsByTeam  map[int][]int

	nextUserID     int
	nextTeamID     int
	nextCategoryID int
	nextEventID    int
	nextResultID   int
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{}
	s.reset()
	return s
}

// Reset drops all data and rewinds the id counters
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *MemoryStore) reset() {
	s.users = make(map[int]*domain.User)
	s.teams = make(map[int]*domain.Team)
	s.categories = make(map[int]*domain.Category)
	s.events = make(map[int]*domain.Event)
	s.results = make(map[int]*domain.Result)
	s.userOrder, s.teamOrder, s.categoryOrder, s.eventOrder, s.resultOrder = nil, nil, nil, nil, nil
	s.resultsByEvent = make(map[int][]int)
	s.resultsByTeam = make(map[int][]int)
	s.nextUserID, s.nextTeamID, s.nextCategoryID, s.nextEventID, s.nextResultID = 1, 1, 1, 1, 1
}

// Users

func (s *MemoryStore) GetUser(_ context.Context, id int) *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUser(s.users[id])
}

func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.userOrder {
		if u := s.users[id]; u.Username == username {
			return copyUser(u)
		}
	}
	return nil
}

func (s *MemoryStore) CreateUser(_ context.Context, username, passwordHash string) *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &domain.User{ID: s.nextUserID, Username: username, PasswordHash: passwordHash}
	s.nextUserID++
	s.users[u.ID] = u
	s.userOrder = append(s.userOrder, u.ID)
	return copyUser(u)
}

// Teams

func (s *MemoryStore) GetTeams(_ context.Context) []*domain.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Team, 0, len(s.teamOrder))
	for _, id := range s.teamOrder {
		out = append(out, copyTeam(s.teams[id]))
	}
	return out
}

func (s *MemoryStore) GetTeam(_ context.Context, id int) *domain.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyTeam(s.teams[id])
}

func (s *MemoryStore) GetTeamByName(_ context.Context, name string) *domain.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.teamOrder {
		if t := s.teams[id]; t.Name == name {
			return copyTeam(t)
		}
	}
	return nil
}

func (s *MemoryStore) CreateTeam(_ context.Context, name, color string) *domain.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &domain.Team{ID: s.nextTeamID, Name: name, Color: color}
	s.nextTeamID++
	s.teams[t.ID] = t
	s.teamOrder = append(s.teamOrder, t.ID)
	return copyTeam(t)
}

func (s *MemoryStore) UpdateTeamIcon(_ context.Context, id int, icon *string) *domain.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.teams[id]
	if !ok {
		return nil
	}
	updated := *t
	if icon != nil {
		v := *icon
		updated.Icon = &v
	} else {
		updated.Icon = nil
	}
	s.teams[id] = &updated
	return copyTeam(&updated)
}

// Categories

func (s *MemoryStore) GetCategories(_ context.Context) []*domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Category, 0, len(s.categoryOrder))
	for _, id := range s.categoryOrder {
		c := *s.categories[id]
		out = append(out, &c)
	}
	return out
}

func (s *MemoryStore) GetCategory(_ context.Context, id int) *domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	if !ok {
		return nil
	}
	cp := *c
	return &cp
}

func (s *MemoryStore) GetCategoryByName(_ context.Context, name string) *domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.categoryOrder {
		if c := s.categories[id]; c.Name == name {
			cp := *c
			return &cp
		}
	}
	return nil
}

func (s *MemoryStore) CreateCategory(_ context.Context, name, color string) *domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := &domain.Category{ID: s.nextCategoryID, Name: name, Color: color}
	s.nextCategoryID++
	s.categories[c.ID] = c
	s.categoryOrder = append(s.categoryOrder, c.ID)
	cp := *c
	return &cp
}

// Events

func (s *MemoryStore) GetEvents(_ context.Context) []*domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Event, 0, len(s.eventOrder))
	for _, id := range s.eventOrder {
		e := *s.events[id]
		out = append(out, &e)
	}
	return out
}

func (s *MemoryStore) GetEvent(_ context.Context, id int) *domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.events[id]
	if !ok {
		return nil
	}
	cp := *e
	return &cp
}

func (s *MemoryStore) GetEventByName(_ context.Context, name string, categoryID int) *domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.eventOrder {
		if e := s.events[id]; e.Name == name && e.CategoryID == categoryID {
			cp := *e
			return &cp
		}
	}
	return nil
}

func (s *MemoryStore) GetEventsByCategory(_ context.Context, categoryID int) []*domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Event, 0)
	for _, id := range s.eventOrder {
		if e := s.events[id]; e.CategoryID == categoryID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out
}

func (s *MemoryStore) CreateEvent(_ context.Context, name string, categoryID int) *domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := &domain.Event{ID: s.nextEventID, Name: name, CategoryID: categoryID}
	s.nextEventID++
	s.events[e.ID] = e
	s.eventOrder = append(s.eventOrder, e.ID)
	cp := *e
	return &cp
}

// Results

func (s *MemoryStore) GetResults(_ context.Context) []*domain.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectResults(s.resultOrder)
}

func (s *MemoryStore) GetResult(_ context.Context, id int) *domain.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.results[id]
	if !ok {
		return nil
	}
	cp := *r
	return &cp
}

func (s *MemoryStore) GetResultByTeamAndEvent(_ context.Context, teamID, eventID int) *domain.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.resultsByEvent[eventID] {
		if r := s.results[id]; r.TeamID == teamID {
			cp := *r
			return &cp
		}
	}
	return nil
}

func (s *MemoryStore) GetResultsByEvent(_ context.Context, eventID int) []*domain.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectResults(s.resultsByEvent[eventID])
}

func (s *MemoryStore) GetResultsByTeam(_ context.Context, teamID int) []*domain.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectResults(s.resultsByTeam[teamID])
}

func (s *MemoryStore) CreateResult(_ context.Context, teamID, eventID int, medal domain.Medal, points int) *domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := &domain.Result{ID: s.nextResultID, TeamID: teamID, EventID: eventID, Medal: medal, Points: points}
	s.nextResultID++
	s.results[r.ID] = r
	s.resultOrder = append(s.resultOrder, r.ID)
	s.resultsByEvent[eventID] = append(s.resultsByEvent[eventID], r.ID)
	s.resultsByTeam[teamID] = append(s.resultsByTeam[teamID], r.ID)
	cp := *r
	return &cp
}

func (s *MemoryStore) UpdateResult(_ context.Context, id int, medal domain.Medal, points int) *domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.results[id]
	if !ok {
		return nil
	}
	updated := *r
	updated.Medal = medal
	updated.Points = points
	s.results[id] = &updated
	cp := updated
	return &cp
}

// collectResults copies the results for ids; callers hold the read lock
func (s *MemoryStore) collectResults(ids []int) []*domain.Result {
	out := make([]*domain.Result, 0, len(ids))
	for _, id := range ids {
		cp := *s.results[id]
		out = append(out, &cp)
	}
	return out
}

func copyUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}

func copyTeam(t *domain.Team) *domain.Team {
	if t == nil {
		return nil
	}
	cp := *t
	if t.Icon != nil {
		icon := *t.Icon
		cp.Icon = &icon
	}
	return &cp
}
