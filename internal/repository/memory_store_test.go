package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"festival-scoreboard/internal/domain"
)

func TestMemoryStore_IDsStartAtOneAndIncrease(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first := store.CreateTeam(ctx, "Red Bulls", "bull")
	second := store.CreateTeam(ctx, "Purple Wasps", "wasp")
	category := store.CreateCategory(ctx, "DANCES", "pink")
	event := store.CreateEvent(ctx, "Hip-Hop", category.ID)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 1, category.ID)
	assert.Equal(t, 1, event.ID)
}

func TestMemoryStore_LookupsReturnNilWhenMissing(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	assert.Nil(t, store.GetTeam(ctx, 99))
	assert.Nil(t, store.GetTeamByName(ctx, "nobody"))
	assert.Nil(t, store.GetCategory(ctx, 1))
	assert.Nil(t, store.GetEvent(ctx, 1))
	assert.Nil(t, store.GetEventByName(ctx, "Hip-Hop", 1))
	assert.Nil(t, store.GetResult(ctx, 1))
	assert.Nil(t, store.GetResultByTeamAndEvent(ctx, 1, 1))
	assert.Nil(t, store.GetUser(ctx, 1))
	assert.Nil(t, store.GetUserByUsername(ctx, "admin"))
	assert.Nil(t, store.UpdateResult(ctx, 1, domain.MedalGold, 10))
	assert.Nil(t, store.UpdateTeamIcon(ctx, 1, nil))
	assert.Empty(t, store.GetResultsByEvent(ctx, 1))
	assert.Empty(t, store.GetResultsByTeam(ctx, 1))
}

func TestMemoryStore_CreateAndGetResultByTeamAndEvent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	created := store.CreateResult(ctx, 1, 1, domain.MedalGold, 10)
	require.NotNil(t, created)

	got := store.GetResultByTeamAndEvent(ctx, 1, 1)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, domain.MedalGold, got.Medal)
	assert.Equal(t, 10, got.Points)
}

func TestMemoryStore_UpdateResultInPlace(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	r := store.CreateResult(ctx, 2, 5, domain.MedalGold, domain.PointsGold)
	updated := store.UpdateResult(ctx, r.ID, domain.MedalSilver, domain.PointsSilver)
	require.NotNil(t, updated)

	assert.Equal(t, r.ID, updated.ID)
	assert.Equal(t, domain.MedalSilver, updated.Medal)
	assert.Equal(t, domain.PointsSilver, updated.Points)

	all := store.GetResults(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, domain.MedalSilver, all[0].Medal)
}

func TestMemoryStore_ResultQueriesKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	a := store.CreateResult(ctx, 3, 1, domain.MedalNoEntry, 0)
	b := store.CreateResult(ctx, 1, 1, domain.MedalGold, 10)
	c := store.CreateResult(ctx, 3, 2, domain.MedalBronze, 5)
	d := store.CreateResult(ctx, 2, 1, domain.MedalSilver, 7)

	byEvent := store.GetResultsByEvent(ctx, 1)
	require.Len(t, byEvent, 3)
	assert.Equal(t, []int{a.ID, b.ID, d.ID}, []int{byEvent[0].ID, byEvent[1].ID, byEvent[2].ID})

	byTeam := store.GetResultsByTeam(ctx, 3)
	require.Len(t, byTeam, 2)
	assert.Equal(t, []int{a.ID, c.ID}, []int{byTeam[0].ID, byTeam[1].ID})
}

func TestMemoryStore_GetResultByTeamAndEventReturnsFirstMatch(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first := store.CreateResult(ctx, 1, 1, domain.MedalGold, 10)
	store.CreateResult(ctx, 1, 1, domain.MedalSilver, 7)

	got := store.GetResultByTeamAndEvent(ctx, 1, 1)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	team := store.CreateTeam(ctx, "Brown Wolves", "wolf")
	team.Name = "mutated"
	assert.Equal(t, "Brown Wolves", store.GetTeam(ctx, team.ID).Name)

	r := store.CreateResult(ctx, team.ID, 1, domain.MedalNoEntry, 0)
	r.Points = 100
	assert.Equal(t, 0, store.GetResult(ctx, r.ID).Points)
}

func TestMemoryStore_UpdateTeamIcon(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	team := store.CreateTeam(ctx, "White Falcons", "falcon")

	icon := "🦅"
	updated := store.UpdateTeamIcon(ctx, team.ID, &icon)
	require.NotNil(t, updated)
	require.NotNil(t, updated.Icon)
	assert.Equal(t, "🦅", *updated.Icon)

	cleared := store.UpdateTeamIcon(ctx, team.ID, nil)
	require.NotNil(t, cleared)
	assert.Nil(t, cleared.Icon)
	assert.Equal(t, "White Falcons", cleared.Name)
}

func TestMemoryStore_EventsByCategory(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	arts := store.CreateCategory(ctx, "VISUAL ARTS", "indigo")
	quiz := store.CreateCategory(ctx, "QUIZ BOWL", "blue")
	store.CreateEvent(ctx, "Pencil Drawing", arts.ID)
	store.CreateEvent(ctx, "Quiz Bowl", quiz.ID)
	store.CreateEvent(ctx, "Photo Contest", arts.ID)

	events := store.GetEventsByCategory(ctx, arts.ID)
	require.Len(t, events, 2)
	assert.Equal(t, "Pencil Drawing", events[0].Name)
	assert.Equal(t, "Photo Contest", events[1].Name)

	assert.NotNil(t, store.GetEventByName(ctx, "Quiz Bowl", quiz.ID))
	assert.Nil(t, store.GetEventByName(ctx, "Quiz Bowl", arts.ID))
}

func TestMemoryStore_Reset(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.CreateTeam(ctx, "Red Bulls", "bull")
	store.Reset()

	assert.Empty(t, store.GetTeams(ctx))
	assert.Equal(t, 1, store.CreateTeam(ctx, "Gray Stallions", "stallion").ID)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	summary, err := Seed(ctx, store, "admin", "s3cret")
	require.NoError(t, err)

	totalEvents := 0
	for _, c := range DefaultCategories {
		totalEvents += len(c.Events)
	}

	assert.Equal(t, 1, summary.Users)
	assert.Equal(t, len(DefaultTeams), summary.Teams)
	assert.Equal(t, len(DefaultCategories), summary.Categories)
	assert.Equal(t, totalEvents, summary.Events)
	assert.Equal(t, len(DefaultTeams)*totalEvents, summary.Results)

	for _, team := range store.GetTeams(ctx) {
		for _, event := range store.GetEvents(ctx) {
			results := store.GetResultsByEvent(ctx, event.ID)
			count := 0
			for _, r := range results {
				if r.TeamID == team.ID {
					count++
					assert.Equal(t, domain.MedalNoEntry, r.Medal)
					assert.Equal(t, 0, r.Points)
				}
			}
			assert.Equal(t, 1, count, "team %d event %d", team.ID, event.ID)
		}
	}

	admin := store.GetUserByUsername(ctx, "admin")
	require.NotNil(t, admin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("s3cret")))
}

func TestSeed_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := Seed(ctx, store, "admin", "s3cret")
	require.NoError(t, err)
	before := len(store.GetResults(ctx))

	summary, err := Seed(ctx, store, "admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, &SeedSummary{}, summary)
	assert.Len(t, store.GetResults(ctx), before)
}
