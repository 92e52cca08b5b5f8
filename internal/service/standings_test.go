package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festival-scoreboard/internal/domain"
)

func testTeams() []*domain.Team {
	return []*domain.Team{
		{ID: 1, Name: "Royal Blue Dragons", Color: "royal"},
		{ID: 2, Name: "Ninja Turquoise", Color: "turquoise"},
		{ID: 3, Name: "Green Pythons", Color: "python"},
	}
}

func TestComputeStandings_SumsPointsAndCounts(t *testing.T) {
	results := []*domain.Result{
		{ID: 1, TeamID: 1, EventID: 1, Medal: domain.MedalGold, Points: domain.PointsGold},
		{ID: 2, TeamID: 2, EventID: 1, Medal: domain.MedalSilver, Points: domain.PointsSilver},
		{ID: 3, TeamID: 2, EventID: 2, Medal: domain.MedalGold, Points: domain.PointsGold},
		{ID: 4, TeamID: 3, EventID: 2, Medal: domain.MedalBronze, Points: domain.PointsBronze},
		{ID: 5, TeamID: 3, EventID: 1, Medal: domain.MedalNonWinner, Points: 0},
	}

	standings := ComputeStandings(testTeams(), results)
	require.Len(t, standings, 3)

	assert.Equal(t, 2, standings[0].TeamID)
	assert.Equal(t, domain.PointsGold+domain.PointsSilver, standings[0].TotalPoints)
	assert.Equal(t, 1, standings[0].GoldCount)
	assert.Equal(t, 1, standings[0].SilverCount)

	assert.Equal(t, 1, standings[1].TeamID)
	assert.Equal(t, 3, standings[2].TeamID)
	assert.Equal(t, 1, standings[2].BronzeCount)
	assert.Equal(t, "python", standings[2].TeamColor)
}

func TestComputeStandings_TiesKeepTeamOrder(t *testing.T) {
	results := []*domain.Result{
		{TeamID: 3, Medal: domain.MedalGold, Points: domain.PointsGold},
		{TeamID: 1, Medal: domain.MedalGold, Points: domain.PointsGold},
	}

	standings := ComputeStandings(testTeams(), results)
	require.Len(t, standings, 3)
	assert.Equal(t, []int{1, 3, 2}, []int{standings[0].TeamID, standings[1].TeamID, standings[2].TeamID})
}

func TestComputeStandings_TeamsWithoutResultsAreZero(t *testing.T) {
	standings := ComputeStandings(testTeams(), nil)
	require.Len(t, standings, 3)
	for i, s := range standings {
		assert.Equal(t, i+1, s.TeamID)
		assert.Zero(t, s.TotalPoints)
		assert.Zero(t, s.GoldCount+s.SilverCount+s.BronzeCount)
	}
}

func TestComputeStandings_IgnoresUnknownTeams(t *testing.T) {
	results := []*domain.Result{{TeamID: 42, Medal: domain.MedalGold, Points: domain.PointsGold}}
	standings := ComputeStandings(testTeams(), results)
	for _, s := range standings {
		assert.Zero(t, s.TotalPoints)
	}
}
