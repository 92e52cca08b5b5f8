package service

import (
	"sort"

	"festival-scoreboard/internal/domain"
)

// ComputeStandings sums points and podium counts per team and sorts by total
// points, highest first. Ties keep the order of teams, which is team ID order
// for the store. Teams without results appear with zero totals.
func ComputeStandings(teams []*domain.Team, results []*domain.Result) []*domain.TeamStanding {
	standings := make([]*domain.TeamStanding, 0, len(teams))
	byTeam := make(map[int]*domain.TeamStanding, len(teams))

	for _, team := range teams {
		s := &domain.TeamStanding{
			TeamID:    team.ID,
			TeamName:  team.Name,
			TeamColor: team.Color,
		}
		standings = append(standings, s)
		byTeam[team.ID] = s
	}

	for _, r := range results {
		s, ok := byTeam[r.TeamID]
		if !ok {
			continue
		}
		s.TotalPoints += r.Points
		switch r.Medal {
		case domain.MedalGold:
			s.GoldCount++
		case domain.MedalSilver:
			s.SilverCount++
		case domain.MedalBronze:
			s.BronzeCount++
		}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].TotalPoints > standings[j].TotalPoints
	})
	return standings
}
