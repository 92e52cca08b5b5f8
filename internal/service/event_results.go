package service

import "festival-scoreboard/internal/domain"

// ProjectEventResult builds the podium of event from its results. The first
// result carrying each podium medal wins the slot. A slot whose team cannot be
// resolved is left empty.
func ProjectEventResult(event *domain.Event, results []*domain.Result, teams []*domain.Team) *domain.EventResult {
	teamsByID := make(map[int]*domain.Team, len(teams))
	for _, t := range teams {
		teamsByID[t.ID] = t
	}

	holder := func(medal domain.Medal) *domain.TeamRef {
		for _, r := range results {
			if r.Medal != medal {
				continue
			}
			if t, ok := teamsByID[r.TeamID]; ok {
				return t.Ref()
			}
			return nil
		}
		return nil
	}

	if results == nil {
		results = []*domain.Result{}
	}

	return &domain.EventResult{
		EventID:   event.ID,
		EventName: event.Name,
		Gold:      holder(domain.MedalGold),
		Silver:    holder(domain.MedalSilver),
		Bronze:    holder(domain.MedalBronze),
		Results:   results,
	}
}
