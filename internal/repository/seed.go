package repository

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"festival-scoreboard/internal/domain"
)

type teamSeed struct {
	Name  string
	Color string
}

type categorySeed struct {
	Name   string
	Color  string
	Events []string
}

// DefaultTeams are the festival teams in display order
var DefaultTeams = []teamSeed{
	{"Royal Blue Dragons", "royal"},
	{"Ninja Turquoise", "turquoise"},
	{"Green Pythons", "python"},
	{"Yellow Hornets", "hornet"},
	{"Orange Jaguars", "jaguar"},
	{"Red Bulls", "bull"},
	{"Purple Wasps", "wasp"},
	{"Pink Panthers", "panther"},
	{"White Falcons", "falcon"},
	{"Gray Stallions", "stallion"},
	{"Brown Wolves", "wolf"},
	{"Maroon Tigers", "tiger"},
}

// DefaultCategories are the festival categories and their events
var DefaultCategories = []categorySeed{
	{"VISUAL ARTS", "indigo", []string{
		"On-the-Spot Poster Making",
		"Pencil Drawing",
		"In Situ Painting",
		"Charcoal Rendering",
		"Photo Contest",
	}},
	{"QUIZ BOWL", "blue", []string{
		"Quiz Bowl",
	}},
	{"MUSICAL", "purple", []string{
		"Instrumental Solo (Classical Guitar)",
		"Live Band",
		"Vocal Solo (Kundiman)",
		"Vocal Duet",
		"Pop Solo",
	}},
	{"DANCES", "pink", []string{
		"Contemporary Dance",
		"Hip-Hop",
	}},
	{"LITERARY", "amber", []string{
		"Pagsusulat ng Sanaysay",
		"Essay Writing",
		"Pagkukwento",
		"Storytelling",
		"Dagliang Talumpati",
		"Extemporaneous Speaking",
		"Radio Drama",
	}},
}

// SeedSummary reports what a Seed call created
type SeedSummary struct {
	Users      int
	Teams      int
	Categories int
	Events     int
	Results    int
}

// Seed populates store with the admin account, teams, categories, events and
// one no-entry result per team and event. Running it twice creates nothing new.
func Seed(ctx context.Context, store Store, adminUsername, adminPassword string) (*SeedSummary, error) {
	summary := &SeedSummary{}

	if adminUsername != "" && store.GetUserByUsername(ctx, adminUsername) == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
		store.CreateUser(ctx, adminUsername, string(hash))
		summary.Users++
	}

	for _, t := range DefaultTeams {
		if store.GetTeamByName(ctx, t.Name) == nil {
			store.CreateTeam(ctx, t.Name, t.Color)
			summary.Teams++
		}
	}

	for _, c := range DefaultCategories {
		category := store.GetCategoryByName(ctx, c.Name)
		if category == nil {
			category = store.CreateCategory(ctx, c.Name, c.Color)
			summary.Categories++
		}
		for _, name := range c.Events {
			if store.GetEventByName(ctx, name, category.ID) == nil {
				store.CreateEvent(ctx, name, category.ID)
				summary.Events++
			}
		}
	}

	events := store.GetEvents(ctx)
	for _, team := range store.GetTeams(ctx) {
		for _, event := range events {
			if store.GetResultByTeamAndEvent(ctx, team.ID, event.ID) == nil {
				store.CreateResult(ctx, team.ID, event.ID, domain.MedalNoEntry, domain.MedalNoEntry.Points())
				summary.Results++
			}
		}
	}

	return summary, nil
}
