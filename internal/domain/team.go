package domain

// Team represents a competing festival team. Only Icon changes after seeding.
type Team struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Color string  `json:"color"`
	Icon  *string `json:"icon,omitempty"`
}

// TeamRef is the public identity of a team as embedded in derived views
type TeamRef struct {
	TeamID    int    `json:"teamId"`
	TeamName  string `json:"teamName"`
	TeamColor string `json:"teamColor"`
}

// Ref returns the public identity of the team
func (t *Team) Ref() *TeamRef {
	return &TeamRef{TeamID: t.ID, TeamName: t.Name, TeamColor: t.Color}
}

// UpdateIconRequest represents the body of POST /api/teams/{teamId}/icon
type UpdateIconRequest struct {
	Icon *string `json:"icon"`
}
