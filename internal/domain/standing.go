package domain

// TeamStanding is a team's aggregate position. Derived, never stored.
type TeamStanding struct {
	TeamID      int    `json:"teamId"`
	TeamName    string `json:"teamName"`
	TeamColor   string `json:"teamColor"`
	TotalPoints int    `json:"totalPoints"`
	GoldCount   int    `json:"goldCount"`
	SilverCount int    `json:"silverCount"`
	BronzeCount int    `json:"bronzeCount"`
}

// EventResult is the podium of one event plus its raw results. Derived, never stored.
type EventResult struct {
	EventID   int       `json:"eventId"`
	EventName string    `json:"eventName"`
	Gold      *TeamRef  `json:"gold,omitempty"`
	Silver    *TeamRef  `json:"silver,omitempty"`
	Bronze    *TeamRef  `json:"bronze,omitempty"`
	Results   []*Result `json:"results"`
}
