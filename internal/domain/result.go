package domain

// Result ties a team to an event with a medal and its point value
type Result struct {
	ID      int   `json:"id"`
	TeamID  int   `json:"teamId"`
	EventID int   `json:"eventId"`
	Medal   Medal `json:"medal"`
	Points  int   `json:"points"`
}

// UpdateResultRequest represents the body of POST /api/results/update.
// Pointers distinguish a missing field from a zero value.
type UpdateResultRequest struct {
	TeamID  *int    `json:"teamId"`
	EventID *int    `json:"eventId"`
	Medal   *string `json:"medal"`
}

// UpdateResultResponse is returned after a successful medal assignment
type UpdateResultResponse struct {
	Message      string          `json:"message"`
	Result       *Result         `json:"result"`
	Standings    []*TeamStanding `json:"standings"`
	EventResults *EventResult    `json:"eventResults"`
}
