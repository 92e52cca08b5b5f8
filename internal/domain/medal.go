package domain

import "fmt"

// Medal is the outcome of a team's participation in an event
type Medal string

const (
	MedalGold      Medal = "gold"
	MedalSilver    Medal = "silver"
	MedalBronze    Medal = "bronze"
	MedalNonWinner Medal = "non-winner"
	MedalNoEntry   Medal = "no-entry"
)

// Point values per medal. Non-winner and no-entry both score zero but are
// kept distinct: entered-but-lost versus never-entered.
const (
	PointsGold      = 10
	PointsSilver    = 7
	PointsBronze    = 5
	PointsNonWinner = 0
	PointsNoEntry   = 0
)

// AllMedals lists every medal in descending order of value
var AllMedals = []Medal{MedalGold, MedalSilver, MedalBronze, MedalNonWinner, MedalNoEntry}

// ParseMedal validates a wire value
func ParseMedal(s string) (Medal, error) {
	m := Medal(s)
	if !m.Valid() {
		return "", fmt.Errorf("invalid medal %q", s)
	}
	return m, nil
}

// Valid reports whether m is one of the five enumerated medals
func (m Medal) Valid() bool {
	switch m {
	case MedalGold, MedalSilver, MedalBronze, MedalNonWinner, MedalNoEntry:
		return true
	}
	return false
}

// IsPodium reports whether m is gold, silver or bronze
func (m Medal) IsPodium() bool {
	return m == MedalGold || m == MedalSilver || m == MedalBronze
}

// Points returns the fixed point value of m. Unknown medals score zero.
func (m Medal) Points() int {
	switch m {
	case MedalGold:
		return PointsGold
	case MedalSilver:
		return PointsSilver
	case MedalBronze:
		return PointsBronze
	default:
		return 0
	}
}
