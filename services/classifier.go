package services

import "math"

// Game type labels, ordered by spread magnitude.
const (
	GameTypeClose           = "close"
	GameTypeCompetitive     = "competitive"
	GameTypeModerateBlowout = "moderate_blowout"
	GameTypeBlowout         = "blowout"
)

// ClassifyGame buckets a predicted spread by magnitude. Boundaries are
// inclusive to the lower bucket: 3 is still close, 7 competitive, 14
// moderate_blowout.
func ClassifyGame(spread float64) string {
	switch magnitude := math.Abs(spread); {
	case magnitude <= 3:
		return GameTypeClose
	case magnitude <= 7:
		return GameTypeCompetitive
	case magnitude <= 14:
		return GameTypeModerateBlowout
	default:
		return GameTypeBlowout
	}
}
