package models

// TeamStats is an immutable weekly snapshot of a team's performance
// indicators, shaped the same whether it came from the live provider or the
// synthetic source.
type TeamStats struct {
	TeamID              string  `json:"team_id"`
	PointsScoredPerGame float64 `json:"points_scored_per_game"`
	PointsAllowedPerGame float64 `json:"points_allowed_per_game"`
	OffensiveRank       int     `json:"offensive_rank"`
	DefensiveRank       int     `json:"defensive_rank"`
	Consistency         float64 `json:"consistency"`
}

// TeamStrength is derived from TeamStats and never stored on its own; it is
// recomputed whenever the underlying stats change.
type TeamStrength struct {
	TeamID           string  `json:"team_id"`
	CompositeScore   float64 `json:"composite_score"`
	OffenseComponent float64 `json:"offense_component"`
	DefenseComponent float64 `json:"defense_component"`
}
