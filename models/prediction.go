package models

// GameContext describes the matchup being predicted. Immutable per game.
type GameContext struct {
	GameID       string  `json:"game_id"`
	HomeTeamID   string  `json:"home_team_id"`
	AwayTeamID   string  `json:"away_team_id"`
	IsDivisional bool    `json:"is_divisional"`
	Week         int     `json:"week"`
	Season       int     `json:"season"`
	Weather      *string `json:"weather,omitempty"`
}

// Prediction is the engine's full output for one game. It is created on
// demand and never mutated; a recomputation replaces it wholly.
type Prediction struct {
	GameID             string   `json:"game_id"`
	PredictedHomeScore float64  `json:"predicted_home_score"`
	PredictedAwayScore float64  `json:"predicted_away_score"`
	Spread             float64  `json:"spread"`
	Total              float64  `json:"total"`
	WinProbabilityHome float64  `json:"win_probability_home"`
	WinProbabilityAway float64  `json:"win_probability_away"`
	GameType           string   `json:"game_type"`
	ConfidenceScore    float64  `json:"confidence_score"`
	KeyFactors         []string `json:"key_factors"`
	Reasoning          string   `json:"reasoning"`
}
