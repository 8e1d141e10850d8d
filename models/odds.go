package models

// SpreadOdds is one sportsbook's point-spread market for a game.
type SpreadOdds struct {
	Away     string `json:"away"`
	Home     string `json:"home"`
	AwayOdds string `json:"away_odds"`
	HomeOdds string `json:"home_odds"`
}

// TotalOdds is one sportsbook's over/under market for a game.
type TotalOdds struct {
	Over      string `json:"over"`
	Under     string `json:"under"`
	OverOdds  string `json:"over_odds"`
	UnderOdds string `json:"under_odds"`
}

// MoneylineOdds is one sportsbook's moneyline market for a game.
type MoneylineOdds struct {
	Away string `json:"away"`
	Home string `json:"home"`
}

// SportsbookOdds groups the three markets a single book offers.
type SportsbookOdds struct {
	Spread        SpreadOdds        `json:"spread"`
	Total         TotalOdds         `json:"total"`
	Moneyline     MoneylineOdds     `json:"moneyline"`
	ImpliedTotals map[string]string `json:"implied_totals,omitempty"`
}

// GameOdds is the per-game odds snapshot across all tracked sportsbooks.
type GameOdds struct {
	GameID      string                    `json:"game_id"`
	LastUpdated string                    `json:"last_updated"`
	GameDate    string                    `json:"game_date"`
	AwayTeam    string                    `json:"away_team"`
	HomeTeam    string                    `json:"home_team"`
	Sportsbooks map[string]SportsbookOdds `json:"sportsbooks"`
}
