package models

// Game is a single scheduled NFL game as published by the upstream provider.
type Game struct {
	GameID           string `json:"game_id"`
	HomeTeam         string `json:"home_team"`
	AwayTeam         string `json:"away_team"`
	HomeAbbreviation string `json:"home_abbreviation"`
	AwayAbbreviation string `json:"away_abbreviation"`
	GameTime         string `json:"game_time"`
	GameDate         string `json:"game_date"`
	Week             int    `json:"week"`
	Season           int    `json:"season"`
	Status           string `json:"status"`
	NeutralSite      bool   `json:"neutral_site"`
	Venue            string `json:"venue"`
}
