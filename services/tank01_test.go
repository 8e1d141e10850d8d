package services

import (
	"testing"
)

func TestParseScheduleResponse(t *testing.T) {
	body := []byte(`{"body": [
		{"gameID": "20250904_DAL@PHI", "away": "DAL", "home": "PHI",
		 "gameWeek": "Week 1", "season": "2025", "gameTime": "8:20p",
		 "gameDate": "20250904", "gameStatus": "Scheduled", "neutralSite": "False"},
		{"gameID": "20250907_KC@LAC", "away": "KC", "home": "LAC",
		 "gameWeek": "Week 1", "season": "2025", "gameTime": "1:00p",
		 "gameDate": "20250907", "gameStatus": "Scheduled", "neutralSite": "True"}
	]}`)

	games, err := parseScheduleResponse(body)
	if err != nil {
		t.Fatalf("parseScheduleResponse() error: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("len(games) = %d, want 2", len(games))
	}

	first := games[0]
	if first.GameID != "20250904_DAL@PHI" {
		t.Errorf("GameID = %q", first.GameID)
	}
	if first.HomeTeam != "Philadelphia Eagles" || first.AwayTeam != "Dallas Cowboys" {
		t.Errorf("team names = %q / %q, want resolved full names", first.HomeTeam, first.AwayTeam)
	}
	if first.Week != 1 || first.Season != 2025 {
		t.Errorf("week/season = %d/%d, want 1/2025", first.Week, first.Season)
	}
	if first.GameTime != "2025-09-04T20:20:00-04:00" {
		t.Errorf("GameTime = %q, want 2025-09-04T20:20:00-04:00", first.GameTime)
	}
	if first.Status != "scheduled" {
		t.Errorf("Status = %q, want scheduled", first.Status)
	}
	if first.Venue != "Lincoln Financial Field" {
		t.Errorf("Venue = %q, want Lincoln Financial Field", first.Venue)
	}

	second := games[1]
	if !second.NeutralSite {
		t.Error("second game should be a neutral site")
	}
	if second.Venue != "Neutral Site" {
		t.Errorf("Venue = %q, want Neutral Site", second.Venue)
	}
}

func TestParseScheduleResponseBareList(t *testing.T) {
	body := []byte(`[
		{"gameID": "20250904_DAL@PHI", "away": "DAL", "home": "PHI",
		 "gameWeek": "Week 1", "season": "2025", "gameTime": "8:20p", "gameDate": "20250904"}
	]`)

	games, err := parseScheduleResponse(body)
	if err != nil {
		t.Fatalf("parseScheduleResponse() error: %v", err)
	}
	if len(games) != 1 {
		t.Errorf("len(games) = %d, want 1", len(games))
	}
}

func TestParseScheduleResponseMalformed(t *testing.T) {
	if _, err := parseScheduleResponse([]byte(`"not a schedule"`)); err == nil {
		t.Error("expected error for malformed schedule payload")
	}
}

func TestFormatGameTime(t *testing.T) {
	tests := []struct {
		name    string
		timeStr string
		dateStr string
		want    string
	}{
		{"evening kickoff", "8:20p", "20250904", "2025-09-04T20:20:00-04:00"},
		{"early slot", "1:00p", "20250907", "2025-09-07T13:00:00-04:00"},
		{"morning", "9:30a", "20251005", "2025-10-05T09:30:00-04:00"},
		{"noon", "12:00p", "20250907", "2025-09-07T12:00:00-04:00"},
		{"past midnight", "12:15a", "20250908", "2025-09-08T00:15:00-04:00"},
		{"missing time", "", "20250904", "2025-09-04T00:00:00-04:00"},
		{"missing date", "8:20p", "", "2025-01-01T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatGameTime(tt.timeStr, tt.dateStr); got != tt.want {
				t.Errorf("formatGameTime(%q, %q) = %q, want %q", tt.timeStr, tt.dateStr, got, tt.want)
			}
		})
	}
}

func TestParseWeek(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"Week 1", 1},
		{"Week 18", 18},
		{"garbage", 1},
		{"", 1},
	}
	for _, tt := range tests {
		if got := parseWeek(tt.in); got != tt.want {
			t.Errorf("parseWeek(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseTeamStatsResponse(t *testing.T) {
	body := []byte(`{"body": [
		{"teamAbv": "PHI", "pf": "459", "pa": "303", "wins": "14", "loss": "3"},
		{"teamAbv": "DAL", "pf": "357", "pa": "468", "wins": "7", "loss": "10"}
	]}`)

	stats, err := parseTeamStatsResponse(body)
	if err != nil {
		t.Fatalf("parseTeamStatsResponse() error: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("len(stats) = %d, want 2", len(stats))
	}

	phi := stats["PHI"]
	if phi.TeamID != "PHI" {
		t.Errorf("TeamID = %q, want PHI", phi.TeamID)
	}
	if got, want := phi.PointsScoredPerGame, 459.0/17; got != want {
		t.Errorf("PHI PointsScoredPerGame = %v, want %v", got, want)
	}
	if phi.OffensiveRank != 1 {
		t.Errorf("PHI OffensiveRank = %d, want 1", phi.OffensiveRank)
	}
	if phi.DefensiveRank != 1 {
		t.Errorf("PHI DefensiveRank = %d, want 1", phi.DefensiveRank)
	}
	if dal := stats["DAL"]; dal.OffensiveRank != 2 || dal.DefensiveRank != 2 {
		t.Errorf("DAL ranks = %d/%d, want 2/2", dal.OffensiveRank, dal.DefensiveRank)
	}

	// Snapshots must be valid strength-model input.
	for team, teamStats := range stats {
		if _, err := ComputeStrength(teamStats); err != nil {
			t.Errorf("ComputeStrength(%s) error: %v", team, err)
		}
	}
}

func TestParseBettingOddsResponse(t *testing.T) {
	body := []byte(`{"body": {"20250904_DAL@PHI": {
		"last_updated_e_time": "1756700000",
		"gameDate": "20250904",
		"awayTeam": "DAL",
		"homeTeam": "PHI",
		"fanduel": {
			"awayTeamSpread": "+7.5", "homeTeamSpread": "-7.5",
			"awayTeamSpreadOdds": "-108", "homeTeamSpreadOdds": "-112",
			"totalOver": "47.5", "totalUnder": "47.5",
			"totalOverOdds": "-110", "totalUnderOdds": "-110",
			"awayTeamMLOdds": "+290", "homeTeamMLOdds": "-360"
		},
		"draftkings": {
			"awayTeamSpread": "+7.0", "homeTeamSpread": "-7.0",
			"awayTeamMLOdds": "+280", "homeTeamMLOdds": "-340"
		}
	}}}`)

	odds, err := parseBettingOddsResponse(body, "20250904_DAL@PHI")
	if err != nil {
		t.Fatalf("parseBettingOddsResponse() error: %v", err)
	}

	if odds.HomeTeam != "PHI" || odds.AwayTeam != "DAL" {
		t.Errorf("teams = %s/%s, want PHI/DAL", odds.HomeTeam, odds.AwayTeam)
	}
	if len(odds.Sportsbooks) != 2 {
		t.Fatalf("len(Sportsbooks) = %d, want 2", len(odds.Sportsbooks))
	}

	fanduel := odds.Sportsbooks["fanduel"]
	if fanduel.Spread.Home != "-7.5" {
		t.Errorf("fanduel home spread = %q, want -7.5", fanduel.Spread.Home)
	}
	if fanduel.Total.Over != "47.5" {
		t.Errorf("fanduel total over = %q, want 47.5", fanduel.Total.Over)
	}
	if fanduel.Moneyline.Away != "+290" {
		t.Errorf("fanduel away moneyline = %q, want +290", fanduel.Moneyline.Away)
	}
}

func TestParseBettingOddsResponseMissingGame(t *testing.T) {
	body := []byte(`{"body": {}}`)

	if _, err := parseBettingOddsResponse(body, "20250904_DAL@PHI"); err == nil {
		t.Error("expected error for game missing from odds response")
	}
}
