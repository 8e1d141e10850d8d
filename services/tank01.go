package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"nfl-prediction-api/config"
	"nfl-prediction-api/models"
)

// Tank01Source is the live data source backed by the Tank01 NFL API on
// RapidAPI. It performs the network I/O the prediction core itself never
// does; fetch failures propagate to callers unchanged.
type Tank01Source struct {
	apiKey     string
	baseURL    string
	host       string
	httpClient *http.Client

	mu           sync.Mutex
	lastRequest  time.Time
	requestDelay time.Duration
}

func NewTank01Source(cfg config.UpstreamConfig) *Tank01Source {
	return &Tank01Source{
		apiKey:       cfg.APIKey,
		baseURL:      cfg.BaseURL,
		host:         cfg.Host,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		requestDelay: time.Duration(cfg.RequestIntervalMS) * time.Millisecond,
	}
}

func (t *Tank01Source) Mode() string { return "live" }

// rateLimit spaces requests at least requestDelay apart.
func (t *Tank01Source) rateLimit() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if wait := t.requestDelay - time.Since(t.lastRequest); wait > 0 {
		time.Sleep(wait)
	}
	t.lastRequest = time.Now()
}

func (t *Tank01Source) makeRequest(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	t.rateLimit()
	upstreamRequests.Inc()

	reqURL := t.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		upstreamFailures.Inc()
		return nil, fmt.Errorf("build request for %s: %w", endpoint, err)
	}
	req.Header.Set("X-RapidAPI-Key", t.apiKey)
	req.Header.Set("X-RapidAPI-Host", t.host)
	req.Header.Set("User-Agent", "NFL-Prediction-API/1.0")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		upstreamFailures.Inc()
		return nil, fmt.Errorf("request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		upstreamFailures.Inc()
		return nil, fmt.Errorf("read response from %s: %w", endpoint, err)
	}
	if resp.StatusCode != http.StatusOK {
		upstreamFailures.Inc()
		return nil, fmt.Errorf("upstream %s returned status %d", endpoint, resp.StatusCode)
	}
	return body, nil
}

// rawGame mirrors the Tank01 schedule payload, which carries every field as
// a string.
type rawGame struct {
	GameID      string `json:"gameID"`
	Away        string `json:"away"`
	Home        string `json:"home"`
	GameWeek    string `json:"gameWeek"`
	Season      string `json:"season"`
	GameTime    string `json:"gameTime"`
	GameDate    string `json:"gameDate"`
	GameStatus  string `json:"gameStatus"`
	NeutralSite string `json:"neutralSite"`
}

func (t *Tank01Source) GamesForWeek(ctx context.Context, week, season int, seasonType string) ([]models.Game, error) {
	params := url.Values{}
	params.Set("week", strconv.Itoa(week))
	params.Set("seasonType", seasonType)
	params.Set("season", strconv.Itoa(season))

	body, err := t.makeRequest(ctx, "/getNFLGamesForWeek", params)
	if err != nil {
		return nil, err
	}
	return parseScheduleResponse(body)
}

func parseScheduleResponse(body []byte) ([]models.Game, error) {
	// The body is either {"body": [...]} or a bare list.
	var envelope struct {
		Body []rawGame `json:"body"`
	}
	var rawGames []rawGame
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Body != nil {
		rawGames = envelope.Body
	} else if err := json.Unmarshal(body, &rawGames); err != nil {
		return nil, fmt.Errorf("unexpected schedule response format: %w", err)
	}

	games := make([]models.Game, 0, len(rawGames))
	for _, raw := range rawGames {
		neutral := raw.NeutralSite == "True" || raw.NeutralSite == "true"
		status := strings.ToLower(raw.GameStatus)
		if status == "" {
			status = "scheduled"
		}
		games = append(games, models.Game{
			GameID:           raw.GameID,
			HomeTeam:         fullTeamName(raw.Home),
			AwayTeam:         fullTeamName(raw.Away),
			HomeAbbreviation: raw.Home,
			AwayAbbreviation: raw.Away,
			GameTime:         formatGameTime(raw.GameTime, raw.GameDate),
			GameDate:         raw.GameDate,
			Week:             parseWeek(raw.GameWeek),
			Season:           parseSeason(raw.Season),
			Status:           status,
			NeutralSite:      neutral,
			Venue:            venueName(raw.Home, neutral),
		})
	}

	log.Printf("parsed %d games from upstream schedule response", len(games))
	return games, nil
}

// parseWeek extracts the number from the upstream "Week 1" format.
func parseWeek(gameWeek string) int {
	trimmed := strings.TrimPrefix(gameWeek, "Week ")
	if week, err := strconv.Atoi(trimmed); err == nil {
		return week
	}
	return 1
}

func parseSeason(season string) int {
	if parsed, err := strconv.Atoi(season); err == nil {
		return parsed
	}
	return DefaultSeason
}

// formatGameTime converts the upstream "8:20p" time and "20250904" date into
// an ISO timestamp, assuming Eastern time.
func formatGameTime(timeStr, dateStr string) string {
	if len(dateStr) != 8 {
		return "2025-01-01T00:00:00Z"
	}
	year, month, day := dateStr[:4], dateStr[4:6], dateStr[6:8]

	colon := strings.Index(timeStr, ":")
	if colon < 0 || len(timeStr) < colon+3 {
		return fmt.Sprintf("%s-%s-%sT00:00:00-04:00", year, month, day)
	}

	hour, err := strconv.Atoi(timeStr[:colon])
	if err != nil {
		return fmt.Sprintf("%s-%s-%sT00:00:00-04:00", year, month, day)
	}
	rest := timeStr[colon+1:]
	period := rest[len(rest)-1]
	minute, err := strconv.Atoi(rest[:len(rest)-1])
	if err != nil {
		return fmt.Sprintf("%s-%s-%sT00:00:00-04:00", year, month, day)
	}

	if period == 'p' && hour != 12 {
		hour += 12
	} else if period == 'a' && hour == 12 {
		hour = 0
	}
	return fmt.Sprintf("%s-%s-%sT%02d:%02d:00-04:00", year, month, day, hour, minute)
}

// rawTeam mirrors the /getNFLTeams payload.
type rawTeam struct {
	TeamAbv       string `json:"teamAbv"`
	PointsFor     string `json:"pf"`
	PointsAgainst string `json:"pa"`
	Wins          string `json:"wins"`
	Losses        string `json:"loss"`
}

func (t *Tank01Source) TeamStats(ctx context.Context) (map[string]models.TeamStats, error) {
	params := url.Values{}
	params.Set("teamStats", "true")

	body, err := t.makeRequest(ctx, "/getNFLTeams", params)
	if err != nil {
		return nil, err
	}
	return parseTeamStatsResponse(body)
}

func parseTeamStatsResponse(body []byte) (map[string]models.TeamStats, error) {
	var envelope struct {
		Body []rawTeam `json:"body"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("unexpected teams response format: %w", err)
	}

	stats := make(map[string]models.TeamStats, len(envelope.Body))
	offense := make([]string, 0, len(envelope.Body))
	for _, raw := range envelope.Body {
		if raw.TeamAbv == "" {
			continue
		}
		wins, _ := strconv.ParseFloat(raw.Wins, 64)
		losses, _ := strconv.ParseFloat(raw.Losses, 64)
		games := wins + losses
		if games == 0 {
			games = 1
		}
		pointsFor, _ := strconv.ParseFloat(raw.PointsFor, 64)
		pointsAgainst, _ := strconv.ParseFloat(raw.PointsAgainst, 64)

		stats[raw.TeamAbv] = models.TeamStats{
			TeamID:               raw.TeamAbv,
			PointsScoredPerGame:  pointsFor / games,
			PointsAllowedPerGame: pointsAgainst / games,
			Consistency:          consistencyFromRecord(wins, losses),
		}
		offense = append(offense, raw.TeamAbv)
	}
	rankTeams(stats, offense)
	return stats, nil
}

// consistencyFromRecord maps a win percentage into the [0.3, 0.9] band the
// model treats as meaningful; an even record sits at 0.6.
func consistencyFromRecord(wins, losses float64) float64 {
	games := wins + losses
	if games == 0 {
		return 0.6
	}
	return 0.3 + 0.6*(wins/games)
}

// rankTeams fills offensive and defensive ranks from per-game scoring.
func rankTeams(stats map[string]models.TeamStats, teams []string) {
	byOffense := append([]string(nil), teams...)
	byDefense := append([]string(nil), teams...)

	sortByMetric(byOffense, func(id string) float64 { return -stats[id].PointsScoredPerGame })
	sortByMetric(byDefense, func(id string) float64 { return stats[id].PointsAllowedPerGame })

	for i, id := range byOffense {
		s := stats[id]
		s.OffensiveRank = i + 1
		stats[id] = s
	}
	for i, id := range byDefense {
		s := stats[id]
		s.DefensiveRank = i + 1
		stats[id] = s
	}
}

func sortByMetric(teams []string, metric func(string) float64) {
	for i := 1; i < len(teams); i++ {
		for j := i; j > 0 && metric(teams[j]) < metric(teams[j-1]); j-- {
			teams[j], teams[j-1] = teams[j-1], teams[j]
		}
	}
}

// trackedSportsbooks is the fixed set of books extracted from the odds
// payload, in the upstream's order.
var trackedSportsbooks = []string{
	"betmgm", "bet365", "fanduel", "ballybet", "espnbet", "betrivers", "caesars_sportsbook", "draftkings",
}

type rawBookOdds struct {
	AwayTeamSpread     string            `json:"awayTeamSpread"`
	HomeTeamSpread     string            `json:"homeTeamSpread"`
	AwayTeamSpreadOdds string            `json:"awayTeamSpreadOdds"`
	HomeTeamSpreadOdds string            `json:"homeTeamSpreadOdds"`
	TotalOver          string            `json:"totalOver"`
	TotalUnder         string            `json:"totalUnder"`
	TotalOverOdds      string            `json:"totalOverOdds"`
	TotalUnderOdds     string            `json:"totalUnderOdds"`
	AwayTeamMLOdds     string            `json:"awayTeamMLOdds"`
	HomeTeamMLOdds     string            `json:"homeTeamMLOdds"`
	ImpliedTotals      map[string]string `json:"impliedTotals"`
}

func (t *Tank01Source) BettingOdds(ctx context.Context, gameID string) (models.GameOdds, error) {
	params := url.Values{}
	params.Set("gameID", gameID)
	params.Set("itemFormat", "map")
	params.Set("impliedTotals", "true")

	body, err := t.makeRequest(ctx, "/getNFLBettingOdds", params)
	if err != nil {
		return models.GameOdds{}, err
	}
	return parseBettingOddsResponse(body, gameID)
}

func parseBettingOddsResponse(body []byte, gameID string) (models.GameOdds, error) {
	var envelope struct {
		Body map[string]json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return models.GameOdds{}, fmt.Errorf("unexpected odds response format: %w", err)
	}
	rawOdds, ok := envelope.Body[gameID]
	if !ok {
		return models.GameOdds{}, fmt.Errorf("game %s not found in odds response", gameID)
	}

	var meta struct {
		LastUpdated string `json:"last_updated_e_time"`
		GameDate    string `json:"gameDate"`
		AwayTeam    string `json:"awayTeam"`
		HomeTeam    string `json:"homeTeam"`
	}
	if err := json.Unmarshal(rawOdds, &meta); err != nil {
		return models.GameOdds{}, fmt.Errorf("parse odds metadata: %w", err)
	}

	var books map[string]json.RawMessage
	if err := json.Unmarshal(rawOdds, &books); err != nil {
		return models.GameOdds{}, fmt.Errorf("parse odds body: %w", err)
	}

	odds := models.GameOdds{
		GameID:      gameID,
		LastUpdated: meta.LastUpdated,
		GameDate:    meta.GameDate,
		AwayTeam:    meta.AwayTeam,
		HomeTeam:    meta.HomeTeam,
		Sportsbooks: map[string]models.SportsbookOdds{},
	}

	for _, book := range trackedSportsbooks {
		raw, ok := books[book]
		if !ok {
			continue
		}
		var bookOdds rawBookOdds
		if err := json.Unmarshal(raw, &bookOdds); err != nil {
			log.Printf("skipping malformed odds for book %s on game %s: %v", book, gameID, err)
			continue
		}
		odds.Sportsbooks[book] = models.SportsbookOdds{
			Spread: models.SpreadOdds{
				Away:     bookOdds.AwayTeamSpread,
				Home:     bookOdds.HomeTeamSpread,
				AwayOdds: bookOdds.AwayTeamSpreadOdds,
				HomeOdds: bookOdds.HomeTeamSpreadOdds,
			},
			Total: models.TotalOdds{
				Over:      bookOdds.TotalOver,
				Under:     bookOdds.TotalUnder,
				OverOdds:  bookOdds.TotalOverOdds,
				UnderOdds: bookOdds.TotalUnderOdds,
			},
			Moneyline: models.MoneylineOdds{
				Away: bookOdds.AwayTeamMLOdds,
				Home: bookOdds.HomeTeamMLOdds,
			},
			ImpliedTotals: bookOdds.ImpliedTotals,
		}
	}
	return odds, nil
}
