package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"sort"
	"time"

	"nfl-prediction-api/models"
)

// Season shape, regular season only.
const (
	RegularSeasonWeeks = 18
	DefaultSeason      = 2025
)

// seasonStart is the approximate kickoff date used to place synthetic games
// and derive game dates; week 1 starts here.
var seasonStart = time.Date(2025, 9, 4, 0, 0, 0, 0, time.UTC)

// DataSource supplies schedule, stats, and odds collections. The prediction
// core is agnostic to provenance: the live Tank01 client and the synthetic
// generator satisfy the same contract, and the choice between them is made
// once at startup, never inside the core.
type DataSource interface {
	GamesForWeek(ctx context.Context, week, season int, seasonType string) ([]models.Game, error)
	TeamStats(ctx context.Context) (map[string]models.TeamStats, error)
	BettingOdds(ctx context.Context, gameID string) (models.GameOdds, error)
	Mode() string
}

// SyntheticSource fabricates schedule, stats, and odds deterministically
// from a seed. Used when no upstream API key is configured, and in tests.
type SyntheticSource struct {
	seed uint64
}

func NewSyntheticSource(seed uint64) *SyntheticSource {
	return &SyntheticSource{seed: seed}
}

func (s *SyntheticSource) Mode() string { return "synthetic" }

func (s *SyntheticSource) rng(labels ...any) *rand.Rand {
	h := fnv.New64a()
	for _, label := range labels {
		fmt.Fprintf(h, "%v|", label)
	}
	return rand.New(rand.NewPCG(s.seed, h.Sum64()))
}

func teamAbbreviations() []string {
	abbrevs := make([]string, 0, len(nflTeams))
	for abbrev := range nflTeams {
		abbrevs = append(abbrevs, abbrev)
	}
	sort.Strings(abbrevs)
	return abbrevs
}

// GamesForWeek pairs all 32 teams into 16 games with a per-week shuffle.
func (s *SyntheticSource) GamesForWeek(_ context.Context, week, season int, seasonType string) ([]models.Game, error) {
	if week < 1 || week > RegularSeasonWeeks {
		return nil, &InvalidInputError{Field: "week", Reason: fmt.Sprintf("must be within [1, %d]", RegularSeasonWeeks)}
	}

	rng := s.rng("schedule", week, season, seasonType)
	abbrevs := teamAbbreviations()
	rng.Shuffle(len(abbrevs), func(i, j int) {
		abbrevs[i], abbrevs[j] = abbrevs[j], abbrevs[i]
	})

	gameDate := seasonStart.AddDate(0, 0, (week-1)*7)
	games := make([]models.Game, 0, len(abbrevs)/2)
	for i := 0; i+1 < len(abbrevs); i += 2 {
		home, away := abbrevs[i], abbrevs[i+1]
		kickoffHour := 13 + rng.IntN(8)
		games = append(games, models.Game{
			GameID:           fmt.Sprintf("%s_%s@%s", gameDate.Format("20060102"), away, home),
			HomeTeam:         fullTeamName(home),
			AwayTeam:         fullTeamName(away),
			HomeAbbreviation: home,
			AwayAbbreviation: away,
			GameTime:         fmt.Sprintf("%sT%02d:00:00-04:00", gameDate.Format("2006-01-02"), kickoffHour),
			GameDate:         gameDate.Format("20060102"),
			Week:             week,
			Season:           season,
			Status:           "scheduled",
			Venue:            venueName(home, false),
		})
	}
	return games, nil
}

// TeamStats derives a stable per-team snapshot from the seed.
func (s *SyntheticSource) TeamStats(context.Context) (map[string]models.TeamStats, error) {
	abbrevs := teamAbbreviations()
	stats := make(map[string]models.TeamStats, len(abbrevs))
	for rank, abbrev := range abbrevs {
		rng := s.rng("stats", abbrev)
		stats[abbrev] = models.TeamStats{
			TeamID:               abbrev,
			PointsScoredPerGame:  14 + rng.Float64()*17,
			PointsAllowedPerGame: 14 + rng.Float64()*17,
			OffensiveRank:        1 + (rank+rng.IntN(len(abbrevs)))%len(abbrevs),
			DefensiveRank:        1 + rng.IntN(len(abbrevs)),
			Consistency:          0.3 + rng.Float64()*0.6,
		}
	}
	return stats, nil
}

// BettingOdds fabricates a two-book market around a seeded line.
func (s *SyntheticSource) BettingOdds(_ context.Context, gameID string) (models.GameOdds, error) {
	away, home, date, err := ParseGameID(gameID)
	if err != nil {
		return models.GameOdds{}, err
	}

	rng := s.rng("odds", gameID)
	line := float64(rng.IntN(29)-14) / 2 // -7.0 .. +7.0 in half points
	total := 38.5 + float64(rng.IntN(25))/2

	books := map[string]models.SportsbookOdds{}
	for _, book := range []string{"fanduel", "draftkings"} {
		juice := fmt.Sprintf("-%d", 105+rng.IntN(11))
		books[book] = models.SportsbookOdds{
			Spread: models.SpreadOdds{
				Away:     fmt.Sprintf("%+.1f", line),
				Home:     fmt.Sprintf("%+.1f", -line),
				AwayOdds: juice,
				HomeOdds: juice,
			},
			Total: models.TotalOdds{
				Over:      fmt.Sprintf("%.1f", total),
				Under:     fmt.Sprintf("%.1f", total),
				OverOdds:  "-110",
				UnderOdds: "-110",
			},
			Moneyline: models.MoneylineOdds{
				Away: fmt.Sprintf("%+d", 100+rng.IntN(200)),
				Home: fmt.Sprintf("%d", -(100 + rng.IntN(200))),
			},
		}
	}

	return models.GameOdds{
		GameID:      gameID,
		GameDate:    date,
		AwayTeam:    away,
		HomeTeam:    home,
		Sportsbooks: books,
	}, nil
}

// ParseGameID splits the provider's game identifier, formatted as
// YYYYMMDD_AWAY@HOME, into its parts.
func ParseGameID(gameID string) (away, home, date string, err error) {
	var sep int
	for i, r := range gameID {
		if r == '_' {
			sep = i
			break
		}
	}
	if sep == 0 || sep+1 >= len(gameID) {
		return "", "", "", &InvalidInputError{Field: "game_id", Reason: "expected YYYYMMDD_AWAY@HOME"}
	}
	date = gameID[:sep]
	matchup := gameID[sep+1:]
	at := -1
	for i, r := range matchup {
		if r == '@' {
			at = i
			break
		}
	}
	if at <= 0 || at+1 >= len(matchup) {
		return "", "", "", &InvalidInputError{Field: "game_id", Reason: "expected YYYYMMDD_AWAY@HOME"}
	}
	return matchup[:at], matchup[at+1:], date, nil
}
