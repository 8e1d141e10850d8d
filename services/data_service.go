package services

import (
	"context"
	"fmt"

	"nfl-prediction-api/models"
)

// DataService fronts a DataSource with the weekly cache and drives the
// prediction engine. The cache instance is owned by the caller and passed
// in, so parallel test runs get isolated stores.
type DataService struct {
	source    DataSource
	cache     *CacheService
	predictor *Predictor
}

func NewDataService(source DataSource, cache *CacheService, predictor *Predictor) *DataService {
	return &DataService{source: source, cache: cache, predictor: predictor}
}

func (s *DataService) Mode() string { return s.source.Mode() }

func (s *DataService) Cache() *CacheService { return s.cache }

// GamesForWeek returns the week's schedule, cached until the next weekly
// refresh boundary.
func (s *DataService) GamesForWeek(ctx context.Context, week, season int, seasonType string) ([]models.Game, error) {
	if week < 1 || week > RegularSeasonWeeks {
		return nil, &InvalidInputError{Field: "week", Reason: fmt.Sprintf("must be within [1, %d]", RegularSeasonWeeks)}
	}

	key := fmt.Sprintf("games_week_%d_season_%d_%s", week, season, seasonType)
	value, err := s.cache.GetOrLoad(key, func() (any, error) {
		return s.source.GamesForWeek(ctx, week, season, seasonType)
	})
	if err != nil {
		return nil, err
	}
	return value.([]models.Game), nil
}

// CurrentWeekGames defaults to week 1 of the default season, matching the
// upstream provider's preseason behavior.
func (s *DataService) CurrentWeekGames(ctx context.Context) ([]models.Game, error) {
	return s.GamesForWeek(ctx, 1, DefaultSeason, "reg")
}

// AvailableWeeks lists the regular-season weeks.
func (s *DataService) AvailableWeeks(season int) []int {
	weeks := make([]int, RegularSeasonWeeks)
	for i := range weeks {
		weeks[i] = i + 1
	}
	return weeks
}

// BettingOdds returns the odds snapshot for a game, cached weekly.
func (s *DataService) BettingOdds(ctx context.Context, gameID string) (models.GameOdds, error) {
	key := "betting_odds_" + gameID
	value, err := s.cache.GetOrLoad(key, func() (any, error) {
		return s.source.BettingOdds(ctx, gameID)
	})
	if err != nil {
		return models.GameOdds{}, err
	}
	return value.(models.GameOdds), nil
}

// TeamStats returns the per-team stats snapshot, cached weekly.
func (s *DataService) TeamStats(ctx context.Context) (map[string]models.TeamStats, error) {
	value, err := s.cache.GetOrLoad("team_stats", func() (any, error) {
		return s.source.TeamStats(ctx)
	})
	if err != nil {
		return nil, err
	}
	return value.(map[string]models.TeamStats), nil
}

// PredictGame builds the prediction for one scheduled game. Team strengths
// are recomputed from the cached stats snapshot on every call; the finished
// prediction is cached under its own key.
func (s *DataService) PredictGame(ctx context.Context, game models.Game) (models.Prediction, error) {
	key := "prediction_" + game.GameID
	value, err := s.cache.GetOrLoad(key, func() (any, error) {
		stats, err := s.TeamStats(ctx)
		if err != nil {
			return nil, err
		}
		return s.predict(game, stats)
	})
	if err != nil {
		return models.Prediction{}, err
	}
	return value.(models.Prediction), nil
}

// PredictWeek predicts every game of a week.
func (s *DataService) PredictWeek(ctx context.Context, week, season int) ([]models.Prediction, error) {
	games, err := s.GamesForWeek(ctx, week, season, "reg")
	if err != nil {
		return nil, err
	}

	predictions := make([]models.Prediction, 0, len(games))
	for _, game := range games {
		prediction, err := s.PredictGame(ctx, game)
		if err != nil {
			return nil, err
		}
		predictions = append(predictions, prediction)
	}
	return predictions, nil
}

// FindGame locates a game by ID inside its week's schedule.
func (s *DataService) FindGame(ctx context.Context, gameID string, week, season int) (models.Game, error) {
	games, err := s.GamesForWeek(ctx, week, season, "reg")
	if err != nil {
		return models.Game{}, err
	}
	for _, game := range games {
		if game.GameID == gameID {
			return game, nil
		}
	}
	return models.Game{}, &InvalidInputError{Field: "game_id", Reason: fmt.Sprintf("game %s not scheduled in week %d", gameID, week)}
}

func (s *DataService) predict(game models.Game, stats map[string]models.TeamStats) (models.Prediction, error) {
	homeStats, ok := stats[game.HomeAbbreviation]
	if !ok {
		return models.Prediction{}, &InvalidInputError{Field: "home_team", Reason: fmt.Sprintf("no stats for %s", game.HomeAbbreviation)}
	}
	awayStats, ok := stats[game.AwayAbbreviation]
	if !ok {
		return models.Prediction{}, &InvalidInputError{Field: "away_team", Reason: fmt.Sprintf("no stats for %s", game.AwayAbbreviation)}
	}

	homeStrength, err := ComputeStrength(homeStats)
	if err != nil {
		return models.Prediction{}, err
	}
	awayStrength, err := ComputeStrength(awayStats)
	if err != nil {
		return models.Prediction{}, err
	}

	gameCtx := models.GameContext{
		GameID:       game.GameID,
		HomeTeamID:   game.HomeAbbreviation,
		AwayTeamID:   game.AwayAbbreviation,
		IsDivisional: sameDivision(game.HomeAbbreviation, game.AwayAbbreviation),
		Week:         game.Week,
		Season:       game.Season,
	}
	return s.predictor.Predict(homeStrength, awayStrength, gameCtx)
}
