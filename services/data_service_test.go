package services

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"nfl-prediction-api/models"
)

// countingSource wraps the synthetic source and counts upstream fetches.
type countingSource struct {
	*SyntheticSource
	scheduleFetches int
	statsFetches    int
}

func (s *countingSource) GamesForWeek(ctx context.Context, week, season int, seasonType string) ([]models.Game, error) {
	s.scheduleFetches++
	return s.SyntheticSource.GamesForWeek(ctx, week, season, seasonType)
}

func (s *countingSource) TeamStats(ctx context.Context) (map[string]models.TeamStats, error) {
	s.statsFetches++
	return s.SyntheticSource.TeamStats(ctx)
}

func newTestDataService(clock *fakeClock) (*DataService, *countingSource) {
	source := &countingSource{SyntheticSource: NewSyntheticSource(1)}
	var now func() time.Time
	if clock != nil {
		now = clock.Now
	}
	cache := NewCacheService(NewWeeklyTTLPolicy(), now)
	return NewDataService(source, cache, NewPredictor(1)), source
}

func TestGamesForWeekCaching(t *testing.T) {
	svc, source := newTestDataService(nil)
	ctx := context.Background()

	first, err := svc.GamesForWeek(ctx, 1, DefaultSeason, "reg")
	if err != nil {
		t.Fatalf("GamesForWeek() error: %v", err)
	}
	second, err := svc.GamesForWeek(ctx, 1, DefaultSeason, "reg")
	if err != nil {
		t.Fatalf("GamesForWeek() error: %v", err)
	}

	if source.scheduleFetches != 1 {
		t.Errorf("schedule fetched %d times, want 1 (second call served from cache)", source.scheduleFetches)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("cached schedule differs from fetched schedule")
	}
}

func TestGamesForWeekRefetchAfterBoundary(t *testing.T) {
	clock := newFakeClock(time.Date(2025, 9, 4, 12, 0, 0, 0, time.UTC))
	svc, source := newTestDataService(clock)
	ctx := context.Background()

	if _, err := svc.GamesForWeek(ctx, 1, DefaultSeason, "reg"); err != nil {
		t.Fatalf("GamesForWeek() error: %v", err)
	}

	clock.Advance(8 * 24 * time.Hour)
	if _, err := svc.GamesForWeek(ctx, 1, DefaultSeason, "reg"); err != nil {
		t.Fatalf("GamesForWeek() error: %v", err)
	}

	if source.scheduleFetches != 2 {
		t.Errorf("schedule fetched %d times, want 2 after the weekly boundary passed", source.scheduleFetches)
	}
}

func TestGamesForWeekValidation(t *testing.T) {
	svc, source := newTestDataService(nil)

	_, err := svc.GamesForWeek(context.Background(), 25, DefaultSeason, "reg")
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Errorf("GamesForWeek(25) error = %v, want *InvalidInputError", err)
	}
	if source.scheduleFetches != 0 {
		t.Error("validation failure should not reach the data source")
	}
}

func TestAvailableWeeks(t *testing.T) {
	svc, _ := newTestDataService(nil)

	weeks := svc.AvailableWeeks(DefaultSeason)
	if len(weeks) != RegularSeasonWeeks {
		t.Fatalf("len(weeks) = %d, want %d", len(weeks), RegularSeasonWeeks)
	}
	if weeks[0] != 1 || weeks[len(weeks)-1] != RegularSeasonWeeks {
		t.Errorf("weeks = %v, want 1..%d", weeks, RegularSeasonWeeks)
	}
}

func TestPredictWeek(t *testing.T) {
	svc, source := newTestDataService(nil)
	ctx := context.Background()

	predictions, err := svc.PredictWeek(ctx, 1, DefaultSeason)
	if err != nil {
		t.Fatalf("PredictWeek() error: %v", err)
	}
	if len(predictions) != 16 {
		t.Fatalf("len(predictions) = %d, want 16", len(predictions))
	}

	for _, pred := range predictions {
		if pred.GameID == "" {
			t.Error("prediction missing game id")
		}
		if sum := pred.WinProbabilityHome + pred.WinProbabilityAway; sum < 1-1e-9 || sum > 1+1e-9 {
			t.Errorf("game %s probability sum = %v", pred.GameID, sum)
		}
	}

	// Stats snapshot fetched once for the whole slate.
	if source.statsFetches != 1 {
		t.Errorf("stats fetched %d times, want 1", source.statsFetches)
	}

	// A second slate is served entirely from the prediction cache.
	again, err := svc.PredictWeek(ctx, 1, DefaultSeason)
	if err != nil {
		t.Fatalf("PredictWeek() error: %v", err)
	}
	if !reflect.DeepEqual(predictions, again) {
		t.Error("cached predictions differ from first computation")
	}
}

func TestPredictGameDivisionalFlag(t *testing.T) {
	svc, _ := newTestDataService(nil)
	ctx := context.Background()

	game := models.Game{
		GameID:           "20250904_DAL@PHI",
		HomeAbbreviation: "PHI",
		AwayAbbreviation: "DAL",
		Week:             1,
		Season:           DefaultSeason,
	}
	pred, err := svc.PredictGame(ctx, game)
	if err != nil {
		t.Fatalf("PredictGame() error: %v", err)
	}

	// DAL and PHI share the NFC East; the divisional rule must fire.
	found := false
	for _, factor := range pred.KeyFactors {
		if factor == "divisional rivalry adds unpredictability" {
			found = true
		}
	}
	if !found {
		t.Errorf("KeyFactors = %v, want divisional rivalry factor for an NFC East matchup", pred.KeyFactors)
	}
}

func TestPredictGameUnknownTeam(t *testing.T) {
	svc, _ := newTestDataService(nil)

	game := models.Game{
		GameID:           "20250904_XX@PHI",
		HomeAbbreviation: "PHI",
		AwayAbbreviation: "XX",
	}
	_, err := svc.PredictGame(context.Background(), game)
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Errorf("PredictGame() error = %v, want *InvalidInputError", err)
	}
}

func TestFindGame(t *testing.T) {
	svc, _ := newTestDataService(nil)
	ctx := context.Background()

	games, err := svc.GamesForWeek(ctx, 1, DefaultSeason, "reg")
	if err != nil {
		t.Fatalf("GamesForWeek() error: %v", err)
	}

	found, err := svc.FindGame(ctx, games[0].GameID, 1, DefaultSeason)
	if err != nil {
		t.Fatalf("FindGame() error: %v", err)
	}
	if !reflect.DeepEqual(found, games[0]) {
		t.Errorf("FindGame() = %+v, want %+v", found, games[0])
	}

	if _, err := svc.FindGame(ctx, "20250904_NO@SUCH", 1, DefaultSeason); err == nil {
		t.Error("expected error for unscheduled game id")
	}
}
