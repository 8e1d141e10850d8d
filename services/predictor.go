package services

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"strings"

	"nfl-prediction-api/models"

	"gonum.org/v1/gonum/stat/distuv"
)

// Model constants, frozen: changing any of them changes every downstream
// prediction, so regression fixtures in predictor_test.go pin them.
const (
	// homeFieldAdvantage is added to the home team's expected score only.
	homeFieldAdvantage = 2.5

	// matchupSwing converts the offense-vs-defense component gap into
	// points around the league average.
	matchupSwing = 10.0

	// scoreNoiseStdDev is the sigma of the Gaussian game-to-game variance
	// added to each expected score.
	scoreNoiseStdDev = 2.0

	// logisticScale makes a 7-point favorite roughly a 72% home winner.
	logisticScale = 0.135

	maxPredictedScore = 50.0

	probabilityTolerance = 1e-9
)

// Confidence shaping.
const (
	baseConfidence           = 0.5
	confidenceGapWeight      = 1.5
	divisionalConfidenceDamp = 0.85
)

// Key-factor rule thresholds.
const (
	strongOffenseThreshold   = 0.65
	weakDefenseThreshold     = 0.45
	significantStrengthGap   = 0.15
)

// Predictor turns two strength summaries and a game context into a full
// Prediction. The Gaussian score noise is drawn from a PCG stream keyed by
// the configured seed and the game identity, so an identical matchup always
// produces an identical Prediction.
type Predictor struct {
	seed uint64
}

func NewPredictor(seed uint64) *Predictor {
	return &Predictor{seed: seed}
}

// Predict computes the correlated prediction bundle for one game.
func (p *Predictor) Predict(home, away models.TeamStrength, ctx models.GameContext) (models.Prediction, error) {
	if err := validateMatchup(home, away, ctx); err != nil {
		predictionsFailed.Inc()
		return models.Prediction{}, err
	}

	expectedHome := expectedPoints(home.OffenseComponent, away.DefenseComponent) + homeFieldAdvantage
	expectedAway := expectedPoints(away.OffenseComponent, home.DefenseComponent)

	// Win probability uses the pre-noise expected margin; noise models
	// single-game variance, not a change in the true matchup.
	preNoiseDiff := expectedHome - expectedAway
	winProbHome := 1 / (1 + math.Exp(-logisticScale*preNoiseDiff))
	winProbAway := 1 - winProbHome

	noise := p.noiseFor(ctx)
	homeScore := clampScore(round1(expectedHome + noise.Rand()))
	awayScore := clampScore(round1(expectedAway + noise.Rand()))

	spread := round1(homeScore - awayScore)
	total := round1(homeScore + awayScore)

	confidence := clamp01(baseConfidence + confidenceGapWeight*math.Abs(home.CompositeScore-away.CompositeScore))
	if ctx.IsDivisional {
		confidence *= divisionalConfidenceDamp
	}

	prediction := models.Prediction{
		GameID:             ctx.GameID,
		PredictedHomeScore: homeScore,
		PredictedAwayScore: awayScore,
		Spread:             spread,
		Total:              total,
		WinProbabilityHome: winProbHome,
		WinProbabilityAway: winProbAway,
		GameType:           ClassifyGame(spread),
		ConfidenceScore:    confidence,
		KeyFactors:         keyFactors(home, away, ctx),
	}
	prediction.Reasoning = reasoning(prediction, ctx)

	if err := checkInvariants(prediction); err != nil {
		predictionsFailed.Inc()
		return models.Prediction{}, err
	}

	predictionsGenerated.Inc()
	return prediction, nil
}

func validateMatchup(home, away models.TeamStrength, ctx models.GameContext) error {
	if ctx.HomeTeamID == "" || ctx.AwayTeamID == "" {
		return &InvalidInputError{Field: "game_context", Reason: "home and away team ids must be set"}
	}
	if ctx.HomeTeamID == ctx.AwayTeamID {
		return &InvalidInputError{Field: "game_context", Reason: "home and away team must differ"}
	}
	for _, s := range []struct {
		label string
		v     float64
	}{
		{"home composite_score", home.CompositeScore},
		{"home offense_component", home.OffenseComponent},
		{"home defense_component", home.DefenseComponent},
		{"away composite_score", away.CompositeScore},
		{"away offense_component", away.OffenseComponent},
		{"away defense_component", away.DefenseComponent},
	} {
		if s.v < 0 || s.v > 1 {
			return &InvalidInputError{Field: s.label, Reason: "must be within [0, 1]"}
		}
	}
	return nil
}

func expectedPoints(offense, opponentDefense float64) float64 {
	return leagueAveragePoints + matchupSwing*(offense-opponentDefense)
}

// noiseFor builds the per-game noise distribution. Seeding the PCG stream
// with the game identity keeps repeated calls for the same matchup
// reproducible while still varying across games.
func (p *Predictor) noiseFor(ctx models.GameContext) distuv.Normal {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%s|%d|%d", ctx.GameID, ctx.HomeTeamID, ctx.AwayTeamID, ctx.Week, ctx.Season)
	return distuv.Normal{
		Mu:    0,
		Sigma: scoreNoiseStdDev,
		Src:   rand.NewPCG(p.seed, h.Sum64()),
	}
}

// keyFactors evaluates each rule independently, in a fixed order. The order
// is the rule-evaluation order, not an importance ranking.
func keyFactors(home, away models.TeamStrength, ctx models.GameContext) []string {
	factors := []string{}
	if home.OffenseComponent >= strongOffenseThreshold && away.DefenseComponent <= weakDefenseThreshold {
		factors = append(factors, fmt.Sprintf("%s strong offense against %s weak defense", ctx.HomeTeamID, ctx.AwayTeamID))
	}
	if away.OffenseComponent >= strongOffenseThreshold && home.DefenseComponent <= weakDefenseThreshold {
		factors = append(factors, fmt.Sprintf("%s strong offense against %s weak defense", ctx.AwayTeamID, ctx.HomeTeamID))
	}
	if gap := home.CompositeScore - away.CompositeScore; math.Abs(gap) >= significantStrengthGap {
		favorite := ctx.HomeTeamID
		if gap < 0 {
			favorite = ctx.AwayTeamID
		}
		factors = append(factors, fmt.Sprintf("significant overall strength edge for %s", favorite))
	}
	if ctx.IsDivisional {
		factors = append(factors, "divisional rivalry adds unpredictability")
	}
	return factors
}

// reasoning assembles a deterministic explanation from the already-computed
// prediction fields; there is no randomness beyond what the fields carry.
func reasoning(pred models.Prediction, ctx models.GameContext) string {
	winner, loser := ctx.HomeTeamID, ctx.AwayTeamID
	winnerScore, loserScore := pred.PredictedHomeScore, pred.PredictedAwayScore
	winProb := pred.WinProbabilityHome
	if pred.Spread < 0 {
		winner, loser = ctx.AwayTeamID, ctx.HomeTeamID
		winnerScore, loserScore = pred.PredictedAwayScore, pred.PredictedHomeScore
		winProb = pred.WinProbabilityAway
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s projected to beat %s %.0f-%.0f (%.0f%% win probability)", winner, loser, winnerScore, loserScore, winProb*100)
	switch pred.GameType {
	case GameTypeClose:
		b.WriteString("; expect a one-score game")
	case GameTypeCompetitive:
		b.WriteString("; a competitive matchup")
	case GameTypeModerateBlowout:
		b.WriteString("; a comfortable margin is likely")
	case GameTypeBlowout:
		b.WriteString("; a blowout is likely")
	}
	if ctx.IsDivisional {
		b.WriteString("; divisional games tend to run closer than the numbers suggest")
	}
	b.WriteString(".")
	return b.String()
}

func checkInvariants(pred models.Prediction) error {
	if sum := pred.WinProbabilityHome + pred.WinProbabilityAway; math.Abs(sum-1) > probabilityTolerance {
		return &OutOfRangeError{Check: "win probability sum", Value: sum}
	}
	for _, score := range []float64{pred.PredictedHomeScore, pred.PredictedAwayScore} {
		if score < 0 || score > maxPredictedScore {
			return &OutOfRangeError{Check: "predicted score", Value: score}
		}
	}
	return nil
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > maxPredictedScore {
		return maxPredictedScore
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
