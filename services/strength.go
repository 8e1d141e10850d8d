package services

import (
	"nfl-prediction-api/models"
)

// leagueAveragePoints is the baseline both components are normalized
// against; a team scoring (or allowing) exactly the league average lands at
// 0.5 on either axis.
const leagueAveragePoints = 22.5

// Composite weights. Must sum to 1.
const (
	offenseWeight     = 0.4
	defenseWeight     = 0.4
	consistencyWeight = 0.2
)

// ComputeStrength reduces a weekly stats snapshot to a composite strength
// summary. Pure and deterministic: identical stats always yield an identical
// summary, which the prediction engine relies on for reproducibility.
func ComputeStrength(stats models.TeamStats) (models.TeamStrength, error) {
	if stats.TeamID == "" {
		return models.TeamStrength{}, &InvalidInputError{Field: "team_id", Reason: "must not be empty"}
	}
	if stats.PointsScoredPerGame < 0 {
		return models.TeamStrength{}, &InvalidInputError{Field: "points_scored_per_game", Reason: "must not be negative"}
	}
	if stats.PointsAllowedPerGame < 0 {
		return models.TeamStrength{}, &InvalidInputError{Field: "points_allowed_per_game", Reason: "must not be negative"}
	}
	if stats.Consistency < 0 || stats.Consistency > 1 {
		return models.TeamStrength{}, &InvalidInputError{Field: "consistency", Reason: "must be within [0, 1]"}
	}

	offense := clamp01(stats.PointsScoredPerGame / (2 * leagueAveragePoints))
	defense := clamp01(1 - stats.PointsAllowedPerGame/(2*leagueAveragePoints))

	composite := offenseWeight*offense + defenseWeight*defense + consistencyWeight*stats.Consistency

	return models.TeamStrength{
		TeamID:           stats.TeamID,
		CompositeScore:   clamp01(composite),
		OffenseComponent: offense,
		DefenseComponent: defense,
	}, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
