package handlers

import (
	"net/http"
	"strconv"

	"nfl-prediction-api/models"
	"nfl-prediction-api/services"

	"github.com/gin-gonic/gin"
)

type PredictionsHandler struct {
	data                *services.DataService
	confidenceThreshold float64
}

func NewPredictionsHandler(data *services.DataService, confidenceThreshold float64) *PredictionsHandler {
	return &PredictionsHandler{data: data, confidenceThreshold: confidenceThreshold}
}

// predictionResponse decorates the engine output with the caller-side
// confidence policy; the engine itself never enforces a threshold.
type predictionResponse struct {
	models.Prediction
	MeetsConfidenceThreshold bool `json:"meets_confidence_threshold"`
}

func (h *PredictionsHandler) decorate(pred models.Prediction) predictionResponse {
	return predictionResponse{
		Prediction:               pred,
		MeetsConfidenceThreshold: pred.ConfidenceScore >= h.confidenceThreshold,
	}
}

func (h *PredictionsHandler) GetWeekPredictions(c *gin.Context) {
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil || week < 1 || week > services.RegularSeasonWeeks {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week must be between 1 and 18"})
		return
	}
	season := parseIntQuery(c, "season", services.DefaultSeason)

	predictions, err := h.data.PredictWeek(c.Request.Context(), week, season)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]predictionResponse, 0, len(predictions))
	for _, pred := range predictions {
		out = append(out, h.decorate(pred))
	}
	c.JSON(http.StatusOK, gin.H{
		"week":        week,
		"season":      season,
		"predictions": out,
	})
}

func (h *PredictionsHandler) GetGamePrediction(c *gin.Context) {
	gameID := c.Param("game_id")
	if _, _, _, err := services.ParseGameID(gameID); err != nil {
		respondError(c, err)
		return
	}

	week := parseIntQuery(c, "week", 1)
	season := parseIntQuery(c, "season", services.DefaultSeason)

	game, err := h.data.FindGame(c.Request.Context(), gameID, week, season)
	if err != nil {
		respondError(c, err)
		return
	}

	prediction, err := h.data.PredictGame(c.Request.Context(), game)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.decorate(prediction))
}
