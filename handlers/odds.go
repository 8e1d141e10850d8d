package handlers

import (
	"net/http"

	"nfl-prediction-api/services"

	"github.com/gin-gonic/gin"
)

type OddsHandler struct {
	data *services.DataService
}

func NewOddsHandler(data *services.DataService) *OddsHandler {
	return &OddsHandler{data: data}
}

func (h *OddsHandler) GetBettingOdds(c *gin.Context) {
	gameID := c.Param("game_id")
	if _, _, _, err := services.ParseGameID(gameID); err != nil {
		respondError(c, err)
		return
	}

	odds, err := h.data.BettingOdds(c.Request.Context(), gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"game_id": gameID,
		"odds":    odds,
	})
}
