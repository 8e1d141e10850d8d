package handlers

import (
	"net/http"
	"strconv"

	"nfl-prediction-api/services"

	"github.com/gin-gonic/gin"
)

type GamesHandler struct {
	data *services.DataService
}

func NewGamesHandler(data *services.DataService) *GamesHandler {
	return &GamesHandler{data: data}
}

func (h *GamesHandler) GetGamesForWeek(c *gin.Context) {
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil || week < 1 || week > services.RegularSeasonWeeks {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week must be between 1 and 18"})
		return
	}

	season := parseIntQuery(c, "season", services.DefaultSeason)
	seasonType := c.DefaultQuery("season_type", "reg")

	games, err := h.data.GamesForWeek(c.Request.Context(), week, season, seasonType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

func (h *GamesHandler) GetCurrentWeekGames(c *gin.Context) {
	games, err := h.data.CurrentWeekGames(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

func (h *GamesHandler) GetAvailableWeeks(c *gin.Context) {
	season := parseIntQuery(c, "season", services.DefaultSeason)

	c.JSON(http.StatusOK, gin.H{
		"season":          season,
		"available_weeks": h.data.AvailableWeeks(season),
		"note":            "NFL regular season typically runs weeks 1-18",
	})
}

func parseIntQuery(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			return parsed
		}
	}
	return fallback
}
