package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"nfl-prediction-api/config"
	"nfl-prediction-api/handlers"
	"nfl-prediction-api/middleware"
	"nfl-prediction-api/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const apiVersion = "1.0.0"

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Data source: live when an upstream key is configured, synthetic
	// otherwise. The choice is made once, here.
	var source services.DataSource
	if cfg.UsingSyntheticData() {
		log.Printf("TANK01_API_KEY not set, serving synthetic data")
		source = services.NewSyntheticSource(cfg.Model.NoiseSeed)
	} else {
		source = services.NewTank01Source(cfg.Upstream)
	}

	cache := services.NewCacheService(services.NewWeeklyTTLPolicy(), nil)
	predictor := services.NewPredictor(cfg.Model.NoiseSeed)
	data := services.NewDataService(source, cache, predictor)

	authService, err := services.NewAuthService(cfg.JWT, cfg.Admin)
	if err != nil {
		log.Fatalf("Failed to init auth service: %v", err)
	}

	// Hourly sweep keeps expired entries from lingering between reads.
	go func() {
		for range time.Tick(time.Hour) {
			if swept := cache.Sweep(); swept > 0 {
				log.Printf("swept %d expired cache entries", swept)
			}
		}
	}()

	// Initialize Gin router
	router := gin.Default()
	router.Use(middleware.SetupCORS(cfg.CORS))
	router.Use(middleware.RequestID())

	gamesHandler := handlers.NewGamesHandler(data)
	oddsHandler := handlers.NewOddsHandler(data)
	predictionsHandler := handlers.NewPredictionsHandler(data, cfg.Model.ConfidenceThreshold)
	cacheHandler := handlers.NewCacheHandler(cache)
	authHandler := handlers.NewAuthHandler(authService)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "NFL Prediction API",
			"version": apiVersion,
			"endpoints": gin.H{
				"get_games_for_week":      "/games/week/{week}",
				"get_current_week_games":  "/games/current-week",
				"get_available_weeks":     "/games/available-weeks",
				"get_betting_odds":        "/odds/{game_id}",
				"get_week_predictions":    "/predictions/week/{week}",
				"get_game_prediction":     "/predictions/game/{game_id}",
				"cache_info":              "/cache/info",
				"clear_cache":             "/cache/clear",
				"health":                  "/health",
				"metrics":                 "/metrics",
				"predictions_ws":          "/ws/predictions",
			},
			"config": gin.H{
				"tank01_api_configured": !cfg.UsingSyntheticData(),
				"using_synthetic_data":  cfg.UsingSyntheticData(),
			},
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"data_mode": data.Mode(),
		})
	})

	router.GET("/games/week/:week", gamesHandler.GetGamesForWeek)
	router.GET("/games/current-week", gamesHandler.GetCurrentWeekGames)
	router.GET("/games/available-weeks", gamesHandler.GetAvailableWeeks)

	router.GET("/odds/:game_id", oddsHandler.GetBettingOdds)

	router.GET("/predictions/week/:week", predictionsHandler.GetWeekPredictions)
	router.GET("/predictions/game/:game_id", predictionsHandler.GetGamePrediction)

	router.POST("/auth/token", authHandler.IssueToken)

	router.GET("/cache/info", cacheHandler.GetInfo)
	router.POST("/cache/clear", middleware.RequireAdmin(authService), cacheHandler.Clear)

	if cfg.Debug {
		router.GET("/debug/config", middleware.RequireAdmin(authService), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"tank01_api_key_set":         !cfg.UsingSyntheticData(),
				"tank01_base_url":            cfg.Upstream.BaseURL,
				"server_port":                cfg.Server.Port,
				"debug_mode":                 cfg.Debug,
				"model_confidence_threshold": cfg.Model.ConfidenceThreshold,
			})
		})
	}

	router.GET("/ws/predictions", handlers.PredictionsWebSocket(
		data, authService, time.Duration(cfg.WS.PollIntervalMS)*time.Millisecond,
	))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Starting server on %s (data mode: %s)", addr, data.Mode())
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
