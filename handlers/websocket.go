package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"nfl-prediction-api/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// PredictionsWebSocket streams the requested week's predictions on a poll
// interval. Between weekly refresh boundaries the pushed slate is stable;
// after a boundary passes the next tick carries recomputed predictions.
func PredictionsWebSocket(data *services.DataService, authService *services.AuthService, pollInterval time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token query parameter"})
			return
		}
		if _, err := authService.ValidateToken(tokenStr); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		week := 1
		if raw := c.Query("week"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > services.RegularSeasonWeeks {
				c.JSON(http.StatusBadRequest, gin.H{"error": "week must be between 1 and 18"})
				return
			}
			week = parsed
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("websocket upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()

		// Read pump: detect client disconnect
		go func() {
			defer cancel()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		push := func() bool {
			predictions, err := data.PredictWeek(ctx, week, services.DefaultSeason)
			if err != nil {
				log.Printf("ws prediction refresh failed: %v", err)
				return true
			}
			err = conn.WriteJSON(gin.H{
				"type": "prediction_update",
				"week": week,
				"data": predictions,
			})
			if err != nil {
				log.Printf("ws write error: %v", err)
				return false
			}
			return true
		}

		if !push() {
			return
		}

		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !push() {
					return
				}
			}
		}
	}
}
