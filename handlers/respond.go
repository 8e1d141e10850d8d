package handlers

import (
	"errors"
	"log"
	"net/http"

	"nfl-prediction-api/services"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses. Cache
// misses never surface here; they are handled as normal control flow.
func respondError(c *gin.Context, err error) {
	var invalid *services.InvalidInputError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
		return
	}

	var outOfRange *services.OutOfRangeError
	if errors.As(err, &outOfRange) {
		log.Printf("invariant violation: %v", outOfRange)
		c.JSON(http.StatusInternalServerError, gin.H{"error": outOfRange.Error()})
		return
	}

	log.Printf("upstream failure: %v", err)
	c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch data from upstream"})
}
