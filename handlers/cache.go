package handlers

import (
	"net/http"
	"sort"
	"time"

	"nfl-prediction-api/services"

	"github.com/gin-gonic/gin"
)

type CacheHandler struct {
	cache *services.CacheService
}

func NewCacheHandler(cache *services.CacheService) *CacheHandler {
	return &CacheHandler{cache: cache}
}

func (h *CacheHandler) GetInfo(c *gin.Context) {
	info := h.cache.Info()

	keys := make([]string, 0, len(info.TTLRemaining))
	ttlSeconds := make(map[string]float64, len(info.TTLRemaining))
	for key, ttl := range info.TTLRemaining {
		keys = append(keys, key)
		ttlSeconds[key] = ttl.Seconds()
	}
	sort.Strings(keys)

	c.JSON(http.StatusOK, gin.H{
		"total_items":           info.TotalItems,
		"cached_keys":           keys,
		"ttl_remaining_seconds": ttlSeconds,
		"next_refresh":          info.NextRefresh.Format(time.RFC3339),
	})
}

func (h *CacheHandler) Clear(c *gin.Context) {
	h.cache.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "cache cleared successfully"})
}
