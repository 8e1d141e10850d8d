package models

import "time"

// CacheInfo is the snapshot returned by the cache admin endpoint.
type CacheInfo struct {
	TotalItems   int                      `json:"total_items"`
	NextRefresh  time.Time                `json:"next_refresh"`
	TTLRemaining map[string]time.Duration `json:"ttl_remaining"`
}
