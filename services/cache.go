package services

import (
	"log"
	"sync"
	"time"

	"nfl-prediction-api/models"

	"golang.org/x/sync/singleflight"
)

// The NFL publishes its updated schedule and stats after the Monday night
// game, so cached data goes stale at Tuesday 00:00 rather than on a sliding
// window.
const (
	refreshWeekday = time.Tuesday
	refreshHour    = 0
)

// WeeklyTTLPolicy computes the next calendar refresh boundary from "now".
type WeeklyTTLPolicy struct {
	Weekday time.Weekday
	Hour    int
}

// NewWeeklyTTLPolicy returns the league-cadence policy (Tuesday 00:00).
func NewWeeklyTTLPolicy() WeeklyTTLPolicy {
	return WeeklyTTLPolicy{Weekday: refreshWeekday, Hour: refreshHour}
}

// NextBoundary returns the first anchor instant strictly after now. When now
// is exactly the anchor, the boundary is a full week out, so an entry is
// never created already expired. Resulting TTLs vary between one and seven
// days depending on the day of the week.
func (p WeeklyTTLPolicy) NextBoundary(now time.Time) time.Time {
	daysAhead := (int(p.Weekday) - int(now.Weekday()) + 7) % 7
	boundary := time.Date(now.Year(), now.Month(), now.Day(), p.Hour, 0, 0, 0, now.Location()).
		AddDate(0, 0, daysAhead)
	if !boundary.After(now) {
		boundary = boundary.AddDate(0, 0, 7)
	}
	return boundary
}

type cacheEntry struct {
	value     any
	createdAt time.Time
	expiresAt time.Time
}

// CacheService is an in-memory key/value store whose entries expire at the
// weekly refresh boundary. Entries are replaced, never mutated; expired
// entries are dropped lazily on read and by the optional background sweep.
// Each instance is explicitly owned by its caller.
type CacheService struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	policy  WeeklyTTLPolicy
	now     func() time.Time
	group   singleflight.Group
}

// NewCacheService builds a cache around the given TTL policy. The clock is
// injectable for deterministic tests; pass nil for time.Now.
func NewCacheService(policy WeeklyTTLPolicy, now func() time.Time) *CacheService {
	if now == nil {
		now = time.Now
	}
	return &CacheService{
		entries: make(map[string]cacheEntry),
		policy:  policy,
		now:     now,
	}
}

// Get returns the cached value for key, or ErrCacheMiss if the key is absent
// or its entry has passed the weekly boundary.
func (s *CacheService) Get(key string) (any, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		cacheMisses.Inc()
		return nil, ErrCacheMiss
	}
	if !s.now().Before(entry.expiresAt) {
		s.mu.Lock()
		// Re-check under the write lock; another writer may have refreshed it.
		if current, ok := s.entries[key]; ok && current.expiresAt.Equal(entry.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		cacheMisses.Inc()
		return nil, ErrCacheMiss
	}

	cacheHits.Inc()
	return entry.value, nil
}

// Set stores value under key with an expiry at the next weekly boundary.
// Last writer for a key wins.
func (s *CacheService) Set(key string, value any) {
	now := s.now()
	entry := cacheEntry{
		value:     value,
		createdAt: now,
		expiresAt: s.policy.NextBoundary(now),
	}

	s.mu.Lock()
	s.entries[key] = entry
	s.mu.Unlock()
}

// GetOrLoad returns the cached value for key, invoking load on a miss and
// caching the result. Concurrent misses on the same key share one load.
func (s *CacheService) GetOrLoad(key string, load func() (any, error)) (any, error) {
	if value, err := s.Get(key); err == nil {
		return value, nil
	}

	value, err, _ := s.group.Do(key, func() (any, error) {
		// A concurrent flight may have populated the key already.
		if value, err := s.Get(key); err == nil {
			return value, nil
		}
		value, err := load()
		if err != nil {
			return nil, err
		}
		s.Set(key, value)
		return value, nil
	})
	return value, err
}

// Clear empties the cache.
func (s *CacheService) Clear() {
	s.mu.Lock()
	s.entries = make(map[string]cacheEntry)
	s.mu.Unlock()
	log.Printf("cache cleared")
}

// Info reports the entry count, per-key remaining TTL, and the next refresh
// boundary. Expired-but-unswept entries are excluded.
func (s *CacheService) Info() models.CacheInfo {
	now := s.now()

	s.mu.RLock()
	remaining := make(map[string]time.Duration, len(s.entries))
	for key, entry := range s.entries {
		if ttl := entry.expiresAt.Sub(now); ttl > 0 {
			remaining[key] = ttl
		}
	}
	s.mu.RUnlock()

	return models.CacheInfo{
		TotalItems:   len(remaining),
		NextRefresh:  s.policy.NextBoundary(now),
		TTLRemaining: remaining,
	}
}

// Sweep removes expired entries and returns how many were dropped. Lazy
// expiry on Get is sufficient for correctness; this keeps memory tidy.
func (s *CacheService) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	swept := 0
	for key, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, key)
			swept++
		}
	}
	return swept
}
