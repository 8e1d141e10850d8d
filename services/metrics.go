package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nflapi_cache_hits_total",
		Help: "Total number of cache hits.",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nflapi_cache_misses_total",
		Help: "Total number of cache misses, including lazy expirations.",
	})
	predictionsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nflapi_predictions_generated_total",
		Help: "Total number of predictions computed.",
	})
	predictionsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nflapi_predictions_failed_total",
		Help: "Total number of prediction failures.",
	})
	upstreamRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nflapi_upstream_requests_total",
		Help: "Total number of requests sent to the Tank01 API.",
	})
	upstreamFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nflapi_upstream_failures_total",
		Help: "Total number of failed Tank01 API requests.",
	})
)
