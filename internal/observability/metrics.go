// Package observability registers the Prometheus metrics served on /metrics.
package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration observes request latency per route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "workout_planner",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method, route and status code.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	// WorkoutsImported counts workouts stored by CSV imports.
	WorkoutsImported = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "workout_planner",
		Name:      "workouts_imported_total",
		Help:      "Workouts created by CSV imports.",
	})

	// WorkoutsSkipped counts CSV rows skipped as duplicates or invalid.
	WorkoutsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workout_planner",
		Name:      "workouts_skipped_total",
		Help:      "CSV rows skipped during import.",
	}, []string{"reason"})

	// EventsExported counts calendar events pushed over CalDAV.
	EventsExported = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "workout_planner",
		Name:      "calendar_events_exported_total",
		Help:      "All-day events uploaded to the CalDAV calendar.",
	})

	// WeatherCacheHits and WeatherCacheMisses track forecast cache efficiency.
	WeatherCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "workout_planner",
		Name:      "weather_cache_hits_total",
		Help:      "Forecast lookups served from the in-memory cache.",
	})
	WeatherCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "workout_planner",
		Name:      "weather_cache_misses_total",
		Help:      "Forecast lookups that required an upstream request.",
	})
)

// GinMiddleware records request duration for every handled route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
