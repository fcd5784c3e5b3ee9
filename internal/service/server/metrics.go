package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestTotal counts HTTP requests by method, route and status
	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filmstats_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	// RequestDuration is the latency of HTTP requests
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "filmstats_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	// FilmsLoaded is the number of films of the current dataset
	FilmsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filmstats_films_loaded",
			Help: "Number of films in the loaded dataset",
		},
	)
)

// SetFilmsLoaded updates the loaded films gauge
func SetFilmsLoaded(n int) {
	FilmsLoaded.Set(float64(n))
}

func metricsMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()

	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}
	RequestTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	RequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
}
