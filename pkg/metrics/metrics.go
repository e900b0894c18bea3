package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type AppMetrics struct {
	registry         *prometheus.Registry
	requestDuration  *prometheus.HistogramVec
	requestTotal     *prometheus.CounterVec
	entityOperations *prometheus.CounterVec
	rateLimitHits    *prometheus.CounterVec
}

func NewAppMetrics() *AppMetrics {
	registry := prometheus.NewRegistry()

	metrics := &AppMetrics{
		registry: registry,
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		entityOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "entity_operations_total",
				Help: "Total number of entity operations",
			},
			[]string{"entity", "operation"},
		),
		rateLimitHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_limit_hits_total",
				Help: "Total number of requests rejected by the rate limiter",
			},
			[]string{"path"},
		),
	}

	registry.MustRegister(
		metrics.requestDuration,
		metrics.requestTotal,
		metrics.entityOperations,
		metrics.rateLimitHits,
	)

	return metrics
}

func (m *AppMetrics) RecordEntityOperation(entity, operation string) {
	m.entityOperations.WithLabelValues(entity, operation).Inc()
}

func (m *AppMetrics) RecordRateLimitHit(path string) {
	m.rateLimitHits.WithLabelValues(path).Inc()
}

// GinMiddleware observes every request by route template, not raw path, so
// cardinality stays bounded.
func (m *AppMetrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()

		if path == "" {
			path = "unmatched"
		}

		status := strconv.Itoa(c.Writer.Status())

		m.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())

		if c.Writer.Status() < 400 {
			if entity, operation, ok := entityOperation(c.Request.Method, path); ok {
				m.RecordEntityOperation(entity, operation)
			}
		}
	}
}

// entityOperation maps a successful mutating route template to counter
// labels, e.g. "PUT /api/to-do-items/:id/complete" → ("to-do-items", "complete").
func entityOperation(method, route string) (string, string, bool) {
	rest, found := strings.CutPrefix(route, "/api/")

	if !found {
		return "", "", false
	}

	entity, tail, _ := strings.Cut(rest, "/")

	switch method {
	case http.MethodPost:
		if tail == "login" {
			return entity, "login", true
		}

		return entity, "create", true
	case http.MethodPut:
		switch {
		case strings.HasSuffix(tail, "/complete"):
			return entity, "complete", true
		case strings.HasSuffix(tail, "/cancel"):
			return entity, "cancel", true
		}

		return entity, "update", true
	case http.MethodDelete:
		if tail == "delete-range" {
			return entity, "delete-range", true
		}

		return entity, "delete", true
	}

	return "", "", false
}

// Handler serves the scrape endpoint for this registry only.
func (m *AppMetrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})

	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
