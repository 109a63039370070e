// Package metrics provides Prometheus metrics collection for the translate service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// TranslationsTotal tracks translation requests by outcome.
	TranslationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "translations_total",
			Help: "Total number of translation requests",
		},
		[]string{"status", "source"},
	)

	// TranslationDuration tracks end-to-end translation latency.
	TranslationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "translation_duration_seconds",
			Help:    "Translation request duration in seconds",
			Buckets: []float64{0.005, 0.025, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
	)

	// SpeechTotal tracks speech synthesis requests by provider and outcome.
	SpeechTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "speech_synthesis_total",
			Help: "Total number of speech synthesis requests",
		},
		[]string{"provider", "status"},
	)

	// SpeechFallbacksTotal tracks how often the speech chain fell back.
	SpeechFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "speech_fallbacks_total",
			Help: "Total number of speech provider fallbacks",
		},
		[]string{"from", "to"},
	)

	// CacheOperationsTotal tracks cache operations by cache name and result.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"cache", "operation", "result"},
	)

	// InflightJoinsTotal tracks callers that joined an already outstanding call.
	InflightJoinsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inflight_joins_total",
			Help: "Total number of requests deduplicated against an in-flight call",
		},
	)

	// ProviderRetriesTotal tracks provider call retries by provider.
	ProviderRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_retries_total",
			Help: "Total number of provider call retries",
		},
		[]string{"provider"},
	)

	// BatchQueueDepth tracks the current depth of the request batching queue.
	BatchQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "batch_queue_depth",
			Help: "Current number of tasks waiting in the batching queue",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordTranslation records metrics for a translation request.
// source identifies where the result came from: durable_cache, memory_cache,
// provider, or error.
func RecordTranslation(duration time.Duration, status, source string) {
	TranslationDuration.Observe(duration.Seconds())
	TranslationsTotal.WithLabelValues(status, source).Inc()
}

// RecordSpeech records metrics for a speech synthesis attempt.
func RecordSpeech(provider, status string) {
	SpeechTotal.WithLabelValues(provider, status).Inc()
}

// RecordFallback records a speech chain fallback from one provider to another.
func RecordFallback(from, to string) {
	SpeechFallbacksTotal.WithLabelValues(from, to).Inc()
}

// RecordCacheOperation records a cache operation result.
func RecordCacheOperation(cacheName, operation, result string) {
	CacheOperationsTotal.WithLabelValues(cacheName, operation, result).Inc()
}

// RecordRetry records a retried provider call.
func RecordRetry(provider string) {
	ProviderRetriesTotal.WithLabelValues(provider).Inc()
}
