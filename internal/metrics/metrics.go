// Package metrics provides Prometheus metrics collection for the box calculator service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Calculation outcomes recorded by RecordBoxCalculation.
const (
	StatusSuccess         = "success"
	StatusNeedsReview     = "needs_review"
	StatusInvalidQuantity = "invalid_quantity"
	StatusError           = "error"
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

	// BoxCalculationsTotal counts order calculations by outcome.
	BoxCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "box_calculations_total",
			Help: "Total number of box order calculations",
		},
		[]string{"status"},
	)

	// BoxCalculationDuration tracks order calculation duration.
	BoxCalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "box_calculation_duration_seconds",
			Help:    "Box order calculation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	// ShippingEstimatesTotal counts shipping estimates by method.
	ShippingEstimatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipping_estimates_total",
			Help: "Total number of shipping cost estimates",
		},
		[]string{"method"},
	)

	// ProductsPreparedTotal counts prepared products by result (valid or needs_review).
	ProductsPreparedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "products_prepared_total",
			Help: "Total number of products prepared for storage",
		},
		[]string{"result"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)

	// AuditLogEntriesTotal counts audit entries by result (written, dropped, failed).
	AuditLogEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_log_entries_total",
			Help: "Total number of audit log entries by result",
		},
		[]string{"result"},
	)

	// CircuitBreakerState exposes 0 (closed), 1 (open) or 2 (half-open) per breaker.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 open, 2 half-open",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordBoxCalculation records metrics for an order calculation.
func RecordBoxCalculation(duration time.Duration, status string) {
	BoxCalculationDuration.Observe(duration.Seconds())
	BoxCalculationsTotal.WithLabelValues(status).Inc()
}

// RecordShippingEstimate counts an estimate for method.
func RecordShippingEstimate(method string) {
	ShippingEstimatesTotal.WithLabelValues(method).Inc()
}

// RecordProductPrepared counts a prepared product.
func RecordProductPrepared(valid bool) {
	result := "valid"
	if !valid {
		result = StatusNeedsReview
	}
	ProductsPreparedTotal.WithLabelValues(result).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// SetCircuitBreakerState publishes the numeric state of the named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordAuditLogEntry counts an audit entry outcome.
func RecordAuditLogEntry(result string) {
	AuditLogEntriesTotal.WithLabelValues(result).Inc()
}
