package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	httpRequests           *prometheus.CounterVec
	httpDuration           *prometheus.HistogramVec
	transactionMutations   *prometheus.CounterVec
	recommendationRequests *prometheus.CounterVec
	recommendationDuration prometheus.Histogram
	authEvents             *prometheus.CounterVec
	errorsTotal            *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		httpRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_milliseconds",
				Help:    "HTTP request duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"method", "path"},
		),
		transactionMutations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_mutations_total",
				Help: "Total number of transaction create/update/delete operations",
			},
			[]string{"operation", "status"},
		),
		recommendationRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recommendation_requests_total",
				Help: "Total number of recommendation generator calls",
			},
			[]string{"status"},
		),
		recommendationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "recommendation_duration_milliseconds",
				Help:    "Recommendation generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 16),
			},
		),
		authEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event", "status"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API errors by error code",
			},
			[]string{"code"},
		),
	}
}

func (m *PrometheusMetrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, path, status).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordTransactionMutation(operation, status string) {
	m.transactionMutations.WithLabelValues(operation, status).Inc()
}

func (m *PrometheusMetrics) RecordRecommendationRequest(status string, duration time.Duration) {
	m.recommendationRequests.WithLabelValues(status).Inc()
	m.recommendationDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordAuthEvent(event, status string) {
	m.authEvents.WithLabelValues(event, status).Inc()
}

func (m *PrometheusMetrics) RecordError(code string) {
	m.errorsTotal.WithLabelValues(code).Inc()
}
