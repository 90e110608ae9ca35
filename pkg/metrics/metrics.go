// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// OracleRequestDuration tracks extraction oracle call duration.
	OracleRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "oracle_request_duration_seconds",
			Help:    "Extraction oracle call duration",
			Buckets: []float64{.25, .5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"provider", "status"},
	)

	// OracleTokensTotal tracks total oracle tokens processed.
	OracleTokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oracle_tokens_total",
			Help: "Total extraction oracle tokens processed",
		},
		[]string{"provider", "direction"},
	)

	// IntentsTotal tracks resolved intents by tag.
	IntentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intents_total",
			Help: "Total structured intents resolved",
		},
		[]string{"intent"},
	)

	// BookingsTotal tracks confirmed bookings per room.
	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_total",
			Help: "Total bookings confirmed",
		},
		[]string{"room"},
	)

	// CancellationsTotal tracks cancelled bookings per room.
	CancellationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cancellations_total",
			Help: "Total bookings cancelled",
		},
		[]string{"room"},
	)

	// AvailabilityChecksTotal tracks availability engine outcomes.
	AvailabilityChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "availability_checks_total",
			Help: "Total availability checks by outcome",
		},
		[]string{"result"},
	)

	// ActiveBookings tracks the current number of ledger entries.
	ActiveBookings = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_bookings",
			Help: "Number of bookings currently in the ledger",
		},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordOracleCall records metrics for an extraction oracle call.
func RecordOracleCall(provider, status string, duration float64, tokensIn, tokensOut int) {
	OracleRequestDuration.WithLabelValues(provider, status).Observe(duration)
	OracleTokensTotal.WithLabelValues(provider, "in").Add(float64(tokensIn))
	OracleTokensTotal.WithLabelValues(provider, "out").Add(float64(tokensOut))
}

// RecordAvailabilityCheck records an availability engine outcome.
func RecordAvailabilityCheck(available bool) {
	result := "available"
	if !available {
		result = "unavailable"
	}
	AvailabilityChecksTotal.WithLabelValues(result).Inc()
}
