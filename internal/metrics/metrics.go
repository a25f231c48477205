package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	StatusRefreshRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_status_refresh_runs_total",
			Help: "Number of payment due-status refresh sweeps",
		},
	)

	StatusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_status_transitions_total",
			Help: "Payment due-status transitions applied by the refresher",
		},
		[]string{"from", "to"},
	)

	ReservationRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unit_reservation_rejections_total",
			Help: "Reservation guard rejections by reason",
		},
		[]string{"reason"},
	)
)
