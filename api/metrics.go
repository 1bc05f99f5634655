package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Report outcomes recorded by RecordReport
const (
	OutcomeCreated  = "created"
	OutcomeCooldown = "cooldown"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_host_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "report_host_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "report_host_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	reportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_host_reports_total",
			Help: "Submitted reports by outcome",
		},
		[]string{"outcome"},
	)

	notificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_host_notifications_total",
			Help: "Notifications pushed to connected overlays",
		},
		[]string{"action"},
	)

	connectedClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "report_host_connected_clients",
			Help: "Number of overlays connected to the push channel",
		},
	)
)

// RecordReport counts a processed report
func RecordReport(outcome string) {
	reportsTotal.WithLabelValues(outcome).Inc()
}

// RecordNotification counts a pushed notification
func RecordNotification(action string) {
	notificationsTotal.WithLabelValues(action).Inc()
}

// SetConnectedClients reports the size of the push hub
func SetConnectedClients(n int) {
	connectedClients.Set(float64(n))
}
