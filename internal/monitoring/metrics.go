package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method and status",
		},
		[]string{"method", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	registrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conference_registrations_total",
			Help: "Registration operations by outcome",
		},
		[]string{"operation", "status"},
	)

	tasksEnqueuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tasks_enqueued_total",
			Help: "Asynchronous tasks enqueued by type",
		},
		[]string{"type"},
	)
)

// RecordHTTPRequest counts a finished request and observes its duration.
func RecordHTTPRequest(method, status string, seconds float64) {
	httpRequestsTotal.WithLabelValues(method, status).Inc()
	httpRequestDuration.WithLabelValues(method).Observe(seconds)
}

// RecordRegistration counts a registration operation outcome.
func RecordRegistration(operation, status string) {
	registrationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordTaskEnqueued counts an enqueued task.
func RecordTaskEnqueued(taskType string) {
	tasksEnqueuedTotal.WithLabelValues(taskType).Inc()
}
