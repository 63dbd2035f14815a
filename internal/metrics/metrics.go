// Package metrics provides Prometheus metrics for the catalogue service
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/you-humble/kicad-dblib/internal/workflow"
)

var (
	// Dialog metrics
	DialogTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dblib_dialog_transitions_total",
			Help: "Total number of dialog state transitions",
		},
		[]string{"kind", "from", "to"},
	)

	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dblib_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dblib_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Presenter metrics
	WSClientsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dblib_ws_clients_active",
			Help: "Number of connected websocket clients",
		},
	)
)

// DialogObserver counts every dialog transition.
func DialogObserver() workflow.Observer {
	return func(kind workflow.Kind, from, to workflow.State) {
		DialogTransitionsTotal.WithLabelValues(kind.String(), from.String(), to.String()).Inc()
	}
}

// RecordHTTPRequest records one served request
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
