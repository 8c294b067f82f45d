// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Auth: action is login|register|logout, outcome is success|failure.
	AuthEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_events_total",
			Help: "Login, registration and logout attempts.",
		},
		[]string{"action", "outcome"},
	)

	// Jokes: action is created|deleted|delete_refused.
	JokeEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "joke_events_total",
			Help: "Joke mutations.",
		},
		[]string{"action"},
	)
)

// Handler serves the default registry.
var Handler = promhttp.Handler

// Auth outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

func RecordAuth(action string, ok bool) {
	outcome := OutcomeFailure
	if ok {
		outcome = OutcomeSuccess
	}
	AuthEvents.WithLabelValues(action, outcome).Inc()
}

func RecordJoke(action string) {
	JokeEvents.WithLabelValues(action).Inc()
}
