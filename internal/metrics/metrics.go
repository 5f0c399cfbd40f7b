// Package metrics wires prometheus counters for the http server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	RequestsLimited    prometheus.Counter
	SuspiciousPayloads prometheus.Counter
	WebhookEvents      *prometheus.CounterVec
	FlightsCreated     prometheus.Counter
	QueryTime          prometheus.Histogram
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		RequestsLimited: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_limited_total",
			Help:      "The total number of rate limited requests",
		}),
		SuspiciousPayloads: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suspicious_payloads_total",
			Help:      "The total number of payloads flagged by the monitor",
		}),
		WebhookEvents: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_events_total",
			Help:      "The total number of identity webhook events",
		}, []string{"type"}),
		FlightsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flights_created_total",
			Help:      "The total number of flights logged",
		}),
		QueryTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_query_time_seconds",
			Help:      "Time taken by database queries",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

var Default = NewMetrics("skylog")
