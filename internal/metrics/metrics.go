// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics exposes Prometheus collectors for the outreach pipeline.
// A nil *Collectors is valid and records nothing, so components can be
// constructed without a registry in tests and one-shot CLI runs.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "outreach_engine"

// Collectors groups every metric the service records.
type Collectors struct {
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	operations      *prometheus.CounterVec
	searches        *prometheus.CounterVec
	emails          *prometheus.CounterVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Collectors {
	f := promauto.With(reg)
	return &Collectors{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		operations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Pipeline operations by kind and outcome.",
		}, []string{"kind", "outcome"}),
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_queries_total",
			Help:      "Search provider queries by query name and outcome.",
		}, []string{"query", "outcome"}),
		emails: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_generated_total",
			Help:      "Generated emails by email type.",
		}, []string{"type"}),
	}
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveRequest records one HTTP request.
func (c *Collectors) ObserveRequest(route string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveOperation records one pipeline operation (research, brief, parse, emails, workflow).
func (c *Collectors) ObserveOperation(kind string, err error) {
	if c == nil {
		return
	}
	c.operations.WithLabelValues(kind, outcome(err)).Inc()
}

// ObserveSearch records one search provider query.
func (c *Collectors) ObserveSearch(query string, err error) {
	if c == nil {
		return
	}
	c.searches.WithLabelValues(query, outcome(err)).Inc()
}

// AddEmails counts n generated emails of the given type.
func (c *Collectors) AddEmails(emailType string, n int) {
	if c == nil || n <= 0 {
		return
	}
	c.emails.WithLabelValues(emailType).Add(float64(n))
}
