// Package observability wires the application's Prometheus metrics.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Dispatcher metrics
	EventsDispatched *prometheus.CounterVec
	EventFailures    *prometheus.CounterVec

	// Graph metrics
	NodesCreated prometheus.Counter
	EdgesCreated prometheus.Counter

	// Catalog metrics
	SearchRequests      *prometheus.CounterVec
	SearchDuration      prometheus.Histogram
	StaleResultsDropped prometheus.Counter
}

// NewCollector creates a new metrics collector with the given namespace
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,

		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		EventsDispatched: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_dispatched_total",
				Help:      "Total number of events processed by the dispatch loop",
			},
			[]string{"type"},
		),
		EventFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "event_failures_total",
				Help:      "Total number of event handler failures",
			},
			[]string{"type"},
		),

		NodesCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "nodes_created_total",
				Help:      "Total number of graph nodes created",
			},
		),
		EdgesCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "edges_created_total",
				Help:      "Total number of graph edges created",
			},
		),

		SearchRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "catalog_searches_total",
				Help:      "Total number of catalog search requests by outcome",
			},
			[]string{"outcome"},
		),
		SearchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "catalog_search_duration_seconds",
				Help:      "Catalog search round-trip duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
		StaleResultsDropped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "catalog_stale_results_dropped_total",
				Help:      "Search responses discarded because a newer search superseded them",
			},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.HTTPRequests,
		c.HTTPDuration,
		c.EventsDispatched,
		c.EventFailures,
		c.NodesCreated,
		c.EdgesCreated,
		c.SearchRequests,
		c.SearchDuration,
		c.StaleResultsDropped,
	)

	return c
}

// Handler returns the HTTP handler exposing the registry
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Search outcome labels.
const (
	SearchOutcomeOK      = "ok"
	SearchOutcomeTimeout = "timeout"
	SearchOutcomeNetwork = "network"
	SearchOutcomeDecode  = "decode"
	SearchOutcomeStatus  = "bad_status"
	SearchOutcomeBadURL  = "bad_url"
)
