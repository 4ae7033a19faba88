package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "weather"

// Metrics holds the Prometheus counters and histograms for the weather service.
type Metrics struct {
	// Upstream provider metrics.
	UpstreamRequests *prometheus.CounterVec // labels: outcome={success,not_found,http_error,invalid_response,request_error}
	UpstreamDuration prometheus.Histogram

	// Persistence and publishing.
	ObservationsStored prometheus.Counter
	PersistErrors      prometheus.Counter
	EventsPublished    prometheus.Counter
	PublishErrors      prometheus.Counter

	// Series reads that fell back to raw observations.
	SeriesFallbacks prometheus.Counter

	// Transports.
	RPCRequests  *prometheus.CounterVec   // labels: method, code
	RPCDuration  *prometheus.HistogramVec // labels: method
	HTTPRequests *prometheus.CounterVec   // labels: route, code, method

	// Scheduled ingestion.
	IngestRuns *prometheus.CounterVec // labels: outcome={success,error}
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.ObservationsStored,
		m.PersistErrors,
		m.EventsPublished,
		m.PublishErrors,
		m.SeriesFallbacks,
		m.RPCRequests,
		m.RPCDuration,
		m.HTTPRequests,
		m.IngestRuns,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "OpenWeatherMap requests by outcome.",
		}, []string{"outcome"}),
		UpstreamDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "OpenWeatherMap request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 8},
		}),
		ObservationsStored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "observations_stored_total",
			Help:      "Total observations persisted.",
		}),
		PersistErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persist_errors_total",
			Help:      "Observations that could not be persisted.",
		}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Observation events written to Kafka.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_errors_total",
			Help:      "Observation events that could not be written to Kafka.",
		}),
		SeriesFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "series_fallbacks_total",
			Help:      "Series queries answered from raw observations.",
		}),
		RPCRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grpc_requests_total",
			Help:      "gRPC requests by method and status code.",
		}, []string{"method", "code"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "grpc_request_duration_seconds",
			Help:      "gRPC request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP API requests by route, status code, and method.",
		}, []string{"route", "code", "method"}),
		IngestRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingest_fetches_total",
			Help:      "Scheduled city fetches by outcome.",
		}, []string{"outcome"}),
	}
}
