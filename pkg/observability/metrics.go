package observability

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"socialgraph/domain/events"
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	// Registry for this collector instance
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Business metrics
	PeopleAdded       prometheus.Counter
	FriendshipsFormed prometheus.Counter
	Diagnostics       *prometheus.CounterVec

	// Command and query bus metrics
	Operations        *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
}

// NewCollector creates a new metrics collector with the given namespace.
// Each collector owns its registry, so several can coexist in tests.
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
		PeopleAdded: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "people_added_total",
				Help:      "Total number of people added to the network",
			},
		),
		FriendshipsFormed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "friendships_formed_total",
				Help:      "Total number of friendships formed",
			},
		),
		Diagnostics: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "diagnostics_total",
				Help:      "Rejected operations by error code",
			},
			[]string{"code"},
		),
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bus_operations_total",
				Help:      "Commands and queries dispatched, by outcome",
			},
			[]string{"kind", "name", "outcome"},
		),
		OperationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "bus_operation_duration_seconds",
				Help:      "Command and query handling duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"kind", "name"},
		),
	}

	registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.PeopleAdded,
		c.FriendshipsFormed,
		c.Diagnostics,
		c.Operations,
		c.OperationDuration,
	)

	return c
}

// Increment counts a bus outcome. metric is "<kind>_<outcome>", e.g. "command_success".
func (c *Collector) Increment(metric, label string) {
	kind, outcome := splitMetric(metric)
	c.Operations.WithLabelValues(kind, label, outcome).Inc()
}

// Observe records a bus duration. metric is "<kind>_duration".
func (c *Collector) Observe(metric, label string, duration time.Duration) {
	kind, _ := splitMetric(metric)
	c.OperationDuration.WithLabelValues(kind, label).Observe(duration.Seconds())
}

// RecordEvent counts a published domain event
func (c *Collector) RecordEvent(event events.DomainEvent) {
	switch event.GetEventType() {
	case events.TypePersonAdded:
		c.PeopleAdded.Inc()
	case events.TypeFriendshipFormed:
		c.FriendshipsFormed.Inc()
	}
}

// RecordDiagnostic counts a rejected operation by its error code
func (c *Collector) RecordDiagnostic(code string) {
	if code == "" {
		code = "unknown"
	}
	c.Diagnostics.WithLabelValues(code).Inc()
}

// RecordHTTP records one served request
func (c *Collector) RecordHTTP(method, route string, status int, duration time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler exposes the registry in the Prometheus text format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}


func splitMetric(metric string) (kind, rest string) {
	if i := strings.Index(metric, "_"); i > 0 {
		return metric[:i], metric[i+1:]
	}
	return metric, ""
}
