package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/civicteams/server/internal/infra/events"
	"github.com/civicteams/server/internal/port/outbound"
)

// Metrics holds all application metrics.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Domain metrics
	DomainEventsTotal     *prometheus.CounterVec
	IssueTransitionsTotal *prometheus.CounterVec

	// Classifier metrics
	ClassifierRequestsTotal   *prometheus.CounterVec
	ClassifierRequestDuration prometheus.Histogram

	// Rate limiting
	RateLimitedTotal prometheus.Counter
}

// New creates a new Metrics instance registered with reg. A nil reg uses
// the default Prometheus registry.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	if namespace == "" {
		namespace = "civic"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_in_flight",
				Help:      "Current number of HTTP requests being processed",
			},
		),

		DomainEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "domain",
				Name:      "events_total",
				Help:      "Total number of published domain events",
			},
			[]string{"type"},
		),
		IssueTransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "issue",
				Name:      "transitions_total",
				Help:      "Total number of issue lifecycle transitions",
			},
			[]string{"from", "to"},
		),

		ClassifierRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "classifier",
				Name:      "requests_total",
				Help:      "Total number of classifier requests",
			},
			[]string{"status"}, // success, failure
		),
		ClassifierRequestDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "classifier",
				Name:      "request_duration_seconds",
				Help:      "Classifier request duration in seconds",
				Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
			},
		),

		RateLimitedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "rate_limited_total",
				Help:      "Total number of requests rejected by the rate limiter",
			},
		),
	}
}

// --- Convenience methods ---

// RecordHTTPRequest records an HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCodeToString(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordClassification records one classifier call.
func (m *Metrics) RecordClassification(err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	m.ClassifierRequestsTotal.WithLabelValues(status).Inc()
	m.ClassifierRequestDuration.Observe(duration.Seconds())
}

// RecordRateLimited records a rejected request.
func (m *Metrics) RecordRateLimited() {
	m.RateLimitedTotal.Inc()
}

// EventSubscriber counts every published event.
func (m *Metrics) EventSubscriber() events.Subscriber {
	return events.Subscribe(func(e events.Event) error {
		m.DomainEventsTotal.WithLabelValues(e.EventType()).Inc()
		if sc, ok := e.(*events.IssueStatusChangedEvent); ok {
			m.IssueTransitionsTotal.WithLabelValues(sc.From, sc.To).Inc()
		}
		return nil
	})
}

// InstrumentClassifier wraps a classifier so every call is timed and counted.
func (m *Metrics) InstrumentClassifier(next outbound.ClassifierPort) outbound.ClassifierPort {
	return &instrumentedClassifier{next: next, metrics: m}
}

type instrumentedClassifier struct {
	next    outbound.ClassifierPort
	metrics *Metrics
}

func (c *instrumentedClassifier) Classify(ctx context.Context, description string) (*outbound.Classification, error) {
	start := time.Now()
	result, err := c.next.Classify(ctx, description)
	c.metrics.RecordClassification(err, time.Since(start))
	return result, err
}

// statusCodeToString converts an HTTP status code to a string category.
func statusCodeToString(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}
