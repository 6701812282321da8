package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "dashwire").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for event duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "dashwire",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// SessionMetrics holds the metric instruments shared by all sessions.
type SessionMetrics struct {
	EventsTotal   *prometheus.CounterVec
	EventDuration *prometheus.HistogramVec
	EventErrors   *prometheus.CounterVec
	Sessions      prometheus.Gauge
}

// NewSessionMetrics registers and returns the session metrics.
func NewSessionMetrics(opts ...MetricsOption) *SessionMetrics {
	cfg := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)

	return &SessionMetrics{
		EventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "events_total",
			Help:        "Activation events dispatched to live scenes.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"event"}),
		EventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "event_duration_seconds",
			Help:        "Time spent dispatching an event, including cell propagation.",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}, []string{"event"}),
		EventErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "event_errors_total",
			Help:        "Events that failed to dispatch.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"event"}),
		Sessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "sessions",
			Help:        "Live sessions currently attached.",
			ConstLabels: cfg.ConstLabels,
		}),
	}
}

// Middleware returns a Dispatch middleware recording the session metrics.
func (m *SessionMetrics) Middleware() Middleware {
	return func(next Dispatch) Dispatch {
		return func(ref, event string) error {
			start := time.Now()
			err := next(ref, event)
			m.EventDuration.WithLabelValues(event).Observe(time.Since(start).Seconds())
			m.EventsTotal.WithLabelValues(event).Inc()
			if err != nil {
				m.EventErrors.WithLabelValues(event).Inc()
			}
			return err
		}
	}
}
