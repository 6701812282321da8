package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for dashwire applications.
const defaultTracerName = "dashwire"

// OTelConfig configures the OpenTelemetry dispatch middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "dashwire").
	TracerName string

	// Filter determines which events to trace.
	// Return true to trace the event, false to skip.
	// If nil, all events are traced.
	Filter func(ref, event string) bool

	// AttributeExtractor extracts custom attributes per event.
	AttributeExtractor func(ref, event string) []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithEventFilter sets a filter function for events.
func WithEventFilter(filter func(ref, event string) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(ref, event string) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// OTel returns a Dispatch middleware that wraps every dispatched event in a
// span carrying the binding ref and event type.
func OTel(opts ...OTelOption) Middleware {
	cfg := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.tracer = otel.Tracer(cfg.TracerName)

	return func(next Dispatch) Dispatch {
		return func(ref, event string) error {
			if cfg.Filter != nil && !cfg.Filter(ref, event) {
				return next(ref, event)
			}

			attrs := []attribute.KeyValue{
				attribute.String("dashwire.ref", ref),
				attribute.String("dashwire.event", event),
			}
			if cfg.AttributeExtractor != nil {
				attrs = append(attrs, cfg.AttributeExtractor(ref, event)...)
			}

			_, span := cfg.tracer.Start(context.Background(), "dashwire.dispatch",
				trace.WithAttributes(attrs...))
			defer span.End()

			err := next(ref, event)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			return err
		}
	}
}
