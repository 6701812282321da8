package middleware

import (
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestOTelMiddlewarePassthrough(t *testing.T) {
	// Without an SDK installed the global tracer is a no-op; the middleware
	// must still call through and preserve errors.
	boom := errors.New("boom")
	calls := 0
	d := Chain(func(ref, event string) error {
		calls++
		if ref == "dw-err" {
			return boom
		}
		return nil
	}, OTel(WithTracerName("test")))

	if err := d("dw-1", "click"); err != nil {
		t.Fatal(err)
	}
	if err := d("dw-err", "click"); !errors.Is(err, boom) {
		t.Errorf("error not propagated, got %v", err)
	}
	if calls != 2 {
		t.Errorf("dispatch called %d times", calls)
	}
}

func TestOTelFilter(t *testing.T) {
	calls := 0
	d := Chain(func(ref, event string) error {
		calls++
		return nil
	}, OTel(
		WithEventFilter(func(ref, event string) bool { return event == "click" }),
		WithAttributeExtractor(func(ref, event string) []attribute.KeyValue {
			return []attribute.KeyValue{attribute.String("dashboard", "demo")}
		}),
	))

	// Filtered and unfiltered events both reach the dispatch.
	if err := d("dw-1", "click"); err != nil {
		t.Fatal(err)
	}
	if err := d("dw-1", "pointerenter"); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("dispatch called %d times, want 2", calls)
	}
}
