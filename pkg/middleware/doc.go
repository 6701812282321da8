// Package middleware provides cross-cutting wrappers for live-session event
// dispatch: Prometheus metrics and OpenTelemetry tracing.
package middleware
