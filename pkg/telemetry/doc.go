// Package telemetry sets up OpenTelemetry tracing for the server.
//
// TRACE_EXPORTER selects "none" (the default, a no-op provider) or "stdout"
// (spans written as JSON). Spans come from the otelhttp router middleware
// and from fragment rendering.
package telemetry
