// Package instrumentation provides OpenTelemetry-based observability for
// mcp-miro: metrics, tracing, and audit logging of tool invocations.
//
// Instrumentation is disabled by default for zero overhead. Enable it with
// INSTRUMENTATION_ENABLED=true. Metrics are exported via Prometheus by
// default; OTLP and stdout exporters are available for both metrics and
// traces.
//
// All recording methods are safe to call on a nil or disabled provider, so
// call sites never need to guard against instrumentation being off.
package instrumentation
