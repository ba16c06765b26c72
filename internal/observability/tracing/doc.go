// Package tracing provides OpenTelemetry tracing integration.
//
// Middleware opens a server span per request and returns its trace ID in the
// X-Trace-Id header. The content API client opens child client spans and
// propagates the W3C trace context upstream.
package tracing
