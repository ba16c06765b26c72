package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// TracerName identifies spans created by the dashboard.
const TracerName = "portfolio-dashboard"

// GetTracer returns a tracer from the current global provider.
// It is looked up per call so a provider installed later is honored.
func GetTracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// Setup installs an SDK tracer provider and the W3C propagators.
// Spans are only recorded; exporting them is left to whoever adds an exporter
// via opts. The returned function flushes and stops the provider.
func Setup(opts ...sdktrace.TracerProviderOption) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp.Shutdown
}
