// Package observability groups the dashboard's logging and tracing helpers.
//
// Subpackages:
//   - logging: slog setup and request-scoped loggers
//   - tracing: OpenTelemetry server spans for incoming requests
//
// HTTP and upstream Prometheus metrics live next to the code they measure
// (handler/http, infra/restapi, infra/tagcache).
package observability
