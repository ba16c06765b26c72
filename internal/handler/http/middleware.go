package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"portfolio-dashboard/internal/handler/http/requestid"
	"portfolio-dashboard/internal/handler/http/respond"
	"portfolio-dashboard/internal/handler/http/responsewriter"
	"portfolio-dashboard/internal/infra/restapi"
	"portfolio-dashboard/internal/observability/logging"
	"portfolio-dashboard/pkg/security/csp"

	"go.opentelemetry.io/otel/trace"
)

const (
	maxPathLength   = 2048
	maxCookieHeader = 8 << 10
)

// Logging logs one line per request after it completes, with the request
// and trace IDs for correlation. Handlers find a logger carrying the
// request ID through logging.FromContext.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := responsewriter.Wrap(w)
			r = r.WithContext(logging.WithLogger(r.Context(), logging.WithRequestID(r.Context(), logger)))

			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)
			level := slog.LevelInfo
			if wrapped.StatusCode() >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "request completed",
				slog.String("request_id", requestid.FromContext(r.Context())),
				slog.String("trace_id", trace.SpanFromContext(r.Context()).SpanContext().TraceID().String()),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("query", r.URL.RawQuery),
				slog.String("remote_addr", r.RemoteAddr),
				slog.String("user_agent", r.Header.Get("User-Agent")),
				slog.Int("status", wrapped.StatusCode()),
				slog.Int("bytes", wrapped.BytesWritten()),
				slog.Duration("duration", duration),
				slog.String("duration_ms", fmt.Sprintf("%.2f", duration.Seconds()*1000)),
			)
		})
	}
}

// Recover turns a panic into a 500 page with the generic failure message.
// If the handler already started the response nothing more is written.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := responsewriter.Wrap(w)
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Error("panic recovered",
					slog.String("request_id", requestid.FromContext(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("panic", respond.SanitizeString(fmt.Sprint(rec))),
					slog.String("stack", string(debug.Stack())),
				)
				if !rw.Written() {
					http.Error(rw, restapi.GenericMessage, http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

// LimitRequestBody caps request bodies at maxBytes.
func LimitRequestBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// InputValidation rejects oversized paths and cookie headers before any
// routing happens.
func InputValidation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) > maxPathLength {
				http.Error(w, "URI too long", http.StatusRequestURITooLong)
				return
			}
			if len(r.Header.Get("Cookie")) > maxCookieHeader {
				http.Error(w, "cookie header too large", http.StatusRequestHeaderFieldsTooLarge)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeaders sets the content security policy and the usual
// anti-sniffing and framing headers on every response.
func SecurityHeaders(policy *csp.Builder) func(http.Handler) http.Handler {
	name, value := policy.HeaderName(), policy.Build()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			if value != "" {
				h.Set(name, value)
			}
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "same-origin")
			next.ServeHTTP(w, r)
		})
	}
}
