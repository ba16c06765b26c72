package http

import (
	"net/http"
	"strconv"
	"time"

	"portfolio-dashboard/internal/handler/http/pathutil"
	"portfolio-dashboard/internal/handler/http/responsewriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// Page renders wait on the content API, so the upper buckets matter.
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	loginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_logins_total",
			Help: "Login attempts by result",
		},
		[]string{"result"},
	)

	mutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_mutations_total",
			Help: "Create, update and delete submissions by resource and result",
		},
		[]string{"resource", "action", "result"},
	)

	guardRedirectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_guard_redirects_total",
			Help: "Redirects issued by the route guard",
		},
		[]string{"reason"},
	)
)

// MetricsMiddleware records request count, latency and response size per
// normalized path.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		path := pathutil.NormalizePath(r.URL.Path)
		rw := responsewriter.Wrap(w)

		start := time.Now()
		next.ServeHTTP(rw, r)
		duration := time.Since(start).Seconds()

		status := strconv.Itoa(rw.StatusCode())
		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path, status).Observe(duration)
		httpResponseSize.WithLabelValues(r.Method, path).Observe(float64(rw.BytesWritten()))
	})
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

func resultLabel(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}

// RecordLogin counts one login attempt.
func RecordLogin(ok bool) {
	loginsTotal.WithLabelValues(resultLabel(ok)).Inc()
}

// RecordMutation counts one create, update or delete submission.
func RecordMutation(resource, action string, ok bool) {
	mutationsTotal.WithLabelValues(resource, action, resultLabel(ok)).Inc()
}

// RecordGuardRedirect counts one redirect by the route guard.
func RecordGuardRedirect(reason string) {
	guardRedirectsTotal.WithLabelValues(reason).Inc()
}
