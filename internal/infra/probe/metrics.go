package probe

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	probeRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_probe_runs_total",
			Help: "Background dependency probe runs by result",
		},
		[]string{"result"},
	)

	probeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dashboard_probe_duration_seconds",
			Help:    "Duration of a full probe run",
			Buckets: prometheus.DefBuckets,
		},
	)

	probeReady = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_ready",
			Help: "1 when the last probe left the dashboard ready",
		},
	)
)

func observeRun(ok bool, d time.Duration) {
	result := "success"
	if !ok {
		result = "failure"
	}
	probeRunsTotal.WithLabelValues(result).Inc()
	probeDuration.Observe(d.Seconds())
}

func setReady(ready bool) {
	if ready {
		probeReady.Set(1)
		return
	}
	probeReady.Set(0)
}
