package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks handler latency per route pattern
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fundboard_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "status"},
	)

	// DashboardComputeDuration tracks a full filter + aggregate pass
	DashboardComputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "fundboard_dashboard_compute_duration_seconds",
			Help: "Duration of dashboard recomputation in seconds",
			Buckets: []float64{
				0.0001, // 100us
				0.0005, // 500us
				0.001,  // 1ms
				0.005,  // 5ms
				0.01,   // 10ms
				0.05,   // 50ms
				0.1,    // 100ms
			},
		},
	)

	SessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fundboard_sessions_active",
		Help: "Number of live dashboard sessions",
	})

	SessionsEvicted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fundboard_sessions_evicted_total",
		Help: "Sessions removed by the idle sweep",
	})
)

// RecordRequest records the duration of one HTTP request
func RecordRequest(route string, status int, d time.Duration) {
	HTTPRequestDuration.WithLabelValues(route, statusClass(status)).Observe(d.Seconds())
}

// RecordCompute records the duration of one dashboard recomputation
func RecordCompute(d time.Duration) {
	DashboardComputeDuration.Observe(d.Seconds())
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
