package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "backoffice"

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served by route.",
		},
		[]string{"route"},
	)

	backendRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_requests_total",
			Help:      "Calls to the commerce backend by method and status code.",
		},
		[]string{"method", "status"},
	)

	backendDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Latency of calls to the commerce backend.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	guardDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "guard_decisions_total",
			Help:      "Route guard outcomes by decision kind.",
		},
		[]string{"decision"},
	)

	exports = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Generated documents by kind and result.",
		},
		[]string{"kind", "result"},
	)

	notices = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notices_total",
			Help:      "User notices raised by level.",
		},
		[]string{"level"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, backendRequests, backendDuration, guardDecisions, exports, notices)
	})
}

// IncHTTP increments the counter for a route label.
func IncHTTP(route string) {
	httpRequests.WithLabelValues(route).Inc()
}

// ObserveBackend records one backend call. Status 0 means the request never
// got a response.
func ObserveBackend(method string, status int, dur time.Duration) {
	backendRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	backendDuration.WithLabelValues(method).Observe(dur.Seconds())
}

func IncGuard(decision string) {
	guardDecisions.WithLabelValues(decision).Inc()
}

func IncExport(kind string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	exports.WithLabelValues(kind, result).Inc()
}

func IncNotice(level string) {
	notices.WithLabelValues(level).Inc()
}
