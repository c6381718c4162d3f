package rest

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration prometheus.Histogram
}

func newMetrics(registerer prometheus.Registerer) *metrics {
	collector := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "healthmate_api_requests_total",
			Help: "API requests issued by the client, by method and status code.",
		}, []string{"method", "status"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "healthmate_api_request_duration_seconds",
			Help:    "API request latency as observed by the client.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	registerer.MustRegister(collector.requests, collector.duration)
	return collector
}

// observe tolerates a nil receiver so the client can run without a registry.
// statusCode 0 means the request never got a response.
func (collector *metrics) observe(method string, statusCode int, elapsed time.Duration) {
	if collector == nil {
		return
	}
	status := "transport_error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	collector.requests.WithLabelValues(method, status).Inc()
	collector.duration.Observe(elapsed.Seconds())
}
