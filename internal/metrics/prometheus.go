package metrics

import (
	"log"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusSink implements Sink using the Prometheus client library.
// Registration errors are logged but never propagated.
type PrometheusSink struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewPrometheusSink creates the sink and registers its collectors.
func NewPrometheusSink(reg prometheus.Registerer) *PrometheusSink {
	s := &PrometheusSink{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobsapi_http_requests_total",
			Help: "Total number of HTTP requests served.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "jobsapi_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route"}),
	}

	s.register(reg, s.requestsTotal, "jobsapi_http_requests_total")
	s.register(reg, s.requestDuration, "jobsapi_http_request_duration_seconds")
	return s
}

// register attempts to register a collector, logging any error without
// propagating it.
func (s *PrometheusSink) register(reg prometheus.Registerer, c prometheus.Collector, name string) {
	if err := reg.Register(c); err != nil {
		log.Printf("metrics: failed to register %s: %v", name, err)
	}
}

func (s *PrometheusSink) RequestCompleted(method, route string, status int, duration time.Duration) {
	s.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	s.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
