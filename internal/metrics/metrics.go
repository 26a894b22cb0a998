// Package metrics provides request instrumentation for the API server.
// Metrics register against an injected registry so tests can run isolated
// recorders without touching the default registerer.
package metrics

import (
	"net/http"
	"strconv"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder collects HTTP request counts and latencies.
type Recorder struct {
	requests *prom.CounterVec
	duration *prom.HistogramVec
}

// NewRecorder constructs and registers the request metrics on reg.
func NewRecorder(reg *prom.Registry) *Recorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	r := &Recorder{
		requests: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "runmeme",
			Name:      "http_requests_total",
			Help:      "HTTP request counts by path, method and status",
		}, []string{"path", "method", "status"}),
		duration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "runmeme",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by path",
			Buckets:   prom.DefBuckets,
		}, []string{"path"}),
	}
	reg.MustRegister(r.requests, r.duration)
	return r
}

// ObserveRequest records one completed request.
func (r *Recorder) ObserveRequest(path, method string, status int, seconds float64) {
	r.requests.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	r.duration.WithLabelValues(path).Observe(seconds)
}

// Handler returns an http.Handler serving the Prometheus exposition for reg.
func Handler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
