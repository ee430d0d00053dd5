// Package metrics exposes Prometheus instruments for tool invocations.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "toolbox"

const (
	OutcomeOK          = "ok"
	OutcomeInputError  = "input_error"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)

// Recorder owns its registry so tests and multiple servers never collide on
// the global default registerer.
type Recorder struct {
	registry    *prometheus.Registry
	invocations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	rateLimited prometheus.Counter
}

func New() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tool_invocations_total",
			Help:      "Tool invocations partitioned by tool and outcome.",
		}, []string{"tool", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tool_duration_seconds",
			Help:      "Tool invocation latency.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 9),
		}, []string{"tool"}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_rate_limited_total",
			Help:      "RPC requests rejected by the per-client rate limiter.",
		}),
	}
	reg.MustRegister(
		r.invocations,
		r.duration,
		r.rateLimited,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Observe records one finished invocation. A nil recorder is a no-op.
func (r *Recorder) Observe(tool, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.invocations.WithLabelValues(tool, outcome).Inc()
	r.duration.WithLabelValues(tool).Observe(elapsed.Seconds())
}

func (r *Recorder) RateLimited() {
	if r == nil {
		return
	}
	r.rateLimited.Inc()
}

func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Handler serves the registry in the Prometheus text exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
