// Package metrics exposes dispatch, engine and store metrics to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/dockq/internal/core/domain"
	"go.trai.ch/dockq/internal/core/ports"
)

const namespace = "dockq"

var _ ports.Metrics = (*Prometheus)(nil)

// Prometheus implements ports.Metrics on its own registry.
type Prometheus struct {
	registry *prometheus.Registry

	dispatchTotal      *prometheus.CounterVec
	dispatchDuration   *prometheus.HistogramVec
	engineFailures     *prometheus.CounterVec
	storeWriteFailures prometheus.Counter
}

// New creates the collectors and registers them, together with the Go runtime
// and process collectors, on a fresh registry.
func New() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		dispatchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_total",
			Help:      "Dispatched (molecule, target) requests by outcome.",
		}, []string{"target", "outcome"}),
		dispatchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dispatch_duration_seconds",
			Help:      "Time to resolve a single request by outcome.",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5, 30, 120, 300},
		}, []string{"outcome"}),
		engineFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "engine_failures_total",
			Help:      "Docking engine failures that fell back to a mock score.",
		}, []string{"target", "reason"}),
		storeWriteFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_write_failures_total",
			Help:      "Score cache writes that could not be persisted.",
		}),
	}

	p.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: namespace}),
		p.dispatchTotal,
		p.dispatchDuration,
		p.engineFailures,
		p.storeWriteFailures,
	)
	return p
}

// ObserveDispatch records one resolved request.
func (p *Prometheus) ObserveDispatch(target string, outcome domain.Outcome, elapsed time.Duration) {
	p.dispatchTotal.WithLabelValues(target, string(outcome)).Inc()
	p.dispatchDuration.WithLabelValues(string(outcome)).Observe(elapsed.Seconds())
}

// EngineFailure records an engine failure for a target.
func (p *Prometheus) EngineFailure(target, reason string) {
	p.engineFailures.WithLabelValues(target, reason).Inc()
}

// StoreWriteFailure records a write that did not reach the persisted cache.
func (p *Prometheus) StoreWriteFailure() {
	p.storeWriteFailures.Inc()
}

// Registry returns the registry the collectors are registered on.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
