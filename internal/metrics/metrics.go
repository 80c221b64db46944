// Package metrics exposes Prometheus counters for the state machine.
package metrics

import (
	"net/http"

	"github.com/aretw0/rapport/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector counts handled actions and resets.
type Collector struct {
	registry *prometheus.Registry
	actions  *prometheus.CounterVec
	resets   prometheus.Counter
}

// New creates a Collector with its own registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rapport_actions_total",
				Help: "Total number of handled actions, by state at call time and action.",
			},
			[]string{"state", "action"},
		),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rapport_resets_total",
			Help: "Total number of state resets.",
		}),
	}
	c.registry.MustRegister(c.actions, c.resets)
	return c
}

// Hooks returns domain hooks that feed the collector.
func (c *Collector) Hooks() domain.Hooks {
	return domain.Hooks{
		OnAct: func(e domain.TransitionEvent) {
			c.actions.WithLabelValues(e.From.String(), e.Action.String()).Inc()
		},
		OnReset: func(domain.ResetEvent) {
			c.resets.Inc()
		},
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
