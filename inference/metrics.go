// SPDX-License-Identifier: MIT

package inference

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for lvfuzzy_inferences_total.
const (
	outcomeOK           = "ok"
	outcomeFallback     = "fallback"
	outcomeZeroArea     = "zero_area"
	outcomeInvalidInput = "invalid_input"
)

// metrics holds the engine collectors. A nil *metrics is a valid no-op.
type metrics struct {
	inferences *prometheus.CounterVec
	duration   prometheus.Histogram
	fired      *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	if reg == nil {
		return nil, nil
	}
	m := &metrics{
		inferences: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvfuzzy",
			Name:      "inferences_total",
			Help:      "Inference calls by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lvfuzzy",
			Name:      "inference_duration_seconds",
			Help:      "Wall time of one inference call.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		fired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvfuzzy",
			Name:      "rule_fired_total",
			Help:      "Rules evaluated with a firing strength above zero.",
		}, []string{"rule"}),
	}

	var err error
	if m.inferences, err = register(reg, m.inferences); err != nil {
		return nil, err
	}
	if m.duration, err = register(reg, m.duration); err != nil {
		return nil, err
	}
	if m.fired, err = register(reg, m.fired); err != nil {
		return nil, err
	}

	return m, nil
}

// register adopts an already registered identical collector, so several
// engines can share one registry.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}

	return c, nil
}

func (m *metrics) observe(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.inferences.WithLabelValues(outcome).Inc()
	m.duration.Observe(seconds)
}

func (m *metrics) ruleFired(name string) {
	if m == nil {
		return
	}
	m.fired.WithLabelValues(name).Inc()
}
