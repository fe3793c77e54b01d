// SPDX-License-Identifier: MIT

package inference

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const (
	panicWorkersNegative = "inference: WithWorkers: n must be >= 0"
	panicNilLogger       = "inference: WithLogger: logger must not be nil"
)

// Option configures an Engine at Configure time.
type Option func(*Options)

// Options is the resolved engine configuration. Fields are unexported;
// callers use the WithX constructors.
type Options struct {
	logger     *zap.Logger
	registerer prometheus.Registerer
	workers    int
	fallbacks  map[string]float64
}

// DefaultOptions returns the zero-configuration defaults: no logging, no
// metrics, GOMAXPROCS batch workers, no fallbacks.
func DefaultOptions() Options {
	return Options{
		logger:    zap.NewNop(),
		workers:   runtime.GOMAXPROCS(0),
		fallbacks: map[string]float64{},
	}
}

// WithLogger sets the structured logger. Panics on nil (programmer error).
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithRegisterer enables Prometheus metrics registered on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *Options) { o.registerer = reg }
}

// WithWorkers bounds InferBatch concurrency; 0 means GOMAXPROCS.
// Panics on negative n (programmer error).
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersNegative)
	}

	return func(o *Options) {
		if n == 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithFallback substitutes value for output when its aggregated membership
// has zero area, instead of returning ErrZeroMembershipArea.
func WithFallback(output string, value float64) Option {
	return func(o *Options) { o.fallbacks[output] = value }
}

// gatherOptions applies opts over the defaults in order (last wins).
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
