// SPDX-License-Identifier: MIT
// Package: heatflow/bench
//
// options.go — functional options for Run.
//
// Deterministic defaults:
//   • threads   = 0 (serial only)
//   • alpha, dt = 0.01, 0.0001
//   • ic        = grid.CenterHot
//   • boundary  = grid.Insulated
//   • logger    = slog.Default()

package bench

import (
	"log/slog"

	"github.com/katalvlaran/heatflow/grid"
)

// Option customizes a benchmark run.
type Option func(*config)

type config struct {
	threads  int
	alpha    float64
	dt       float64
	ic       grid.InitialCondition
	boundary grid.Boundary
	logger   *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		alpha:    0.01,
		dt:       0.0001,
		ic:       grid.CenterHot,
		boundary: grid.Insulated,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithThreads also runs every size on a parallel solver with n workers.
// Zero keeps the run serial only. Panics if n < 0.
func WithThreads(n int) Option {
	if n < 0 {
		panic("bench: WithThreads(n<0)")
	}
	return func(c *config) {
		c.threads = n
	}
}

// WithParams sets the diffusivity and time step used for every size.
// Validation is left to grid.New so the error names the offending size.
func WithParams(alpha, dt float64) Option {
	return func(c *config) {
		c.alpha, c.dt = alpha, dt
	}
}

// WithInitialCondition selects the starting layout. Panics on an invalid value.
func WithInitialCondition(ic grid.InitialCondition) Option {
	if !ic.Valid() {
		panic("bench: WithInitialCondition(invalid)")
	}
	return func(c *config) {
		c.ic = ic
	}
}

// WithBoundary selects the boundary policy. Panics on an invalid value.
func WithBoundary(b grid.Boundary) Option {
	if !b.Valid() {
		panic("bench: WithBoundary(invalid)")
	}
	return func(c *config) {
		c.boundary = b
	}
}

// WithLogger routes per-size progress to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("bench: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
