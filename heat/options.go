// SPDX-License-Identifier: MIT
// Package: heatflow/heat
//
// options.go — functional options for solvers.
//
// Deterministic defaults:
//   • logger         = slog.Default()
//   • progress every = 0 (resolved per run to max(1, steps/10))

package heat

import "log/slog"

// Option customizes a Solver.
type Option func(*config)

type config struct {
	logger        *slog.Logger
	progressEvery int
}

func newConfig(opts ...Option) config {
	cfg := config{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes verbose progress and stability warnings to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("heat: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithProgressEvery logs verbose progress every n steps. Panics if n < 1.
func WithProgressEvery(n int) Option {
	if n < 1 {
		panic("heat: WithProgressEvery(n<1)")
	}
	return func(c *config) {
		c.progressEvery = n
	}
}
