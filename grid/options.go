// SPDX-License-Identifier: MIT
// Package: heatflow/grid
//
// options.go — functional options and deterministic defaults for New.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs; New and
//     the policies themselves never panic on user input.
//   • Randomness only enters through WithNoise, seeded by WithSeed.
//   • Defaults live in newConfig; no package-level mutable state.
//
// Deterministic defaults:
//   • hot / cool        = 100 / 0
//   • boundary value    = 0
//   • spacing           = unit square (1/(nx-1), 1/(ny-1))
//   • checker tile      = 1 cell
//   • noise sigma       = 0 (noiseless), seed = 1
//   • strict stability  = off

package grid

import "math"

// Option customizes a Grid before its buffers are allocated.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config aggregates every knob New understands. It is copied into the Grid
// by value, so later option mutations cannot reach a built grid.
type config struct {
	hot, cool     float64 // initial-condition palette
	boundaryValue float64 // Dirichlet edge value for Constant
	dx, dy        float64 // 0 means "derive from nx/ny"
	checkerTile   int     // side of a Checkerboard tile, in cells
	noiseSigma    float64 // Gaussian perturbation added after every layout
	seed          int64   // RNG seed for noise
	strict        bool    // reject unstable configurations in New
}

const (
	defaultHot           = 100.0
	defaultCool          = 0.0
	defaultBoundaryValue = 0.0
	defaultCheckerTile   = 1
	defaultNoiseSigma    = 0.0
	defaultSeed          = int64(1)
)

// newConfig applies opts over the defaults in order; later options win.
func newConfig(opts ...Option) config {
	cfg := config{
		hot:           defaultHot,
		cool:          defaultCool,
		boundaryValue: defaultBoundaryValue,
		checkerTile:   defaultCheckerTile,
		noiseSigma:    defaultNoiseSigma,
		seed:          defaultSeed,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithPalette sets the hot and cool temperatures used by the initial
// conditions. Panics on NaN/Inf.
func WithPalette(hot, cool float64) Option {
	if !isFinite(hot) || !isFinite(cool) {
		panic("grid: WithPalette(non-finite)")
	}
	return func(c *config) {
		c.hot, c.cool = hot, cool
	}
}

// WithBoundaryValue sets the value the Constant policy clamps edges to.
// Panics on NaN/Inf.
func WithBoundaryValue(v float64) Option {
	if !isFinite(v) {
		panic("grid: WithBoundaryValue(non-finite)")
	}
	return func(c *config) {
		c.boundaryValue = v
	}
}

// WithSpacing overrides the physical cell size. Values are validated by New
// so a bad spacing surfaces as ErrBadParameter rather than a panic.
func WithSpacing(dx, dy float64) Option {
	return func(c *config) {
		c.dx, c.dy = dx, dy
	}
}

// WithCheckerTile sets the Checkerboard tile side in cells. Panics if n < 1.
func WithCheckerTile(n int) Option {
	if n < 1 {
		panic("grid: WithCheckerTile(n<1)")
	}
	return func(c *config) {
		c.checkerTile = n
	}
}

// WithNoise adds a seeded Gaussian perturbation of standard deviation sigma
// to every initial condition. Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 || !isFinite(sigma) {
		panic("grid: WithNoise(sigma<0)")
	}
	return func(c *config) {
		c.noiseSigma = sigma
	}
}

// WithSeed fixes the noise RNG seed. The RNG is re-created from this seed on
// every SetInitialConditions call.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithStrictStability makes New reject configurations whose stability ratio
// exceeds StabilityLimit.
func WithStrictStability() Option {
	return func(c *config) {
		c.strict = true
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
