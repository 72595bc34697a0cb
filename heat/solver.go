// SPDX-License-Identifier: MIT

package heat

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/heatflow/grid"
	"github.com/katalvlaran/heatflow/stencil"
	"gonum.org/v1/gonum/mat"
)

// Solver advances one grid with one kernel. It is not safe for concurrent
// use; parallelism lives inside the kernel.
type Solver struct {
	g      *grid.Grid
	k      stencil.Kernel
	c      stencil.Coefficients
	cfg    config
	closed bool
}

// New pairs g with k. The solver takes ownership of k and closes it on Close.
// An unstable grid is accepted and reported with a warning: the stability
// bound is a caller precondition unless the grid was built strict.
// Errors: ErrNilGrid, ErrNilKernel.
func New(g *grid.Grid, k stencil.Kernel, opts ...Option) (*Solver, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if k == nil {
		return nil, ErrNilKernel
	}
	rx, ry := g.Coefficients()
	s := &Solver{
		g:   g,
		k:   k,
		c:   stencil.Coefficients{Rx: rx, Ry: ry},
		cfg: newConfig(opts...),
	}
	if !g.Stable() {
		s.cfg.logger.Warn("explicit scheme is unstable for this grid",
			slog.Float64("ratio", g.StabilityRatio()),
			slog.Float64("limit", grid.StabilityLimit),
		)
	}

	return s, nil
}

// NewSerial returns a solver backed by stencil.Serial.
func NewSerial(g *grid.Grid, opts ...Option) (*Solver, error) {
	return New(g, stencil.NewSerial(), opts...)
}

// NewParallel returns a solver backed by a stencil.Pool of threads workers.
// The worker count is fixed for the solver's lifetime.
// Errors: stencil.ErrWorkerCount, ErrNilGrid.
func NewParallel(g *grid.Grid, threads int, opts ...Option) (*Solver, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	pool, err := stencil.NewPool(threads)
	if err != nil {
		return nil, fmt.Errorf("NewParallel: %w", err)
	}
	return New(g, pool, opts...)
}

// Grid returns the grid being advanced.
func (s *Solver) Grid() *grid.Grid { return s.g }

// Threads returns the kernel's fixed worker count.
func (s *Solver) Threads() int { return s.k.Workers() }

// Step performs exactly one kernel sweep, buffer swap and boundary
// application. The boundary is validated before the field is touched.
// Errors: ErrClosed, grid.ErrUnknownBoundary, kernel errors.
func (s *Solver) Step(b grid.Boundary) error {
	if s.closed {
		return ErrClosed
	}
	if !b.Valid() {
		return fmt.Errorf("Step(%v): %w", b, grid.ErrUnknownBoundary)
	}
	return s.step(b)
}

func (s *Solver) step(b grid.Boundary) error {
	if err := s.k.Sweep(s.g.Scratch(), s.g.T(), s.c); err != nil {
		return fmt.Errorf("Step: %w", err)
	}
	s.g.Swap()

	return grid.ApplyBoundary(b, s.g.T(), s.g.BoundaryValue())
}

// Simulate runs steps consecutive Steps under boundary b and returns an
// independent copy of the final field with fresh Stats. It always runs to
// completion; any kernel error stops the run and is returned as is.
//
// When verbose is set, progress is logged every WithProgressEvery steps
// (default max(1, steps/10)) followed by a summary.
//
// Errors: ErrClosed, ErrNegativeSteps, grid.ErrUnknownBoundary, kernel errors.
func (s *Solver) Simulate(steps int, b grid.Boundary, verbose bool) (*mat.Dense, Stats, error) {
	if s.closed {
		return nil, Stats{}, ErrClosed
	}
	if steps < 0 {
		return nil, Stats{}, fmt.Errorf("Simulate(%d): %w", steps, ErrNegativeSteps)
	}
	if !b.Valid() {
		return nil, Stats{}, fmt.Errorf("Simulate(%v): %w", b, grid.ErrUnknownBoundary)
	}

	every := s.cfg.progressEvery
	if every == 0 {
		every = max(1, steps/10)
	}
	log := s.cfg.logger.With(
		slog.String("kernel", s.k.Name()),
		slog.Int("nx", s.g.NX()),
		slog.Int("ny", s.g.NY()),
		slog.String("boundary", b.String()),
	)

	initial := grid.Energy(s.g.T())
	start := time.Now()
	for n := 1; n <= steps; n++ {
		if err := s.step(b); err != nil {
			return nil, Stats{}, err
		}
		if verbose && n%every == 0 {
			log.Info("progress", slog.Int("step", n), slog.Int("of", steps))
		}
	}
	elapsed := time.Since(start)

	stats := Stats{
		StepsCompleted: steps,
		CellsPerSecond: throughput(s.g.Cells(), steps, elapsed),
		NumThreads:     s.k.Workers(),
		Kernel:         s.k.Name(),
		Elapsed:        elapsed,
		InitialEnergy:  initial,
		FinalEnergy:    grid.Energy(s.g.T()),
	}
	if verbose {
		log.Info("simulation complete", slog.Any("stats", stats))
	}

	return s.g.Snapshot(), stats, nil
}

// Close releases the kernel. Further Step/Simulate calls return ErrClosed.
func (s *Solver) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.k.Close()
}

// Step advances g by one serial step under boundary b.
func Step(g *grid.Grid, b grid.Boundary) error {
	s, err := NewSerial(g)
	if err != nil {
		return err
	}
	return s.Step(b)
}

// Simulate runs steps serial steps on g under boundary b.
func Simulate(g *grid.Grid, steps int, b grid.Boundary, verbose bool) (*mat.Dense, Stats, error) {
	s, err := NewSerial(g)
	if err != nil {
		return nil, Stats{}, err
	}
	return s.Simulate(steps, b, verbose)
}
