// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/heatflow/grid"
	"github.com/katalvlaran/heatflow/heat"
)

// Measurement is one timed simulation.
type Measurement struct {
	Elapsed time.Duration
	Stats   heat.Stats
}

// Row holds the measurements for one grid size.
type Row struct {
	Size     int
	Cells    int
	Serial   *Measurement
	Parallel *Measurement // nil when WithThreads was not set
	Speedup  float64      // serial/parallel elapsed; 0 without Parallel
}

// Results is the outcome of Run, one Row per requested size in input order.
type Results struct {
	Steps int
	Rows  []Row
}

// Monotonic reports whether serial elapsed time strictly increases from
// each row to the next. Results with fewer than two rows are monotonic.
func (r Results) Monotonic() bool {
	for k := 1; k < len(r.Rows); k++ {
		if r.Rows[k].Serial.Elapsed <= r.Rows[k-1].Serial.Elapsed {
			return false
		}
	}
	return true
}

// Run simulates steps steps on an n×n grid for every n in sizes.
//
// Stage 1 (Validate): sizes non-empty, every n > 0, steps >= 0.
// Stage 2 (Measure):  per size, serial solver then, if WithThreads > 0, a
//
//	parallel solver on a freshly initialized grid of the same shape.
//
// Errors: ErrBadInput, grid construction errors, heat errors.
// Complexity: O(Σ n² · steps) per solver variant.
func Run(sizes []int, steps int, opts ...Option) (Results, error) {
	if len(sizes) == 0 {
		return Results{}, fmt.Errorf("Run: no sizes: %w", ErrBadInput)
	}
	for _, n := range sizes {
		if n <= 0 {
			return Results{}, fmt.Errorf("Run: size %d: %w", n, ErrBadInput)
		}
	}
	if steps < 0 {
		return Results{}, fmt.Errorf("Run: steps %d: %w", steps, ErrBadInput)
	}

	cfg := newConfig(opts...)
	res := Results{Steps: steps, Rows: make([]Row, 0, len(sizes))}
	for _, n := range sizes {
		row := Row{Size: n, Cells: n * n}

		serial, err := cfg.measure(n, steps, 0)
		if err != nil {
			return Results{}, err
		}
		row.Serial = serial

		if cfg.threads > 0 {
			par, err := cfg.measure(n, steps, cfg.threads)
			if err != nil {
				return Results{}, err
			}
			row.Parallel = par
			if par.Elapsed > 0 {
				row.Speedup = float64(serial.Elapsed) / float64(par.Elapsed)
			}
		}

		cfg.logger.Info("benchmark size done",
			slog.Int("size", n),
			slog.Duration("serial", serial.Elapsed),
			slog.Float64("speedup", row.Speedup),
		)
		res.Rows = append(res.Rows, row)
	}

	return res, nil
}

// measure times one solver on a fresh n×n grid; threads == 0 means serial.
func (c config) measure(n, steps, threads int) (*Measurement, error) {
	g, err := grid.New(n, n, c.alpha, c.dt)
	if err != nil {
		return nil, fmt.Errorf("Run: size %d: %w", n, err)
	}
	if err = g.SetInitialConditions(c.ic); err != nil {
		return nil, fmt.Errorf("Run: size %d: %w", n, err)
	}

	var s *heat.Solver
	if threads > 0 {
		s, err = heat.NewParallel(g, threads, heat.WithLogger(c.logger))
	} else {
		s, err = heat.NewSerial(g, heat.WithLogger(c.logger))
	}
	if err != nil {
		return nil, fmt.Errorf("Run: size %d: %w", n, err)
	}
	defer s.Close()

	start := time.Now()
	_, stats, err := s.Simulate(steps, c.boundary, false)
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("Run: size %d: %w", n, err)
	}

	return &Measurement{Elapsed: elapsed, Stats: stats}, nil
}
