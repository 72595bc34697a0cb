// SPDX-License-Identifier: MIT

package stencil

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Coefficients are the dimensionless diffusion numbers of one step:
// Rx = alpha*dt/dx², Ry = alpha*dt/dy².
type Coefficients struct {
	Rx, Ry float64
}

// Kernel advances a field by one explicit step.
type Kernel interface {
	// Sweep writes the step computed from src into dst. It returns only after
	// every row of dst has been written.
	Sweep(dst, src *mat.Dense, c Coefficients) error

	// Workers returns the fixed degree of parallelism (1 for Serial).
	Workers() int

	// Name identifies the kernel in statistics and logs.
	Name() string

	// Close releases any goroutines owned by the kernel. Idempotent.
	Close() error
}

// Band is the half-open row range [Lo, Hi) owned by one worker.
type Band struct {
	Lo, Hi int
}

// Len returns the number of rows in the band.
func (b Band) Len() int { return b.Hi - b.Lo }

// Bands splits rows into at most workers contiguous, disjoint bands that
// cover [0, rows). Band sizes differ by at most one, larger bands first.
// Returns nil when rows or workers is not positive.
// Complexity: O(workers).
func Bands(rows, workers int) []Band {
	if rows <= 0 || workers <= 0 {
		return nil
	}
	workers = min(workers, rows)
	size, rem := rows/workers, rows%workers

	bands := make([]Band, workers)
	lo := 0
	for k := range bands {
		hi := lo + size
		if k < rem {
			hi++
		}
		bands[k] = Band{Lo: lo, Hi: hi}
		lo = hi
	}

	return bands
}

// checkFields validates that dst and src are distinct, equally shaped fields.
func checkFields(dst, src *mat.Dense) error {
	if dst == nil || src == nil || dst == src {
		return ErrShapeMismatch
	}
	dr, dc := dst.Dims()
	sr, sc := src.Dims()
	if dr != sr || dc != sc {
		return fmt.Errorf("dst %dx%d, src %dx%d: %w", dr, dc, sr, sc, ErrShapeMismatch)
	}

	return nil
}

// sweepRows computes rows [lo, hi) of dst from src. It is the only place the
// stencil arithmetic lives; every kernel calls it.
func sweepRows(dst, src *mat.Dense, lo, hi int, c Coefficients) {
	rows, cols := src.Dims()
	for j := lo; j < hi; j++ {
		out := dst.RawRowView(j)
		mid := src.RawRowView(j)
		if j == 0 || j == rows-1 || cols < 3 {
			copy(out, mid)
			continue
		}
		up := src.RawRowView(j - 1)
		down := src.RawRowView(j + 1)
		updateRow(out, up, mid, down, c.Rx, c.Ry)
	}
}

// updateRow applies the 5-point stencil to the interior of one row and copies
// its two edge cells.
func updateRow(out, up, mid, down []float64, rx, ry float64) {
	last := len(mid) - 1
	out[0] = mid[0]
	out[last] = mid[last]
	for i := 1; i < last; i++ {
		u := mid[i]
		out[i] = u + rx*(mid[i-1]-2*u+mid[i+1]) + ry*(up[i]-2*u+down[i])
	}
}
