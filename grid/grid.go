// SPDX-License-Identifier: MIT

// Package grid - field storage (row-major *mat.Dense) & double buffering.
//
// Purpose:
//   - Keep the current field and the scratch field the same shape for the
//     whole lifetime of the grid; kernels read T and write Scratch.
//   - Swap exchanges the two pointers, never copies.
//   - Validate construction parameters up front so a bad configuration is a
//     sentinel error, not a field full of NaNs.
//
// Complexity quicksheet:
//   - New: O(nx*ny) zero-init of two buffers; Swap: O(1); Snapshot: O(nx*ny).

package grid

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// StabilityLimit is the largest alpha*dt*(1/dx²+1/dy²) for which the explicit
// 5-point scheme stays bounded.
const StabilityLimit = 0.5

// Grid is a rectangular NX×NY temperature field with its physical parameters.
// cur and next are distinct buffers of NY rows and NX columns.
type Grid struct {
	nx, ny int
	alpha  float64
	dt     float64
	dx, dy float64

	cur  *mat.Dense // field read by the next step
	next *mat.Dense // scratch the next step is written into

	cfg config
}

// New creates a zero-filled nx×ny grid.
// Stage 1 (Validate): nx, ny > 0; alpha, dt, spacing positive and finite.
// Stage 2 (Prepare): resolve default spacing onto the unit square.
// Stage 3 (Finalize): optional strict stability check, allocate both buffers.
//
// Errors:
//   - ErrBadShape, ErrBadParameter, ErrUnstable (only with WithStrictStability).
//
// Complexity: O(nx*ny) time and memory.
func New(nx, ny int, alpha, dt float64, opts ...Option) (*Grid, error) {
	if nx <= 0 || ny <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", nx, ny, ErrBadShape)
	}
	if !positive(alpha) {
		return nil, fmt.Errorf("New: alpha=%g: %w", alpha, ErrBadParameter)
	}
	if !positive(dt) {
		return nil, fmt.Errorf("New: dt=%g: %w", dt, ErrBadParameter)
	}

	cfg := newConfig(opts...)
	dx, dy := cfg.dx, cfg.dy
	if dx == 0 {
		dx = unitSpacing(nx)
	}
	if dy == 0 {
		dy = unitSpacing(ny)
	}
	if !positive(dx) || !positive(dy) {
		return nil, fmt.Errorf("New: spacing=(%g,%g): %w", dx, dy, ErrBadParameter)
	}

	g := &Grid{
		nx: nx, ny: ny,
		alpha: alpha, dt: dt,
		dx: dx, dy: dy,
		cfg: cfg,
	}
	if cfg.strict && !g.Stable() {
		return nil, fmt.Errorf("New: ratio=%g > %g: %w", g.StabilityRatio(), StabilityLimit, ErrUnstable)
	}

	// mat.NewDense with nil data zero-fills.
	g.cur = mat.NewDense(ny, nx, nil)
	g.next = mat.NewDense(ny, nx, nil)

	return g, nil
}

// NX returns the number of columns.
func (g *Grid) NX() int { return g.nx }

// NY returns the number of rows.
func (g *Grid) NY() int { return g.ny }

// Cells returns NX*NY.
func (g *Grid) Cells() int { return g.nx * g.ny }

// Alpha returns the thermal diffusivity.
func (g *Grid) Alpha() float64 { return g.alpha }

// Dt returns the time step.
func (g *Grid) Dt() float64 { return g.dt }

// Spacing returns the cell size along x and y.
func (g *Grid) Spacing() (dx, dy float64) { return g.dx, g.dy }

// BoundaryValue returns the edge value used by the Constant policy.
func (g *Grid) BoundaryValue() float64 { return g.cfg.boundaryValue }

// T returns the current field. The matrix is live: the next Swap hands it to
// the kernel as scratch, so callers that keep it must use Snapshot instead.
func (g *Grid) T() *mat.Dense { return g.cur }

// Scratch returns the buffer the next step is written into.
func (g *Grid) Scratch() *mat.Dense { return g.next }

// Swap makes the scratch buffer current. O(1).
func (g *Grid) Swap() { g.cur, g.next = g.next, g.cur }

// Snapshot returns an independent copy of the current field.
// Complexity: O(nx*ny).
func (g *Grid) Snapshot() *mat.Dense { return mat.DenseCopyOf(g.cur) }

// HasInterior reports whether at least one cell is off the border.
func (g *Grid) HasInterior() bool { return g.nx >= 3 && g.ny >= 3 }

// Coefficients returns rx = alpha*dt/dx² and ry = alpha*dt/dy².
func (g *Grid) Coefficients() (rx, ry float64) {
	return g.alpha * g.dt / (g.dx * g.dx), g.alpha * g.dt / (g.dy * g.dy)
}

// StabilityRatio returns rx+ry, which must not exceed StabilityLimit.
func (g *Grid) StabilityRatio() float64 {
	rx, ry := g.Coefficients()
	return rx + ry
}

// Stable reports whether StabilityRatio is within StabilityLimit.
func (g *Grid) Stable() bool { return g.StabilityRatio() <= StabilityLimit }

// Load copies field into the current buffer. It is the escape hatch for
// layouts outside the InitialCondition set.
// Errors: ErrNilField, ErrShapeMismatch.
func (g *Grid) Load(field mat.Matrix) error {
	if field == nil {
		return fmt.Errorf("Load: %w", ErrNilField)
	}
	if d, ok := field.(*mat.Dense); ok && d == nil {
		return fmt.Errorf("Load: %w", ErrNilField)
	}
	if r, c := field.Dims(); r != g.ny || c != g.nx {
		return fmt.Errorf("Load: got %dx%d want %dx%d: %w", r, c, g.ny, g.nx, ErrShapeMismatch)
	}
	g.cur.Copy(field)
	g.next.Copy(field)

	return nil
}

// unitSpacing spreads n cells over [0,1]; a single cell gets spacing 1.
func unitSpacing(n int) float64 {
	if n < 2 {
		return 1
	}
	return 1 / float64(n-1)
}

func positive(v float64) bool { return isFinite(v) && v > 0 }
