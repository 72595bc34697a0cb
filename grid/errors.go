// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Every message is prefixed with "grid: ..." so callers can grep logs and match
// with errors.Is. Context is added with fmt.Errorf("ctx: %w", ErrX) at the
// detection site; the sentinel is never replaced.

package grid

import "errors"

var (
	// ErrBadShape is returned when NX or NY is not positive.
	ErrBadShape = errors.New("grid: dimensions must be > 0")

	// ErrBadParameter is returned when alpha, dt, or the spacing is not a
	// positive finite number.
	ErrBadParameter = errors.New("grid: parameter must be positive and finite")

	// ErrUnstable is returned by New under WithStrictStability when
	// alpha*dt*(1/dx²+1/dy²) exceeds the explicit-scheme bound.
	ErrUnstable = errors.New("grid: configuration violates the explicit stability bound")

	// ErrUnknownInitialCondition indicates a value outside the InitialCondition set.
	ErrUnknownInitialCondition = errors.New("grid: unknown initial condition")

	// ErrUnknownBoundary indicates a value outside the Boundary set.
	ErrUnknownBoundary = errors.New("grid: unknown boundary condition")

	// ErrNilField indicates a nil *mat.Dense was passed to a field helper.
	ErrNilField = errors.New("grid: nil field")

	// ErrShapeMismatch indicates a field whose shape differs from the grid.
	ErrShapeMismatch = errors.New("grid: field shape mismatch")
)
