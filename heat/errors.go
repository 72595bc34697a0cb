// SPDX-License-Identifier: MIT

package heat

import "errors"

var (
	// ErrNilGrid indicates a solver was built without a grid.
	ErrNilGrid = errors.New("heat: grid is nil")

	// ErrNilKernel indicates a solver was built without a kernel.
	ErrNilKernel = errors.New("heat: kernel is nil")

	// ErrNegativeSteps indicates Simulate was asked for a negative step count.
	ErrNegativeSteps = errors.New("heat: step count must be >= 0")

	// ErrClosed indicates the solver was used after Close.
	ErrClosed = errors.New("heat: solver is closed")
)
