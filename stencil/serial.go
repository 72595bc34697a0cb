// SPDX-License-Identifier: MIT

package stencil

import "gonum.org/v1/gonum/mat"

// Serial sweeps every row on the calling goroutine.
type Serial struct{}

var _ Kernel = Serial{}

// NewSerial returns the single-threaded kernel.
func NewSerial() Serial { return Serial{} }

// Sweep computes one step from src into dst.
// Errors: ErrShapeMismatch.
// Complexity: O(rows*cols).
func (Serial) Sweep(dst, src *mat.Dense, c Coefficients) error {
	if err := checkFields(dst, src); err != nil {
		return err
	}
	rows, _ := src.Dims()
	sweepRows(dst, src, 0, rows, c)

	return nil
}

// Workers returns 1.
func (Serial) Workers() int { return 1 }

// Name returns "serial".
func (Serial) Name() string { return NameSerial }

// Close is a no-op.
func (Serial) Close() error { return nil }
