// SPDX-License-Identifier: MIT

package stencil

import (
	"fmt"

	"github.com/exascience/pargo/parallel"
	"gonum.org/v1/gonum/mat"
)

// ForkJoin splits each sweep into a fixed number of row batches with
// parallel.Range, which joins every batch before returning. No goroutines
// outlive a sweep.
type ForkJoin struct {
	workers int
}

var _ Kernel = ForkJoin{}

// NewForkJoin returns a fork-join kernel with the given batch count.
// Errors: ErrWorkerCount when workers < 1.
func NewForkJoin(workers int) (ForkJoin, error) {
	if workers < 1 {
		return ForkJoin{}, fmt.Errorf("NewForkJoin(%d): %w", workers, ErrWorkerCount)
	}
	return ForkJoin{workers: workers}, nil
}

// Sweep computes one step from src into dst across min(workers, rows) batches.
// Errors: ErrShapeMismatch.
func (k ForkJoin) Sweep(dst, src *mat.Dense, c Coefficients) error {
	if err := checkFields(dst, src); err != nil {
		return err
	}
	rows, _ := src.Dims()
	parallel.Range(0, rows, min(k.workers, rows), func(lo, hi int) {
		sweepRows(dst, src, lo, hi, c)
	})

	return nil
}

// Workers returns the batch count.
func (k ForkJoin) Workers() int { return k.workers }

// Name returns "forkjoin".
func (ForkJoin) Name() string { return NameForkJoin }

// Close is a no-op.
func (ForkJoin) Close() error { return nil }
