// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//   - Summaries of a temperature field used by solvers, tests and reports.
//   - Every function accepts any *mat.Dense (grid field, snapshot, or a field
//     returned by a solver) and never mutates it.
//
// Exposed API:
//   - Energy(T)    -> Σ T            // conserved under Insulated
//   - Mean(T)      -> Σ T / n
//   - StdDev(T)    -> sample standard deviation
//   - Min(T), Max(T)
//   - AllFinite(T) -> no NaN/±Inf
//
// Determinism:
//   - Fixed row-major traversal; the same field always yields the same bits.

package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Energy returns the sum of all cells. For a unit heat capacity this is the
// total thermal energy of the field.
func Energy(field *mat.Dense) float64 {
	return floats.Sum(values(field))
}

// Mean returns the arithmetic mean of all cells.
func Mean(field *mat.Dense) float64 {
	return stat.Mean(values(field), nil)
}

// StdDev returns the sample standard deviation of all cells.
func StdDev(field *mat.Dense) float64 {
	_, std := stat.MeanStdDev(values(field), nil)
	return std
}

// Min returns the smallest cell value.
func Min(field *mat.Dense) float64 { return mat.Min(field) }

// Max returns the largest cell value.
func Max(field *mat.Dense) float64 { return mat.Max(field) }

// AllFinite reports whether no cell is NaN or ±Inf.
func AllFinite(field *mat.Dense) bool {
	v := values(field)
	if floats.HasNaN(v) {
		return false
	}
	for _, x := range v {
		if math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// values returns the cells in row-major order, sharing storage when the
// backing slice is contiguous.
func values(field *mat.Dense) []float64 {
	raw := field.RawMatrix()
	if raw.Stride == raw.Cols {
		return raw.Data[:raw.Rows*raw.Cols]
	}
	out := make([]float64, 0, raw.Rows*raw.Cols)
	for j := 0; j < raw.Rows; j++ {
		out = append(out, field.RawRowView(j)...)
	}

	return out
}
