// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SetBoundaryConditions applies b to the current field immediately, using the
// grid's configured boundary value for Constant.
// Errors: ErrUnknownBoundary.
func (g *Grid) SetBoundaryConditions(b Boundary) error {
	return ApplyBoundary(b, g.cur, g.cfg.boundaryValue)
}

// ApplyBoundary enforces policy b on field. Only border cells (rows 0 and
// r-1, columns 0 and c-1) are written; interior cells are never touched.
//
// Behavior:
//   - Constant:  every border cell := value.
//   - Insulated: rows 0 and r-1 copy rows 1 and r-2, then columns 0 and c-1
//     copy columns 1 and c-2, so each corner takes its diagonal interior
//     neighbour. An axis with fewer than 3 cells has no interior to mirror
//     and is left as is.
//
// Errors: ErrUnknownBoundary, ErrNilField.
// Complexity: O(r+c).
func ApplyBoundary(b Boundary, field *mat.Dense, value float64) error {
	if field == nil {
		return fmt.Errorf("ApplyBoundary: %w", ErrNilField)
	}
	switch b {
	case Constant:
		clampEdges(field, value)
	case Insulated:
		mirrorEdges(field)
	default:
		return fmt.Errorf("ApplyBoundary(%v): %w", b, ErrUnknownBoundary)
	}

	return nil
}

func clampEdges(field *mat.Dense, value float64) {
	rows, cols := field.Dims()
	top, bottom := field.RawRowView(0), field.RawRowView(rows-1)
	for i := 0; i < cols; i++ {
		top[i] = value
		bottom[i] = value
	}
	for j := 1; j < rows-1; j++ {
		row := field.RawRowView(j)
		row[0] = value
		row[cols-1] = value
	}
}

func mirrorEdges(field *mat.Dense) {
	rows, cols := field.Dims()
	if rows >= 3 {
		copy(field.RawRowView(0), field.RawRowView(1))
		copy(field.RawRowView(rows-1), field.RawRowView(rows-2))
	}
	if cols >= 3 {
		for j := 0; j < rows; j++ {
			row := field.RawRowView(j)
			row[0] = row[1]
			row[cols-1] = row[cols-2]
		}
	}
}
