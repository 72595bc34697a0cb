package grid_test

import (
	"testing"

	"github.com/katalvlaran/heatflow/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// sequential returns an r×c field holding 1, 2, 3, ... in row-major order.
func sequential(r, c int) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = float64(i + 1)
	}
	return mat.NewDense(r, c, data)
}

// TestConstantBoundary clamps every border cell and leaves the interior alone.
//
//	 1  2  3  4        7  7  7  7
//	 5  6  7  8   →    7  6  7  7
//	 9 10 11 12        7 10 11  7
//	13 14 15 16        7  7  7  7
func TestConstantBoundary(t *testing.T) {
	field := sequential(4, 4)
	require.NoError(t, grid.ApplyBoundary(grid.Constant, field, 7))

	want := mat.NewDense(4, 4, []float64{
		7, 7, 7, 7,
		7, 6, 7, 7,
		7, 10, 11, 7,
		7, 7, 7, 7,
	})
	require.True(t, mat.Equal(want, field), "got\n%v", mat.Formatted(field))
}

// TestInsulatedBoundary mirrors the nearest interior neighbour, corners take
// the diagonal interior value.
//
//	 1  2  3  4        6  6  7  7
//	 5  6  7  8   →    6  6  7  7
//	 9 10 11 12       10 10 11 11
//	13 14 15 16       10 10 11 11
func TestInsulatedBoundary(t *testing.T) {
	field := sequential(4, 4)
	require.NoError(t, grid.ApplyBoundary(grid.Insulated, field, 0))

	want := mat.NewDense(4, 4, []float64{
		6, 6, 7, 7,
		6, 6, 7, 7,
		10, 10, 11, 11,
		10, 10, 11, 11,
	})
	require.True(t, mat.Equal(want, field), "got\n%v", mat.Formatted(field))
}

// TestBoundaryNeverTouchesInterior checks both policies on a larger field.
func TestBoundaryNeverTouchesInterior(t *testing.T) {
	for _, b := range grid.Boundaries() {
		t.Run(b.String(), func(t *testing.T) {
			field := sequential(7, 9)
			orig := mat.DenseCopyOf(field)
			require.NoError(t, grid.ApplyBoundary(b, field, -3))
			for j := 1; j < 6; j++ {
				for i := 1; i < 8; i++ {
					require.Equal(t, orig.At(j, i), field.At(j, i), "interior (%d,%d)", j, i)
				}
			}
		})
	}
}

// TestInsulatedThinGrid leaves an axis without interior untouched.
func TestInsulatedThinGrid(t *testing.T) {
	field := sequential(2, 4) // two rows: no interior row to mirror
	require.NoError(t, grid.ApplyBoundary(grid.Insulated, field, 0))
	assert.Equal(t, []float64{2, 2, 3, 3}, mat.Row(nil, 0, field))
	assert.Equal(t, []float64{6, 6, 7, 7}, mat.Row(nil, 1, field))
}

// TestBoundaryErrors covers unknown policy and nil field.
func TestBoundaryErrors(t *testing.T) {
	require.ErrorIs(t, grid.ApplyBoundary(grid.Boundary(0), mat.NewDense(2, 2, nil), 0), grid.ErrUnknownBoundary)
	require.ErrorIs(t, grid.ApplyBoundary(grid.Constant, nil, 0), grid.ErrNilField)
}

// TestSetBoundaryConditionsUsesConfiguredValue applies the grid's value.
func TestSetBoundaryConditionsUsesConfiguredValue(t *testing.T) {
	g := newGrid(t, 5, 5, grid.WithBoundaryValue(25))
	require.Equal(t, 25.0, g.BoundaryValue())
	require.NoError(t, g.SetInitialConditions(grid.Uniform))
	require.NoError(t, g.SetBoundaryConditions(grid.Constant))
	assert.Equal(t, 25.0, g.T().At(0, 2))
	assert.Equal(t, 25.0, g.T().At(4, 4))
	assert.Equal(t, 50.0, g.T().At(2, 2))
}
