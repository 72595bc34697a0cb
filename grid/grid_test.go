// Package grid_test contains unit tests for grid construction, initial
// conditions, boundary policies and field observables.
package grid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/heatflow/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// newGrid builds a stable grid or fails the test.
func newGrid(t *testing.T, nx, ny int, opts ...grid.Option) *grid.Grid {
	t.Helper()
	g, err := grid.New(nx, ny, 0.01, 0.0001, opts...)
	require.NoError(t, err)
	return g
}

// TestNewRejectsBadInput covers every fail-fast construction path.
func TestNewRejectsBadInput(t *testing.T) {
	cases := []struct {
		name   string
		nx, ny int
		alpha  float64
		dt     float64
		opts   []grid.Option
		want   error
	}{
		{"zero nx", 0, 5, 0.01, 0.001, nil, grid.ErrBadShape},
		{"negative ny", 5, -1, 0.01, 0.001, nil, grid.ErrBadShape},
		{"zero alpha", 5, 5, 0, 0.001, nil, grid.ErrBadParameter},
		{"negative dt", 5, 5, 0.01, -1, nil, grid.ErrBadParameter},
		{"NaN alpha", 5, 5, math.NaN(), 0.001, nil, grid.ErrBadParameter},
		{"Inf dt", 5, 5, 0.01, math.Inf(1), nil, grid.ErrBadParameter},
		{"negative spacing", 5, 5, 0.01, 0.001, []grid.Option{grid.WithSpacing(-1, 1)}, grid.ErrBadParameter},
		{"strict unstable", 50, 50, 1, 0.1, []grid.Option{grid.WithStrictStability()}, grid.ErrUnstable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.nx, tc.ny, tc.alpha, tc.dt, tc.opts...)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, g)
		})
	}
}

// TestNewZeroFilled verifies shape, default spacing and zero initialization.
func TestNewZeroFilled(t *testing.T) {
	g := newGrid(t, 4, 3)

	r, c := g.T().Dims()
	require.Equal(t, 3, r) // rows follow ny
	require.Equal(t, 4, c) // columns follow nx
	require.Equal(t, 12, g.Cells())
	require.Equal(t, 0.0, grid.Energy(g.T()))
	require.NotSame(t, g.T(), g.Scratch(), "double buffer must use two matrices")

	dx, dy := g.Spacing()
	assert.InDelta(t, 1.0/3, dx, 1e-15)
	assert.InDelta(t, 0.5, dy, 1e-15)
}

// TestSingleCellSpacing ensures a one-cell axis does not divide by zero.
func TestSingleCellSpacing(t *testing.T) {
	g := newGrid(t, 1, 1)
	dx, dy := g.Spacing()
	require.Equal(t, 1.0, dx)
	require.Equal(t, 1.0, dy)
	require.False(t, g.HasInterior())
}

// TestStabilityRatio checks rx+ry against the explicit bound.
func TestStabilityRatio(t *testing.T) {
	g, err := grid.New(11, 11, 1, 0.001) // dx = 0.1 → rx = ry = 0.1
	require.NoError(t, err)
	rx, ry := g.Coefficients()
	assert.InDelta(t, 0.1, rx, 1e-12)
	assert.InDelta(t, 0.1, ry, 1e-12)
	assert.InDelta(t, 0.2, g.StabilityRatio(), 1e-12)
	assert.True(t, g.Stable())

	unstable, err := grid.New(11, 11, 1, 0.01) // ratio 2.0
	require.NoError(t, err, "precondition is not enforced without WithStrictStability")
	assert.False(t, unstable.Stable())
}

// TestSwap verifies the ping-pong exchanges pointers.
func TestSwap(t *testing.T) {
	g := newGrid(t, 3, 3)
	cur, next := g.T(), g.Scratch()
	g.Swap()
	require.Same(t, next, g.T())
	require.Same(t, cur, g.Scratch())
}

// TestSnapshotIndependence ensures Snapshot does not alias the live field.
func TestSnapshotIndependence(t *testing.T) {
	g := newGrid(t, 5, 5)
	require.NoError(t, g.SetInitialConditions(grid.Uniform))
	snap := g.Snapshot()
	g.T().Set(2, 2, -1)
	require.Equal(t, 50.0, snap.At(2, 2))
}

// TestLoad covers the custom-field entry point and its errors.
func TestLoad(t *testing.T) {
	g := newGrid(t, 2, 2)
	require.ErrorIs(t, g.Load(nil), grid.ErrNilField)
	var nilDense *mat.Dense
	require.ErrorIs(t, g.Load(nilDense), grid.ErrNilField)
	require.ErrorIs(t, g.Load(mat.NewDense(3, 2, nil)), grid.ErrShapeMismatch)

	field := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, g.Load(field))
	require.True(t, mat.Equal(field, g.T()))
	require.True(t, mat.Equal(field, g.Scratch()))
}

// TestObservables checks the field summaries on a known matrix.
func TestObservables(t *testing.T) {
	field := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	assert.Equal(t, 10.0, grid.Energy(field))
	assert.Equal(t, 2.5, grid.Mean(field))
	assert.InDelta(t, math.Sqrt(5.0/3), grid.StdDev(field), 1e-12)
	assert.Equal(t, 1.0, grid.Min(field))
	assert.Equal(t, 4.0, grid.Max(field))
	assert.True(t, grid.AllFinite(field))

	field.Set(0, 0, math.Inf(-1))
	assert.False(t, grid.AllFinite(field))
	field.Set(0, 0, math.NaN())
	assert.False(t, grid.AllFinite(field))
}

// TestObservablesOnView ensures non-contiguous views are summarized correctly.
func TestObservablesOnView(t *testing.T) {
	base := mat.NewDense(3, 3, []float64{
		1, 2, 0,
		3, 4, 0,
		0, 0, 0,
	})
	view := base.Slice(0, 2, 0, 2).(*mat.Dense)
	assert.Equal(t, 10.0, grid.Energy(view))
	assert.Equal(t, 2.5, grid.Mean(view))
}
