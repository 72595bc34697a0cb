package grid_test

import (
	"testing"

	"github.com/katalvlaran/heatflow/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestInitialConditionsNonZero verifies every variant writes a non-all-zero,
// finite field into both buffers.
func TestInitialConditionsNonZero(t *testing.T) {
	for _, ic := range grid.InitialConditions() {
		t.Run(ic.String(), func(t *testing.T) {
			g := newGrid(t, 20, 16)
			require.NoError(t, g.SetInitialConditions(ic))
			require.NotZero(t, grid.Max(g.T()), "field must not be all zero")
			require.True(t, grid.AllFinite(g.T()))
			require.True(t, mat.Equal(g.T(), g.Scratch()), "scratch must mirror the fresh field")
		})
	}
}

// TestInitialConditionsIdempotent ensures a second call resets rather than
// accumulates, including the noise draw.
func TestInitialConditionsIdempotent(t *testing.T) {
	g := newGrid(t, 12, 12, grid.WithNoise(0.5), grid.WithSeed(7))
	require.NoError(t, g.SetInitialConditions(grid.Gradient))
	first := g.Snapshot()

	g.T().Set(3, 3, 1e6)
	require.NoError(t, g.SetInitialConditions(grid.Gradient))
	require.True(t, mat.Equal(first, g.T()))
}

// TestInitialConditionUnknown rejects values outside the closed set.
func TestInitialConditionUnknown(t *testing.T) {
	g := newGrid(t, 4, 4)
	require.ErrorIs(t, g.SetInitialConditions(0), grid.ErrUnknownInitialCondition)
	require.ErrorIs(t, g.SetInitialConditions(grid.InitialCondition(99)), grid.ErrUnknownInitialCondition)
}

// TestCenterHotLayout checks the hot square sits at the centre.
//
// 10×10 grid, half-width 1: hot cells are columns/rows 4 and 5.
func TestCenterHotLayout(t *testing.T) {
	g := newGrid(t, 10, 10)
	require.NoError(t, g.SetInitialConditions(grid.CenterHot))
	T := g.T()
	assert.Equal(t, 100.0, T.At(4, 4))
	assert.Equal(t, 100.0, T.At(5, 5))
	assert.Equal(t, 0.0, T.At(3, 4))
	assert.Equal(t, 0.0, T.At(0, 0))
	assert.Equal(t, 400.0, grid.Energy(T))
}

// TestGradientLayout checks the ramp runs along x from cool to hot.
func TestGradientLayout(t *testing.T) {
	g := newGrid(t, 5, 3, grid.WithPalette(10, 2))
	require.NoError(t, g.SetInitialConditions(grid.Gradient))
	want := []float64{2, 4, 6, 8, 10}
	for j := 0; j < 3; j++ {
		assert.Equal(t, want, mat.Row(nil, j, g.T()))
	}
}

// TestCornersLayout checks the four corners are hot and the centre cool.
func TestCornersLayout(t *testing.T) {
	g := newGrid(t, 20, 20)
	require.NoError(t, g.SetInitialConditions(grid.Corners))
	T := g.T()
	for _, p := range [][2]int{{0, 0}, {0, 19}, {19, 0}, {19, 19}, {1, 1}, {18, 18}} {
		assert.Equal(t, 100.0, T.At(p[0], p[1]), "corner cell %v", p)
	}
	assert.Equal(t, 0.0, T.At(10, 10))
	assert.Equal(t, 0.0, T.At(2, 0))
}

// TestCheckerboardLayout checks per-cell and tiled alternation.
func TestCheckerboardLayout(t *testing.T) {
	g := newGrid(t, 4, 4)
	require.NoError(t, g.SetInitialConditions(grid.Checkerboard))
	assert.Equal(t, []float64{100, 0, 100, 0}, mat.Row(nil, 0, g.T()))
	assert.Equal(t, []float64{0, 100, 0, 100}, mat.Row(nil, 1, g.T()))

	tiled := newGrid(t, 4, 4, grid.WithCheckerTile(2))
	require.NoError(t, tiled.SetInitialConditions(grid.Checkerboard))
	assert.Equal(t, []float64{100, 100, 0, 0}, mat.Row(nil, 1, tiled.T()))
	assert.Equal(t, []float64{0, 0, 100, 100}, mat.Row(nil, 2, tiled.T()))
}

// TestUniformLayout checks the midpoint fill.
func TestUniformLayout(t *testing.T) {
	g := newGrid(t, 3, 3, grid.WithPalette(80, 20))
	require.NoError(t, g.SetInitialConditions(grid.Uniform))
	assert.Equal(t, 50.0, grid.Min(g.T()))
	assert.Equal(t, 50.0, grid.Max(g.T()))
}

// TestParseNames round-trips every name and rejects unknown ones.
func TestParseNames(t *testing.T) {
	for _, ic := range grid.InitialConditions() {
		got, err := grid.ParseInitialCondition(ic.String())
		require.NoError(t, err)
		require.Equal(t, ic, got)
	}
	_, err := grid.ParseInitialCondition("hot_spot")
	require.ErrorIs(t, err, grid.ErrUnknownInitialCondition)
	assert.False(t, grid.InitialCondition(0).Valid())
	assert.Equal(t, "InitialCondition(0)", grid.InitialCondition(0).String())

	for _, b := range grid.Boundaries() {
		got, err := grid.ParseBoundary(b.String())
		require.NoError(t, err)
		require.Equal(t, b, got)
	}
	_, err = grid.ParseBoundary("periodic")
	require.ErrorIs(t, err, grid.ErrUnknownBoundary)
	assert.False(t, grid.Boundary(7).Valid())
}

// TestOptionPanics ensures option constructors reject meaningless values.
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { grid.WithCheckerTile(0) })
	assert.Panics(t, func() { grid.WithNoise(-1) })
}
