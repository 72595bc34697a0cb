// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math/rand"
)

// SetInitialConditions overwrites the whole field with the layout selected by
// ic, then adds the configured noise. Both buffers end up identical, so a
// second call fully resets the grid rather than accumulating.
//
// Layouts (palette hot/cool from WithPalette):
//   - CenterHot:    cool, hot square of half-width max(1, min(nx,ny)/10) at the centre.
//   - Uniform:      (hot+cool)/2 everywhere.
//   - Gradient:     cool at column 0 rising linearly to hot at column nx-1.
//   - Corners:      cool, hot squares of side max(1, min(nx,ny)/10) in each corner.
//   - Checkerboard: tiles of side WithCheckerTile alternating hot/cool, (0,0) hot.
//
// Errors: ErrUnknownInitialCondition.
// Complexity: O(nx*ny).
func (g *Grid) SetInitialConditions(ic InitialCondition) error {
	var fill func(i, j int) float64
	switch ic {
	case CenterHot:
		fill = g.centerHot()
	case Uniform:
		mid := (g.cfg.hot + g.cfg.cool) / 2
		fill = func(int, int) float64 { return mid }
	case Gradient:
		fill = g.gradient()
	case Corners:
		fill = g.corners()
	case Checkerboard:
		fill = g.checkerboard()
	default:
		return fmt.Errorf("SetInitialConditions(%v): %w", ic, ErrUnknownInitialCondition)
	}

	var rng *rand.Rand
	if g.cfg.noiseSigma > 0 {
		rng = rand.New(rand.NewSource(g.cfg.seed))
	}
	for j := 0; j < g.ny; j++ {
		row := g.cur.RawRowView(j)
		for i := range row {
			row[i] = fill(i, j)
			if rng != nil {
				row[i] += rng.NormFloat64() * g.cfg.noiseSigma
			}
		}
	}
	g.next.Copy(g.cur)

	return nil
}

// featureSize is the side (or half-width) in cells of the hot patches.
func (g *Grid) featureSize() int {
	return max(1, min(g.nx, g.ny)/10)
}

func (g *Grid) centerHot() func(i, j int) float64 {
	h := g.featureSize()
	ci, cj := g.nx/2, g.ny/2
	hot, cool := g.cfg.hot, g.cfg.cool
	return func(i, j int) float64 {
		if i >= ci-h && i < ci+h && j >= cj-h && j < cj+h {
			return hot
		}
		return cool
	}
}

func (g *Grid) gradient() func(i, j int) float64 {
	hot, cool := g.cfg.hot, g.cfg.cool
	if g.nx == 1 {
		return func(int, int) float64 { return hot }
	}
	span := float64(g.nx - 1)
	return func(i, _ int) float64 {
		return cool + (hot-cool)*float64(i)/span
	}
}

func (g *Grid) corners() func(i, j int) float64 {
	s := g.featureSize()
	nx, ny := g.nx, g.ny
	hot, cool := g.cfg.hot, g.cfg.cool
	return func(i, j int) float64 {
		nearX := i < s || i >= nx-s
		nearY := j < s || j >= ny-s
		if nearX && nearY {
			return hot
		}
		return cool
	}
}

func (g *Grid) checkerboard() func(i, j int) float64 {
	tile := g.cfg.checkerTile
	hot, cool := g.cfg.hot, g.cfg.cool
	return func(i, j int) float64 {
		if (i/tile+j/tile)%2 == 0 {
			return hot
		}
		return cool
	}
}
