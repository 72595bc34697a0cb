// SPDX-License-Identifier: MIT

package grid

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Connectivity selects which neighbours join a region.
type Connectivity int

const (
	// Conn4 joins orthogonal neighbours: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 also joins diagonal neighbours.
	Conn8
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Region is one connected set of cells at or above a threshold.
type Region struct {
	Cells [][2]int // (row, col), in discovery order
	Peak  float64
	Sum   float64
}

// Size is the number of cells in r.
func (r Region) Size() int { return len(r.Cells) }

// HotRegions finds the connected regions of cells with value >= threshold,
// largest first (ties keep scan order). Non-finite cells never join a region.
//
// Useful for watching isolated hot spots (Corners, Checkerboard) merge as
// heat diffuses.
//
// Time:   O(r·c·d), d = 4 or 8.
// Memory: O(r·c) for visited flags and output.
func HotRegions(field *mat.Dense, threshold float64, conn Connectivity) []Region {
	rows, cols := field.Dims()
	offsets := offsets4
	if conn == Conn8 {
		offsets = offsets8
	}
	hot := func(i, j int) bool {
		v := field.At(i, j)
		return isFinite(v) && v >= threshold
	}

	seen := make([]bool, rows*cols)
	var regions []Region
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if seen[i*cols+j] || !hot(i, j) {
				continue
			}
			seen[i*cols+j] = true
			queue := [][2]int{{i, j}}
			r := Region{Peak: field.At(i, j)}
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				v := field.At(u[0], u[1])
				r.Sum += v
				r.Peak = max(r.Peak, v)
				for _, d := range offsets {
					vi, vj := u[0]+d[1], u[1]+d[0]
					if vi < 0 || vi >= rows || vj < 0 || vj >= cols {
						continue
					}
					if k := vi*cols + vj; !seen[k] && hot(vi, vj) {
						seen[k] = true
						queue = append(queue, [2]int{vi, vj})
					}
				}
			}
			r.Cells = queue
			regions = append(regions, r)
		}
	}
	sort.SliceStable(regions, func(a, b int) bool { return regions[a].Size() > regions[b].Size() })

	return regions
}
