// SPDX-License-Identifier: MIT

// Package grid: closed variant sets for initial and boundary conditions.
// The zero value of each set is deliberately invalid so an unset field is
// caught by Valid rather than silently mapped to a default layout.
package grid

import "fmt"

// InitialCondition selects the layout written by SetInitialConditions.
type InitialCondition int

const (
	// CenterHot is a hot square at the grid centre on a cool field.
	CenterHot InitialCondition = iota + 1
	// Uniform is a flat field at the palette midpoint.
	Uniform
	// Gradient is a linear ramp along x, cool at column 0 and hot at NX-1.
	Gradient
	// Corners places hot squares in the four corners of a cool field.
	Corners
	// Checkerboard alternates hot and cool tiles.
	Checkerboard
)

var initialNames = map[InitialCondition]string{
	CenterHot:    "center_hot",
	Uniform:      "uniform",
	Gradient:     "gradient",
	Corners:      "corners",
	Checkerboard: "checkerboard",
}

// InitialConditions lists every variant in declaration order.
func InitialConditions() []InitialCondition {
	return []InitialCondition{CenterHot, Uniform, Gradient, Corners, Checkerboard}
}

// Valid reports whether ic belongs to the closed set.
func (ic InitialCondition) Valid() bool {
	_, ok := initialNames[ic]
	return ok
}

// String returns the snake_case name, or "InitialCondition(n)" when invalid.
func (ic InitialCondition) String() string {
	if name, ok := initialNames[ic]; ok {
		return name
	}
	return fmt.Sprintf("InitialCondition(%d)", int(ic))
}

// ParseInitialCondition maps a snake_case name to its variant.
func ParseInitialCondition(name string) (InitialCondition, error) {
	for _, ic := range InitialConditions() {
		if initialNames[ic] == name {
			return ic, nil
		}
	}
	return 0, fmt.Errorf("ParseInitialCondition(%q): %w", name, ErrUnknownInitialCondition)
}

// Boundary selects the edge policy enforced after every interior update.
type Boundary int

const (
	// Constant clamps every border cell to a fixed value (Dirichlet).
	Constant Boundary = iota + 1
	// Insulated copies the nearest interior neighbour onto each border cell
	// (zero-gradient Neumann), so no heat crosses the edge.
	Insulated
)

var boundaryNames = map[Boundary]string{
	Constant:  "constant",
	Insulated: "insulated",
}

// Boundaries lists every variant in declaration order.
func Boundaries() []Boundary {
	return []Boundary{Constant, Insulated}
}

// Valid reports whether b belongs to the closed set.
func (b Boundary) Valid() bool {
	_, ok := boundaryNames[b]
	return ok
}

// String returns the lower-case name, or "Boundary(n)" when invalid.
func (b Boundary) String() string {
	if name, ok := boundaryNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Boundary(%d)", int(b))
}

// ParseBoundary maps a lower-case name to its variant.
func ParseBoundary(name string) (Boundary, error) {
	for _, b := range Boundaries() {
		if boundaryNames[b] == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("ParseBoundary(%q): %w", name, ErrUnknownBoundary)
}
