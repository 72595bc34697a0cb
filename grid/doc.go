// SPDX-License-Identifier: MIT

// Package grid owns the temperature field of a 2D heat-diffusion run and the
// pure policies that populate and constrain it.
//
// What:
//
//   - Grid holds NX×NY temperatures (NY rows, NX columns) in two same-shaped
//     *mat.Dense buffers: the current field T and a scratch field that
//     kernels write the next step into. Swap ping-pongs them.
//   - InitialCondition is a closed set of field layouts (CenterHot, Uniform,
//     Gradient, Corners, Checkerboard) applied with SetInitialConditions.
//   - Boundary is a closed set of edge policies (Constant, Insulated)
//     enforced by ApplyBoundary after every interior update.
//   - Observables (Energy, Mean, StdDev, Min, Max, AllFinite) summarize any
//     field produced by the package or by a solver.
//   - HotRegions labels connected hot spots (4- or 8-connected) so their
//     merging under diffusion can be tracked.
//
// Geometry:
//
//   - Row j is the y index, column i is the x index; the border is rows 0 and
//     NY-1 plus columns 0 and NX-1.
//   - Default spacing maps the grid onto the unit square:
//     Dx = 1/(NX-1), Dy = 1/(NY-1).
//
// Stability:
//
//	The explicit Euler scheme stays bounded only while
//	  alpha*dt*(1/Dx² + 1/Dy²) ≤ 0.5   (alpha*dt/Dx² ≤ 0.25 when Dx = Dy).
//	This is a caller precondition. StabilityRatio and Stable report it;
//	WithStrictStability turns a violation into ErrUnstable at New.
//
// Errors:
//
//   - ErrBadShape: NX or NY is not positive.
//   - ErrBadParameter: alpha, dt or spacing is not a positive finite number.
//   - ErrUnstable: strict stability requested and violated.
//   - ErrUnknownInitialCondition, ErrUnknownBoundary: value outside the closed set.
//   - ErrNilField, ErrShapeMismatch: misuse of the field-level helpers.
package grid
