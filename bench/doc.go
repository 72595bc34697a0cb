// SPDX-License-Identifier: MIT

// Package bench measures how simulation cost grows with grid size.
//
// Run builds a fresh n×n grid for every requested size, applies the chosen
// initial condition and runs a fixed number of steps through the heat
// driver. It records wall-clock time and the driver's Stats for a serial
// solver and, when WithThreads is set, for a pooled parallel solver on an
// identical grid, together with the serial/parallel speedup.
//
// The harness only consumes heat's public API; it never reaches into the
// kernels directly.
//
// Errors:
//
//   - ErrBadInput: empty size list, non-positive size or negative steps.
//   - grid and heat errors propagate unchanged (wrapped with the size).
package bench
