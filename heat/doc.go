// SPDX-License-Identifier: MIT

// Package heat drives explicit heat-diffusion runs: it pairs a *grid.Grid
// with a stencil.Kernel and advances the field step by step.
//
// One step is:
//
//  1. kernel sweep of T into the scratch buffer (the kernel's barrier
//     guarantees every row is written before it returns),
//  2. buffer swap,
//  3. boundary policy on the new field.
//
// Steps run strictly in sequence; there is no pipelining across steps and no
// cancellation. Simulate runs a fixed number of steps and reports Stats.
//
// Solvers built with NewParallel own a stencil.Pool whose size is fixed for
// the solver's lifetime; call Close to release its workers.
//
// Errors:
//
//   - ErrNilGrid, ErrNilKernel: missing collaborators at construction.
//   - ErrNegativeSteps: Simulate asked for fewer than zero steps.
//   - ErrClosed: Step or Simulate after Close.
//   - grid.ErrUnknownBoundary and stencil errors propagate unchanged.
package heat
