// SPDX-License-Identifier: MIT

// Package stencil computes one explicit Euler step of the 2D heat equation
// ∂T/∂t = α∇²T with the 5-point finite-difference stencil.
//
// What:
//
//   - Kernel sweeps a source field into a destination field of the same
//     shape. Interior cells become
//     u + Rx*(w - 2u + e) + Ry*(n - 2u + s);
//     border cells are copied unchanged so the destination is always a
//     complete field before a boundary policy runs.
//   - Serial sweeps every row on the calling goroutine.
//   - Pool keeps a fixed number of long-lived workers; each sweep hands one
//     contiguous row band to each worker and waits on a single barrier.
//   - ForkJoin expresses the same band discipline with pargo's parallel.Range.
//
// Why double buffering:
//
//	Every kernel reads only src and writes only dst. A cell never sees an
//	already-updated neighbour in the same step, which keeps the scheme
//	Jacobi-style explicit Euler. All kernels share one row routine, so the
//	per-cell floating-point operation order is identical and serial and
//	parallel results are bit-for-bit equal.
//
// Concurrency:
//
//   - Workers write disjoint rows of dst and read src only; no per-row or
//     per-cell locking exists or is needed.
//   - Sweep returns only after every band is written.
//   - A Kernel is driven by one caller at a time.
//
// Errors:
//
//   - ErrWorkerCount: a parallel kernel was asked for fewer than one worker.
//   - ErrShapeMismatch: dst and src differ in shape, or alias each other.
//   - ErrPoolClosed: Sweep on a closed Pool.
//   - ErrUnknownKernel: New was given an unknown name.
package stencil
