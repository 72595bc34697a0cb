// SPDX-License-Identifier: MIT

package stencil

import "errors"

var (
	// ErrWorkerCount indicates a parallel kernel was configured with < 1 worker.
	ErrWorkerCount = errors.New("stencil: worker count must be >= 1")

	// ErrShapeMismatch indicates dst and src have different shapes or share storage.
	ErrShapeMismatch = errors.New("stencil: dst and src must be distinct fields of equal shape")

	// ErrPoolClosed indicates Sweep was called after Close.
	ErrPoolClosed = errors.New("stencil: pool is closed")

	// ErrUnknownKernel indicates New was given a name outside the kernel set.
	ErrUnknownKernel = errors.New("stencil: unknown kernel")
)
