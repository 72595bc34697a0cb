// SPDX-License-Identifier: MIT

package stencil

import "fmt"

// Kernel names accepted by New.
const (
	NameSerial   = "serial"
	NamePool     = "pool"
	NameForkJoin = "forkjoin"
)

// New builds a kernel by name. workers is ignored for NameSerial.
// Errors: ErrUnknownKernel, ErrWorkerCount.
func New(name string, workers int) (Kernel, error) {
	switch name {
	case NameSerial:
		return NewSerial(), nil
	case NamePool:
		p, err := NewPool(workers)
		if err != nil {
			return nil, err
		}
		return p, nil
	case NameForkJoin:
		k, err := NewForkJoin(workers)
		if err != nil {
			return nil, err
		}
		return k, nil
	default:
		return nil, fmt.Errorf("New(%q): %w", name, ErrUnknownKernel)
	}
}
