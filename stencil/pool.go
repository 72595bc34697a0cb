// SPDX-License-Identifier: MIT

package stencil

import (
	"fmt"
	"sync"
	"sync/atomic"

	"gonum.org/v1/gonum/mat"
)

// bandTask is one worker's share of a sweep.
type bandTask struct {
	dst, src *mat.Dense
	band     Band
	c        Coefficients
}

// Pool is a fixed-size set of long-lived worker goroutines. Worker k always
// receives band k, so the row-to-worker mapping is stable across steps.
type Pool struct {
	workers int
	tasks   []chan bandTask

	barrier sync.WaitGroup // one Add/Wait cycle per sweep
	exited  sync.WaitGroup // worker goroutines

	closed    atomic.Bool
	closeOnce sync.Once
}

var _ Kernel = (*Pool)(nil)

// NewPool starts workers goroutines that live until Close.
// Errors: ErrWorkerCount when workers < 1.
func NewPool(workers int) (*Pool, error) {
	if workers < 1 {
		return nil, fmt.Errorf("NewPool(%d): %w", workers, ErrWorkerCount)
	}
	p := &Pool{
		workers: workers,
		tasks:   make([]chan bandTask, workers),
	}
	p.exited.Add(workers)
	for k := range p.tasks {
		p.tasks[k] = make(chan bandTask, 1)
		go p.work(p.tasks[k])
	}

	return p, nil
}

// work processes bands until its channel is closed.
func (p *Pool) work(tasks <-chan bandTask) {
	defer p.exited.Done()
	for t := range tasks {
		sweepRows(t.dst, t.src, t.band.Lo, t.band.Hi, t.c)
		p.barrier.Done()
	}
}

// Sweep hands one row band to each worker and waits until all of them have
// written their rows. Grids with fewer rows than workers leave the surplus
// workers idle for the step.
// Errors: ErrPoolClosed, ErrShapeMismatch.
// Complexity: O(rows*cols / workers) wall time on idle cores.
func (p *Pool) Sweep(dst, src *mat.Dense, c Coefficients) error {
	if p.closed.Load() {
		return ErrPoolClosed
	}
	if err := checkFields(dst, src); err != nil {
		return err
	}
	rows, _ := src.Dims()
	bands := Bands(rows, p.workers)

	p.barrier.Add(len(bands))
	for k, b := range bands {
		p.tasks[k] <- bandTask{dst: dst, src: src, band: b, c: c}
	}
	p.barrier.Wait()

	return nil
}

// Workers returns the pool size fixed at construction.
func (p *Pool) Workers() int { return p.workers }

// Name returns "pool".
func (p *Pool) Name() string { return NamePool }

// Close stops every worker and waits for them to exit. Idempotent.
func (p *Pool) Close() error {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		for _, ch := range p.tasks {
			close(ch)
		}
		p.exited.Wait()
	})

	return nil
}
