// Package heatflow simulates 2D heat diffusion with an explicit
// finite-difference scheme on a uniform rectangular grid.
//
// 🚀 What is heatflow?
//
//	A small, deterministic numerical library that brings together:
//		• Grid state: NX×NY temperature field, double-buffered on gonum mat.Dense
//		• Initial conditions: center_hot, uniform, gradient, corners, checkerboard
//		• Boundary policies: constant (Dirichlet) and insulated (Neumann)
//		• Update kernels: serial, persistent worker pool, pargo fork-join
//		• Driver: fixed-step simulation with throughput statistics
//		• Benchmark harness: timing across grid sizes, serial vs parallel
//
// ✨ Guarantees
//
//   - Jacobi updates: every step reads only the previous field
//   - Parallel kernels are bit-identical to the serial one
//   - Insulated boundaries conserve the interior sum exactly
//   - No process-wide state: every run carries its own configuration
//
// Under the hood:
//
//	grid/    — Grid, InitialCondition, Boundary, observables, hot regions
//	stencil/ — Kernel interface, Serial, Pool, ForkJoin, row bands
//	heat/    — Solver, Step, Simulate, Stats
//	bench/   — Run, Results, Monotonic
//	cmd/heatflow — command-line front end
//
// Quick start:
//
//	g, _ := grid.New(50, 50, 0.01, 0.0001)
//	_ = g.SetInitialConditions(grid.CenterHot)
//	s, _ := heat.NewParallel(g, runtime.NumCPU())
//	defer s.Close()
//	final, stats, _ := s.Simulate(100, grid.Insulated, false)
//
// Stability: the explicit scheme needs alpha*dt*(1/dx² + 1/dy²) ≤ 0.5.
// It is the caller's precondition; grid.Grid.Stable reports it.
package heatflow
