// SPDX-License-Identifier: MIT

// Command heatflow runs a 2D explicit heat-diffusion simulation, or sweeps
// grid sizes and prints a timing table.
//
//	heatflow -nx 200 -ny 200 -steps 1000 -ic center_hot -bc insulated -threads 8
//	heatflow -bench 25,50,100,200 -steps 300 -threads 4
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/katalvlaran/heatflow/bench"
	"github.com/katalvlaran/heatflow/grid"
	"github.com/katalvlaran/heatflow/heat"
	"github.com/katalvlaran/heatflow/stencil"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	nx, ny        int
	alpha, dt     float64
	steps         int
	ic, bc        string
	threads       int
	kernel        string
	boundaryValue float64
	verbose       bool
	bench         string
	cpuProfile    string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("heatflow", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&o.nx, "nx", 50, "grid columns")
	fs.IntVar(&o.ny, "ny", 50, "grid rows")
	fs.Float64Var(&o.alpha, "alpha", 0.01, "thermal diffusivity")
	fs.Float64Var(&o.dt, "dt", 0.0001, "time step")
	fs.IntVar(&o.steps, "steps", 100, "steps to simulate")
	fs.StringVar(&o.ic, "ic", grid.CenterHot.String(), "initial condition: center_hot, uniform, gradient, corners, checkerboard")
	fs.StringVar(&o.bc, "bc", grid.Insulated.String(), "boundary condition: constant, insulated")
	fs.IntVar(&o.threads, "threads", runtime.NumCPU(), "worker goroutines for parallel kernels")
	fs.StringVar(&o.kernel, "kernel", stencil.NamePool, "update kernel: serial, pool, forkjoin")
	fs.Float64Var(&o.boundaryValue, "boundary-value", 0, "edge temperature for the constant boundary")
	fs.BoolVar(&o.verbose, "verbose", false, "log progress while stepping")
	fs.StringVar(&o.bench, "bench", "", "comma-separated square grid sizes to benchmark instead of a single run")
	fs.StringVar(&o.cpuProfile, "cpuprofile", "", "write a CPU profile to this file")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return o, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "heatflow:", err)
		return 2
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	if o.cpuProfile != "" {
		stop, err := startCPUProfile(o.cpuProfile)
		if err != nil {
			fmt.Fprintln(stderr, "heatflow: cpuprofile:", err)
			return 1
		}
		defer stop()
	}

	if o.bench != "" {
		err = runBench(o, logger, stdout)
	} else {
		err = runSimulation(o, logger, stdout)
	}
	if err != nil {
		fmt.Fprintln(stderr, "heatflow:", err)
		return 1
	}
	return 0
}

func runSimulation(o options, logger *slog.Logger, stdout io.Writer) error {
	ic, err := grid.ParseInitialCondition(o.ic)
	if err != nil {
		return err
	}
	bc, err := grid.ParseBoundary(o.bc)
	if err != nil {
		return err
	}
	g, err := grid.New(o.nx, o.ny, o.alpha, o.dt, grid.WithBoundaryValue(o.boundaryValue))
	if err != nil {
		return err
	}
	if err = g.SetInitialConditions(ic); err != nil {
		return err
	}
	if err = g.SetBoundaryConditions(bc); err != nil {
		return err
	}
	initialMax := grid.Max(g.T())
	initialRegions := len(grid.HotRegions(g.T(), initialMax/2, grid.Conn4))

	k, err := stencil.New(o.kernel, o.threads)
	if err != nil {
		return err
	}
	s, err := heat.New(g, k, heat.WithLogger(logger))
	if err != nil {
		_ = k.Close()
		return err
	}
	defer s.Close()

	final, stats, err := s.Simulate(o.steps, bc, o.verbose)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "grid\t%d x %d\n", o.nx, o.ny)
	fmt.Fprintf(w, "stability ratio\t%.4f (limit %.2f)\n", g.StabilityRatio(), grid.StabilityLimit)
	fmt.Fprintf(w, "kernel\t%s (%d threads)\n", stats.Kernel, stats.NumThreads)
	fmt.Fprintf(w, "steps\t%d\n", stats.StepsCompleted)
	fmt.Fprintf(w, "elapsed\t%s\n", stats.Elapsed)
	fmt.Fprintf(w, "cells/s\t%.4g\n", stats.CellsPerSecond)
	fmt.Fprintf(w, "max\t%.6g -> %.6g\n", initialMax, grid.Max(final))
	fmt.Fprintf(w, "min\t%.6g\n", grid.Min(final))
	fmt.Fprintf(w, "mean\t%.6g\n", grid.Mean(final))
	fmt.Fprintf(w, "energy\t%.10g -> %.10g\n", stats.InitialEnergy, stats.FinalEnergy)
	fmt.Fprintf(w, "hot regions\t%d -> %d (>= %.6g)\n",
		initialRegions, len(grid.HotRegions(final, initialMax/2, grid.Conn4)), initialMax/2)
	fmt.Fprintf(w, "finite\t%t\n", grid.AllFinite(final))
	return w.Flush()
}

func runBench(o options, logger *slog.Logger, stdout io.Writer) error {
	sizes, err := parseSizes(o.bench)
	if err != nil {
		return err
	}
	ic, err := grid.ParseInitialCondition(o.ic)
	if err != nil {
		return err
	}
	bc, err := grid.ParseBoundary(o.bc)
	if err != nil {
		return err
	}

	res, err := bench.Run(sizes, o.steps,
		bench.WithThreads(max(o.threads, 0)),
		bench.WithParams(o.alpha, o.dt),
		bench.WithInitialCondition(ic),
		bench.WithBoundary(bc),
		bench.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "size\tcells\tserial\tcells/s\tparallel\tcells/s\tspeedup\t")
	for _, row := range res.Rows {
		fmt.Fprintf(w, "%d\t%d\t%s\t%.3g\t", row.Size, row.Cells, row.Serial.Elapsed, row.Serial.Stats.CellsPerSecond)
		if row.Parallel != nil {
			fmt.Fprintf(w, "%s\t%.3g\t%.2fx\t\n", row.Parallel.Elapsed, row.Parallel.Stats.CellsPerSecond, row.Speedup)
		} else {
			fmt.Fprint(w, "-\t-\t-\t\n")
		}
	}
	if err = w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "steps=%d monotonic=%t\n", res.Steps, res.Monotonic())
	return nil
}

// parseSizes parses "25,50,100".
func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bench size %q: %w", f, err)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// startCPUProfile writes a CPU profile to path until the returned stop runs.
func startCPUProfile(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	var once sync.Once
	return func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		})
	}, nil
}
