// SPDX-License-Identifier: MIT

package heat

import (
	"log/slog"
	"time"
)

// Stats summarizes one Simulate call. It is a value: later steps on the same
// solver never change a Stats already returned.
type Stats struct {
	// StepsCompleted equals the requested step count on success.
	StepsCompleted int
	// CellsPerSecond is cell updates (cells × steps) per wall-clock second.
	CellsPerSecond float64
	// NumThreads is the kernel's fixed worker count (1 for serial).
	NumThreads int
	// Kernel names the kernel that ran the steps.
	Kernel string
	// Elapsed is the wall-clock time spent stepping.
	Elapsed time.Duration
	// InitialEnergy and FinalEnergy are the field sums before and after.
	InitialEnergy float64
	FinalEnergy   float64
}

// LogValue renders Stats as a structured group.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("steps", s.StepsCompleted),
		slog.Float64("cells_per_second", s.CellsPerSecond),
		slog.Int("threads", s.NumThreads),
		slog.String("kernel", s.Kernel),
		slog.Duration("elapsed", s.Elapsed),
		slog.Float64("initial_energy", s.InitialEnergy),
		slog.Float64("final_energy", s.FinalEnergy),
	)
}

// throughput returns cells*steps per second. A zero clock reading on a
// non-empty run is treated as one nanosecond so the rate stays finite and
// positive.
func throughput(cells, steps int, elapsed time.Duration) float64 {
	if cells == 0 || steps == 0 {
		return 0
	}
	if elapsed <= 0 {
		elapsed = time.Nanosecond
	}
	return float64(cells) * float64(steps) / elapsed.Seconds()
}
