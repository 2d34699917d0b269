// Package timeit measures the run time of a function for performance
// reports. It is never used to decide correctness.
package timeit

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Config controls how long a measurement runs.
type Config struct {
	Budget  time.Duration // Stop once the measured runs add up to this.
	MaxRuns int           // Upper bound on measured runs; <= 0 means unbounded.
	ClockHz float64       // CPU clock used to estimate cycles; 0 disables the estimate.
}

// DefaultConfig returns a one second budget with no cycle estimate.
func DefaultConfig() Config {
	return Config{
		Budget: time.Second,
	}
}

// Result summarizes a measurement.
type Result struct {
	Runs   int
	Mean   time.Duration
	Min    time.Duration
	Max    time.Duration
	Cycles float64 // Estimated cycles per run, 0 without Config.ClockHz.
}

// Measure runs fn once to warm caches, then repeatedly until the budget or
// MaxRuns is exhausted, and reports mean, min and max time per run.
func Measure(fn func(), cfg Config) Result {
	if cfg.Budget <= 0 {
		cfg.Budget = DefaultConfig().Budget
	}
	maxRuns := cfg.MaxRuns
	if maxRuns <= 0 {
		maxRuns = math.MaxInt
	}

	fn()

	samples := make([]float64, 0, 64)
	var total time.Duration
	for len(samples) < maxRuns {
		start := time.Now()
		fn()
		elapsed := time.Since(start)

		samples = append(samples, float64(elapsed))
		total += elapsed
		if total > cfg.Budget {
			break
		}
	}

	mean := stat.Mean(samples, nil)
	res := Result{
		Runs: len(samples),
		Mean: time.Duration(mean),
		Min:  time.Duration(floats.Min(samples)),
		Max:  time.Duration(floats.Max(samples)),
	}
	if cfg.ClockHz > 0 {
		res.Cycles = mean / float64(time.Second) * cfg.ClockHz
	}
	return res
}

// String formats the result as
// "N runs, mean time: 1.5 µs. min time: 1 µs. max time: 2 µs." with the
// cycle estimate appended when present.
func (r Result) String() string {
	s := fmt.Sprintf("%d runs, mean time: %s. min time: %s. max time: %s.",
		r.Runs, formatDuration(r.Mean), formatDuration(r.Min), formatDuration(r.Max))
	if r.Cycles > 0 {
		s += fmt.Sprintf(" cycles: %d", uint64(r.Cycles))
	}
	return s
}

// formatDuration picks the largest unit that keeps the value >= 1.
func formatDuration(d time.Duration) string {
	sec := d.Seconds()
	switch {
	case sec >= 1:
		return fmt.Sprintf("%.6g s", sec)
	case sec >= 1e-3:
		return fmt.Sprintf("%.6g ms", sec/1e-3)
	case sec >= 1e-6:
		return fmt.Sprintf("%.6g µs", sec/1e-6)
	default:
		return fmt.Sprintf("%.6g ns", sec/1e-9)
	}
}
