package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/born-ml/fastview/internal/timeit"
	"github.com/born-ml/fastview/tensor"
)

type benchConfig struct {
	Size     int
	Budget   time.Duration
	ClockHz  float64
	Parallel bool
}

func defaultBenchConfig() benchConfig {
	return benchConfig{
		Size:     512,
		Budget:   timeit.DefaultConfig().Budget,
		Parallel: tensor.DefaultParallelConfig().Enabled,
	}
}

type benchCase struct {
	name string
	fn   func() error
}

func benchCases(n int) []benchCase {
	src := tensor.Iota[float64](tensor.Shape{n, n})
	dst := tensor.Zeros[float64](tensor.Shape{n, n})
	col := tensor.Zeros[float64](tensor.Shape{1, n, 1})
	half := n / 2

	return []benchCase{
		{"contiguous", func() error { return dst.Assign(src) }},
		{"row", func() error {
			return dst.MustView(tensor.Index(0), tensor.All).Assign(src.MustView(tensor.Index(half), tensor.All))
		}},
		{"column", func() error { return col.Assign(src.MustView(tensor.All, tensor.Index(half))) }},
		{"strided", func() error {
			to := dst.MustView(tensor.SeqStep(0, n-1, 2), tensor.All)
			return to.Assign(src.MustView(tensor.SeqStep(1, n, 2), tensor.All))
		}},
		{"lazy", func() error {
			return dst.Assign(tensor.AddScalar[float64](tensor.MulScalar[float64](src, 2), 1))
		}},
	}
}

// runBench times every copy kind and prints one timeit line per case.
func runBench(w io.Writer, log *slog.Logger, cfg benchConfig) error {
	if cfg.Size < 2 {
		return fmt.Errorf("size must be at least 2, got %d", cfg.Size)
	}

	saved := tensor.GetParallelConfig()
	defer tensor.SetParallelConfig(saved)
	pcfg := tensor.DefaultParallelConfig()
	pcfg.Enabled = cfg.Parallel
	tensor.SetParallelConfig(pcfg)

	log.Debug("bench", "n", cfg.Size, "budget", cfg.Budget, "parallel", cfg.Parallel, "workers", pcfg.NumWorkers)

	tcfg := timeit.Config{Budget: cfg.Budget, ClockHz: cfg.ClockHz}
	for _, c := range benchCases(cfg.Size) {
		if err := c.fn(); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
		var failed error
		res := timeit.Measure(func() {
			if err := c.fn(); err != nil && failed == nil {
				failed = err
			}
		}, tcfg)
		if failed != nil {
			return fmt.Errorf("%s: %w", c.name, failed)
		}
		fmt.Fprintf(w, "%-12s %s\n", c.name, res)
		log.Debug("case done", "name", c.name, "runs", res.Runs, "mean", res.Mean)
	}
	return nil
}
