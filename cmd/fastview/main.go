// Package main provides the fastview CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

const version = "v0.0.1-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stdout)
		return 0
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "fastview %s\n", version)
		return 0
	case "check":
		fs := flag.NewFlagSet("check", flag.ContinueOnError)
		fs.SetOutput(stderr)
		verbose := fs.Bool("v", false, "log every scenario")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		if failed := runChecks(newLogger(stderr, *verbose)); failed > 0 {
			return 1
		}
		return 0
	case "bench":
		fs := flag.NewFlagSet("bench", flag.ContinueOnError)
		fs.SetOutput(stderr)
		verbose := fs.Bool("v", false, "debug logging")
		cfg := defaultBenchConfig()
		fs.IntVar(&cfg.Size, "n", cfg.Size, "square tensor extent")
		fs.DurationVar(&cfg.Budget, "budget", cfg.Budget, "time budget per case")
		fs.Float64Var(&cfg.ClockHz, "hz", cfg.ClockHz, "CPU clock for the cycle estimate, 0 to disable")
		fs.BoolVar(&cfg.Parallel, "parallel", cfg.Parallel, "split large copies across goroutines")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		if err := runBench(stdout, newLogger(stderr, *verbose), cfg); err != nil {
			fmt.Fprintf(stderr, "bench: %v\n", err)
			return 1
		}
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "fastview - fixed-shape tensor views")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  check      Run the mixed-rank view assignment scenarios")
	fmt.Fprintln(w, "  bench      Time contiguous, strided and lazy copies")
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
