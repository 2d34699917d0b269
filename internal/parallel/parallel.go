// Package parallel partitions index ranges across goroutines for fastview's
// copy engine.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 1 << 15, // Element copies are cheap; only large transfers pay off.
	}
}

// Chunks splits [0, n) into contiguous, disjoint [start, end) ranges.
// A single range is returned when parallelism is disabled or n is too small.
func Chunks(n int, cfg Config) [][2]int {
	if n <= 0 {
		return nil
	}
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < 2*cfg.MinChunkSize {
		return [][2]int{{0, n}}
	}

	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)
	chunks := make([][2]int, 0, (n+chunkSize-1)/chunkSize)
	for start := 0; start < n; start += chunkSize {
		chunks = append(chunks, [2]int{start, min(start+chunkSize, n)})
	}
	return chunks
}

// Range executes f(start, end) for every chunk of [0, n).
// Chunks never overlap, so f may write the positions of its own range freely.
// Falls back to a single sequential call if there is only one chunk.
func Range(n int, f func(start, end int), cfg Config) {
	chunks := Chunks(n, cfg)
	if len(chunks) == 1 {
		f(chunks[0][0], chunks[0][1])
		return
	}

	var wg sync.WaitGroup
	for _, c := range chunks {
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(c[0], c[1])
	}
	wg.Wait()
}
