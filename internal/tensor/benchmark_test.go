package tensor

import (
	"fmt"
	"testing"

	"github.com/born-ml/fastview/internal/parallel"
)

func BenchmarkAssign(b *testing.B) {
	for _, n := range []int{64, 512} {
		src := Iota[float64](Shape{n, n})
		dst := Zeros[float64](Shape{n, n})

		b.Run(fmt.Sprintf("Contiguous_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = dst.Assign(src)
			}
		})

		b.Run(fmt.Sprintf("Row_%d", n), func(b *testing.B) {
			row := src.MustView(Index(n/2), All)
			out := Zeros[float64](Shape{1, n})
			for i := 0; i < b.N; i++ {
				_ = out.Assign(row)
			}
		})

		b.Run(fmt.Sprintf("Column_%d", n), func(b *testing.B) {
			col := src.MustView(All, Index(n/2))
			out := Zeros[float64](Shape{n, 1})
			for i := 0; i < b.N; i++ {
				_ = out.Assign(col)
			}
		})

		b.Run(fmt.Sprintf("StridedToStrided_%d", n), func(b *testing.B) {
			from := src.MustView(SeqStep(0, n, 2), All)
			to := dst.MustView(SeqStep(1, n, 2), All)
			for i := 0; i < b.N; i++ {
				_ = to.Assign(from)
			}
		})

		b.Run(fmt.Sprintf("Expr_%d", n), func(b *testing.B) {
			e := AddScalar[float64](MulScalar[float64](src, 2), 1)
			for i := 0; i < b.N; i++ {
				_ = dst.Assign(e)
			}
		})
	}
}

func BenchmarkAssignParallel(b *testing.B) {
	src := Iota[float32](Shape{1024, 1024})
	dst := Zeros[float32](Shape{1024, 1024})
	from := src.MustView(All, SeqStep(0, 1024, 2))
	to := dst.MustView(All, SeqStep(1, 1024, 2))

	saved := ParallelConfig()
	defer SetParallelConfig(saved)

	for _, enabled := range []bool{false, true} {
		cfg := parallel.DefaultConfig()
		cfg.Enabled = enabled
		SetParallelConfig(cfg)

		b.Run(fmt.Sprintf("Enabled_%v", enabled), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = to.Assign(from)
			}
		})
	}
}

func BenchmarkResolveShapes(b *testing.B) {
	reduced, natural := Shape{3}, Shape{1, 3}
	dst := Shape{1, 1, 3, 1, 1}
	for i := 0; i < b.N; i++ {
		_, _ = ResolveShapes(reduced, natural, dst)
	}
}

func BenchmarkView(b *testing.B) {
	a := Zeros[float64](Shape{16, 16, 16})
	for i := 0; i < b.N; i++ {
		_, _ = a.View(Index(3), All, Seq(2, 10))
	}
}
