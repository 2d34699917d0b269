package tensor

import (
	"errors"
	"fmt"
	"sync"

	"github.com/born-ml/fastview/internal/parallel"
)

var (
	parallelMu  sync.RWMutex
	parallelCfg = parallel.DefaultConfig()
)

// SetParallelConfig sets how large transfers are partitioned across workers.
func SetParallelConfig(cfg parallel.Config) {
	parallelMu.Lock()
	defer parallelMu.Unlock()
	parallelCfg = cfg
}

// ParallelConfig returns the current partitioning configuration.
func ParallelConfig() parallel.Config {
	parallelMu.RLock()
	defer parallelMu.RUnlock()
	return parallelCfg
}

// Assign copies src into dst element by element.
//
// The source must bind to dst.Shape() under ResolveShapes; otherwise a
// *ShapeError wrapping ErrIncompatibleShape is returned and dst is untouched.
// Expressions are evaluated per element straight into dst. If src reads
// storage that dst overwrites at other positions, src is copied first.
func Assign[T DType](dst Target[T], src Source[T]) error {
	if _, err := Resolve(src, dst.Shape()); err != nil {
		var se *ShapeError
		if errors.As(err, &se) {
			se.Op = "assign"
		}
		return err
	}

	dl := dst.layout()
	if !dl.buf.alive() {
		return fmt.Errorf("assign: destination: %w", ErrStaleView)
	}
	if err := checkAlive(src); err != nil {
		return fmt.Errorf("assign: source: %w", err)
	}

	if aliases(dl, src) {
		src = materialize(src)
	}
	transfer(dl, src)
	return nil
}

// MustAssign is like Assign but panics on error.
func MustAssign[T DType](dst Target[T], src Source[T]) {
	if err := Assign(dst, src); err != nil {
		panic(err)
	}
}

// FromSource declares a new tensor of the given shape initialized from src.
//
// Example:
//
//	a := tensor.Iota[float64](Shape{2, 3})
//	b, err := tensor.FromSource[float64](Shape{1, 1, 3, 1}, a.MustView(Index(1), All))
//	// b.Sum() == 12
func FromSource[T DType](shape Shape, src Source[T]) (*Tensor[T], error) {
	t, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	if err := Assign[T](t, src); err != nil {
		return nil, err
	}
	return t, nil
}

// MustFromSource is like FromSource but panics on error.
func MustFromSource[T DType](shape Shape, src Source[T]) *Tensor[T] {
	t, err := FromSource(shape, src)
	if err != nil {
		panic(err)
	}
	return t
}

// Materialize evaluates src into a new tensor of src's reduced shape.
func Materialize[T DType](src Source[T]) (*Tensor[T], error) {
	if err := checkAlive(src); err != nil {
		return nil, err
	}
	return materialize(src), nil
}

func materialize[T DType](src Source[T]) *Tensor[T] {
	t := Zeros[T](src.Shape())
	transfer(t.layout(), src)
	return t
}

// transfer writes the k-th element of src to the k-th element of dst.
// The callers guarantee equal element counts and equal core shapes, so the
// row-major orders of both sides enumerate matching elements.
func transfer[T DType](dst layout[T], src Source[T]) {
	n := dst.size()
	dd := dst.buf.data

	if s, ok := src.(strided[T]); ok {
		sl := s.layout()
		sd := sl.buf.data
		if dst.contiguous() && sl.contiguous() {
			copy(dd[dst.offset:dst.offset+n], sd[sl.offset:sl.offset+n])
			return
		}
		parallel.Range(n, func(start, end int) {
			dc, sc := dst.cursor(start), sl.cursor(start)
			for k := start; k < end; k++ {
				dd[dc.off] = sd[sc.off]
				dc.next()
				sc.next()
			}
		}, ParallelConfig())
		return
	}

	parallel.Range(n, func(start, end int) {
		dc := dst.cursor(start)
		for k := start; k < end; k++ {
			dd[dc.off] = src.evalAt(k)
			dc.next()
		}
	}, ParallelConfig())
}

// leaves returns the layouts of every strided operand reachable from src.
func leaves[T DType](src Source[T], out []layout[T]) []layout[T] {
	switch s := src.(type) {
	case strided[T]:
		return append(out, s.layout())
	case *Expr[T]:
		out = leaves(s.lhs, out)
		if s.rhs != nil {
			out = leaves(s.rhs, out)
		}
	}
	return out
}

func checkAlive[T DType](src Source[T]) error {
	for _, l := range leaves(src, nil) {
		if !l.buf.alive() {
			return ErrStaleView
		}
	}
	return nil
}

// aliases reports whether writing dst could change a value src has yet
// to read. A leaf visiting exactly dst's positions in dst's order is safe.
func aliases[T DType](dst layout[T], src Source[T]) bool {
	for _, l := range leaves(src, nil) {
		if l.overlaps(dst) && !l.sameAddresses(dst) {
			return true
		}
	}
	return false
}
