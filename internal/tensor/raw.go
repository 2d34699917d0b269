package tensor

import "sync/atomic"

// buffer is the storage owned by a Tensor and borrowed by its views.
// Releasing it drops the data and flips the released flag, so views that
// outlive their tensor fail with ErrStaleView instead of reading stale memory.
type buffer[T DType] struct {
	data     []T
	released atomic.Bool
}

// newBuffer creates a zero-initialized buffer of n elements.
func newBuffer[T DType](n int) *buffer[T] {
	return &buffer[T]{data: make([]T, n)}
}

func (b *buffer[T]) alive() bool {
	return !b.released.Load()
}

// mustAlive panics with ErrStaleView if the buffer was released.
func (b *buffer[T]) mustAlive() {
	if !b.alive() {
		panic(ErrStaleView)
	}
}

func (b *buffer[T]) release() {
	if b.released.CompareAndSwap(false, true) {
		b.data = nil
	}
}

// layout is the strided description of a tensor or view: which elements of
// buf it addresses and in what order.
type layout[T DType] struct {
	buf     *buffer[T]
	offset  int
	shape   Shape
	strides []int
}

// strided is implemented by sources that address a buffer directly.
type strided[T DType] interface {
	layout() layout[T]
}

func (l layout[T]) size() int {
	return l.shape.NumElements()
}

// contiguous reports whether the layout addresses a dense run of the buffer
// in row-major order. Singleton axes do not affect contiguity.
func (l layout[T]) contiguous() bool {
	want := 1
	for d := len(l.shape) - 1; d >= 0; d-- {
		if l.shape[d] == 1 {
			continue
		}
		if l.strides[d] != want {
			return false
		}
		want *= l.shape[d]
	}
	return true
}

// span returns the lowest and highest buffer positions addressed (inclusive).
func (l layout[T]) span() (lo, hi int) {
	hi = l.offset
	for d, dim := range l.shape {
		hi += (dim - 1) * l.strides[d]
	}
	return l.offset, hi
}

// sameAddresses reports whether both layouts visit the same buffer positions
// in the same order.
func (l layout[T]) sameAddresses(o layout[T]) bool {
	if l.buf != o.buf || l.offset != o.offset {
		return false
	}
	return Shape(l.coreSteps()).Equal(Shape(o.coreSteps()))
}

// coreSteps returns (extent, stride) pairs of the non-singleton axes.
func (l layout[T]) coreSteps() []int {
	var steps []int
	for d, dim := range l.shape {
		if dim != 1 {
			steps = append(steps, dim, l.strides[d])
		}
	}
	return steps
}

// overlaps reports whether two layouts share at least one buffer position
// range. Interleaved layouts count as overlapping.
func (l layout[T]) overlaps(o layout[T]) bool {
	if l.buf != o.buf {
		return false
	}
	llo, lhi := l.span()
	olo, ohi := o.span()
	return llo <= ohi && olo <= lhi
}

// at returns the buffer position of the k-th element in row-major order.
func (l layout[T]) at(k int) int {
	off := l.offset
	for d := len(l.shape) - 1; d >= 0; d-- {
		off += (k % l.shape[d]) * l.strides[d]
		k /= l.shape[d]
	}
	return off
}

// cursor walks a layout in row-major order, tracking the buffer position.
type cursor struct {
	shape   Shape
	strides []int
	idx     []int
	off     int
}

// newCursor positions a cursor at the start-th element of shape.
func newCursor(shape Shape, strides []int, base, start int) *cursor {
	c := &cursor{
		shape:   shape,
		strides: strides,
		idx:     make([]int, len(shape)),
		off:     base,
	}
	shape.Unravel(start, c.idx)
	for d, i := range c.idx {
		c.off += i * strides[d]
	}
	return c
}

func (c *cursor) next() {
	for d := len(c.shape) - 1; d >= 0; d-- {
		c.idx[d]++
		c.off += c.strides[d]
		if c.idx[d] < c.shape[d] {
			return
		}
		c.off -= c.strides[d] * c.shape[d]
		c.idx[d] = 0
	}
}

func (l layout[T]) cursor(start int) *cursor {
	return newCursor(l.shape, l.strides, l.offset, start)
}
