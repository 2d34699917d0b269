package tensor

import "fmt"

// View is a non-owning, strided window into a Tensor's storage.
//
// A View keeps a back-reference to its tensor's buffer, never ownership:
// it is valid only while the tensor has not been released. Writes through a
// view are visible in the tensor and in every other view of it.
type View[T DType] struct {
	buf      *buffer[T]
	offset   int
	shape    Shape // reduced shape
	strides  []int // one per reduced axis
	natural  Shape // source rank, indexed axes have extent 1
	retained []int // source axes kept by the selection
}

// Shape returns the view's reduced shape.
func (v *View[T]) Shape() Shape {
	return v.shape
}

// NaturalShape returns the shape with the rank of the source tensor, where
// axes consumed by Index selectors have extent 1.
//
// Example:
//
//	a := tensor.Zeros[float32](Shape{2, 3})
//	a.MustView(Index(1), All).NaturalShape() // (1, 3)
//	a.MustView(All, Index(1)).NaturalShape() // (2, 1)
func (v *View[T]) NaturalShape() Shape {
	return v.natural
}

// Strides returns the buffer strides of the reduced axes.
func (v *View[T]) Strides() []int {
	return v.strides
}

// Offset returns the buffer position of the view's first element.
func (v *View[T]) Offset() int {
	return v.offset
}

// Rank returns the number of reduced axes.
func (v *View[T]) Rank() int {
	return len(v.shape)
}

// Retained returns the source axes that survive the selection, in order.
func (v *View[T]) Retained() []int {
	return v.retained
}

// NumElements returns the number of elements the view addresses.
func (v *View[T]) NumElements() int {
	return v.shape.NumElements()
}

// Contiguous reports whether the view addresses a dense row-major run.
func (v *View[T]) Contiguous() bool {
	return v.layout().contiguous()
}

// Valid reports whether the source tensor is still alive.
func (v *View[T]) Valid() bool {
	return v.buf.alive()
}

func (v *View[T]) layout() layout[T] {
	return layout[T]{buf: v.buf, offset: v.offset, shape: v.shape, strides: v.strides}
}

func (v *View[T]) evalAt(k int) T {
	return v.buf.data[v.layout().at(k)]
}

// At returns the element at the given indices of the reduced shape.
// Panics if indices are out of bounds or the view is stale.
func (v *View[T]) At(indices ...int) T {
	v.buf.mustAlive()
	return v.buf.data[offsetOf(v.shape, v.strides, v.offset, indices)]
}

// Set writes value at the given indices of the reduced shape.
// Panics if indices are out of bounds or the view is stale.
func (v *View[T]) Set(value T, indices ...int) {
	v.buf.mustAlive()
	v.buf.data[offsetOf(v.shape, v.strides, v.offset, indices)] = value
}

// Fill writes value to every addressed element.
func (v *View[T]) Fill(value T) {
	v.buf.mustAlive()
	l := v.layout()
	c := l.cursor(0)
	for k := l.size(); k > 0; k-- {
		v.buf.data[c.off] = value
		c.next()
	}
}

// Sum returns the sum of the addressed elements.
func (v *View[T]) Sum() T {
	return Sum[T](v)
}

// Assign copies src into the addressed elements, reconciling singleton axes.
//
// Example:
//
//	b := tensor.Zeros[float64](Shape{4, 4, 3})
//	err := b.MustView(All, Index(0), Index(1)).Assign(a.MustView(All, Index(1)))
func (v *View[T]) Assign(src Source[T]) error {
	return Assign[T](v, src)
}

// Materialize copies the addressed elements into a new tensor of the
// view's reduced shape.
func (v *View[T]) Materialize() (*Tensor[T], error) {
	return Materialize[T](v)
}

// View selects a sub-range of the view's reduced shape without copying.
// The result keeps the natural rank of the original tensor.
func (v *View[T]) View(sels ...Selector) (*View[T], error) {
	if !v.buf.alive() {
		return nil, ErrStaleView
	}
	sel, err := selectAxes(v.shape, v.strides, sels)
	if err != nil {
		return nil, err
	}
	natural := v.natural.Clone()
	for j, axis := range v.retained {
		natural[axis] = sel.spans[j].extent
	}
	retained := make([]int, len(sel.kept))
	for i, j := range sel.kept {
		retained[i] = v.retained[j]
	}
	return &View[T]{
		buf:      v.buf,
		offset:   v.offset + sel.offset,
		shape:    sel.shape,
		strides:  sel.strides,
		natural:  natural,
		retained: retained,
	}, nil
}

// MustView is like View but panics on an invalid selection.
func (v *View[T]) MustView(sels ...Selector) *View[T] {
	sub, err := v.View(sels...)
	if err != nil {
		panic(err)
	}
	return sub
}

// String returns a human-readable representation of the view.
func (v *View[T]) String() string {
	return fmt.Sprintf("View[%s]%v@%d", inferDataType[T](), []int(v.shape), v.offset)
}
