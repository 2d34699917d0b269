package tensor

import "fmt"

// Source is anything the assignment engine can read: a Tensor, a View, a
// lazy Expr, a Scalar, or a matrix adapter.
//
// Shape is the reduced shape, i.e. the shape after Index selectors removed
// their axes. NaturalShape keeps the rank of the selected tensor and marks
// indexed axes with extent 1; the two are equal for tensors and scalars.
type Source[T DType] interface {
	Shape() Shape
	NaturalShape() Shape
	evalAt(k int) T // k-th element in row-major order of Shape()
}

// Target is a writable Source: a Tensor or a View.
type Target[T DType] interface {
	Source[T]
	strided[T]
}

// Tensor is a fixed-shape, row-major tensor that owns its storage.
//
// Example:
//
//	a := tensor.Zeros[float64](Shape{2, 3})
//	a.Iota()                          // 0..5
//	row := a.MustView(Index(1), All)  // [3 4 5]
//	b := tensor.MustFromSource[float64](Shape{1, 1, 3}, row)
type Tensor[T DType] struct {
	buf     *buffer[T]
	shape   Shape
	strides []int
}

// New creates a zero-filled tensor with the given shape.
func New[T DType](shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Tensor[T]{
		buf:     newBuffer[T](shape.NumElements()),
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}, nil
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrInvalidShape, []int(shape), shape.NumElements(), len(data))
	}

	t, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	copy(t.buf.data, data)
	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape
}

// NaturalShape returns the tensor's shape; tensors have no eliminated axes.
func (t *Tensor[T]) NaturalShape() Shape {
	return t.shape
}

// Strides returns the tensor's row-major strides.
func (t *Tensor[T]) Strides() []int {
	return t.strides
}

// Rank returns the number of dimensions.
func (t *Tensor[T]) Rank() int {
	return len(t.shape)
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return inferDataType[T]()
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return t.shape.NumElements()
}

// Data returns the tensor's storage (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Data() []T {
	t.buf.mustAlive()
	return t.buf.data
}

func (t *Tensor[T]) layout() layout[T] {
	return layout[T]{buf: t.buf, offset: 0, shape: t.shape, strides: t.strides}
}

func (t *Tensor[T]) evalAt(k int) T {
	return t.buf.data[k]
}

// offsetOf validates indices against shape and returns the buffer position.
func offsetOf(shape Shape, strides []int, base int, indices []int) int {
	if len(indices) != len(shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(shape), len(indices)))
	}
	offset := base
	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, shape[i]))
		}
		offset += idx * strides[i]
	}
	return offset
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T]) At(indices ...int) T {
	t.buf.mustAlive()
	return t.buf.data[offsetOf(t.shape, t.strides, 0, indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T]) Set(value T, indices ...int) {
	t.buf.mustAlive()
	t.buf.data[offsetOf(t.shape, t.strides, 0, indices)] = value
}

// Fill sets every element to value.
func (t *Tensor[T]) Fill(value T) {
	data := t.Data()
	for i := range data {
		data[i] = value
	}
}

// Zero sets every element to zero.
func (t *Tensor[T]) Zero() {
	clear(t.Data())
}

// Iota fills the tensor with 0, 1, 2, ... in row-major order.
func (t *Tensor[T]) Iota() {
	data := t.Data()
	for i := range data {
		data[i] = T(i)
	}
}

// Sum returns the sum of all elements.
func (t *Tensor[T]) Sum() T {
	return Sum[T](t)
}

// Assign copies src into the tensor, reconciling singleton axes.
func (t *Tensor[T]) Assign(src Source[T]) error {
	return Assign[T](t, src)
}

// View selects a sub-range of the tensor without copying.
// One selector per axis is required.
//
// Example:
//
//	a := tensor.Zeros[float32](Shape{4, 4, 3})
//	v, err := a.View(Index(2), All, Seq(0, 2)) // shape (4, 2)
func (t *Tensor[T]) View(sels ...Selector) (*View[T], error) {
	if !t.buf.alive() {
		return nil, ErrStaleView
	}
	sel, err := selectAxes(t.shape, t.strides, sels)
	if err != nil {
		return nil, err
	}
	natural := make(Shape, len(t.shape))
	for d, sp := range sel.spans {
		natural[d] = sp.extent
	}
	return &View[T]{
		buf:      t.buf,
		offset:   sel.offset,
		shape:    sel.shape,
		strides:  sel.strides,
		natural:  natural,
		retained: sel.kept,
	}, nil
}

// MustView is like View but panics on an invalid selection.
func (t *Tensor[T]) MustView(sels ...Selector) *View[T] {
	v, err := t.View(sels...)
	if err != nil {
		panic(err)
	}
	return v
}

// Clone creates a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	c := Zeros[T](t.shape)
	copy(c.buf.data, t.Data())
	return c
}

// Release drops the tensor's storage. Views of a released tensor report
// ErrStaleView from then on. Releasing twice is a no-op.
func (t *Tensor[T]) Release() {
	t.buf.release()
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%s]%v", t.DType(), []int(t.shape))
}
