package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToDense copies src into a gonum matrix.
//
// Sources with two non-singleton axes become an r x c matrix. A source with
// one non-singleton axis becomes a row vector when that axis is the last
// axis of its natural shape and a column vector otherwise, so a(1, all)
// yields 1 x n and a(all, 1) yields n x 1. Sources with more than two
// non-singleton axes return ErrDenseRank.
func ToDense[T DType](src Source[T]) (*mat.Dense, error) {
	if err := checkAlive(src); err != nil {
		return nil, err
	}
	r, c, err := denseDims(src.NaturalShape())
	if err != nil {
		return nil, err
	}

	data := make([]float64, 0, r*c)
	each(src, func(v T) { data = append(data, float64(v)) })
	return mat.NewDense(r, c, data), nil
}

func denseDims(natural Shape) (int, int, error) {
	core := natural.Core()
	switch len(core) {
	case 0:
		return 1, 1, nil
	case 1:
		if natural[len(natural)-1] != 1 {
			return 1, core[0], nil
		}
		return core[0], 1, nil
	case 2:
		return core[0], core[1], nil
	default:
		return 0, 0, fmt.Errorf("%w: shape %v", ErrDenseRank, []int(natural))
	}
}

// denseSource adapts a gonum matrix to a Source of shape (r, c).
type denseSource[T DType] struct {
	m     mat.Matrix
	shape Shape
}

// Dense wraps a gonum matrix as a Source of shape (rows, cols).
// Values are converted to T as they are read.
func Dense[T DType](m mat.Matrix) Source[T] {
	r, c := m.Dims()
	return &denseSource[T]{m: m, shape: Shape{r, c}}
}

func (d *denseSource[T]) Shape() Shape        { return d.shape }
func (d *denseSource[T]) NaturalShape() Shape { return d.shape }

func (d *denseSource[T]) evalAt(k int) T {
	c := d.shape[1]
	return T(d.m.At(k/c, k%c))
}

// FromDense creates a tensor of the given shape from a gonum matrix.
// The shape must bind to (rows, cols) under ResolveShapes, e.g. a 1 x n
// matrix may be declared as (n), (1, 1, n) or (n, 1, 1).
func FromDense[T DType](m mat.Matrix, shape Shape) (*Tensor[T], error) {
	return FromSource(shape, Dense[T](m))
}
