package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect reads every element of src in row-major order.
func collect[T DType](src Source[T]) []T {
	var out []T
	each(src, func(v T) { out = append(out, v) })
	return out
}

func TestViewRow(t *testing.T) {
	a := Iota[float64](Shape{2, 3})
	v, err := a.View(Index(1), All)
	require.NoError(t, err)

	assertEqualShape(t, Shape{3}, v.Shape(), "reduced shape")
	assertEqualShape(t, Shape{1, 3}, v.NaturalShape(), "natural shape")
	assert.Equal(t, 3, v.Offset())
	assert.Equal(t, []int{1}, v.Strides())
	assert.Equal(t, []int{1}, v.Retained())
	assert.Equal(t, 1, v.Rank())
	assert.True(t, v.Contiguous())
	assert.Equal(t, []float64{3, 4, 5}, collect[float64](v))
	assert.Equal(t, 12.0, v.Sum())
}

func TestViewColumn(t *testing.T) {
	a := Iota[float64](Shape{4, 3})
	v := a.MustView(All, Index(1))

	assertEqualShape(t, Shape{4}, v.Shape(), "reduced shape")
	assertEqualShape(t, Shape{4, 1}, v.NaturalShape(), "natural shape")
	assert.Equal(t, 1, v.Offset())
	assert.Equal(t, []int{3}, v.Strides())
	assert.False(t, v.Contiguous())
	assert.Equal(t, []float64{1, 4, 7, 10}, collect[float64](v))
	assert.Equal(t, 22.0, v.Sum())
}

func TestView3D(t *testing.T) {
	a := Iota[int64](Shape{4, 4, 3})
	v := a.MustView(Index(2), All, Seq(0, 2))

	assertEqualShape(t, Shape{4, 2}, v.Shape(), "reduced shape")
	assertEqualShape(t, Shape{1, 4, 2}, v.NaturalShape(), "natural shape")
	assert.Equal(t, []int64{24, 25, 27, 28, 30, 31, 33, 34}, collect[int64](v))
	assert.Equal(t, int64(232), v.Sum())
	assert.Equal(t, int64(31), v.At(2, 1))
}

func TestViewStepped(t *testing.T) {
	a := Iota[int32](Shape{10})
	v := a.MustView(SeqStep(1, 10, 3))

	assertEqualShape(t, Shape{3}, v.Shape(), "reduced shape")
	assert.Equal(t, []int{3}, v.Strides())
	assert.Equal(t, []int32{1, 4, 7}, collect[int32](v))
}

func TestViewFixedRange(t *testing.T) {
	a := Iota[float32](Shape{4, 3})
	v := a.MustView(Fall, FSeq(1, 2))

	assertEqualShape(t, Shape{4, 1}, v.Shape(), "fixed ranges keep their axis")
	assertEqualShape(t, Shape{4, 1}, v.NaturalShape(), "natural shape")
	assert.Equal(t, float32(22), v.Sum())
}

func TestViewAllIsIdentity(t *testing.T) {
	a := Iota[float64](Shape{2, 3, 4})
	v := a.MustView(All, All, All)

	assertEqualShape(t, a.Shape(), v.Shape(), "reduced shape")
	assertEqualShape(t, a.Shape(), v.NaturalShape(), "natural shape")
	assert.Equal(t, a.Strides(), v.Strides())
	assert.Equal(t, 0, v.Offset())
	assert.True(t, v.Contiguous())
	assert.Equal(t, a.Data(), collect[float64](v))
}

func TestViewAllIndices(t *testing.T) {
	a := Iota[float64](Shape{2, 3})
	v := a.MustView(Index(1), Index(2))

	assertEqualShape(t, Shape{}, v.Shape(), "scalar view")
	assertEqualShape(t, Shape{1, 1}, v.NaturalShape(), "natural shape")
	assert.Equal(t, 5.0, v.At())
	assert.Equal(t, 5.0, v.Sum())
}

func TestViewSelectionErrors(t *testing.T) {
	a := Zeros[float64](Shape{2, 3})

	_, err := a.View(Index(1))
	assert.ErrorIs(t, err, ErrSelectorCount)

	_, err = a.View(Index(2), All)
	assert.ErrorIs(t, err, ErrSelectorOutOfRange)

	assert.Panics(t, func() { a.MustView(All, Seq(0, 4)) })
}

func TestViewWritesThrough(t *testing.T) {
	a := Zeros[float64](Shape{3, 3})
	col := a.MustView(All, Index(2))

	col.Set(5, 1)
	assert.Equal(t, 5.0, a.At(1, 2))

	col.Fill(1)
	assert.Equal(t, 3.0, a.Sum())
	assert.Equal(t, 1.0, a.At(0, 2))
	assert.Equal(t, 0.0, a.At(0, 1))

	assert.Panics(t, func() { col.Set(1, 3) })
}

func TestViewOfView(t *testing.T) {
	a := Iota[float64](Shape{4, 4, 3})
	plane := a.MustView(All, Index(1), All) // (4, 3), natural (4, 1, 3)
	sub, err := plane.View(Seq(1, 3), Index(2))
	require.NoError(t, err)

	assertEqualShape(t, Shape{2}, sub.Shape(), "reduced shape")
	assertEqualShape(t, Shape{2, 1, 1}, sub.NaturalShape(), "natural shape")
	assert.Equal(t, []int{0}, sub.Retained())
	// a[1][1][2] = 17, a[2][1][2] = 29
	assert.Equal(t, []float64{17, 29}, collect[float64](sub))

	_, err = plane.View(All)
	assert.ErrorIs(t, err, ErrSelectorCount)
}

func TestViewMaterialize(t *testing.T) {
	a := Iota[float64](Shape{4, 3})
	m, err := a.MustView(All, Index(1)).Materialize()
	require.NoError(t, err)

	assertEqualShape(t, Shape{4}, m.Shape(), "materialized shape")
	assert.Equal(t, []float64{1, 4, 7, 10}, m.Data())

	m.Set(0, 0)
	assert.Equal(t, 1.0, a.At(0, 1), "materialized copy is independent")
}

func TestViewStale(t *testing.T) {
	a := Iota[float64](Shape{2, 3})
	v := a.MustView(Index(0), All)
	a.Release()

	_, err := v.Materialize()
	assert.ErrorIs(t, err, ErrStaleView)
	assert.Panics(t, func() { v.Sum() })
	assert.Panics(t, func() { v.Fill(1) })
}

func TestViewString(t *testing.T) {
	a := Zeros[int32](Shape{4, 3})
	assert.Equal(t, "View[int32][4]@1", a.MustView(All, Index(1)).String())
}
