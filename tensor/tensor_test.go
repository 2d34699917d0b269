// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/fastview/tensor"
)

// TestPublicAPI walks the row and column examples through the public package.
func TestPublicAPI(t *testing.T) {
	a := tensor.Iota[float64](tensor.Shape{2, 3})

	row := a.MustView(tensor.Index(1), tensor.All)
	for _, shape := range []tensor.Shape{{3}, {1, 3}, {1, 1, 3}, {1, 1, 3, 1}, {1, 1, 3, 1, 1}} {
		b, err := tensor.FromSource[float64](shape, row)
		require.NoError(t, err, "declare %v", shape)
		assert.Equal(t, 12.0, b.Sum())
	}
	_, err := tensor.FromSource[float64](tensor.Shape{3, 1}, row)
	assert.ErrorIs(t, err, tensor.ErrIncompatibleShape)

	col := a.MustView(tensor.All, tensor.Index(1))
	for _, shape := range []tensor.Shape{{2}, {2, 1}, {1, 1, 2}, {1, 1, 2, 1, 1}} {
		b, err := tensor.FromSource[float64](shape, tensor.MulScalar[float64](col, 2))
		require.NoError(t, err, "declare %v", shape)
		assert.Equal(t, 10.0, b.Sum())
	}
	_, err = tensor.FromSource[float64](tensor.Shape{1, 2}, col)
	assert.ErrorIs(t, err, tensor.ErrIncompatibleShape)
}

func TestPublicAssign(t *testing.T) {
	a := tensor.Iota[int32](tensor.Shape{4, 3})
	b := tensor.Zeros[int32](tensor.Shape{4, 4, 3})

	dst := b.MustView(tensor.Fall, tensor.Index(0), tensor.Index(1))
	require.NoError(t, tensor.Assign[int32](dst, a.MustView(tensor.Fall, tensor.FSeq(1, 2))))
	assert.Equal(t, int32(22), tensor.Sum[int32](b))

	assert.Panics(t, func() {
		tensor.MustAssign[int32](dst, a.MustView(tensor.Index(0), tensor.All))
	})
}

func TestPublicErrors(t *testing.T) {
	a := tensor.Zeros[float32](tensor.Shape{2, 3})

	_, err := a.View(tensor.Index(0))
	assert.ErrorIs(t, err, tensor.ErrSelectorCount)

	_, err = tensor.ResolveShapes(tensor.Shape{3}, tensor.Shape{1, 3}, tensor.Shape{3, 1})
	var se *tensor.ShapeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, tensor.Shape{3, 1}, se.Want)

	v := a.MustView(tensor.Index(1), tensor.All)
	a.Release()
	_, err = tensor.Materialize[float32](v)
	assert.ErrorIs(t, err, tensor.ErrStaleView)
}

func TestPublicDense(t *testing.T) {
	a := tensor.Iota[float64](tensor.Shape{3, 2})

	m, err := tensor.ToDense[float64](a.MustView(tensor.All, tensor.Index(1)))
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 1, c)

	b, err := tensor.FromDense[float64](mat.NewDense(1, 2, []float64{7, 8}), tensor.Shape{2, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 8}, b.Data())
}

func TestPublicParallelConfig(t *testing.T) {
	saved := tensor.GetParallelConfig()
	defer tensor.SetParallelConfig(saved)

	cfg := tensor.DefaultParallelConfig()
	cfg.Enabled = false
	tensor.SetParallelConfig(cfg)
	assert.False(t, tensor.GetParallelConfig().Enabled)
}

func TestPublicFromSliceCopies(t *testing.T) {
	data := []int64{1, 2, 3, 4}
	x, err := tensor.FromSlice(data, tensor.Shape{2, 2})
	require.NoError(t, err)

	data[0] = 100
	assert.Equal(t, int64(1), x.At(0, 0), "tensor owns a copy of the slice")
	x.Set(7, 1, 1)
	assert.Equal(t, int64(4), data[3])
}
