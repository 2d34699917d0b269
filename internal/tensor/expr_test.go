package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExprIdentities(t *testing.T) {
	a := Iota[float64](Shape{4, 3})
	col := a.MustView(All, Index(1))
	want := MustFromSource[float64](Shape{1, 4, 1}, col).Data()

	identities := map[string]Source[float64]{
		"1*v": Mul[float64](Scalar(1.0), col),
		"v*1": MulScalar[float64](col, 1),
		"v-0": SubScalar[float64](col, 0),
		"v+0": AddScalar[float64](col, 0),
		"v/1": DivScalar[float64](col, 1),
		"--v": Neg[float64](Neg[float64](col)),
		"v+v-v": Sub[float64](Add[float64](col, col), col),
	}

	for name, expr := range identities {
		t.Run(name, func(t *testing.T) {
			for _, shape := range []Shape{{4}, {4, 1}, {1, 1, 4}, {1, 4, 1, 1}} {
				b, err := FromSource(shape, expr)
				require.NoError(t, err, "declare %v", shape)
				assert.Equal(t, want, b.Data(), "shape %v", shape)
			}
		})
	}
}

func TestExprShapes(t *testing.T) {
	a := Iota[float64](Shape{2, 3})
	row := a.MustView(Index(1), All)

	e := Mul[float64](Scalar(2.0), row)
	assertEqualShape(t, Shape{3}, e.Shape(), "reduced shape")
	assertEqualShape(t, Shape{1, 3}, e.NaturalShape(), "natural shape follows the view")
	assert.Equal(t, OpMul, e.Op())

	// A view and a tensor of equal reduced shape combine under the view's
	// natural shape, so the node binds wherever the view alone does.
	for _, m := range []*Expr[float64]{
		Add[float64](row, Ones[float64](Shape{3})),
		Add[float64](Ones[float64](Shape{3}), row),
	} {
		assertEqualShape(t, Shape{1, 3}, m.NaturalShape(), "view and tensor")
		assert.Equal(t, 15.0, m.Sum())
		_, err := FromSource[float64](Shape{3, 1}, m)
		assert.ErrorIs(t, err, ErrIncompatibleShape)
	}

	// Two views that disagree keep only the reduced shape.
	col := Iota[float64](Shape{3, 2}).MustView(All, Index(0))
	d := Add[float64](row, col)
	assertEqualShape(t, Shape{3}, d.NaturalShape(), "conflicting views")

	s := Add[float64](Scalar(1.0), Scalar(2.0))
	assertEqualShape(t, Shape{}, s.Shape(), "scalar expression")
	assert.Equal(t, 3.0, s.Sum())
}

func TestExprShapeMismatch(t *testing.T) {
	a := Iota[float64](Shape{2, 3})

	defer func() {
		r := recover()
		require.NotNil(t, r, "mismatched operands must panic at build time")
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrShapeMismatch))

		var se *ShapeError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, "add", se.Op)
		assertEqualShape(t, Shape{3}, se.Have, "left operand")
		assertEqualShape(t, Shape{2}, se.Want, "right operand")
	}()
	Add[float64](a.MustView(Index(0), All), a.MustView(All, Index(0)))
}

func TestExprNoBroadcasting(t *testing.T) {
	a := Zeros[float32](Shape{3, 1})
	b := Zeros[float32](Shape{3, 4})
	assert.Panics(t, func() { Add[float32](a, b) })
}

func TestExprLazy(t *testing.T) {
	a := Iota[int32](Shape{2, 3})
	e := AddScalar[int32](a.MustView(Index(0), All), 10)

	// Operands are read at evaluation time, not when the node is built.
	a.Set(100, 0, 0)
	b := MustFromSource[int32](Shape{3}, e)
	assert.Equal(t, []int32{110, 11, 12}, b.Data())

	// Evaluating twice gives the same result and leaves operands untouched.
	c := MustFromSource[int32](Shape{1, 3}, e)
	assert.Equal(t, b.Data(), c.Data())
	assert.Equal(t, []int32{100, 1, 2, 3, 4, 5}, a.Data())
}

func TestExprArithmetic(t *testing.T) {
	x, err := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)
	y, err := FromSlice([]float64{4, 3, 2, 1}, Shape{2, 2})
	require.NoError(t, err)

	tests := []struct {
		name string
		expr *Expr[float64]
		want []float64
	}{
		{"add", Add[float64](x, y), []float64{5, 5, 5, 5}},
		{"sub", Sub[float64](x, y), []float64{-3, -1, 1, 3}},
		{"mul", Mul[float64](x, y), []float64{4, 6, 6, 4}},
		{"div", Div[float64](x, y), []float64{0.25, 2.0 / 3.0, 1.5, 4}},
		{"neg", Neg[float64](x), []float64{-1, -2, -3, -4}},
		{"nested", Mul[float64](Add[float64](x, Scalar(1.0)), Scalar(2.0)), []float64{4, 6, 8, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Zeros[float64](Shape{2, 2})
			require.NoError(t, out.Assign(tt.expr))
			assert.InDeltaSlice(t, tt.want, out.Data(), 1e-12)
		})
	}
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "add", OpAdd.String())
	assert.Equal(t, "sub", OpSub.String())
	assert.Equal(t, "mul", OpMul.String())
	assert.Equal(t, "div", OpDiv.String())
	assert.Equal(t, "neg", OpNeg.String())
	assert.Equal(t, "unknown", Op(99).String())
}

func TestReductions(t *testing.T) {
	a := Iota[float64](Shape{4, 3})
	col := a.MustView(All, Index(1))

	assert.Equal(t, 22.0, Sum[float64](col))
	assert.Equal(t, 5.5, Mean[float64](col))
	assert.Equal(t, 1.0, Min[float64](col))
	assert.Equal(t, 10.0, Max[float64](col))

	neg := Neg[float64](col)
	assert.Equal(t, -22.0, neg.Sum())
	assert.Equal(t, -10.0, Min[float64](neg))
	assert.Equal(t, -1.0, Max[float64](neg))

	i := Iota[uint8](Shape{3})
	assert.Equal(t, 1.0, Mean[uint8](i))
}
