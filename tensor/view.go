// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/fastview/internal/tensor"
)

// View is a non-owning window onto a tensor's buffer.
//
// Example:
//
//	a := tensor.Iota[float64](tensor.Shape{4, 3})
//	col := a.MustView(tensor.All, tensor.Index(1))  // shape (4), natural (4, 1)
type View[T DType] = tensor.View[T]

// Selectors

// Selector chooses the positions of one axis when building a view.
type Selector = tensor.Selector

// Index selects a single position and drops the axis.
type Index = tensor.Index

// Range selects Start <= i < End with stride Step.
type Range = tensor.Range

// FixedRange is a range whose length is fixed when it is built.
type FixedRange = tensor.FixedRange

// All selects every position of an axis.
var All = tensor.All

// Fall is All under the fixed-range spelling.
var Fall = tensor.Fall

// Seq returns the range [start, end) with step 1.
func Seq(start, end int) Range {
	return tensor.Seq(start, end)
}

// SeqStep returns the range [start, end) with the given step.
func SeqStep(start, end, step int) Range {
	return tensor.SeqStep(start, end, step)
}

// FSeq returns the fixed range [start, end). Panics if the range is empty.
func FSeq(start, end int) FixedRange {
	return tensor.FSeq(start, end)
}

// Shape resolution

// Plan describes how a source shape binds to a destination shape.
type Plan = tensor.Plan

// Resolve reports whether src can be assigned to a destination of shape dst.
func Resolve[T DType](src Source[T], dst Shape) (Plan, error) {
	return tensor.Resolve(src, dst)
}

// ResolveShapes is Resolve on bare shapes.
func ResolveShapes(reduced, natural, dst Shape) (Plan, error) {
	return tensor.ResolveShapes(reduced, natural, dst)
}

// gonum interop

// ToDense copies src into a gonum matrix. Row views become 1 x n and
// column views n x 1.
func ToDense[T DType](src Source[T]) (*mat.Dense, error) {
	return tensor.ToDense(src)
}

// FromDense creates a tensor of the given shape from a gonum matrix.
func FromDense[T DType](m mat.Matrix, shape Shape) (*Tensor[T], error) {
	return tensor.FromDense[T](m, shape)
}

// Dense wraps a gonum matrix as an assignment source of shape (rows, cols).
func Dense[T DType](m mat.Matrix) Source[T] {
	return tensor.Dense[T](m)
}
