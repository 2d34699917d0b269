// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides fixed-shape tensors, views into them and an
// assignment engine that reconciles views of different rank.
//
// # Overview
//
// A Tensor owns a row-major buffer. A View is a non-owning window onto a
// tensor, selected per axis with one of four selectors:
//   - Index(i): a single position; the axis is dropped from the view's shape
//   - Seq(start, end) and SeqStep(start, end, step): a half-open range
//   - All: every position of the axis
//   - FSeq(start, end): a fixed-length range that keeps its axis
//
// # Basic Usage
//
//	import "github.com/born-ml/fastview/tensor"
//
//	func main() {
//	    a := tensor.Iota[float64](tensor.Shape{2, 3})
//
//	    // Row 1 of a, shape (3), natural shape (1, 3).
//	    row := a.MustView(tensor.Index(1), tensor.All)
//
//	    // Any of these receive the row; (3, 1) does not.
//	    b := tensor.MustFromSource[float64](tensor.Shape{1, 1, 3}, row)
//	    _ = b
//	}
//
// # Shapes
//
// Every view has two shapes. The reduced shape drops the axes selected with
// Index. The natural shape keeps the source's rank and reports indexed axes
// as 1. An assignment binds when the destination equals either shape, or
// when it has a different rank and the same non-singleton extents in the
// same order, with singleton axes added only before or after that block.
// Assignments never transpose: a destination of the same rank as the
// source must match it exactly.
//
//	a(1, all)  -> (3), (1, 3), (1, 1, 3), (1, 1, 3, 1)   ok
//	a(1, all)  -> (3, 1)                                 ErrIncompatibleShape
//	a(all, 1)  -> (2), (2, 1), (1, 1, 2, 1, 1)           ok
//	a(all, 1)  -> (1, 2)                                 ErrIncompatibleShape
//	b          -> (4, 1, 3) for b of shape (4, 3)        ErrIncompatibleShape
//
// # Expressions
//
// Add, Sub, Mul, Div and Neg build lazy nodes that are evaluated element by
// element when assigned or reduced:
//
//	col := a.MustView(tensor.All, tensor.Index(1))
//	c := tensor.MustFromSource[float64](tensor.Shape{2, 1}, tensor.MulScalar[float64](col, 2))
//
// # Lifetimes
//
// Views borrow their tensor's buffer. After Release the buffer is gone and
// any operation on a view that outlived it reports ErrStaleView.
package tensor
