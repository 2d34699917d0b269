// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/fastview/internal/tensor"
)

// Expr is a lazy elementwise expression.
type Expr[T DType] = tensor.Expr[T]

// Op is the operator tag of an expression node.
type Op = tensor.Op

// Expression operators.
const (
	OpAdd = tensor.OpAdd
	OpSub = tensor.OpSub
	OpMul = tensor.OpMul
	OpDiv = tensor.OpDiv
	OpNeg = tensor.OpNeg
)

// Scalar wraps a value as an expression operand.
func Scalar[T DType](v T) Source[T] {
	return tensor.Scalar(v)
}

// Add returns the lazy elementwise sum a + b.
// Panics if neither operand is a Scalar and their shapes differ.
func Add[T DType](a, b Source[T]) *Expr[T] {
	return tensor.Add(a, b)
}

// Sub returns the lazy elementwise difference a - b.
func Sub[T DType](a, b Source[T]) *Expr[T] {
	return tensor.Sub(a, b)
}

// Mul returns the lazy elementwise product a * b.
func Mul[T DType](a, b Source[T]) *Expr[T] {
	return tensor.Mul(a, b)
}

// Div returns the lazy elementwise quotient a / b.
func Div[T DType](a, b Source[T]) *Expr[T] {
	return tensor.Div(a, b)
}

// Neg returns the lazy elementwise negation -a.
func Neg[T DType](a Source[T]) *Expr[T] {
	return tensor.Neg(a)
}

// AddScalar returns a + s.
func AddScalar[T DType](a Source[T], s T) *Expr[T] {
	return tensor.AddScalar(a, s)
}

// SubScalar returns a - s.
func SubScalar[T DType](a Source[T], s T) *Expr[T] {
	return tensor.SubScalar(a, s)
}

// MulScalar returns a * s.
func MulScalar[T DType](a Source[T], s T) *Expr[T] {
	return tensor.MulScalar(a, s)
}

// DivScalar returns a / s.
func DivScalar[T DType](a Source[T], s T) *Expr[T] {
	return tensor.DivScalar(a, s)
}
