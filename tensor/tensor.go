// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/fastview/internal/parallel"
	"github.com/born-ml/fastview/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor element types: any Go integer or
// floating-point type.
type DType = tensor.DType

// DataType identifies the element type of a tensor at runtime.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Int     DataType = tensor.Int
	Uint8   DataType = tensor.Uint8
	Uint16  DataType = tensor.Uint16
	Uint32  DataType = tensor.Uint32
	Uint64  DataType = tensor.Uint64
)

// MaxRank is the largest number of dimensions a shape may have.
const MaxRank = tensor.MaxRank

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a fixed-shape, row-major tensor that owns its data.
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3})
//	x.Set(1, 0, 2)
type Tensor[T DType] = tensor.Tensor[T]

// Source is anything that can be assigned into a tensor or view:
// tensors, views, expressions and scalars.
type Source[T DType] = tensor.Source[T]

// Target is a Source that can also be written: a tensor or a view.
type Target[T DType] = tensor.Target[T]

// ParallelConfig controls how large copies are split across goroutines.
type ParallelConfig = parallel.Config

// Creation functions

// New creates a zero-filled tensor, validating the shape.
func New[T DType](shape Shape) (*Tensor[T], error) {
	return tensor.New[T](shape)
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3})
func Zeros[T DType](shape Shape) *Tensor[T] {
	return tensor.Zeros[T](shape)
}

// Ones creates a tensor filled with ones.
func Ones[T DType](shape Shape) *Tensor[T] {
	return tensor.Ones[T](shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x := tensor.Full[float32](tensor.Shape{2, 3}, 3.14)
func Full[T DType](shape Shape, value T) *Tensor[T] {
	return tensor.Full[T](shape, value)
}

// Iota creates a tensor holding 0, 1, 2, ... in row-major order.
//
// Example:
//
//	x := tensor.Iota[int32](tensor.Shape{2, 3})  // [[0 1 2] [3 4 5]]
func Iota[T DType](shape Shape) *Tensor[T] {
	return tensor.Iota[T](shape)
}

// Rand creates a tensor filled with random values, uniform in [0, 1) for
// floating-point types and in [0, 100) for integers.
func Rand[T DType](shape Shape) *Tensor[T] {
	return tensor.Rand[T](shape)
}

// RandSeed is Rand with a deterministic source.
func RandSeed[T DType](shape Shape, seed uint64) *Tensor[T] {
	return tensor.RandSeed[T](shape, seed)
}

// Arange creates a 1D tensor with values from start to end (exclusive).
//
// Example:
//
//	x := tensor.Arange[float32](0, 10)  // [0, 1, 2, ..., 9]
func Arange[T DType](start, end T) *Tensor[T] {
	return tensor.Arange[T](start, end)
}

// Eye creates a 2D identity matrix.
func Eye[T DType](n int) *Tensor[T] {
	return tensor.Eye[T](n)
}

// FromSlice creates a tensor from a Go slice. The slice is copied into the
// tensor's memory.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3})
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// FromSource creates a tensor of the given shape and assigns src into it.
//
// Example:
//
//	a := tensor.Iota[float64](tensor.Shape{2, 3})
//	b, err := tensor.FromSource[float64](tensor.Shape{1, 1, 3}, a.MustView(tensor.Index(1), tensor.All))
func FromSource[T DType](shape Shape, src Source[T]) (*Tensor[T], error) {
	return tensor.FromSource(shape, src)
}

// MustFromSource is like FromSource but panics on error.
func MustFromSource[T DType](shape Shape, src Source[T]) *Tensor[T] {
	return tensor.MustFromSource(shape, src)
}

// Materialize copies src into a new tensor of its reduced shape.
func Materialize[T DType](src Source[T]) (*Tensor[T], error) {
	return tensor.Materialize(src)
}

// Assignment

// Assign copies src into dst element by element after reconciling their
// shapes with Resolve.
func Assign[T DType](dst Target[T], src Source[T]) error {
	return tensor.Assign(dst, src)
}

// MustAssign is like Assign but panics on error.
func MustAssign[T DType](dst Target[T], src Source[T]) {
	tensor.MustAssign(dst, src)
}

// SetParallelConfig replaces the configuration used by Assign for large copies.
func SetParallelConfig(cfg ParallelConfig) {
	tensor.SetParallelConfig(cfg)
}

// GetParallelConfig returns the configuration used by Assign.
func GetParallelConfig() ParallelConfig {
	return tensor.ParallelConfig()
}

// DefaultParallelConfig returns a configuration using all CPUs.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// Reductions

// Sum returns the sum of all elements of src.
func Sum[T DType](src Source[T]) T {
	return tensor.Sum(src)
}

// Mean returns the arithmetic mean of src.
func Mean[T DType](src Source[T]) float64 {
	return tensor.Mean(src)
}

// Min returns the smallest element of src.
func Min[T DType](src Source[T]) T {
	return tensor.Min(src)
}

// Max returns the largest element of src.
func Max[T DType](src Source[T]) T {
	return tensor.Max(src)
}
