package tensor

import "fmt"

// MaxRank is the largest number of dimensions a shape may have.
const MaxRank = 8

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0, rank <= MaxRank).
func (s Shape) Validate() error {
	if len(s) > MaxRank {
		return fmt.Errorf("%w: rank %d exceeds %d", ErrRankTooLarge, len(s), MaxRank)
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension at index %d: %d (must be > 0)", ErrInvalidShape, i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Core returns the shape with every singleton axis removed.
//
// Examples:
//
//	(1, 3)       → (3)
//	(1, 1, 4, 1) → (4)
//	(4, 1, 2)    → (4, 2)
//	(1, 1)       → ()
func (s Shape) Core() Shape {
	core := make(Shape, 0, len(s))
	for _, dim := range s {
		if dim != 1 {
			core = append(core, dim)
		}
	}
	return core
}

// IsUnit reports whether every axis is a singleton, i.e. the shape holds a
// single element regardless of its rank.
func (s Shape) IsUnit() bool {
	return len(s.Core()) == 0
}

// Unravel writes the row-major multi-index of linear into out.
// out must have len(s) elements.
func (s Shape) Unravel(linear int, out []int) {
	for d := len(s) - 1; d >= 0; d-- {
		out[d] = linear % s[d]
		linear /= s[d]
	}
}

// singletonGaps splits the singleton axes of s into len(Core())+1 buckets:
// bucket j holds the singleton axes that sit between core axis j-1 and j.
func (s Shape) singletonGaps() [][]int {
	gaps := [][]int{nil}
	for axis, dim := range s {
		if dim == 1 {
			gaps[len(gaps)-1] = append(gaps[len(gaps)-1], axis)
			continue
		}
		gaps = append(gaps, nil)
	}
	return gaps
}
