package tensor

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Zeros creates a tensor filled with zeros.
// Panics if the shape is invalid.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{3, 4})
func Zeros[T DType](shape Shape) *Tensor[T] {
	t, err := New[T](shape)
	if err != nil {
		panic(err)
	}
	return t
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	t := tensor.Ones[float64](Shape{2, 3})
func Ones[T DType](shape Shape) *Tensor[T] {
	return Full[T](shape, 1)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{3, 3}, 3.14)
func Full[T DType](shape Shape, value T) *Tensor[T] {
	t := Zeros[T](shape)
	t.Fill(value)
	return t
}

// Iota creates a tensor holding 0, 1, 2, ... in row-major order.
//
// Example:
//
//	a := tensor.Iota[int32](Shape{2, 3}) // [[0 1 2] [3 4 5]]
func Iota[T DType](shape Shape) *Tensor[T] {
	t := Zeros[T](shape)
	t.Iota()
	return t
}

// Rand creates a tensor with values uniformly distributed in [0, 1) for
// float types, or in [0, 100) for integer types.
func Rand[T DType](shape Shape) *Tensor[T] {
	return randFrom[T](shape, nil)
}

// RandSeed is Rand with a deterministic source.
func RandSeed[T DType](shape Shape, seed uint64) *Tensor[T] {
	return randFrom[T](shape, rand.NewSource(seed))
}

func randFrom[T DType](shape Shape, src rand.Source) *Tensor[T] {
	t := Zeros[T](shape)
	data := t.Data()
	var probe T = 1
	if probe/2 == 0 { // integer type
		u := distuv.Uniform{Min: 0, Max: 100, Src: src}
		for i := range data {
			data[i] = T(math.Floor(u.Rand()))
		}
		return t
	}
	u := distuv.Uniform{Min: 0, Max: 1, Src: src}
	for i := range data {
		data[i] = T(u.Rand())
	}
	return t
}

// Arange creates a 1D tensor with values from start to end (exclusive).
// Panics if end <= start.
//
// Example:
//
//	t := tensor.Arange[int32](0, 10) // [0, 1, 2, ..., 9]
func Arange[T DType](start, end T) *Tensor[T] {
	if end <= start {
		panic("end must be greater than start")
	}
	numElements := int(end - start)
	if T(numElements) < end-start {
		numElements++ // fractional span, e.g. Arange(0, 2.5) → [0 1 2]
	}

	t := Zeros[T](Shape{numElements})
	data := t.Data()
	for i := range data {
		data[i] = start + T(i)
	}
	return t
}

// Eye creates a 2D identity matrix.
//
// Example:
//
//	t := tensor.Eye[float32](3) // 3x3 identity matrix
func Eye[T DType](n int) *Tensor[T] {
	t := Zeros[T](Shape{n, n})
	for i := 0; i < n; i++ {
		t.Set(1, i, i)
	}
	return t
}
