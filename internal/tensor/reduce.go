package tensor

// Sum returns the sum of all elements of src.
// Panics with ErrStaleView if src reads a released tensor.
func Sum[T DType](src Source[T]) T {
	var acc T
	each(src, func(v T) { acc += v })
	return acc
}

// Mean returns the arithmetic mean of src as float64.
func Mean[T DType](src Source[T]) float64 {
	var acc float64
	each(src, func(v T) { acc += float64(v) })
	return acc / float64(src.Shape().NumElements())
}

// Min returns the smallest element of src.
func Min[T DType](src Source[T]) T {
	first := true
	var m T
	each(src, func(v T) {
		if first || v < m {
			m, first = v, false
		}
	})
	return m
}

// Max returns the largest element of src.
func Max[T DType](src Source[T]) T {
	first := true
	var m T
	each(src, func(v T) {
		if first || v > m {
			m, first = v, false
		}
	})
	return m
}

// each calls f for every element of src in row-major order.
func each[T DType](src Source[T], f func(T)) {
	if err := checkAlive(src); err != nil {
		panic(err)
	}

	n := src.Shape().NumElements()
	if s, ok := src.(strided[T]); ok {
		l := s.layout()
		data := l.buf.data
		if l.contiguous() {
			for _, v := range data[l.offset : l.offset+n] {
				f(v)
			}
			return
		}
		c := l.cursor(0)
		for k := 0; k < n; k++ {
			f(data[c.off])
			c.next()
		}
		return
	}

	for k := 0; k < n; k++ {
		f(src.evalAt(k))
	}
}
