// SPDX-License-Identifier: MIT

// Package matrix: matrix and matrix-vector multiplication.

package matrix

// Mul returns the matrix product m × o.
// Requires m.Cols() == o.Rows(); the result has shape (m.Rows(), o.Cols()).
// Incompatible inner dimensions halt with ErrDimensionMismatch.
//
// The loop order is i→k→j rather than the naive i→j→k: for a fixed (i,k) the
// inner loop streams linearly through row k of o and accumulates into row i
// of the result, so both hot streams are sequential in memory. This ordering
// is a deliberate cache-locality decision, not an implementation accident.
// Complexity: O(r×k×c).
func (m *Dense[T]) Mul(o *Dense[T]) *Dense[T] {
	if m.cols != o.rows {
		panic(shapeFault("Mul", m.rows, m.cols, o.rows, o.cols, ErrDimensionMismatch))
	}
	out := &Dense[T]{rows: m.rows, cols: o.cols, data: make([]T, m.rows*o.cols)}
	for i := 0; i < m.rows; i++ {
		offM := i * m.cols // base offset of row i in m
		offR := i * o.cols // base offset of row i in the result
		for k := 0; k < m.cols; k++ {
			mv := m.data[offM+k]
			offO := k * o.cols // base offset of row k in o
			for j := 0; j < o.cols; j++ {
				out.data[offR+j] += mv * o.data[offO+j]
			}
		}
	}
	return out
}

// MulInPlace replaces the receiver with m × o (compute-then-replace, since
// the product generally changes shape) and returns the receiver for
// chaining. Complexity: O(r×k×c).
func (m *Dense[T]) MulInPlace(o *Dense[T]) *Dense[T] {
	*m = *m.Mul(o)
	return m
}

// MulVec returns the matrix-vector product m × x as a slice of length
// m.Rows(); element i is the inner product of row i with x.
// len(x) must equal m.Cols(); a mismatch halts with ErrBadLength.
// Complexity: O(r×c).
func (m *Dense[T]) MulVec(x []T) []T {
	if len(x) != m.cols {
		panic(opFault("MulVec", ErrBadLength))
	}
	out := make([]T, m.rows)
	for i := 0; i < m.rows; i++ {
		off := i * m.cols
		var sum T
		for j := 0; j < m.cols; j++ {
			sum += m.data[off+j] * x[j]
		}
		out[i] = sum
	}
	return out
}
