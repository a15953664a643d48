// SPDX-License-Identifier: MIT

// Package matrix: transposition and diagonal queries.

package matrix

// Transpose returns a new (cols×rows) matrix with result(j,i) = m(i,j).
// The receiver is never mutated. Complexity: O(r×c).
func (m *Dense[T]) Transpose() *Dense[T] {
	out := &Dense[T]{rows: m.cols, cols: m.rows, data: make([]T, len(m.data))}
	for i := 0; i < m.rows; i++ {
		off := i * m.cols
		for j := 0; j < m.cols; j++ {
			out.data[j*m.rows+i] = m.data[off+j]
		}
	}
	return out
}

// TransposeInPlace replaces the receiver with its transpose and returns the
// receiver for chaining. Implemented as compute-then-swap: transpose
// generally changes shape, so a zero-allocation permutation would only ever
// apply to square matrices. Complexity: O(r×c).
func (m *Dense[T]) TransposeInPlace() *Dense[T] {
	*m = *m.Transpose()
	return m
}

// Diag returns the main diagonal (i,i) as a slice of length
// min(rows, cols). Complexity: O(min(r,c)).
func (m *Dense[T]) Diag() []T {
	n := min(m.rows, m.cols)
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = m.data[i*m.cols+i]
	}
	return out
}

// Trace returns the sum of the main-diagonal elements.
// Complexity: O(min(r,c)).
func (m *Dense[T]) Trace() T {
	n := min(m.rows, m.cols)
	var sum T
	for i := 0; i < n; i++ {
		sum += m.data[i*m.cols+i]
	}
	return sum
}
