// SPDX-License-Identifier: MIT

// Package matrix: elementwise arithmetic and row broadcasting.
//
// All kernels run fixed i→j (or flat) loops over the row-major buffer; the
// only allocation is the result matrix.

package matrix

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Add returns m + o with single-row broadcasting.
//
// Shapes resolve in a fixed priority order:
//  1. identical shapes — elementwise sum;
//  2. o is 1×m.Cols() — o's row is added to every row of m;
//  3. m is 1×o.Cols() — m's row is added to every row of o (result has o's shape).
//
// Any other combination halts with ErrDimensionMismatch: there is no
// column-vector or scalar-shape broadcasting.
// Complexity: O(r×c) of the result.
func (m *Dense[T]) Add(o *Dense[T]) *Dense[T] {
	switch {
	case m.rows == o.rows && m.cols == o.cols:
		out := &Dense[T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
		for i, v := range m.data {
			out.data[i] = v + o.data[i]
		}
		return out

	case o.rows == 1 && o.cols == m.cols:
		return broadcastAddRow(m, o.data)

	case m.rows == 1 && m.cols == o.cols:
		return broadcastAddRow(o, m.data)

	default:
		panic(shapeFault("Add", m.rows, m.cols, o.rows, o.cols, ErrDimensionMismatch))
	}
}

// broadcastAddRow computes out[i,j] = base[i,j] + row[j] for every row of base.
// len(row) == base.cols is guaranteed by the caller.
func broadcastAddRow[T Numeric](base *Dense[T], row []T) *Dense[T] {
	out := &Dense[T]{rows: base.rows, cols: base.cols, data: make([]T, len(base.data))}
	for i := 0; i < base.rows; i++ {
		off := i * base.cols // base offset of row i
		for j := 0; j < base.cols; j++ {
			out.data[off+j] = base.data[off+j] + row[j]
		}
	}
	return out
}

// AddInPlace adds o into the receiver elementwise and returns the receiver
// for chaining. Shapes must match exactly — broadcasting applies only to Add.
// Complexity: O(r×c).
func (m *Dense[T]) AddInPlace(o *Dense[T]) *Dense[T] {
	m.mustSameShape("AddInPlace", o)
	for i, v := range o.data {
		m.data[i] += v
	}
	return m
}

// Sub returns m - o elementwise. Shapes must match exactly.
// Complexity: O(r×c).
func (m *Dense[T]) Sub(o *Dense[T]) *Dense[T] {
	m.mustSameShape("Sub", o)
	out := &Dense[T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
	for i, v := range m.data {
		out.data[i] = v - o.data[i]
	}
	return out
}

// SubInPlace subtracts o from the receiver elementwise and returns the
// receiver for chaining. Complexity: O(r×c).
func (m *Dense[T]) SubInPlace(o *Dense[T]) *Dense[T] {
	m.mustSameShape("SubInPlace", o)
	for i, v := range o.data {
		m.data[i] -= v
	}
	return m
}

// Hadamard returns the elementwise product m ⊙ o (not the matrix product).
// Shapes must match exactly. Complexity: O(r×c).
func (m *Dense[T]) Hadamard(o *Dense[T]) *Dense[T] {
	m.mustSameShape("Hadamard", o)
	out := &Dense[T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
	for i, v := range m.data {
		out.data[i] = v * o.data[i]
	}
	return out
}

// HadamardInPlace multiplies the receiver elementwise by o and returns the
// receiver for chaining. Complexity: O(r×c).
func (m *Dense[T]) HadamardInPlace(o *Dense[T]) *Dense[T] {
	m.mustSameShape("HadamardInPlace", o)
	for i, v := range o.data {
		m.data[i] *= v
	}
	return m
}

// AllClose reports whether a and b agree elementwise within
// |a-b| <= atol + rtol*|b|. Matrices of different shapes are never close.
// Complexity: O(r×c).
func AllClose[T constraints.Float](a, b *Dense[T], rtol, atol float64) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i, av := range a.data {
		bv := b.data[i]
		if math.Abs(float64(av-bv)) > atol+rtol*math.Abs(float64(bv)) {
			return false
		}
	}
	return true
}
