// SPDX-License-Identifier: MIT

// Package matrix: construction, ownership and element access for Dense[T].

package matrix

import (
	"fmt"
	"strings"
)

// New creates a rows×cols matrix with every element set to initial.
// Negative dimensions halt with ErrBadShape; zero dimensions are legal and
// yield a degenerate matrix.
// Complexity: O(r×c).
func New[T Numeric](rows, cols int, initial T) *Dense[T] {
	mustShape("New", rows, cols)
	data := make([]T, rows*cols)
	if initial != 0 {
		for i := range data {
			data[i] = initial
		}
	}
	return &Dense[T]{rows: rows, cols: cols, data: data}
}

// FromRows copies a nested slice into row-major storage.
// All inner slices must share one length; a ragged input halts with
// ErrRaggedRows. An empty outer slice yields a 0×0 matrix.
// Complexity: O(r×c).
func FromRows[T Numeric](rows [][]T) *Dense[T] {
	if len(rows) == 0 {
		return &Dense[T]{}
	}
	r, c := len(rows), len(rows[0])
	out := &Dense[T]{rows: r, cols: c, data: make([]T, r*c)}
	for i, row := range rows {
		if len(row) != c {
			panic(opFault("FromRows", ErrRaggedRows))
		}
		copy(out.data[i*c:(i+1)*c], row)
	}
	return out
}

// FromFlat copies an already row-major flat slice into a rows×cols matrix.
// len(data) must equal rows*cols; a mismatch halts with ErrBadLength.
// Complexity: O(r×c).
func FromFlat[T Numeric](data []T, rows, cols int) *Dense[T] {
	mustShape("FromFlat", rows, cols)
	if len(data) != rows*cols {
		panic(opFault("FromFlat", ErrBadLength))
	}
	buf := make([]T, len(data))
	copy(buf, data)
	return &Dense[T]{rows: rows, cols: cols, data: buf}
}

// Zeros creates a rows×cols matrix of zero values.
func Zeros[T Numeric](rows, cols int) *Dense[T] {
	return New[T](rows, cols, 0)
}

// Ones creates a rows×cols matrix of ones.
func Ones[T Numeric](rows, cols int) *Dense[T] {
	return New[T](rows, cols, 1)
}

// Identity creates the n×n identity matrix.
func Identity[T Numeric](n int) *Dense[T] {
	out := New[T](n, n, 0)
	for i := 0; i < n; i++ {
		out.data[i*n+i] = 1
	}
	return out
}

// Clone returns a deep copy; the result shares no storage with the receiver.
// Complexity: O(r×c).
func (m *Dense[T]) Clone() *Dense[T] {
	buf := make([]T, len(m.data))
	copy(buf, m.data)
	return &Dense[T]{rows: m.rows, cols: m.cols, data: buf}
}

// Take transfers ownership of the receiver's storage to the returned matrix
// and leaves the receiver a valid degenerate 0×0 matrix. It is the explicit
// rendition of move semantics: no copy, no aliasing afterwards.
// Complexity: O(1).
func (m *Dense[T]) Take() *Dense[T] {
	out := &Dense[T]{rows: m.rows, cols: m.cols, data: m.data}
	m.rows, m.cols, m.data = 0, 0, nil
	return out
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.cols }

// At returns the element at (row, col).
// Out-of-bounds indices halt with ErrOutOfRange. Complexity: O(1).
func (m *Dense[T]) At(row, col int) T {
	m.mustIndex("At", row, col)
	return m.data[row*m.cols+col]
}

// Set assigns v at (row, col).
// Out-of-bounds indices halt with ErrOutOfRange. Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) {
	m.mustIndex("Set", row, col)
	m.data[row*m.cols+col] = v
}

// ToRows materializes the matrix as a fresh nested slice, one inner slice
// per row. Complexity: O(r×c).
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.rows)
	for i := 0; i < m.rows; i++ {
		row := make([]T, m.cols)
		copy(row, m.data[i*m.cols:(i+1)*m.cols])
		out[i] = row
	}
	return out
}

// Equal reports exact element equality; matrices of different shapes are
// never equal. Complexity: O(r×c).
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, v := range m.data {
		if v != o.data[i] {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Dense(%dx%d):\n", m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		sb.WriteString("[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.cols+j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
