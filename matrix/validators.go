// SPDX-License-Identifier: MIT

// Package matrix: precondition checks.
// Every public operation validates its contract here and panics on violation
// with an error wrapping a sentinel from errors.go. The message format
// follows Dense.<method>(...): <sentinel> for grep-ability.

package matrix

import "fmt"

// opFault builds the panic value for an operation-level contract violation.
func opFault(op string, err error) error {
	return fmt.Errorf("Dense.%s: %w", op, err)
}

// idxFault builds the panic value for an index-level contract violation,
// carrying the offending coordinates.
func idxFault(op string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", op, row, col, err)
}

// shapeFault builds the panic value for a two-operand shape violation,
// carrying both shapes.
func shapeFault(op string, ar, ac, br, bc int, err error) error {
	return fmt.Errorf("Dense.%s: %dx%d vs %dx%d: %w", op, ar, ac, br, bc, err)
}

// mustShape halts construction on negative dimensions.
func mustShape(op string, rows, cols int) {
	if rows < 0 || cols < 0 {
		panic(opFault(op, ErrBadShape))
	}
}

// mustIndex halts on an out-of-bounds (row, col).
func (m *Dense[T]) mustIndex(op string, row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(idxFault(op, row, col, ErrOutOfRange))
	}
}

// mustSameShape halts unless o has exactly the receiver's shape.
func (m *Dense[T]) mustSameShape(op string, o *Dense[T]) {
	if m.rows != o.rows || m.cols != o.cols {
		panic(shapeFault(op, m.rows, m.cols, o.rows, o.cols, ErrDimensionMismatch))
	}
}
