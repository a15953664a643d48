// SPDX-License-Identifier: MIT

// Package matrix: sentinel fault set.
// These sentinels are never returned: contract violations halt at the point
// of detection, panicking with an error that wraps one of them (see
// validators.go). Tests match the carried sentinel via errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape indicates a negative construction dimension.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRaggedRows indicates FromRows input whose rows differ in length.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrBadLength indicates a flat buffer or vector whose length does not
	// match the declared shape.
	ErrBadLength = errors.New("matrix: data length does not match shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions:
	// elementwise ops on different shapes, Mul where a.Cols() != b.Rows(),
	// or an Add shape pair no broadcasting case accepts.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
