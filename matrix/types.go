// SPDX-License-Identifier: MIT

// Package matrix: core types.
// Dense[T] is the only entity; everything else in the package operates on it.

package matrix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Numeric constrains element types to the built-in integers and floats:
// every T supports + - * / and has a usable zero value.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Dense is a generic dense matrix in row-major order.
// rows and cols hold the shape; data is one contiguous buffer of length
// rows*cols with element (i,j) at offset i*cols+j. A Dense exclusively owns
// its buffer: no two instances produced by the public API ever alias.
//
// The zero value is a valid 0×0 matrix.
type Dense[T Numeric] struct {
	rows, cols int // shape; never mutated independently of data
	data       []T // flat row-major storage, len == rows*cols
}

// Compile-time check that Dense prints itself.
var _ fmt.Stringer = (*Dense[float64])(nil)
