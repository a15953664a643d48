// SPDX-License-Identifier: MIT

// Package matrix: scalar operations and component-wise transforms.

package matrix

// Apply returns a new matrix with fn applied to every element.
// fn must be pure and position-independent: it receives only the element
// value, never its coordinates. Position-dependent transforms belong at the
// caller, combining At/Set with explicit loops.
// Complexity: O(r×c) plus the cost of fn.
func (m *Dense[T]) Apply(fn func(T) T) *Dense[T] {
	out := &Dense[T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
	for i, v := range m.data {
		out.data[i] = fn(v)
	}
	return out
}

// ApplyInPlace applies fn to every element of the receiver and returns the
// receiver for chaining. Complexity: O(r×c) plus the cost of fn.
func (m *Dense[T]) ApplyInPlace(fn func(T) T) *Dense[T] {
	for i, v := range m.data {
		m.data[i] = fn(v)
	}
	return m
}

// AddScalar returns a new matrix with s added to every element.
func (m *Dense[T]) AddScalar(s T) *Dense[T] {
	return m.Apply(func(v T) T { return v + s })
}

// SubScalar returns a new matrix with s subtracted from every element.
func (m *Dense[T]) SubScalar(s T) *Dense[T] {
	return m.Apply(func(v T) T { return v - s })
}

// MulScalar returns a new matrix with every element multiplied by s.
func (m *Dense[T]) MulScalar(s T) *Dense[T] {
	return m.Apply(func(v T) T { return v * s })
}

// DivScalar returns a new matrix with every element divided by s.
// Division semantics (integer truncation, float Inf on zero) are those of
// the element type.
func (m *Dense[T]) DivScalar(s T) *Dense[T] {
	return m.Apply(func(v T) T { return v / s })
}

// MulScalarInPlace multiplies every element of the receiver by s and
// returns the receiver for chaining. Complexity: O(r×c).
func (m *Dense[T]) MulScalarInPlace(s T) *Dense[T] {
	for i := range m.data {
		m.data[i] *= s
	}
	return m
}
