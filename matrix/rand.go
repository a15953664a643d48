// SPDX-License-Identifier: MIT

// Package matrix: reproducible uniform random initialization.

package matrix

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

// defaultSeed seeds the package-level stream exactly once at init.
const defaultSeed uint64 = 42

// defaultRand is the shared stream behind Random. It is never reseeded, so
// successive calls continue one deterministic sequence: the full call
// sequence is reproducible run-to-run, but the n-th call's output depends on
// how many draws preceded it. The stream is not synchronized; concurrent
// callers must serialize externally or inject their own source via
// RandomFrom.
var defaultRand = rand.New(rand.NewSource(defaultSeed))

// Random creates a rows×cols matrix with elements drawn independently and
// uniformly from [-maxWeight, maxWeight], using the shared package stream.
// For call-level reproducibility (tests, parallel workers), use RandomFrom
// with a dedicated source instead.
// Complexity: O(r×c).
func Random[T constraints.Float](rows, cols int, maxWeight T) *Dense[T] {
	return RandomFrom(defaultRand, rows, cols, maxWeight)
}

// RandomFrom is Random with an explicit source: elements are drawn
// independently and uniformly from [-maxWeight, maxWeight] using rng.
// Negative dimensions halt with ErrBadShape.
// Complexity: O(r×c).
func RandomFrom[T constraints.Float](rng *rand.Rand, rows, cols int, maxWeight T) *Dense[T] {
	mustShape("RandomFrom", rows, cols)
	out := &Dense[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
	for i := range out.data {
		// Float64 is in [0,1); scale to [-maxWeight, maxWeight].
		out.data[i] = T(2*rng.Float64()-1) * maxWeight
	}
	return out
}
