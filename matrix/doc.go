// Package matrix provides Dense[T], a generic dense matrix stored in
// row-major order, for numeric workloads where matrices are constructed,
// combined algebraically and discarded.
//
// What:
//
//   - Dense[T] wraps one flat buffer of rows*cols elements; element (i,j)
//     lives at offset i*cols+j.
//   - Construction: New (filled), FromRows, FromFlat, Zeros, Ones, Identity,
//     Random / RandomFrom (seeded uniform over [-maxWeight, maxWeight]).
//   - Arithmetic: Add (with single-row broadcasting), Sub, Hadamard and their
//     in-place variants; scalar +, -, ×, ÷; component-wise Apply.
//   - Linear algebra: Mul (cache-aware i→k→j loop order), MulVec, Transpose,
//     Diag, Trace.
//
// Why:
//
//   - ML-adjacent code (weight matrices, batched feature rows) wants one
//     small value type, generic over the element, with predictable memory
//     layout and no hidden allocation beyond results.
//
// Broadcasting:
//
//	Add resolves shapes in a fixed priority order: identical shapes first,
//	then a 1×c right operand broadcast over every row of the left, then a
//	1×c left operand broadcast over every row of the right. Nothing else
//	broadcasts — in particular no column-vector broadcasting.
//
// Contracts:
//
//	Shape mismatches, ragged input rows, out-of-bounds indices and
//	incompatible multiplication dimensions are caller bugs, not runtime
//	failures. Every such violation panics at the point of detection with an
//	error wrapping one of the sentinels in errors.go; nothing on the public
//	surface returns a recoverable error.
//
// Concurrency:
//
//	Every Dense exclusively owns its storage, so distinct instances may be
//	read concurrently. No instance may be mutated while another goroutine
//	reads or writes it. The package-level random stream used by Random is
//	deliberately unsynchronized; serialize calls or inject per-goroutine
//	sources via RandomFrom.
//
// Complexity:
//
//   - At/Set/Rows/Cols: O(1)
//   - Elementwise ops, Transpose, Apply: O(r×c)
//   - Mul: O(r×k×c) with both inner streams sequential in memory
//
// Errors (carried inside panics):
//
//   - ErrBadShape: negative construction dimension.
//   - ErrRaggedRows: FromRows input rows of differing lengths.
//   - ErrBadLength: flat data or vector length does not match the shape.
//   - ErrOutOfRange: row or column index outside the matrix.
//   - ErrDimensionMismatch: incompatible operand shapes (including the
//     broadcasting fall-through).
package matrix
