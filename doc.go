// Package lvlmat is a small, generic dense-matrix library for numeric
// workloads — weight matrices, batched feature rows, plain linear algebra —
// where matrices are built, combined and discarded in memory.
//
// 🚀 What is lvlmat?
//
//	A pure-Go library centered on one abstraction:
//		• matrix/ — Dense[T], a row-major generic matrix with elementwise
//		  arithmetic, row broadcasting, cache-aware multiplication,
//		  transposition, scalar ops and component-wise transforms.
//
// ✨ Why choose lvlmat?
//
//   - Generic over element type – any integer or float, one implementation
//   - Fail-fast contracts – shape and index violations halt at the call site
//   - Cache-friendly – one flat row-major buffer, i→k→j multiplication
//   - Reproducible – seeded uniform initialization with injectable sources
//
// Quick example:
//
//	a := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	b := matrix.FromRows([][]float64{{5, 6}, {7, 8}})
//	p := a.Mul(b) // [[19,22],[43,50]]
//
// See matrix/doc.go for the full surface.
package lvlmat
