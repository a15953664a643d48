// File: matrix/example_test.go
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmat/matrix"
)

////////////////////////////////////////////////////////////////////////////////
// Example: matrix product
////////////////////////////////////////////////////////////////////////////////

// ExampleDense_Mul multiplies two 2×2 matrices. The kernel iterates i→k→j so
// both hot streams (one row of the right operand, one row of the result)
// stay sequential in memory.
func ExampleDense_Mul() {
	a := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	b := matrix.FromRows([][]int{{5, 6}, {7, 8}})

	fmt.Print(a.Mul(b))

	// Output:
	// Dense(2x2):
	// [19, 22]
	// [43, 50]
}

////////////////////////////////////////////////////////////////////////////////
// Example: broadcasting a bias row
////////////////////////////////////////////////////////////////////////////////

// ExampleDense_Add_broadcast adds a 1×3 bias row to every row of a batch —
// the usual "activations + bias" step of a dense layer.
func ExampleDense_Add_broadcast() {
	batch := matrix.FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	bias := matrix.FromRows([][]float64{{0.5, -1, 0}})

	fmt.Print(batch.Add(bias))

	// Output:
	// Dense(2x3):
	// [1.5, 1, 3]
	// [4.5, 4, 6]
}

////////////////////////////////////////////////////////////////////////////////
// Example: component-wise activation
////////////////////////////////////////////////////////////////////////////////

// ExampleDense_Apply runs a ReLU over a matrix without mutating it.
func ExampleDense_Apply() {
	z := matrix.FromRows([][]float64{{-1, 2}, {3, -4}})
	relu := z.Apply(func(v float64) float64 {
		if v < 0 {
			return 0
		}
		return v
	})

	fmt.Print(relu)

	// Output:
	// Dense(2x2):
	// [0, 2]
	// [3, 0]
}

////////////////////////////////////////////////////////////////////////////////
// Example: diagonal extraction
////////////////////////////////////////////////////////////////////////////////

// ExampleDense_Diag extracts the main diagonal of a wide matrix;
// its length is min(rows, cols).
func ExampleDense_Diag() {
	m := matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	fmt.Println(m.Diag())

	// Output:
	// [1 5]
}
