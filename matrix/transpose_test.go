package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmat/matrix"
)

// TestTranspose_Concrete checks the 2x2 scenario and that the receiver is
// untouched.
func TestTranspose_Concrete(t *testing.T) {
	a := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	at := a.Transpose()
	require.Equal(t, [][]float64{{1, 3}, {2, 4}}, at.ToRows())
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.ToRows())
}

// TestTranspose_RoundTrip checks transpose(transpose(A)) == A on a
// non-square matrix.
func TestTranspose_RoundTrip(t *testing.T) {
	a := matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.True(t, a.Transpose().Transpose().Equal(a))
}

// TestTransposeInPlace verifies the shape swap and chaining.
func TestTransposeInPlace(t *testing.T) {
	a := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	got := a.TransposeInPlace()
	require.Same(t, a, got)
	require.Equal(t, 3, a.Rows())
	require.Equal(t, 2, a.Cols())
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, a.ToRows())
}

// TestDiag checks the min(rows,cols) diagonal on wide, tall and square
// matrices.
func TestDiag(t *testing.T) {
	cases := []struct {
		name string
		in   [][]int
		want []int
	}{
		{"Wide", [][]int{{1, 2, 3}, {4, 5, 6}}, []int{1, 5}},
		{"Tall", [][]int{{1, 2}, {3, 4}, {5, 6}}, []int{1, 4}},
		{"Square", [][]int{{1, 2}, {3, 4}}, []int{1, 4}},
		{"Empty", [][]int{}, []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, matrix.FromRows(tc.in).Diag())
		})
	}
}

// TestTrace checks the diagonal sum.
func TestTrace(t *testing.T) {
	require.Equal(t, 5, matrix.FromRows([][]int{{1, 2}, {3, 4}}).Trace())
	require.Equal(t, 6, matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}}).Trace())
}
