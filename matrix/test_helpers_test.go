package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireFault asserts that fn panics with an error wrapping the want
// sentinel — the package's contract-violation convention.
func requireFault(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a contract-violation panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value is not an error: %v", r)
		require.ErrorIs(t, err, want)
	}()
	fn()
}
