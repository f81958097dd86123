// Package matrix_test contains unit tests for the Dense type and its
// constructors.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/diim/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hide wraps a Matrix to conceal the concrete *Dense type, forcing the
// generic interface path inside kernels.
type hide struct{ matrix.Matrix }

// mustDense builds a Dense from rows and fails the test on error.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err, "NewDenseFromRows must succeed for valid input")

	return m
}

// TestNewDense_Validation checks dimension validation and zero init.
func TestNewDense_Validation(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "zero rows must be rejected")

	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "negative cols must be rejected")

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	var i, j int
	var v float64
	for i = 0; i < 2; i++ {
		for j = 0; j < 3; j++ {
			v, err = m.At(i, j)
			require.NoError(t, err)
			assert.Zero(t, v, "new Dense must be zero-initialized")
		}
	}
}

// TestNewDenseFromRows_Ragged ensures a ragged row fails with
// ErrDimensionMismatch and an empty input with ErrInvalidDimensions.
func TestNewDenseFromRows_Ragged(t *testing.T) {
	_, err := matrix.NewDenseFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "nil input must be rejected")

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "ragged rows must be rejected")
}

// TestDense_AtSet_Bounds exercises the ErrOutOfRange contract.
func TestDense_AtSet_Bounds(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	for _, tc := range []struct{ i, j int }{
		{-1, 0}, {0, -1}, {2, 0}, {0, 2},
	} {
		_, err := m.At(tc.i, tc.j)
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", tc.i, tc.j)
		err = m.Set(tc.i, tc.j, 9)
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "Set(%d,%d)", tc.i, tc.j)
	}

	require.NoError(t, m.Set(1, 0, 7))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
}

// TestDense_Clone_Independence verifies deep copy semantics.
func TestDense_Clone_Independence(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()

	require.NoError(t, m.Set(0, 0, 99))
	v, err := c.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "clone must not observe writes to the original")
}

// TestNewIdentity_Diagonal checks ones on the diagonal, zeros elsewhere.
func TestNewIdentity_Diagonal(t *testing.T) {
	eye, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	var i, j int
	var v float64
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			v, err = eye.At(i, j)
			require.NoError(t, err)
			if i == j {
				assert.Equal(t, 1.0, v)
			} else {
				assert.Zero(t, v)
			}
		}
	}
}

// TestNewDiagonal_Values checks placement and empty-input rejection.
func TestNewDiagonal_Values(t *testing.T) {
	_, err := matrix.NewDiagonal(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	d, err := matrix.NewDiagonal([]float64{0.5, 0.25})
	require.NoError(t, err)
	v, _ := d.At(0, 0)
	assert.Equal(t, 0.5, v)
	v, _ = d.At(1, 1)
	assert.Equal(t, 0.25, v)
	v, _ = d.At(0, 1)
	assert.Zero(t, v)
}

// TestNewDenseCopy_InterfaceFallback ensures copying through a foreign
// Matrix implementation matches the fast path.
func TestNewDenseCopy_InterfaceFallback(t *testing.T) {
	src := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	fast, err := matrix.NewDenseCopy(src)
	require.NoError(t, err)
	slow, err := matrix.NewDenseCopy(hide{src})
	require.NoError(t, err)

	var i, j int
	var a, b float64
	for i = 0; i < 2; i++ {
		for j = 0; j < 2; j++ {
			a, _ = fast.At(i, j)
			b, _ = slow.At(i, j)
			assert.Equal(t, a, b, "fast and fallback copies must agree at (%d,%d)", i, j)
		}
	}

	_, err = matrix.NewDenseCopy(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestValidateFinite rejects NaN and Inf entries.
func TestValidateFinite(t *testing.T) {
	ok := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	assert.NoError(t, matrix.ValidateFinite(ok))

	bad := mustDense(t, [][]float64{{1, math.Inf(1)}, {3, 4}})
	assert.ErrorIs(t, matrix.ValidateFinite(bad), matrix.ErrNaNInf)
	assert.ErrorIs(t, matrix.ValidateFinite(hide{bad}), matrix.ErrNaNInf, "fallback path must agree")
}
