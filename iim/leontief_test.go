package iim_test

import (
	"testing"

	"github.com/katalvlaran/diim/iim"
	"github.com/katalvlaran/diim/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTechnicalCoefficients_Known normalizes a small transaction table
// against hand-computed coefficients a[i,j] = z[i,j]/x[j].
func TestTechnicalCoefficients_Known(t *testing.T) {
	z, err := matrix.NewDenseFromRows([][]float64{
		{2, 4},
		{6, 8},
	})
	require.NoError(t, err)

	a, err := iim.TechnicalCoefficients(z, []float64{10, 20})
	require.NoError(t, err)

	v, _ := a.At(0, 0)
	assert.InDelta(t, 0.2, v, 1e-15)
	v, _ = a.At(0, 1)
	assert.InDelta(t, 0.2, v, 1e-15)
	v, _ = a.At(1, 0)
	assert.InDelta(t, 0.6, v, 1e-15)
	v, _ = a.At(1, 1)
	assert.InDelta(t, 0.4, v, 1e-15)
}

// TestTechnicalCoefficients_ZeroOutput: a zero-output sector produces a
// zero column instead of a division failure.
func TestTechnicalCoefficients_ZeroOutput(t *testing.T) {
	z, err := matrix.NewDenseFromRows([][]float64{
		{2, 4},
		{6, 8},
	})
	require.NoError(t, err)

	a, err := iim.TechnicalCoefficients(z, []float64{10, 0})
	require.NoError(t, err)

	v, _ := a.At(0, 1)
	assert.Zero(t, v)
	v, _ = a.At(1, 1)
	assert.Zero(t, v)
	v, _ = a.At(0, 0)
	assert.InDelta(t, 0.2, v, 1e-15, "nonzero-output columns are unaffected")
}

// TestTechnicalCoefficients_Validation covers the argument contract.
func TestTechnicalCoefficients_Validation(t *testing.T) {
	_, err := iim.TechnicalCoefficients(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	_, err = iim.TechnicalCoefficients(rect, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "table must be square")

	sq, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	_, err = iim.TechnicalCoefficients(sq, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "output vector length")
}

// TestInterdependencyFromIO_Modes checks that supply mode transposes
// the demand coefficients and that unknown modes are rejected.
func TestInterdependencyFromIO_Modes(t *testing.T) {
	z, err := matrix.NewDenseFromRows([][]float64{
		{2, 4},
		{6, 8},
	})
	require.NoError(t, err)
	x := []float64{10, 20}

	demand, err := iim.InterdependencyFromIO(z, x, iim.Demand)
	require.NoError(t, err)
	supply, err := iim.InterdependencyFromIO(z, x, iim.Supply)
	require.NoError(t, err)

	var i, j int
	var d, s float64
	for i = 0; i < 2; i++ {
		for j = 0; j < 2; j++ {
			d, _ = demand.At(i, j)
			s, _ = supply.At(j, i)
			assert.Equal(t, d, s, "supply[%d,%d] must equal demand[%d,%d]", j, i, i, j)
		}
	}

	_, err = iim.InterdependencyFromIO(z, x, iim.Mode(7))
	assert.ErrorIs(t, err, iim.ErrBadMode)
}
