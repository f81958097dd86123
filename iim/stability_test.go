package iim_test

import (
	"testing"

	"github.com/katalvlaran/diim/iim"
	"github.com/katalvlaran/diim/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSpectralRadius_Diagonal: for a diagonal matrix the radius is the
// largest absolute diagonal entry.
func TestSpectralRadius_Diagonal(t *testing.T) {
	d, err := matrix.NewDiagonal([]float64{0.5, 0.2, -0.1})
	require.NoError(t, err)

	rho, err := iim.SpectralRadius(d)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, rho, 1e-8)
}

// TestSpectralRadius_Coupled: the dominant eigenvalue of
// [[0, 0.8], [0.2, 0]] is sqrt(0.16) = 0.4.
func TestSpectralRadius_Coupled(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{
		{0, 0.8},
		{0.2, 0},
	})
	require.NoError(t, err)

	rho, err := iim.SpectralRadius(a)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, rho, 1e-8)
}

// TestSpectralRadius_Zero: the zero matrix has radius zero and the
// iteration detects the collapsed direction immediately.
func TestSpectralRadius_Zero(t *testing.T) {
	z, err := matrix.NewDense(3, 3)
	require.NoError(t, err)

	rho, err := iim.SpectralRadius(z)
	require.NoError(t, err)
	assert.Zero(t, rho)
}

// TestSpectralRadius_Budget: a one-sweep budget on a matrix that needs
// more returns ErrNoConvergence together with the last estimate.
func TestSpectralRadius_Budget(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{
		{0, 0.8},
		{0.2, 0},
	})
	require.NoError(t, err)

	rho, err := iim.SpectralRadius(a, iim.WithMaxIterations(1))
	assert.ErrorIs(t, err, iim.ErrNoConvergence)
	assert.Greater(t, rho, 0.0, "the estimate is still reported")
}

// TestSpectralRadius_OptionPanics: nonsensical option values are
// programmer errors.
func TestSpectralRadius_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { iim.WithTolerance(0) })
	assert.Panics(t, func() { iim.WithMaxIterations(0) })
}

// TestCheckStability_StableAndUnstable covers both verdicts.
func TestCheckStability_StableAndUnstable(t *testing.T) {
	m := twoSectors(t)
	assert.NoError(t, iim.CheckStability(m), "ρ = sqrt(0.06) < 1")

	hot, err := matrix.NewDenseFromRows([][]float64{
		{0.9, 0.9},
		{0.9, 0.9},
	})
	require.NoError(t, err)
	um, err := iim.New([]string{"a", "b"}, hot)
	require.NoError(t, err, "construction accepts unstable matrices")
	assert.ErrorIs(t, iim.CheckStability(um), iim.ErrUnstable, "ρ = 1.8")

	assert.ErrorIs(t, iim.CheckStability(nil), iim.ErrNilModel)
}
