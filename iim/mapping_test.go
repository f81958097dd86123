package iim_test

import (
	"testing"

	"github.com/katalvlaran/diim/iim"
	"github.com/katalvlaran/diim/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMapConsequence_Anchors checks the power-law fit at the anchor
// points of both scales: the lowest score maps to the fit prefactor and
// the top score to one half.
func TestMapConsequence_Anchors(t *testing.T) {
	v, err := iim.MapConsequence(1, iim.Scale5Point)
	require.NoError(t, err)
	assert.InDelta(t, 0.008, v, 1e-12, "5-point: C=1")

	v, err = iim.MapConsequence(5, iim.Scale5Point)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v, 1e-3, "5-point: C=5 maps to 0.5")

	v, err = iim.MapConsequence(1, iim.Scale4Point)
	require.NoError(t, err)
	assert.InDelta(t, 0.01, v, 1e-12, "4-point: C=1")

	v, err = iim.MapConsequence(4, iim.Scale4Point)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v, 1e-3, "4-point: C=4 maps to 0.5")

	_, err = iim.MapConsequence(3, iim.ConsequenceScale(9))
	assert.ErrorIs(t, err, iim.ErrBadScale)
}

// TestMapConsequence_Monotone: higher scores never map to lower
// coefficients.
func TestMapConsequence_Monotone(t *testing.T) {
	var prev float64
	for score := 1; score <= 5; score++ {
		v, err := iim.MapConsequence(float64(score), iim.Scale5Point)
		require.NoError(t, err)
		assert.Greater(t, v, prev, "score %d", score)
		prev = v
	}
}

// TestMapConsequenceMatrix applies the mapping elementwise and leaves
// zero scores at zero.
func TestMapConsequenceMatrix(t *testing.T) {
	scores, err := matrix.NewDenseFromRows([][]float64{
		{0, 3},
		{5, 0},
	})
	require.NoError(t, err)

	astar, err := iim.MapConsequenceMatrix(scores, iim.Scale5Point)
	require.NoError(t, err)

	v, _ := astar.At(0, 0)
	assert.Zero(t, v, "zero score maps to zero coupling")
	v, _ = astar.At(0, 1)
	want, err := iim.MapConsequence(3, iim.Scale5Point)
	require.NoError(t, err)
	assert.Equal(t, want, v)

	_, err = iim.MapConsequenceMatrix(nil, iim.Scale5Point)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = iim.MapConsequenceMatrix(scores, iim.ConsequenceScale(9))
	assert.ErrorIs(t, err, iim.ErrBadScale)
}

// TestConsequenceScale_String covers the stringer.
func TestConsequenceScale_String(t *testing.T) {
	assert.Equal(t, "5-point", iim.Scale5Point.String())
	assert.Equal(t, "4-point", iim.Scale4Point.String())
}
