package iim_test

import (
	"testing"

	"github.com/katalvlaran/diim/iim"
	"github.com/katalvlaran/diim/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_Demand_Worked solves the 2-sector demand-driven system and
// checks q against the closed form derived in-test.
func TestSolve_Demand_Worked(t *testing.T) {
	m := twoSectors(t)

	// (I − A*) = [[1, −0.3], [−0.2, 1]], det = 0.94,
	// q = (1/0.94)·[c1 + 0.3·c2, 0.2·c1 + c2].
	cstar := []float64{0.5, 0}
	q, err := iim.Solve(m, cstar, iim.Demand)
	require.NoError(t, err)
	require.Len(t, q, 2)

	det := 1 - 0.3*0.2
	assert.InDelta(t, 0.5/det, q[0], 1e-12)
	assert.InDelta(t, 0.2*0.5/det, q[1], 1e-12)

	// Cross-check against an independent inverse computation.
	lhs, err := m.Leontief(iim.Demand)
	require.NoError(t, err)
	inv, err := matrix.Inverse(lhs)
	require.NoError(t, err)
	ref, err := matrix.MatVec(inv, cstar)
	require.NoError(t, err)
	assert.InDelta(t, ref[0], q[0], 1e-12)
	assert.InDelta(t, ref[1], q[1], 1e-12)
}

// TestSolve_HaimesJiangRegression reproduces the two-infrastructure
// example of Haimes & Jiang (2001): A* = [[0, 0.8], [0.2, 0]] with a
// 60% demand perturbation on the second sector yields q ≈ [0.571, 0.714].
func TestSolve_HaimesJiangRegression(t *testing.T) {
	astar, err := matrix.NewDenseFromRows([][]float64{
		{0, 0.8},
		{0.2, 0},
	})
	require.NoError(t, err)
	m, err := iim.New([]string{"power", "water"}, astar)
	require.NoError(t, err)

	q, err := iim.Solve(m, []float64{0, 0.6}, iim.Demand)
	require.NoError(t, err)
	assert.InDelta(t, 0.571, q[0], 5e-4)
	assert.InDelta(t, 0.714, q[1], 5e-4)
}

// TestSolve_SupplyEqualsDemandOnTranspose verifies the duality: the
// supply-driven solve on A* equals the demand-driven solve on A*ᵀ.
func TestSolve_SupplyEqualsDemandOnTranspose(t *testing.T) {
	astar, err := matrix.NewDenseFromRows([][]float64{
		{0.1, 0.3, 0},
		{0.2, 0, 0.4},
		{0, 0.1, 0.2},
	})
	require.NoError(t, err)
	sectors := []string{"a", "b", "c"}

	m, err := iim.New(sectors, astar)
	require.NoError(t, err)
	at, err := m.AStarT()
	require.NoError(t, err)
	mt, err := iim.New(sectors, at)
	require.NoError(t, err)

	cstar := []float64{0.05, 0.2, 0.1}
	supply, err := iim.Solve(m, cstar, iim.Supply)
	require.NoError(t, err)
	demandT, err := iim.Solve(mt, cstar, iim.Demand)
	require.NoError(t, err)

	assert.Equal(t, demandT, supply, "the two formulations must agree bit for bit")
}

// TestSolve_ZeroCoupling: with A* = 0 the equilibrium is the
// perturbation itself.
func TestSolve_ZeroCoupling(t *testing.T) {
	zero, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	m, err := iim.New([]string{"a", "b", "c"}, zero)
	require.NoError(t, err)

	cstar := []float64{0.1, 0, 0.7}
	q, err := iim.Solve(m, cstar, iim.Demand)
	require.NoError(t, err)
	assert.Equal(t, cstar, q)
}

// TestSolve_Idempotent repeats the same solve and demands bit-identical
// results.
func TestSolve_Idempotent(t *testing.T) {
	m := twoSectors(t)
	cstar := []float64{0.5, 0.1}

	q1, err := iim.Solve(m, cstar, iim.Demand)
	require.NoError(t, err)
	q2, err := iim.Solve(m, cstar, iim.Demand)
	require.NoError(t, err)
	assert.Equal(t, q1, q2)
}

// TestSolve_Singular expects ErrSingular when (I − A*) is degenerate.
func TestSolve_Singular(t *testing.T) {
	astar, err := matrix.NewDenseFromRows([][]float64{
		{1, 0},
		{0, 0},
	})
	require.NoError(t, err)
	m, err := iim.New([]string{"a", "b"}, astar)
	require.NoError(t, err)

	_, err = iim.Solve(m, []float64{0.1, 0.1}, iim.Demand)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

// TestSolve_NoClamp: a strongly coupled matrix pushes q above one and
// the solver returns it verbatim.
func TestSolve_NoClamp(t *testing.T) {
	astar, err := matrix.NewDenseFromRows([][]float64{
		{0, 0.9},
		{0.9, 0},
	})
	require.NoError(t, err)
	m, err := iim.New([]string{"a", "b"}, astar)
	require.NoError(t, err)

	// det(I − A*) = 0.19, so both components land near 9.
	q, err := iim.Solve(m, []float64{0.9, 0.9}, iim.Demand)
	require.NoError(t, err)
	assert.Greater(t, q[0], 1.0)
	assert.Greater(t, q[1], 1.0)
}

// TestSolve_Validation covers the solver's argument contract.
func TestSolve_Validation(t *testing.T) {
	m := twoSectors(t)

	_, err := iim.Solve(nil, []float64{0.1, 0.1}, iim.Demand)
	assert.ErrorIs(t, err, iim.ErrNilModel)

	_, err = iim.Solve(m, nil, iim.Demand)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = iim.Solve(m, []float64{0.1}, iim.Demand)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = iim.Solve(m, []float64{0.1, 0.1}, iim.Mode(9))
	assert.ErrorIs(t, err, iim.ErrBadMode)
}
