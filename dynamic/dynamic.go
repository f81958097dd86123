// SPDX-License-Identifier: MIT
// Package dynamic: the discrete-time demand-reduction recursion, the
// continuous recovery trajectory, and the impact integral.

package dynamic

import (
	"fmt"

	"github.com/katalvlaran/diim/iim"
	"github.com/katalvlaran/diim/matrix"
)

// Solve computes the discrete-time evolution of inoperability under
// ongoing recovery effort:
//
//	q(0)   = K·c*(0)
//	q(t+1) = q(t) + K·(A*·q(t) + c*(t) − q(t))
//
// for t = 0..steps (Haimes et al. 2005, eq. 51; Lian & Haimes 2006,
// eq. 21). c*(t) is read from series, with nil (or an exhausted signal)
// treated as zero — the one-time-shock convention.
//
// Behavior highlights:
//   - Runs exactly steps+1 steps; no convergence check, no clamping.
//     Trajectories that diverge or leave [0,1] are valid outputs to
//     assert against, not errors.
//   - Never inverts a matrix, so it stays well-defined when (I − A*)
//     is singular and the static solver fails.
//   - Every returned vector is freshly allocated; the solver retains no
//     state between calls.
//
// Errors:
//   - iim.ErrNilModel when m is nil.
//   - ErrNegativeHorizon when steps < 0.
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch when K is not
//     N×N or a series vector has the wrong length (no partial series is
//     returned on failure).
//
// Determinism: fixed multiply/accumulate orders throughout.
// Complexity: O(steps·n^2) time, O(steps·n) space for the result.
func Solve(m *iim.Model, k matrix.Matrix, series Series, steps int) (TimeSeries, error) {
	if m == nil {
		return nil, fmt.Errorf("Solve: %w", iim.ErrNilModel)
	}
	if steps < 0 {
		return nil, fmt.Errorf("Solve: steps=%d: %w", steps, ErrNegativeHorizon)
	}
	n := m.Len()
	if err := matrix.ValidateSquareNonNil(k); err != nil {
		return nil, fmt.Errorf("Solve: K: %w", err)
	}
	if k.Rows() != n {
		return nil, fmt.Errorf("Solve: K is %dx%d for %d sectors: %w",
			k.Rows(), k.Cols(), n, matrix.ErrDimensionMismatch)
	}

	// Materialize the operands once; both are read-only below.
	astar := m.AStar()
	kmat, err := matrix.NewDenseCopy(k)
	if err != nil {
		return nil, fmt.Errorf("Solve: K: %w", err)
	}

	// cstarAt reads c*(t) from the series, substituting zeros for nil
	// and validating the length of explicit vectors.
	zero := make([]float64, n)
	cstarAt := func(t int) ([]float64, error) {
		if series == nil {
			return zero, nil
		}
		c := series.At(t)
		if c == nil {
			return zero, nil
		}
		if err := matrix.ValidateVecLen(c, n); err != nil {
			return nil, fmt.Errorf("Solve: c*(%d): %w", t, err)
		}

		return c, nil
	}

	// q(0) = K·c*(0).
	c0, err := cstarAt(0)
	if err != nil {
		return nil, err
	}
	q, err := matrix.MatVec(kmat, c0)
	if err != nil {
		return nil, fmt.Errorf("Solve: q(0): %w", err)
	}

	ts := make(TimeSeries, 0, steps+1)
	ts = append(ts, matrix.VecClone(q))

	var (
		t                    int
		ct, aq, drift, delta []float64
	)
	for t = 0; t < steps; t++ {
		if ct, err = cstarAt(t); err != nil {
			return nil, err
		}
		// drift = A*·q(t) + c*(t) − q(t).
		if aq, err = matrix.MatVec(astar, q); err != nil {
			return nil, fmt.Errorf("Solve: step %d: %w", t, err)
		}
		if drift, err = matrix.VecAdd(aq, ct); err != nil {
			return nil, fmt.Errorf("Solve: step %d: %w", t, err)
		}
		if drift, err = matrix.VecSub(drift, q); err != nil {
			return nil, fmt.Errorf("Solve: step %d: %w", t, err)
		}
		// q(t+1) = q(t) + K·drift.
		if delta, err = matrix.MatVec(kmat, drift); err != nil {
			return nil, fmt.Errorf("Solve: step %d: %w", t, err)
		}
		if q, err = matrix.VecAdd(q, delta); err != nil {
			return nil, fmt.Errorf("Solve: step %d: %w", t, err)
		}
		ts = append(ts, matrix.VecClone(q))
	}

	return ts, nil
}

// Recover computes the continuous-time recovery trajectory from an
// initial inoperability q(0) with no further perturbation:
//
//	q(t) = e^(−K(I−A*)·t)·q(0)
//
// (Lian & Haimes 2006, eq. 26). The one-step propagator
// E = e^(−K(I−A*)) is built once via the matrix exponential and applied
// repeatedly: E^t·q(0) equals the closed form exactly at integer steps.
//
// Like Solve, the output is not clamped; tiny negative values from
// floating-point roundoff are returned verbatim.
//
// Errors: iim.ErrNilModel, ErrNegativeHorizon,
// matrix.ErrNilMatrix / matrix.ErrDimensionMismatch (K shape, q0
// length), plus anything matrix.Expm returns.
// Complexity: O(n^3) for the propagator, then O(steps·n^2).
func Recover(m *iim.Model, k matrix.Matrix, q0 []float64, steps int) (TimeSeries, error) {
	if m == nil {
		return nil, fmt.Errorf("Recover: %w", iim.ErrNilModel)
	}
	if steps < 0 {
		return nil, fmt.Errorf("Recover: steps=%d: %w", steps, ErrNegativeHorizon)
	}
	n := m.Len()
	if err := matrix.ValidateSquareNonNil(k); err != nil {
		return nil, fmt.Errorf("Recover: K: %w", err)
	}
	if k.Rows() != n {
		return nil, fmt.Errorf("Recover: K is %dx%d for %d sectors: %w",
			k.Rows(), k.Cols(), n, matrix.ErrDimensionMismatch)
	}
	if err := matrix.ValidateVecLen(q0, n); err != nil {
		return nil, fmt.Errorf("Recover: q(0): %w", err)
	}

	// Build the one-step propagator E = e^(−K(I−A*)).
	leontief, err := m.Leontief(iim.Demand)
	if err != nil {
		return nil, fmt.Errorf("Recover: %w", err)
	}
	kl, err := matrix.Mul(k, leontief)
	if err != nil {
		return nil, fmt.Errorf("Recover: %w", err)
	}
	neg, err := matrix.Scale(kl, -1)
	if err != nil {
		return nil, fmt.Errorf("Recover: %w", err)
	}
	prop, err := matrix.Expm(neg)
	if err != nil {
		return nil, fmt.Errorf("Recover: %w", err)
	}

	ts := make(TimeSeries, 0, steps+1)
	q := matrix.VecClone(q0)
	ts = append(ts, matrix.VecClone(q))
	for t := 0; t < steps; t++ {
		if q, err = matrix.MatVec(prop, q); err != nil {
			return nil, fmt.Errorf("Recover: step %d: %w", t, err)
		}
		ts = append(ts, matrix.VecClone(q))
	}

	return ts, nil
}

// Impact integrates each sector's inoperability over the series by the
// trapezoidal rule, yielding the total disruption burden per sector
// (the discrete analogue of ∫q(t)dt).
//
// Errors: ErrEmptySeries on a zero-length series,
// matrix.ErrDimensionMismatch on ragged rows.
// Complexity: O(steps·n).
func Impact(ts TimeSeries) ([]float64, error) {
	if len(ts) == 0 {
		return nil, fmt.Errorf("Impact: %w", ErrEmptySeries)
	}

	n := len(ts[0])
	total := make([]float64, n)
	var t, j int
	for t = 0; t+1 < len(ts); t++ {
		if len(ts[t+1]) != n {
			return nil, fmt.Errorf("Impact: row %d: %w", t+1, matrix.ErrDimensionMismatch)
		}
		for j = 0; j < n; j++ {
			total[j] += (ts[t][j] + ts[t+1][j]) / 2
		}
	}

	return total, nil
}
