// SPDX-License-Identifier: MIT
// Package dynamic: resilience matrix construction. The resilience
// matrix K sets the per-step recovery rate of each sector in the
// dynamic recursion.

package dynamic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/diim/matrix"
)

// MaxResilience is the upper clamp for coefficients derived from
// recovery times: k_i ∈ [0, 1) is required for the recursion to damp,
// so derived values at or above one are capped just below it
// (Lian & Haimes 2006).
const MaxResilience = 0.9999

// DefaultLambda is the conventional residual-inoperability threshold
// q(τ)/q(0) used when deriving K from recovery times.
const DefaultLambda = 0.01

// Resilience derives the diagonal resilience matrix K from sector
// recovery times: k_i = −ln(λ) / (τ_i·(1 − a*_ii)) (Lian & Haimes
// 2006, eq. 17), where τ_i is the number of steps sector i needs to
// bring its inoperability down to the fraction λ of its initial value.
//
// Derived coefficients are clamped into [0, MaxResilience]. The clamp
// belongs to this constructor only: the solver itself accepts any K
// verbatim, including out-of-range values whose divergent trajectories
// are legitimate outputs.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch (astar shape,
//     len(tau) ≠ n).
//   - ErrBadLambda when λ ∉ (0,1).
//   - ErrBadRecoveryTime when some τ_i ≤ 0.
//
// Complexity: O(n^2) (diagonal reads + result allocation).
func Resilience(astar matrix.Matrix, tau []float64, lambda float64) (matrix.Matrix, error) {
	if err := matrix.ValidateSquareNonNil(astar); err != nil {
		return nil, fmt.Errorf("Resilience: %w", err)
	}
	n := astar.Rows()
	if err := matrix.ValidateVecLen(tau, n); err != nil {
		return nil, fmt.Errorf("Resilience: %w", err)
	}
	if math.IsNaN(lambda) || lambda <= 0 || lambda >= 1 {
		return nil, fmt.Errorf("Resilience: lambda=%g: %w", lambda, ErrBadLambda)
	}
	if err := matrix.ValidateFinite(astar); err != nil {
		return nil, fmt.Errorf("Resilience: %w", err)
	}

	var (
		diag = make([]float64, n)
		aii  float64
		ki   float64
		err  error
	)
	for i := 0; i < n; i++ {
		if tau[i] <= 0 {
			return nil, fmt.Errorf("Resilience: tau[%d]=%g: %w", i, tau[i], ErrBadRecoveryTime)
		}
		if aii, err = astar.At(i, i); err != nil {
			return nil, fmt.Errorf("Resilience: At(%d,%d): %w", i, i, err)
		}
		ki = -math.Log(lambda) / (tau[i] * (1 - aii))
		// Clamp into [0, MaxResilience]; a*_ii ≥ 1 drives ki to ±Inf and
		// lands on the corresponding bound.
		switch {
		case ki > MaxResilience || math.IsInf(ki, 1):
			ki = MaxResilience
		case ki < 0:
			ki = 0
		}
		diag[i] = ki
	}

	k, err := matrix.NewDiagonal(diag)
	if err != nil {
		return nil, fmt.Errorf("Resilience: %w", err)
	}

	return k, nil
}

// DiagonalResilience builds a diagonal K from raw coefficients, accepted
// verbatim — no range clamping, per the engine's permissiveness: out-of-
// range values are a modeling choice whose convergence behavior shows up
// in the returned series.
//
// Errors: matrix.ErrInvalidDimensions on an empty slice.
// Complexity: O(n^2).
func DiagonalResilience(k []float64) (matrix.Matrix, error) {
	d, err := matrix.NewDiagonal(k)
	if err != nil {
		return nil, fmt.Errorf("DiagonalResilience: %w", err)
	}

	return d, nil
}
