// SPDX-License-Identifier: MIT
// Package iim: dominant-eigenvalue stability test for interdependency
// matrices. The static model has a meaningful equilibrium only when the
// spectral radius of A* is strictly below one (Setola et al. 2009,
// eq. 6); this file provides the estimate and the opt-in check.

package iim

import (
	"fmt"
	"math"

	"github.com/katalvlaran/diim/matrix"
)

// SpectralRadius estimates ρ(m), the magnitude of the dominant
// eigenvalue, by deterministic power iteration.
//
// Implementation:
//   - Stage 1: Validate m (non-nil, square, finite). Start from the
//     all-ones vector (fixed seed ⇒ reproducible runs).
//   - Stage 2: Repeat v ← m·(m·v), reading the estimate as the square
//     root of the iterate's ∞-norm before renormalizing; stop when the
//     estimate's relative change drops below tol. Iterating on m² keeps
//     the estimate settled for the ±λ eigenvalue pairs that
//     zero-diagonal interdependency matrices produce, since
//     ρ(m²) = ρ(m)² always holds.
//
// The iteration is intended for the non-negative matrices of this
// domain, where Perron–Frobenius guarantees a real dominant eigenvalue;
// for matrices with complex dominant pairs it may oscillate and return
// ErrNoConvergence together with the last estimate.
//
// Returns the estimate (also alongside ErrNoConvergence, so callers can
// still inspect it).
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch,
// matrix.ErrNaNInf, ErrNoConvergence.
// Complexity: O(maxIter·n^2) time, O(n) space.
func SpectralRadius(m matrix.Matrix, opts ...Option) (float64, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return 0, fmt.Errorf("SpectralRadius: %w", err)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return 0, fmt.Errorf("SpectralRadius: %w", err)
	}

	o := gatherOptions(opts...)
	n := m.Rows()

	// Deterministic start: the all-ones vector.
	v := make([]float64, n)
	for i := 0; i < n; i++ {
		v[i] = 1.0
	}

	var (
		est, prev float64 // current and previous radius estimates
		norm, av  float64
		iter, i   int
		err       error
	)
	for iter = 0; iter < o.maxIter; iter++ {
		// Double application per sweep: one step of the m² iteration.
		if v, err = matrix.MatVec(m, v); err != nil {
			return 0, fmt.Errorf("SpectralRadius: %w", err)
		}
		if v, err = matrix.MatVec(m, v); err != nil {
			return 0, fmt.Errorf("SpectralRadius: %w", err)
		}

		// ∞-norm of the m² iterate; its square root estimates ρ(m).
		norm = 0
		for i = 0; i < n; i++ {
			av = math.Abs(v[i])
			if av > norm {
				norm = av
			}
		}
		if norm == 0 {
			return 0, nil // nilpotent direction: radius estimate is zero
		}
		est = math.Sqrt(norm)

		// Renormalize to keep the iterate bounded.
		for i = 0; i < n; i++ {
			v[i] /= norm
		}

		// Relative-change convergence test.
		if iter > 0 && math.Abs(est-prev) <= o.tol*math.Max(1, est) {
			return est, nil
		}
		prev = est
	}

	return est, fmt.Errorf("SpectralRadius: after %d iterations: %w", o.maxIter, ErrNoConvergence)
}

// CheckStability verifies that the model's interdependency matrix has a
// stable equilibrium, i.e. ρ(A*) < 1. The check is a separate call:
// New never runs it, because the engine accepts economically
// implausible data and only enforces dimensional/numerical validity.
//
// Errors: ErrNilModel, ErrUnstable (with the estimate in the message),
// plus anything SpectralRadius returns.
// Complexity: O(maxIter·n^2).
func CheckStability(m *Model, opts ...Option) error {
	if m == nil {
		return fmt.Errorf("CheckStability: %w", ErrNilModel)
	}

	rho, err := SpectralRadius(m.astar, opts...)
	if err != nil {
		return fmt.Errorf("CheckStability: %w", err)
	}
	if rho >= 1 {
		return fmt.Errorf("CheckStability: dominant eigenvalue %.6g: %w", rho, ErrUnstable)
	}

	return nil
}
