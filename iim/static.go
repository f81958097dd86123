// SPDX-License-Identifier: MIT
// Package iim: the static equilibrium solver.

package iim

import (
	"fmt"

	"github.com/katalvlaran/diim/matrix"
)

// Solve computes the steady-state inoperability vector q for an
// instantaneous perturbation c*.
//
// Formulations:
//   - Demand: q solves (I − A*)·q = c*   (Haimes & Jiang 2001, eq. 14;
//     Haimes et al. 2005, eq. 38).
//   - Supply: q solves (I − A*ᵀ)·q = c*  (Leung et al. 2007), which is
//     exactly the demand-driven solve on the transposed matrix.
//
// Behavior highlights:
//   - One pivoted factorization per call; no caching across calls, so
//     repeated identical calls are bit-identical and state-free.
//   - The result is NOT clamped: entries outside [0,1] are legal
//     outputs for pathological inputs and are returned verbatim.
//
// Errors:
//   - ErrNilModel when m is nil.
//   - ErrBadMode for an unknown mode.
//   - matrix.ErrDimensionMismatch when len(cstar) ≠ m.Len().
//   - matrix.ErrSingular when (I − A*) (or its transpose) is
//     numerically singular — an economically degenerate configuration,
//     surfaced to the caller, never approximated.
//
// Determinism: fixed factorization pivot order; identical inputs
// produce bit-identical q. Complexity: O(n^3) time, O(n^2) space.
func Solve(m *Model, cstar []float64, mode Mode, opts ...matrix.Option) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("Solve: %w", ErrNilModel)
	}
	if err := matrix.ValidateVecLen(cstar, m.n); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	// Build the mode's Leontief matrix; rejects unknown modes.
	lhs, err := m.Leontief(mode)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	// One direct solve; ErrSingular propagates unchanged.
	q, err := matrix.Solve(lhs, cstar, opts...)
	if err != nil {
		return nil, fmt.Errorf("Solve(%s): %w", mode, err)
	}

	return q, nil
}
