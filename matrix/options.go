// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of the
// factorization/solve kernels. This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// Numeric policy defaults.
const (
	// DefaultPivotTolerance selects the automatic pivot-acceptance floor:
	// machine epsilon scaled by n·max|A| of the matrix being factorized.
	// Any positive value passed via WithPivotTolerance replaces the
	// automatic scaling with an absolute floor.
	DefaultPivotTolerance = 0.0
)

// panic messages (no magic strings).
const (
	panicPivotTolInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// Option mutates the internal numeric policy. Safe to apply repeatedly
// (idempotent). Constructors MUST panic only on nonsensical values
// (programmer error), never on data-dependent conditions.
type Option func(*options)

// options is the internal numeric-policy state consumed by kernels.
type options struct {
	pivotTol float64 // 0 ⇒ automatic (eps·n·max|A|); >0 ⇒ absolute floor
}

// WithPivotTolerance sets an absolute floor below which a pivot is
// treated as zero and the matrix reported ErrSingular. tol must be
// finite and ≥ 0; tol == 0 restores the automatic scaled default.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	return func(o *options) { o.pivotTol = tol }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{pivotTol: DefaultPivotTolerance}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
