// SPDX-License-Identifier: MIT

// Package iim: functional configuration for the iterative spectral
// estimate. Defaults are documented constants; constructors panic only
// on nonsensical values (programmer error).
package iim

import "math"

// Defaults for the power-iteration spectral estimate.
const (
	// DefaultTolerance is the relative change in the Rayleigh-style
	// estimate below which the iteration is considered converged.
	DefaultTolerance = 1e-10

	// DefaultMaxIterations caps the number of power-iteration sweeps.
	DefaultMaxIterations = 500
)

// panic messages (no magic strings).
const (
	panicToleranceInvalid = "iim: WithTolerance: tol must be finite, positive"
	panicMaxIterInvalid   = "iim: WithMaxIterations: n must be positive"
)

// Option mutates the internal iteration policy. Safe to apply
// repeatedly (idempotent).
type Option func(*options)

type options struct {
	tol     float64
	maxIter int
}

// WithTolerance sets the convergence tolerance of SpectralRadius.
// tol must be finite and > 0.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

// WithMaxIterations caps the power-iteration sweep count; n must be > 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *options) { o.maxIter = n }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{tol: DefaultTolerance, maxIter: DefaultMaxIterations}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
