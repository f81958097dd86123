// SPDX-License-Identifier: MIT
// Package dynamic: sentinel error set. Dimension failures reuse the
// matrix package sentinels; model-related failures reuse package iim's,
// so callers match one taxonomy across the module.

package dynamic

import "errors"

var (
	// ErrNegativeHorizon indicates a negative number of time steps.
	ErrNegativeHorizon = errors.New("dynamic: time horizon must be >= 0")

	// ErrBadWindow indicates a perturbation window with from < 0 or
	// to < from.
	ErrBadWindow = errors.New("dynamic: invalid perturbation window")

	// ErrBadLambda indicates a recovery threshold λ outside (0,1).
	ErrBadLambda = errors.New("dynamic: lambda must be in (0,1)")

	// ErrBadRecoveryTime indicates a non-positive sector recovery time τ.
	ErrBadRecoveryTime = errors.New("dynamic: recovery time must be > 0")

	// ErrEmptySeries indicates an inoperability time series with no
	// samples where at least one is required.
	ErrEmptySeries = errors.New("dynamic: empty time series")
)
