// SPDX-License-Identifier: MIT
// Package iim: sentinel error set. All operations return these sentinels
// (possibly wrapped with context via %w) and tests check them with
// errors.Is. Dimension and singularity failures reuse the matrix
// package sentinels so callers match one taxonomy across the module.

package iim

import "errors"

var (
	// ErrNilModel indicates that a nil *Model was passed to a solver or
	// accessor facade.
	ErrNilModel = errors.New("iim: nil model")

	// ErrNoSectors indicates an empty sector list at construction.
	ErrNoSectors = errors.New("iim: sector set must not be empty")

	// ErrDuplicateSector indicates a repeated sector identifier at
	// construction; identifiers must be unique.
	ErrDuplicateSector = errors.New("iim: duplicate sector identifier")

	// ErrUnknownSector indicates a sector name not present in the model.
	ErrUnknownSector = errors.New("iim: unknown sector")

	// ErrBadMode indicates a Mode value other than Demand or Supply.
	ErrBadMode = errors.New("iim: invalid solve mode")

	// ErrBadScale indicates an unknown consequence-mapping scale.
	ErrBadScale = errors.New("iim: invalid consequence scale")

	// ErrUnstable is returned by CheckStability when the dominant
	// eigenvalue of A* is ≥ 1, i.e. the interdependency matrix has no
	// stable equilibrium (Setola et al. 2009, eq. 6).
	ErrUnstable = errors.New("iim: interdependency matrix is not stable")

	// ErrNoConvergence indicates that the power iteration did not settle
	// within the configured iteration budget.
	ErrNoConvergence = errors.New("iim: spectral radius estimate did not converge")
)
