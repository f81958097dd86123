// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All kernels MUST return these sentinels and tests MUST
// check them via errors.Is. Panics are reserved for programmer errors in
// option constructors.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to
// allow easy grepping across logs. Kernels wrap sentinels with an
// operation tag via fmt.Errorf("Op: %w", ErrX); callers still match the
// underlying sentinel with errors.Is.
var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands:
	// Add/Sub with different shapes, Mul with inner mismatch, a vector whose
	// length does not match the matrix, or a non-square input where a square
	// one is required.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned when factorization finds no pivot above the
	// configured tolerance, i.e. the matrix is numerically singular.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
