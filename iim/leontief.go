// SPDX-License-Identifier: MIT
// Package iim: Leontief normalization of raw input-output tables into
// technical-coefficient and interdependency matrices.

package iim

import (
	"fmt"

	"github.com/katalvlaran/diim/matrix"
)

// TechnicalCoefficients normalizes a raw inter-sector transaction table
// into the Leontief technical-coefficient matrix A, with
// a[i,j] = z[i,j] / x[j] (Santos & Haimes 2004, eq. 2), where z is the
// transaction table and x the total-output vector.
//
// A sector with zero total output yields a zero column rather than a
// division failure: such sectors simply contribute no coefficients.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square
// table or len(xOutput) ≠ n), matrix.ErrNaNInf (non-finite entries).
// Complexity: O(n^2).
func TechnicalCoefficients(ioTable matrix.Matrix, xOutput []float64) (matrix.Matrix, error) {
	if err := matrix.ValidateSquareNonNil(ioTable); err != nil {
		return nil, fmt.Errorf("TechnicalCoefficients: %w", err)
	}
	n := ioTable.Rows()
	if err := matrix.ValidateVecLen(xOutput, n); err != nil {
		return nil, fmt.Errorf("TechnicalCoefficients: %w", err)
	}
	if err := matrix.ValidateFinite(ioTable); err != nil {
		return nil, fmt.Errorf("TechnicalCoefficients: %w", err)
	}

	amat, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("TechnicalCoefficients: %w", err)
	}

	var i, j int
	var z float64
	for i = 0; i < n; i++ { // fixed i→j order for reproducibility
		for j = 0; j < n; j++ {
			if xOutput[j] == 0 {
				continue // zero-output sector: leave the column at zero
			}
			if z, err = ioTable.At(i, j); err != nil {
				return nil, fmt.Errorf("TechnicalCoefficients: At(%d,%d): %w", i, j, err)
			}
			if err = amat.Set(i, j, z/xOutput[j]); err != nil {
				return nil, fmt.Errorf("TechnicalCoefficients: Set(%d,%d): %w", i, j, err)
			}
		}
	}

	return amat, nil
}

// InterdependencyFromIO derives the interdependency matrix A* for the
// requested mode from a raw input-output table:
//
//   - Demand: A* equals the demand-side normalization of the technical
//     coefficients (Santos & Haimes 2004, eq. 28; for tables already
//     expressed in producer prices this is the coefficient matrix
//     itself).
//   - Supply: A* = Aᵀ, the output-side allocation coefficients
//     (Leung et al. 2007, p. 301).
//
// Errors: everything TechnicalCoefficients returns, plus ErrBadMode.
// Complexity: O(n^2).
func InterdependencyFromIO(ioTable matrix.Matrix, xOutput []float64, mode Mode) (matrix.Matrix, error) {
	amat, err := TechnicalCoefficients(ioTable, xOutput)
	if err != nil {
		return nil, fmt.Errorf("InterdependencyFromIO: %w", err)
	}

	switch mode {
	case Demand:
		return amat, nil
	case Supply:
		at, err := matrix.Transpose(amat)
		if err != nil {
			return nil, fmt.Errorf("InterdependencyFromIO: %w", err)
		}

		return at, nil
	default:
		return nil, fmt.Errorf("InterdependencyFromIO: mode %d: %w", int(mode), ErrBadMode)
	}
}
