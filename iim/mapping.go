// SPDX-License-Identifier: MIT
// Package iim: power-law mapping of qualitative consequence assessments
// onto interdependency coefficients.

package iim

import (
	"fmt"
	"math"

	"github.com/katalvlaran/diim/matrix"
)

// Power-law fit parameters a·C^b for each assessment scale, fitted to
// Table 1 in Setola et al. (2009).
const (
	scale5PointA = 0.008
	scale5PointB = 2.569323442
	scale4PointA = 0.01
	scale4PointB = 2.821928095
)

// MapConsequence maps a single qualitative consequence score C onto an
// interdependency coefficient a*_ij = a·C^b for the given scale.
//
// Errors: ErrBadScale for an unknown scale. Complexity: O(1).
func MapConsequence(score float64, scale ConsequenceScale) (float64, error) {
	switch scale {
	case Scale5Point:
		return scale5PointA * math.Pow(score, scale5PointB), nil
	case Scale4Point:
		return scale4PointA * math.Pow(score, scale4PointB), nil
	default:
		return 0, fmt.Errorf("MapConsequence: scale %d: %w", int(scale), ErrBadScale)
	}
}

// MapConsequenceMatrix applies MapConsequence elementwise to a matrix of
// consequence scores, producing an interdependency matrix A*. The input
// is never mutated.
//
// Errors: matrix.ErrNilMatrix, ErrBadScale. Complexity: O(r*c).
func MapConsequenceMatrix(scores matrix.Matrix, scale ConsequenceScale) (matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(scores); err != nil {
		return nil, fmt.Errorf("MapConsequenceMatrix: %w", err)
	}
	// Reject an unknown scale before touching any element.
	if _, err := MapConsequence(0, scale); err != nil {
		return nil, fmt.Errorf("MapConsequenceMatrix: %w", err)
	}

	rows, cols := scores.Rows(), scores.Cols()
	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("MapConsequenceMatrix: %w", err)
	}

	var i, j int
	var c, v float64
	for i = 0; i < rows; i++ { // fixed i→j order
		for j = 0; j < cols; j++ {
			if c, err = scores.At(i, j); err != nil {
				return nil, fmt.Errorf("MapConsequenceMatrix: At(%d,%d): %w", i, j, err)
			}
			v, _ = MapConsequence(c, scale) // scale already vetted above
			if err = out.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("MapConsequenceMatrix: Set(%d,%d): %w", i, j, err)
			}
		}
	}

	return out, nil
}
