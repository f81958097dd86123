// SPDX-License-Identifier: MIT
// Package matrix: LU factorization with row partial pivoting and the
// solve/inverse facades built on it.
//
// Purpose:
//   - Factorize produces P·A = L·U with L unit lower triangular and U upper
//     triangular, choosing the largest-magnitude pivot in each column for
//     numerical stability.
//   - Solve and Inverse are thin facades: factorize once, then run forward
//     and backward substitution against one or many right-hand sides.
//
// Determinism:
//   - The pivot scan walks rows in ascending order and keeps the FIRST
//     strict maximum, so identical inputs always yield the identical
//     permutation and bit-identical factors.
//
// Singularity policy:
//   - A column whose best pivot magnitude is ≤ the acceptance floor makes
//     the matrix numerically singular: ErrSingular, no partial results.
//   - The floor defaults to machineEpsilon·n·max|A| and can be replaced by
//     an absolute value via WithPivotTolerance.

package matrix

import (
	"fmt"
	"math"
)

// machineEpsilon is the float64 unit roundoff (2^-52), the scale factor
// for the automatic pivot-acceptance floor.
const machineEpsilon = 2.220446049250313e-16

// LUP holds a factorization P·A = L·U of a square matrix A.
// The factors are packed into a single Dense: the strict lower triangle
// stores L (unit diagonal implied), the upper triangle including the
// diagonal stores U. perm maps factored row positions to original rows:
// row i of P·A is row perm[i] of A. The struct is immutable after
// Factorize returns and safe for concurrent solves.
type LUP struct {
	n     int     // dimension of A
	lu    *Dense  // packed L (below diagonal) and U (on/above diagonal)
	perm  []int   // row permutation applied by pivoting
	swaps int     // number of row exchanges (for the determinant sign)
	tol   float64 // pivot-acceptance floor actually used
}

// denseCopy materializes m into a fresh *Dense, preserving values.
// Fast path clones the backing slice; fallback reads via At.
func denseCopy(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}

	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// maxAbs returns the largest absolute entry of a Dense (∞-norm over
// elements). Deterministic flat scan. Complexity: O(n^2).
func maxAbs(d *Dense) float64 {
	var best, v float64
	for idx := 0; idx < len(d.data); idx++ {
		v = math.Abs(d.data[idx])
		if v > best {
			best = v
		}
	}

	return best
}

// Factorize computes the pivoted factorization P·A = L·U of a square
// matrix. The input is copied, never mutated.
//
// Stage 1 (Validate): non-nil, square; derive the pivot floor.
// Stage 2 (Execute): for each column k, pick the largest |pivot| among
// rows k..n-1 (first strict maximum), swap rows, eliminate below.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch (validation).
//   - ErrSingular when the best pivot magnitude is ≤ the floor.
//
// Complexity: O(n^3) time, O(n^2) space.
func Factorize(m Matrix, opts ...Option) (*LUP, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opFactorize, err)
	}

	lu, err := denseCopy(m)
	if err != nil {
		return nil, matrixErrorf(opFactorize, err)
	}
	n := lu.r

	// Resolve the pivot-acceptance floor: explicit absolute value, or
	// machine epsilon scaled by the matrix magnitude and dimension.
	o := gatherOptions(opts...)
	tol := o.pivotTol
	if tol == DefaultPivotTolerance {
		tol = machineEpsilon * float64(n) * maxAbs(lu)
	}

	// Identity permutation before any exchanges.
	perm := make([]int, n)
	for i := 0; i < n; i++ {
		perm[i] = i
	}

	var (
		f          = &LUP{n: n, lu: lu, perm: perm, tol: tol}
		i, j, k, p int     // loop iterators and pivot row
		best, v    float64 // pivot scan state
		piv, lik   float64 // elimination temporaries
		baseI      int     // flat row offsets
	)
	for k = 0; k < n; k++ {
		// Pivot search: first strict maximum over rows k..n-1.
		p, best = k, math.Abs(lu.data[k*n+k])
		for i = k + 1; i < n; i++ {
			v = math.Abs(lu.data[i*n+k])
			if v > best {
				p, best = i, v
			}
		}
		if best <= tol {
			return nil, matrixErrorf(opFactorize, ErrSingular)
		}

		// Row exchange (full rows: the L part travels with its row).
		if p != k {
			swapRows(lu, p, k)
			perm[p], perm[k] = perm[k], perm[p]
			f.swaps++
		}

		// Eliminate below the pivot.
		piv = lu.data[k*n+k]
		for i = k + 1; i < n; i++ {
			baseI = i * n
			lik = lu.data[baseI+k] / piv
			lu.data[baseI+k] = lik // store the multiplier in L's slot
			if lik != 0 {
				for j = k + 1; j < n; j++ {
					lu.data[baseI+j] -= lik * lu.data[k*n+j]
				}
			}
		}
	}

	return f, nil
}

// swapRows exchanges rows a and b of a Dense in place.
func swapRows(d *Dense, a, b int) {
	baseA, baseB := a*d.c, b*d.c
	for j := 0; j < d.c; j++ {
		d.data[baseA+j], d.data[baseB+j] = d.data[baseB+j], d.data[baseA+j]
	}
}

// N returns the dimension of the factored matrix. Complexity: O(1).
func (f *LUP) N() int { return f.n }

// Det returns det(A) = (−1)^swaps · Π U[i,i].
// Complexity: O(n).
func (f *LUP) Det() float64 {
	det := 1.0
	for i := 0; i < f.n; i++ {
		det *= f.lu.data[i*f.n+i]
	}
	if f.swaps%2 == 1 {
		det = -det
	}

	return det
}

// SolveVec solves A·x = b against the cached factors.
//
// Stage 1 (Validate): len(b) == n.
// Stage 2 (Execute): forward substitution L·y = P·b (top-down), then
// backward substitution U·x = y (bottom-up). The diagonal of U was
// already vetted against the pivot floor during Factorize.
//
// Errors: ErrNilMatrix (nil b), ErrDimensionMismatch.
// Complexity: O(n^2) time, O(n) space.
func (f *LUP) SolveVec(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	var (
		n    = f.n
		x    = make([]float64, n) // doubles as the y workspace
		sum  float64
		i, k int
		base int
	)
	// Forward: L·y = P·b, exploiting the unit diagonal of L.
	for i = 0; i < n; i++ {
		sum = ZeroSum
		base = i * n
		for k = 0; k < i; k++ {
			sum += f.lu.data[base+k] * x[k]
		}
		x[i] = b[f.perm[i]] - sum
	}
	// Backward: U·x = y.
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		base = i * n
		for k = i + 1; k < n; k++ {
			sum += f.lu.data[base+k] * x[k]
		}
		x[i] = (x[i] - sum) / f.lu.data[base+i]
	}

	return x, nil
}

// Solve computes x with A·x = b using one pivoted factorization.
// Pure facade over Factorize + SolveVec; A and b are never mutated.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
// Complexity: O(n^3) time, O(n^2) space.
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	f, err := Factorize(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.SolveVec(b)
}

// Inverse computes A⁻¹ by solving A·x = e_col for every canonical basis
// column against a single pivoted factorization.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
// Complexity: O(n^3) time, O(n^2) space.
func Inverse(a Matrix, opts ...Option) (Matrix, error) {
	f, err := Factorize(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := f.n
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		e      = make([]float64, n) // reusable basis vector
		x      []float64
		col, i int
	)
	for col = 0; col < n; col++ {
		e[col] = 1.0
		if x, err = f.SolveVec(e); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
		e[col] = 0.0
	}

	return inv, nil
}
