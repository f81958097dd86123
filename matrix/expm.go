// SPDX-License-Identifier: MIT
// Package matrix: dense matrix exponential via Padé approximation with
// scaling and squaring. Needed by the continuous recovery model, where
// the trajectory propagator is e^(−K(I−A*)).

package matrix

import (
	"fmt"
	"math"
)

// padeOrder is the diagonal Padé approximant degree used by Expm.
// Order 6 with ‖A‖∞ scaled below 1/2 keeps the approximation error at
// the level of float64 roundoff for the matrix sizes this library
// targets (tens to low hundreds).
const padeOrder = 6

// expmScaleLimit is the ∞-norm ceiling after scaling; the argument is
// halved until its norm drops below this bound.
const expmScaleLimit = 0.5

// infNorm returns the ∞-norm (maximum absolute row sum) of a Dense.
// Deterministic row-major scan. Complexity: O(n^2).
func infNorm(d *Dense) float64 {
	var best, sum float64
	var i, j, base int
	for i = 0; i < d.r; i++ {
		sum = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			sum += math.Abs(d.data[base+j])
		}
		if sum > best {
			best = sum
		}
	}

	return best
}

// Expm computes the matrix exponential e^A of a square matrix.
//
// Stage 1 (Validate): non-nil, square, finite entries.
// Stage 2 (Scale): halve A until ‖A‖∞ < 1/2 (s halvings).
// Stage 3 (Padé): build the order-6 diagonal approximant N(A)/D(A) and
// solve D·F = N column by column via the pivoted factorization.
// Stage 4 (Square): square F s times to undo the scaling.
//
// Behavior highlights:
//   - Fully deterministic: fixed scaling rule, fixed accumulation order.
//   - Input is never mutated; the result is a fresh Dense.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch (validation).
//   - ErrNaNInf when A contains non-finite entries.
//   - ErrSingular if the Padé denominator fails to factorize (not
//     expected once the argument is scaled; propagated unchanged).
//
// Complexity: O((padeOrder + s)·n^3) time, O(n^2) space.
func Expm(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opExpm, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(opExpm, err)
	}

	a, err := denseCopy(m)
	if err != nil {
		return nil, matrixErrorf(opExpm, err)
	}
	n := a.r

	// Scaling: find s with ‖A‖∞ / 2^s < expmScaleLimit.
	norm := infNorm(a)
	s := 0
	if norm >= expmScaleLimit {
		s = int(math.Ceil(math.Log2(norm/expmScaleLimit))) + 1
	}
	if s > 0 {
		factor := math.Ldexp(1, -s) // exact power-of-two scaling
		for idx := 0; idx < len(a.data); idx++ {
			a.data[idx] *= factor
		}
	}

	// Padé accumulation: numer = Σ c_k·A^k, denom = Σ (−1)^k·c_k·A^k,
	// with c_0 = 1 and c_k = c_{k−1}·(q−k+1)/(k·(2q−k+1)).
	numer, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opExpm, err)
	}
	denom, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opExpm, err)
	}
	var power Matrix = a.Clone() // running A^k, starting at k = 1

	var (
		k, idx int
		c      = 1.0
		sign   = -1.0
		pd     *Dense
	)
	for k = 1; k <= padeOrder; k++ {
		c = c * float64(padeOrder-k+1) / float64(k*(2*padeOrder-k+1))
		pd = power.(*Dense)
		for idx = 0; idx < len(pd.data); idx++ { // flat accumulate, fixed order
			numer.data[idx] += c * pd.data[idx]
			denom.data[idx] += sign * c * pd.data[idx]
		}
		sign = -sign
		if k < padeOrder {
			if power, err = Mul(power, a); err != nil {
				return nil, matrixErrorf(opExpm, err)
			}
		}
	}

	// Solve denom·F = numer column by column over one factorization.
	f, err := Factorize(denom)
	if err != nil {
		return nil, matrixErrorf(opExpm, err)
	}
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opExpm, err)
	}
	var (
		col, i int
		rhs    = make([]float64, n)
		x      []float64
	)
	for col = 0; col < n; col++ {
		for i = 0; i < n; i++ {
			rhs[i] = numer.data[i*n+col]
		}
		if x, err = f.SolveVec(rhs); err != nil {
			return nil, matrixErrorf(opExpm, fmt.Errorf("column %d: %w", col, err))
		}
		for i = 0; i < n; i++ {
			res.data[i*n+col] = x[i]
		}
	}

	// Undo the scaling: square the result s times.
	var sq Matrix = res
	for k = 0; k < s; k++ {
		if sq, err = Mul(sq, sq); err != nil {
			return nil, matrixErrorf(opExpm, err)
		}
	}

	return sq, nil
}
