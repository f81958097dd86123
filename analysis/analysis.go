// SPDX-License-Identifier: MIT
// Package analysis: the index computations.

package analysis

import (
	"fmt"

	"github.com/katalvlaran/diim/iim"
	"github.com/katalvlaran/diim/matrix"
)

// offDiagonalMeans computes, for every line of a square matrix, the sum
// of its off-diagonal entries divided by (n−1). byRow selects rows
// (dependency orientation) or columns (influence orientation).
// Deterministic i→j scan. Complexity: O(n^2).
func offDiagonalMeans(m matrix.Matrix, byRow bool) ([]float64, error) {
	n := m.Rows()
	out := make([]float64, n)

	var i, j int
	var v, sum float64
	var err error
	for i = 0; i < n; i++ {
		sum = 0
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			if byRow {
				v, err = m.At(i, j)
			} else {
				v, err = m.At(j, i)
			}
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			sum += v
		}
		out[i] = sum / float64(n-1)
	}

	return out, nil
}

// validateModel guards the shared preconditions of every index.
func validateModel(m *iim.Model) error {
	if m == nil {
		return iim.ErrNilModel
	}
	if m.Len() < 2 {
		return ErrTooFewSectors
	}

	return nil
}

// Dependency computes the dependency index δ_i = Σ_{j≠i} a*[i,j] / (n−1)
// for every sector (Setola et al. 2009, eq. 3): the average degree to
// which sector i relies on the rest of the economy.
//
// Errors: iim.ErrNilModel, ErrTooFewSectors. Complexity: O(n^2).
func Dependency(m *iim.Model) ([]float64, error) {
	if err := validateModel(m); err != nil {
		return nil, fmt.Errorf("Dependency: %w", err)
	}

	out, err := offDiagonalMeans(m.AStar(), true)
	if err != nil {
		return nil, fmt.Errorf("Dependency: %w", err)
	}

	return out, nil
}

// Influence computes the influence gain ρ_j = Σ_{i≠j} a*[i,j] / (n−1)
// for every sector (Setola et al. 2009, eq. 4): the average degree to
// which sector j's inoperability spreads to the rest of the economy.
//
// Errors: iim.ErrNilModel, ErrTooFewSectors. Complexity: O(n^2).
func Influence(m *iim.Model) ([]float64, error) {
	if err := validateModel(m); err != nil {
		return nil, fmt.Errorf("Influence: %w", err)
	}

	out, err := offDiagonalMeans(m.AStar(), false)
	if err != nil {
		return nil, fmt.Errorf("Influence: %w", err)
	}

	return out, nil
}

// leontiefInverse builds S = (I − A*)⁻¹ for the overall indices.
func leontiefInverse(m *iim.Model, opts ...matrix.Option) (matrix.Matrix, error) {
	lhs, err := m.Leontief(iim.Demand)
	if err != nil {
		return nil, err
	}

	return matrix.Inverse(lhs, opts...)
}

// OverallDependency computes the overall dependency index: the same
// (n−1)-normalized row sums as Dependency, taken over S = (I−A*)⁻¹
// (Setola et al. 2009, eq. 9), so indirect multi-hop dependencies are
// included.
//
// Errors: iim.ErrNilModel, ErrTooFewSectors, matrix.ErrSingular when
// (I−A*) cannot be inverted. Complexity: O(n^3).
func OverallDependency(m *iim.Model, opts ...matrix.Option) ([]float64, error) {
	if err := validateModel(m); err != nil {
		return nil, fmt.Errorf("OverallDependency: %w", err)
	}

	s, err := leontiefInverse(m, opts...)
	if err != nil {
		return nil, fmt.Errorf("OverallDependency: %w", err)
	}
	out, err := offDiagonalMeans(s, true)
	if err != nil {
		return nil, fmt.Errorf("OverallDependency: %w", err)
	}

	return out, nil
}

// OverallInfluence computes the overall influence gain: the
// (n−1)-normalized column sums over S = (I−A*)⁻¹ (Setola et al. 2009,
// eq. 10).
//
// Errors: iim.ErrNilModel, ErrTooFewSectors, matrix.ErrSingular.
// Complexity: O(n^3).
func OverallInfluence(m *iim.Model, opts ...matrix.Option) ([]float64, error) {
	if err := validateModel(m); err != nil {
		return nil, fmt.Errorf("OverallInfluence: %w", err)
	}

	s, err := leontiefInverse(m, opts...)
	if err != nil {
		return nil, fmt.Errorf("OverallInfluence: %w", err)
	}
	out, err := offDiagonalMeans(s, false)
	if err != nil {
		return nil, fmt.Errorf("OverallInfluence: %w", err)
	}

	return out, nil
}

// matrixPower computes A^order for order ≥ 1 by repeated multiplication
// in fixed order.
func matrixPower(a matrix.Matrix, order int) (matrix.Matrix, error) {
	res := a
	var err error
	for p := 1; p < order; p++ {
		if res, err = matrix.Mul(res, a); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// InterdependencyIndex returns the order-n interdependency index
// between two sectors: (A*^order)[i,j], the coupling strength from
// sector i to sector j through exactly `order` hops.
//
// Errors: iim.ErrNilModel, iim.ErrUnknownSector, ErrBadOrder.
// Complexity: O(order·n^3).
func InterdependencyIndex(m *iim.Model, iSector, jSector string, order int) (float64, error) {
	if m == nil {
		return 0, fmt.Errorf("InterdependencyIndex: %w", iim.ErrNilModel)
	}
	if order < 1 {
		return 0, fmt.Errorf("InterdependencyIndex: order=%d: %w", order, ErrBadOrder)
	}
	i, ok := m.Index(iSector)
	if !ok {
		return 0, fmt.Errorf("InterdependencyIndex: %q: %w", iSector, iim.ErrUnknownSector)
	}
	j, ok := m.Index(jSector)
	if !ok {
		return 0, fmt.Errorf("InterdependencyIndex: %q: %w", jSector, iim.ErrUnknownSector)
	}

	pow, err := matrixPower(m.AStar(), order)
	if err != nil {
		return 0, fmt.Errorf("InterdependencyIndex: %w", err)
	}
	v, err := pow.At(i, j)
	if err != nil {
		return 0, fmt.Errorf("InterdependencyIndex: At(%d,%d): %w", i, j, err)
	}

	return v, nil
}

// MaxEntry names the strongest order-n coupling out of one sector.
type MaxEntry struct {
	From  string  // source sector
	To    string  // sector it is most strongly coupled to
	Value float64 // (A*^order)[From,To]
}

// MaxInterdependencies returns, for every sector, its strongest
// order-n coupling: the argmax over the sector's row of A*^order. Ties
// resolve to the lowest column index, keeping output deterministic.
//
// Errors: iim.ErrNilModel, ErrBadOrder. Complexity: O(order·n^3).
func MaxInterdependencies(m *iim.Model, order int) ([]MaxEntry, error) {
	if m == nil {
		return nil, fmt.Errorf("MaxInterdependencies: %w", iim.ErrNilModel)
	}
	if order < 1 {
		return nil, fmt.Errorf("MaxInterdependencies: order=%d: %w", order, ErrBadOrder)
	}

	pow, err := matrixPower(m.AStar(), order)
	if err != nil {
		return nil, fmt.Errorf("MaxInterdependencies: %w", err)
	}

	var (
		n       = m.Len()
		sectors = m.Sectors()
		out     = make([]MaxEntry, n)
		i, j    int
		v, best float64
		argmax  int
	)
	for i = 0; i < n; i++ {
		argmax = 0
		if best, err = pow.At(i, 0); err != nil {
			return nil, fmt.Errorf("MaxInterdependencies: At(%d,0): %w", i, err)
		}
		for j = 1; j < n; j++ {
			if v, err = pow.At(i, j); err != nil {
				return nil, fmt.Errorf("MaxInterdependencies: At(%d,%d): %w", i, j, err)
			}
			if v > best { // strict: ties keep the lowest column
				best, argmax = v, j
			}
		}
		out[i] = MaxEntry{From: sectors[i], To: sectors[argmax], Value: best}
	}

	return out, nil
}
