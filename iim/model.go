// SPDX-License-Identifier: MIT
// Package iim: the interdependency model. Model owns an immutable copy
// of the A* matrix for a fixed, ordered sector set and derives the
// (I − A*) / (I − A*ᵀ) matrices consumed by the static solvers. It
// performs no inversion; that is delegated to the solve facades so
// every solve stays a pure function of explicit arguments.

package iim

import (
	"fmt"

	"github.com/katalvlaran/diim/matrix"
)

// Model binds an ordered sector set to its interdependency matrix A*.
// All fields are private and never mutated after New returns, so a
// Model is safe for concurrent use by any number of solves.
type Model struct {
	sectors []string       // ordered sector identifiers (unique)
	index   map[string]int // identifier → position lookup
	astar   *matrix.Dense  // immutable N×N interdependency matrix
	n       int            // number of sectors
}

// New constructs a Model from an ordered sector list and an N×N
// interdependency matrix.
//
// Stage 1 (Validate): non-empty unique sector list; astar non-nil,
// square, of matching size, with finite entries. No economic
// plausibility is enforced: row/column sums and coefficient ranges are
// the caller's concern (use CheckStability for the spectral test).
// Stage 2 (Finalize): deep-copy astar so later caller mutations cannot
// leak into the model.
//
// Errors: ErrNoSectors, ErrDuplicateSector, matrix.ErrNilMatrix,
// matrix.ErrDimensionMismatch, matrix.ErrNaNInf.
// Complexity: O(n^2) for the copy and the finiteness scan.
func New(sectors []string, astar matrix.Matrix) (*Model, error) {
	// Validate the sector set.
	if len(sectors) == 0 {
		return nil, ErrNoSectors
	}
	index := make(map[string]int, len(sectors))
	for i, name := range sectors {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("New: %q: %w", name, ErrDuplicateSector)
		}
		index[name] = i
	}

	// Validate the matrix: square, matching the sector count, finite.
	if err := matrix.ValidateSquareNonNil(astar); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if astar.Rows() != len(sectors) {
		return nil, fmt.Errorf("New: %d sectors vs %dx%d matrix: %w",
			len(sectors), astar.Rows(), astar.Cols(), matrix.ErrDimensionMismatch)
	}
	if err := matrix.ValidateFinite(astar); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	// Copy the inputs so the model is immutable from here on.
	owned := make([]string, len(sectors))
	copy(owned, sectors)
	copied, err := matrix.NewDenseCopy(astar)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Model{
		sectors: owned,
		index:   index,
		astar:   copied,
		n:       len(sectors),
	}, nil
}

// Len returns the number of sectors N. Complexity: O(1).
func (m *Model) Len() int { return m.n }

// Sectors returns a copy of the ordered sector identifiers.
// Complexity: O(n).
func (m *Model) Sectors() []string {
	out := make([]string, len(m.sectors))
	copy(out, m.sectors)

	return out
}

// Index returns the position of a sector identifier and whether it
// exists. Complexity: O(1).
func (m *Model) Index(name string) (int, bool) {
	i, ok := m.index[name]

	return i, ok
}

// AStar returns a deep copy of the interdependency matrix A*.
// Complexity: O(n^2).
func (m *Model) AStar() matrix.Matrix {
	return m.astar.Clone()
}

// AStarT returns A*ᵀ as a fresh matrix. Complexity: O(n^2).
func (m *Model) AStarT() (matrix.Matrix, error) {
	return matrix.Transpose(m.astar)
}

// Leontief returns the matrix the static solver factorizes for the
// given mode: I − A* (Demand) or I − A*ᵀ (Supply). A fresh matrix is
// returned on every call; the model caches nothing across solves.
//
// Errors: ErrBadMode. Complexity: O(n^2).
func (m *Model) Leontief(mode Mode) (matrix.Matrix, error) {
	eye, err := matrix.NewIdentity(m.n)
	if err != nil {
		return nil, fmt.Errorf("Leontief: %w", err)
	}

	switch mode {
	case Demand:
		return matrix.Sub(eye, m.astar)
	case Supply:
		at, err := matrix.Transpose(m.astar)
		if err != nil {
			return nil, fmt.Errorf("Leontief: %w", err)
		}

		return matrix.Sub(eye, at)
	default:
		return nil, fmt.Errorf("Leontief: mode %d: %w", int(mode), ErrBadMode)
	}
}
