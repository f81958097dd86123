// SPDX-License-Identifier: MIT
// Package dynamic: windowed perturbation signals. A Perturbation holds
// per-sector shock windows — "sector s is perturbed by value v during
// steps [from,to]" — and materializes c*(t) on demand for the solver.

package dynamic

import (
	"fmt"

	"github.com/katalvlaran/diim/iim"
)

// window is one per-sector shock: value applied to sector during the
// inclusive step interval [from,to].
type window struct {
	sector   int
	value    float64
	from, to int
}

// Perturbation is a Series built from per-sector time windows against a
// model's sector set. The zero value is unusable; construct with
// NewPerturbation. Windows are applied in insertion order, so a later
// window overwrites an earlier one on the same sector for overlapping
// steps (deterministic last-write-wins).
type Perturbation struct {
	model   *iim.Model
	windows []window
}

// NewPerturbation creates an empty perturbation signal bound to the
// model's sector set.
//
// Errors: iim.ErrNilModel. Complexity: O(1).
func NewPerturbation(m *iim.Model) (*Perturbation, error) {
	if m == nil {
		return nil, fmt.Errorf("NewPerturbation: %w", iim.ErrNilModel)
	}

	return &Perturbation{model: m}, nil
}

// Add registers a shock of the given magnitude on a sector for the
// inclusive step interval [from,to]. The magnitude is accepted as-is:
// values outside [0,1] are the caller's modeling choice, not an error.
//
// Errors:
//   - iim.ErrUnknownSector when the name is not in the model.
//   - ErrBadWindow when from < 0 or to < from.
//
// Complexity: O(1).
func (p *Perturbation) Add(sector string, value float64, from, to int) error {
	idx, ok := p.model.Index(sector)
	if !ok {
		return fmt.Errorf("Add: %q: %w", sector, iim.ErrUnknownSector)
	}
	if from < 0 || to < from {
		return fmt.Errorf("Add: [%d,%d]: %w", from, to, ErrBadWindow)
	}
	p.windows = append(p.windows, window{sector: idx, value: value, from: from, to: to})

	return nil
}

// At implements Series: it materializes c*(t) by overlaying every
// window active at step t onto a zero vector. Steps outside all windows
// yield nil (zero perturbation).
// Complexity: O(n + windows).
func (p *Perturbation) At(t int) []float64 {
	var c []float64 // allocated lazily on the first active window
	for _, w := range p.windows {
		if t < w.from || t > w.to {
			continue
		}
		if c == nil {
			c = make([]float64, p.model.Len())
		}
		c[w.sector] = w.value
	}

	return c
}
