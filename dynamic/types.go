// Package dynamic: domain types for perturbation signals and solver output.
package dynamic

// Series is a time-indexed perturbation signal c*(t) for the dynamic
// solver. At returns the perturbation vector for step t; a nil return
// means "zero perturbation at this step" and is how a finite signal
// models a one-time shock: once the underlying data is exhausted, At
// keeps returning nil and the solver substitutes zeros.
//
// Implementations must be pure: At must not mutate state, and repeated
// calls with the same t must return equal vectors, or solver runs lose
// reproducibility.
type Series interface {
	// At returns c*(t), or nil for a zero perturbation. The solver never
	// mutates the returned slice.
	At(t int) []float64
}

// VectorSeries adapts an explicit list of per-step perturbation vectors
// into a Series. Entry t is c*(t); a nil entry and any t beyond the end
// both read as zero perturbation.
type VectorSeries [][]float64

// At implements Series. Complexity: O(1).
func (s VectorSeries) At(t int) []float64 {
	if t < 0 || t >= len(s) {
		return nil
	}

	return s[t]
}

// TimeSeries is the dynamic solver output: row t holds the
// inoperability vector q(t), t = 0..steps. The caller owns the slices;
// the solver never retains references to them.
type TimeSeries [][]float64

// Steps returns the highest time index (len−1), or −1 when empty.
// Complexity: O(1).
func (ts TimeSeries) Steps() int { return len(ts) - 1 }
