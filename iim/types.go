// Package iim: domain types shared by the model and its solvers.
package iim

// Mode selects between the two dual formulations of the static model.
//
//   - Demand — the demand-driven IIM: c* is a fractional reduction in
//     final demand and the solver uses (I − A*).
//   - Supply — the supply-driven (Ghosh) IIM: c* is a fractional
//     reduction in primary input/supply availability and the solver
//     uses the transposed matrix (I − A*ᵀ).
type Mode int

const (
	// Demand selects the demand-driven formulation, q = (I − A*)⁻¹·c*.
	Demand Mode = iota

	// Supply selects the supply-driven formulation, solving against A*ᵀ.
	Supply
)

// String implements fmt.Stringer for diagnostics.
func (m Mode) String() string {
	switch m {
	case Demand:
		return "demand"
	case Supply:
		return "supply"
	default:
		return "unknown"
	}
}

// ConsequenceScale identifies the qualitative assessment scale used
// when mapping consequence scores onto interdependency coefficients
// (Setola et al. 2009, Table 1).
type ConsequenceScale int

const (
	// Scale5Point is the default 5-point consequence scale.
	Scale5Point ConsequenceScale = iota

	// Scale4Point is the alternative 4-point consequence scale.
	Scale4Point
)

// String implements fmt.Stringer for diagnostics.
func (s ConsequenceScale) String() string {
	switch s {
	case Scale5Point:
		return "5-point"
	case Scale4Point:
		return "4-point"
	default:
		return "unknown"
	}
}
