// Package iim implements the static Inoperability Input-Output Model
// (IIM) for interdependent infrastructure sectors.
//
// 🚀 What is the IIM?
//
//	The IIM is a Leontief-based risk model: a perturbation c* (a
//	fractional reduction in demand or supply) propagates through the
//	interdependency matrix A* and settles at the equilibrium
//	inoperability vector q, where q[i] ∈ [0,1] conventionally means
//	"fraction of sector i unable to perform its intended function".
//
// Two dual formulations are provided:
//
//   - Demand-driven (Haimes & Jiang 2001; Santos & Haimes 2004):
//     q solves (I − A*)·q = c*, with A*[i][j] the inputs of sector i
//     consumed per unit output of sector j.
//   - Supply-driven (Leung et al. 2007, the Ghosh dual):
//     q solves (I − A*ᵀ)·q = c*, with A* holding output-side
//     allocation coefficients and c* a reduction in primary supply.
//
// The Model type owns an immutable copy of A* for a fixed sector list;
// Solve is a pure function of (model, c*, mode). The model performs no
// inversion itself — each solve runs one pivoted factorization and a
// singular (I − A*) surfaces as matrix.ErrSingular, signalling an
// economically degenerate configuration.
//
// The package also covers the supporting constructions from the same
// papers: Leontief technical-coefficient normalization of raw
// input-output tables, power-law mapping of qualitative consequence
// scores onto A* entries (Setola et al. 2009), and the dominant
// eigenvalue stability test ρ(A*) < 1. Stability checking is opt-in:
// constructing a Model never enforces economic plausibility, only
// dimensional and numerical validity.
//
// See the examples in example_test.go for usage patterns.
package iim
