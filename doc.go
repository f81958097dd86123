// Package diim models the propagation of operational disruption
// ("inoperability") through interdependent infrastructure or economic
// sectors, using Leontief-based input-output models.
//
// 🚀 What is diim?
//
//	A pure-Go implementation of the static Inoperability Input-Output
//	Model (IIM) and the Demand-Reduction and Recovery Dynamic
//	Inoperability Input-Output Model (DIIM):
//		• Dense primitives: row-major matrices, LU with partial pivoting,
//		  linear solves, inversion, matrix exponential
//		• Static equilibrium: demand-driven and supply-driven solvers
//		• Dynamic model: discrete-time demand-reduction recursion and
//		  continuous recovery trajectories
//		• Sector analysis: dependency/influence indices and n-th order
//		  interdependencies
//
// ✨ Why choose diim?
//
//   - Deterministic – fixed reduction orders, bit-identical reruns
//   - Fail-fast – sentinel errors, eager dimension validation
//   - Pure Go – no cgo, no hidden deps
//   - Stateless – every solve is a pure function of its inputs
//
// Everything is organized under four subpackages:
//
//	matrix/   — dense matrix/vector primitives and factorizations
//	iim/      — the interdependency model and static equilibrium solvers
//	dynamic/  — discrete-time recovery recursion, perturbations, resilience
//	analysis/ — dependency, influence and interdependency indices
//
// The models follow the formulations published by Haimes & Jiang (2001),
// Santos & Haimes (2004), Haimes et al. (2005), Lian & Haimes (2006),
// Leung et al. (2007) and Setola et al. (2009).
//
//	go get github.com/katalvlaran/diim
package diim
