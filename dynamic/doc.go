// Package dynamic implements the Demand-Reduction and Recovery Dynamic
// Inoperability Input-Output Model (DIIM).
//
// 🚀 What is the DIIM?
//
//	Where the static model (package iim) answers "where does the system
//	settle?", the dynamic model answers "how does it get there?". Each
//	sector recovers toward equilibrium at a rate set by its resilience
//	coefficient, pulled away by interdependency effects and by ongoing
//	external perturbation:
//
//	    q(0)   = K·c*(0)
//	    q(t+1) = q(t) + K·(A*·q(t) + c*(t) − q(t))
//
//	(Haimes et al. 2005, eq. 51; Lian & Haimes 2006, eq. 21.)
//
// ✨ Key properties:
//
//   - No inversion ever: the solver only multiplies, so it stays
//     well-defined even when (I − A*) is singular and the static model
//     fails.
//   - Exactly steps+1 iterations, no implicit convergence checks:
//     convergence or divergence is an emergent property of K and A*,
//     observable in the returned series, never enforced or clamped.
//   - Perturbation signals are pluggable via the Series interface:
//     explicit per-step vectors (VectorSeries) or per-sector time
//     windows (Perturbation), with zero perturbation past the end of
//     the signal modeling a one-time shock.
//
// The package also provides the continuous recovery trajectory
// q(t) = e^(−K(I−A*)t)·q(0) (Lian & Haimes 2006, eq. 26), resilience
// matrix construction from sector recovery times, and the impact
// integral ∫q(t)dt evaluated by the trapezoidal rule.
package dynamic
