// Package analysis derives sector-level risk indices from an
// interdependency model: how exposed each sector is to the others
// (dependency), how strongly it drives the others (influence), and
// which pairwise couplings dominate at first and higher orders.
//
// All indices follow Setola et al. (2009) and are defined for the
// demand-driven orientation of A*:
//
//   - Dependency δ_i — mean off-diagonal mass of row i of A* (eq. 3).
//   - Influence ρ_j — mean off-diagonal mass of column j of A* (eq. 4).
//   - Overall variants — the same sums over S = (I−A*)⁻¹, capturing
//     indirect propagation through the whole economy (eq. 9, 10).
//   - InterdependencyIndex — the (i,j) entry of A* raised to a power,
//     the strength of the order-n coupling from sector i to sector j.
//
// Every function is a pure read of the model; nothing is cached.
package analysis
