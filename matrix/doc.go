// Package matrix provides the dense linear-algebra primitives used by
// the inoperability input-output models: a row-major Dense matrix, the
// elementwise and product kernels, LU factorization with partial
// pivoting, linear solves, inversion, and the matrix exponential.
//
// 🚀 Design:
//
//   - A small Matrix interface (Rows/Cols/At/Set/Clone) with Dense as
//     the canonical row-major implementation backed by a flat slice.
//   - Every kernel has a fast-path on *Dense operating directly on the
//     backing slice, and a generic At/Set fallback for foreign
//     implementations.
//   - Strict fail-fast validation via central validators; all failures
//     are package-level sentinels matched with errors.Is.
//   - Deterministic loop orders everywhere: identical inputs always
//     produce bit-identical outputs, which keeps numerical fixtures
//     reproducible across runs.
//
// ⚙️ Numerical policy:
//
//	Factorize performs row partial pivoting and reports ErrSingular
//	when no acceptable pivot remains. The acceptance floor defaults to
//	machine epsilon scaled by n·max|A| and can be overridden with
//	WithPivotTolerance.
//
// All operations are pure: inputs are never mutated and results are
// freshly allocated.
package matrix
