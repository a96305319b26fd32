// Package predicate provides robust, sign-exact geometric predicates over
// double-precision coordinates.
//
// Each predicate answers a sign-only question — orientation of a point
// triple, point-on-line, point-on-circle — and guarantees that the returned
// sign equals the TRUE sign of the underlying polynomial evaluated on the
// given float64 inputs, not a rounded approximation.
//
// Why sign-exactness matters:
//
//	Canonicalization and degeneracy handling make yes/no decisions on
//	equality and containment. A rounded predicate produces inconsistent
//	answers for inputs near decision boundaries, which corrupts identity
//	sets and breaks search completeness downstream.
//
// How it works (two tiers):
//
//  1. Triage: evaluate the polynomial in ordinary floating point together
//     with a conservative forward error bound. If the magnitude of the
//     result exceeds the bound, its sign is certain and is returned.
//  2. Exact: otherwise re-evaluate over math/big.Rat. Every finite float64
//     converts to a rational exactly, so the rational sign IS the
//     mathematical sign for the given inputs.
//
// All error-bound constants are module-level immutable values derived from
// the unit roundoff of IEEE-754 binary64; there is no global mutable state.
// Predicates are pure and deterministic, safe for concurrent use.
//
// Complexity:
//
//   - Triage path: a handful of flops, branch-free bound check.
//   - Exact path: a few big.Rat multiplications; ~two orders of magnitude
//     slower, taken only when the float result is within its error bound.
package predicate
