// Package geom provides the geometric data model of compass: points, lines
// and circles as a closed sum type, their canonical hash-stable identities,
// and the constructive kernels (line through two points, circle by center
// and radius point, and the three intersection routines).
//
// 🧭 Canonical identity
//
// Two primitives are "the same object" iff their canonical identities are
// equal. An identity is a fixed-width byte key derived from the primitive's
// attributes after normalization and quantization to EpsCanon:
//
//   - Point  → (round(x/ε), round(y/ε))
//   - Line   → unique (a, b, c) with a²+b²=1 and a canonical sign, quantized
//   - Circle → (round(cx/ε), round(cy/ε), round(r/ε))
//
// The line sign rule is decided on the QUANTIZED leading coefficients, so
// mathematically identical lines produce bitwise identical identities even
// when the raw first coefficient straddles zero by less than ε.
//
// 📐 Kernels
//
// Constructive operations are pure functions over coordinates. Intersections
// return zero, one or two points under the EpsNumeric discriminant policy
// (parallel, tangent, secant). When two points are produced, the first is
// always the one with the smaller lexicographic quantized (x, y) — this
// makes downstream deduplication independent of operand order and keeps
// results bit-reproducible.
//
// Coincident defining points are decided with canonical identities;
// parallel, tangent and non-meeting curves with the EpsNumeric cutoff. The
// sign-exact tests from the predicate package are exposed as OnLine,
// OnCircle and Orient.
//
// Tolerances are module-level immutable constants: EpsCanon (identity
// quantum, 1e-9) and EpsNumeric (kernel discriminant cutoff, 1e-12).
package geom
