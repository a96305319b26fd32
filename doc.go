// Package compass solves optimal straightedge-and-compass construction
// problems in Go.
//
// 🚀 What is compass?
//
//	A small, deterministic library that answers: given known points, lines and
//	circles, what is the SHORTEST sequence of classical constructions that
//	produces a given target primitive?
//
//	  • Robust predicates — exact sign tests immune to floating-point rounding
//	  • Geometric kernels — line/circle constructions & all intersections
//	  • Canonical identities — hash-stable primitive keys for deduplication
//	  • A* search — admissible heuristic, hard depth/state/time budgets
//
// ✨ Why choose compass?
//
//   - Provably optimal       — A* with an admissible lower bound
//   - Bit-reproducible       — same input, same limits ⇒ same output
//   - Rock-solid numerics    — adaptive-precision predicates, ε-canonical ids
//   - Pure algorithmic core  — no I/O, no goroutines, no global state
//
// Under the hood, everything is organized under three subpackages:
//
//	predicate/ — sign-exact orientation / on-line / on-circle tests
//	geom/      — Point, Line, Circle, canonical identities & kernels
//	solver/    — the best-first search engine and problem/result codec
//
// Quick ASCII example (perpendicular bisector of AB):
//
//	      ×  P1
//	     ╱ ╲
//	  A ●───● B      circle(A→B), circle(B→A),
//	     ╲ ╱         both intersections, line P1-P2.
//	      ×  P2
//
// Dive into solver.Solve for the single entry point, and the package docs
// for tolerances, determinism rules, and worked examples.
//
//	go get github.com/katalvlaran/compass/solver
package compass
