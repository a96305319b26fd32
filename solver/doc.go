// Package solver implements the optimal-construction search engine: a
// best-first (A*) exploration of straightedge-and-compass construction
// states over the geom kernels.
//
// A problem is a set of known primitives plus one target. The engine
// repeatedly pops the most promising state, enumerates every applicable
// construction over every primitive pair, deduplicates the products by
// canonical identity, bounds the remainder with an admissible heuristic,
// and pushes the successors. The first produced primitive whose canonical
// identity equals the target's terminates the search; the step list is
// reconstructed by walking parent links through the node arena.
//
// Guarantees:
//
//   - Optimality: the heuristic is admissible and the open set is ordered
//     by (f, g, insertion); no shorter construction exists than the one
//     returned (within the configured depth ceiling).
//   - Determinism: pair enumeration is lexicographic, operation order per
//     pair is fixed, intersection roots are canonically ordered, and heap
//     ties break by insertion order — identical inputs and limits produce
//     identical output, independent of host scheduling.
//   - Hard budgets: depth, state count and wall clock are ceilings, never
//     hints. Budget outcomes are Results (StatusUnsolved with a Reason),
//     not errors; only invalid input returns a Go error.
//
// Complexity:
//
//   - Time:  O(S · P² · log S) where S = states materialized and P = the
//     primitive count of a state (P ≤ knowns + MaxDepth).
//   - Space: O(S) — each state stores only its appended primitive (a
//     delta); full sequences are rehydrated on demand by walking parents.
//
// The search is single-threaded and synchronous per problem, performs no
// I/O, and shares nothing between calls: run one Solve per worker for
// cross-problem parallelism. WallClock and the cooperative Cancel flag are
// polled on every pop and every 1024 generated successors.
package solver
