// Best-first search over construction states.

package solver

import (
	"container/heap"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/compass/geom"
)

// Solve searches for the shortest construction sequence deriving the target
// from the knowns. It accepts functional options to override the hard
// limits (WithMaxDepth, WithMaxStates, WithWallClock, WithCancel).
//
// Returns:
//
//   - Result with StatusSolved and the 1-based step list when an optimal
//     construction exists within the limits (zero steps when a known
//     already matches the target).
//   - Result with StatusUnsolved and a Reason when a budget is exhausted
//     or the reachable closure is emptied without a match.
//   - err for invalid input only (see Problem.validate for the order of
//     checks); no search is performed in that case.
//
// Determinism: identical problems and limits produce identical results,
// independent of host scheduling (CalculationTimeMS excepted).
func Solve(problem Problem, opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Re-check limit sanity. Option constructors already panic on bad
	//    values, but cfg could have been mutated through a custom Option.
	if cfg.MaxDepth <= 0 {
		return Result{}, ErrBadMaxDepth
	}
	if cfg.MaxStates <= 0 {
		return Result{}, ErrBadMaxStates
	}
	if cfg.WallClock < 0 {
		return Result{}, ErrBadWallClock
	}
	// Depth arithmetic runs in int32; a larger ceiling is indistinguishable
	// from unlimited anyway.
	if cfg.MaxDepth > 1<<30 {
		cfg.MaxDepth = 1 << 30
	}

	// 3) Validate the problem and derive canonical identities.
	v, err := problem.validate()
	if err != nil {
		return Result{}, err
	}

	// 4) Initialize the engine. All structures are private to this call.
	e := &engine{
		base:      v.prims,
		baseIDs:   v.primIDs,
		userIDs:   v.ids,
		target:    v.target,
		targetID:  v.targetID,
		maxDepth:  int32(cfg.MaxDepth),
		maxStates: cfg.MaxStates,
		cancel:    cfg.Cancel,
		closed:    make(map[uint64]int32),
		startedAt: time.Now(),
	}
	if c, ok := v.target.(geom.Circle); ok {
		// Precompute the identity the circle target's center point would
		// have; the heuristic checks membership against it.
		e.targetCenterID = geom.MustIdentity(geom.Point{X: c.CX, Y: c.CY})
	}
	if cfg.WallClock > 0 {
		e.useDeadline = true
		e.deadline = e.startedAt.Add(cfg.WallClock)
	}

	// 5) Run the search.
	return e.run(), nil
}

// engine holds all search data for a single Solve execution.
type engine struct {
	// Problem data
	base    []geom.Primitive // knowns, input order
	baseIDs []geom.ID        // canonical identities of the knowns
	userIDs []string         // user-supplied display ids

	target         geom.Primitive
	targetID       geom.ID
	targetCenterID geom.ID // set for circle targets only

	// Limits
	maxDepth    int32
	maxStates   int
	useDeadline bool
	deadline    time.Time
	cancel      *atomic.Bool

	// Search structures
	arena  []node           // node 0 is the root; freed en masse with the engine
	open   openPQ           // min-heap keyed (f, g, seq)
	closed map[uint64]int32 // state hash → best g seen
	seq    uint64           // insertion counter for deterministic ties

	// Accounting
	explored  int    // states actually expanded
	generated uint64 // successors pushed; drives sparse budget checks
	clipped   bool   // the depth ceiling suppressed at least one successor

	startedAt time.Time
}

// run executes the search loop and classifies the outcome.
func (e *engine) run() Result {
	// 1) Target pre-check: a known may already match.
	var rootHash uint64
	for _, id := range e.baseIDs {
		if id == e.targetID {
			return Result{Status: StatusSolved, Steps: []Step{}, Performance: e.perf()}
		}
		rootHash = stateHash(rootHash, id)
	}

	// 2) Root state. An infinite bound here proves the problem closed:
	//    fewer than two primitives admit no construction at all.
	rootIDs := make(map[geom.ID]struct{}, len(e.baseIDs))
	for _, id := range e.baseIDs {
		rootIDs[id] = struct{}{}
	}
	rootH := e.heuristic(e.base, rootIDs)
	if rootH >= infSteps {
		return e.unsolved(ReasonProvenUnreachable)
	}

	e.arena = append(e.arena, node{parent: -1, g: 0, h: rootH, hash: rootHash})
	e.closed[rootHash] = 0
	heap.Push(&e.open, heapItem{idx: 0, f: rootH, g: 0, seq: e.seq})
	e.seq++

	// 3) Main loop: pop the best state, expand, push successors.
	for e.open.Len() > 0 {
		if e.budgetExceeded() {
			return e.unsolved(ReasonTimeBudgetExhausted)
		}

		item := heap.Pop(&e.open).(heapItem)
		nd := e.arena[item.idx]

		// Skip stale entries dominated by a shallower equal-identity state.
		if bestG, ok := e.closed[nd.hash]; ok && bestG < nd.g {
			continue
		}

		if res, done := e.expand(item.idx); done {
			return res
		}
	}

	// 4) Open set empty. If the depth ceiling never interfered, the
	//    reachable closure was exhausted: unreachable, full stop — within
	//    the depth budget, not in the full mathematical sense.
	if e.clipped {
		return e.unsolved(ReasonDepthExhausted)
	}

	return e.unsolved(ReasonProvenUnreachable)
}

// expand enumerates every applicable construction over every unordered
// primitive pair of the state, in lexicographic (i, j) order with a fixed
// operation order per pair. Returns (result, true) when the search ends
// inside this expansion (target match or budget).
func (e *engine) expand(idx int32) (Result, bool) {
	prims, ids := e.rehydrate(idx)
	parent := e.arena[idx] // value copy: arena may grow below
	e.explored++

	g1 := parent.g + 1
	n := len(prims)

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aPt, aIsPt := prims[i].(geom.Point)
			bPt, bIsPt := prims[j].(geom.Point)

			switch {
			case aIsPt && bIsPt:
				// Straightedge, then the two compass variants.
				if l, err := geom.LineThrough(aPt, bPt); err == nil {
					if res, done := e.offer(idx, parent.hash, g1, prims, ids, l, opLineThrough, i, j); done {
						return res, true
					}
				}
				if c, err := geom.CircleCentered(aPt, bPt); err == nil {
					if res, done := e.offer(idx, parent.hash, g1, prims, ids, c, opCircleCentered, i, j); done {
						return res, true
					}
				}
				if c, err := geom.CircleCentered(bPt, aPt); err == nil {
					if res, done := e.offer(idx, parent.hash, g1, prims, ids, c, opCircleCentered, j, i); done {
						return res, true
					}
				}

			case !aIsPt && !bIsPt:
				// Two curves: intersect. Kernel misses yield zero points,
				// which is not an error and spawns no successor.
				pts, err := geom.Intersect(prims[i], prims[j])
				if err != nil {
					continue
				}
				for _, pt := range pts {
					if res, done := e.offer(idx, parent.hash, g1, prims, ids, pt, opIntersect, i, j); done {
						return res, true
					}
				}

				// Point × curve: no construction takes these as inputs.
			}
		}
	}

	return Result{}, false
}

// offer canonicalizes a produced primitive and either terminates the search
// (target match, budget) or pushes the successor state.
func (e *engine) offer(
	parentIdx int32,
	parentHash uint64,
	g1 int32,
	prims []geom.Primitive,
	ids map[geom.ID]struct{},
	prim geom.Primitive,
	op opKind,
	in1, in2 int,
) (Result, bool) {
	id, err := geom.IdentityOf(prim)
	if err != nil {
		return Result{}, false // degenerate product: no successor
	}
	if _, dup := ids[id]; dup {
		return Result{}, false // already a member of this state
	}

	// Terminate on generation: the first match is optimal because every
	// state one operation away from the target carries h = 1 and the open
	// set orders by f.
	if id == e.targetID {
		return e.solvedAt(parentIdx, prim, op, in1, in2), true
	}

	hash := stateHash(parentHash, id)
	if bestG, ok := e.closed[hash]; ok && bestG <= g1 {
		return Result{}, false // dominated by an equal-identity state
	}

	// Score the successor. The append reuses the rehydration buffer's spare
	// slot; the slice never escapes this call.
	succ := append(prims, prim)
	ids[id] = struct{}{}
	h := e.heuristic(succ, ids)
	delete(ids, id)

	// Depth ceiling: h is admissible, so g+h beyond MaxDepth proves this
	// branch cannot finish in budget.
	if g1+h > e.maxDepth {
		e.clipped = true

		return Result{}, false
	}

	// State budget: the arena is the high-water mark.
	if len(e.arena) >= e.maxStates {
		return e.unsolved(ReasonStateBudgetExhausted), true
	}

	e.arena = append(e.arena, node{
		parent: parentIdx,
		prim:   prim,
		primID: id,
		op:     op,
		in1:    int32(in1),
		in2:    int32(in2),
		g:      g1,
		h:      h,
		hash:   hash,
	})
	e.closed[hash] = g1
	heap.Push(&e.open, heapItem{idx: int32(len(e.arena) - 1), f: g1 + h, g: g1, seq: e.seq})
	e.seq++

	// Sparse budget check, one per 1024 generated successors.
	e.generated++
	if e.generated&1023 == 0 && e.budgetExceeded() {
		return e.unsolved(ReasonTimeBudgetExhausted), true
	}

	return Result{}, false
}

// rehydrate reconstructs the full primitive sequence and identity set of a
// state by walking parent links. The sequence is knowns first (input
// order), then appended primitives in construction order. One spare slot of
// capacity is reserved so offer can append a candidate without reallocating.
func (e *engine) rehydrate(idx int32) ([]geom.Primitive, map[geom.ID]struct{}) {
	var chain []int32
	for i := idx; i >= 0; i = e.arena[i].parent {
		if e.arena[i].op != opNone {
			chain = append(chain, i)
		}
	}

	total := len(e.base) + len(chain)
	prims := make([]geom.Primitive, 0, total+1)
	prims = append(prims, e.base...)
	ids := make(map[geom.ID]struct{}, total+1)
	for _, id := range e.baseIDs {
		ids[id] = struct{}{}
	}

	var k int
	for k = len(chain) - 1; k >= 0; k-- {
		nd := e.arena[chain[k]]
		prims = append(prims, nd.prim)
		ids[nd.primID] = struct{}{}
	}

	return prims, ids
}

// budgetExceeded polls the cooperative cancellation flag and the deadline.
func (e *engine) budgetExceeded() bool {
	if e.cancel != nil && e.cancel.Load() {
		return true
	}

	return e.useDeadline && !time.Now().Before(e.deadline)
}

// unsolved assembles a failure result with current performance counters.
func (e *engine) unsolved(reason Reason) Result {
	return Result{Status: StatusUnsolved, Reason: reason, Performance: e.perf()}
}

// perf snapshots the performance counters.
func (e *engine) perf() Performance {
	return Performance{
		CalculationTimeMS: float64(time.Since(e.startedAt)) / float64(time.Millisecond),
		StatesExplored:    e.explored,
	}
}
