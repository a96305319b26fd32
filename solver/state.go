// Search-state representation: delta nodes in an arena, the commutative
// state-identity hash, and the open-set priority queue.

package solver

import "github.com/katalvlaran/compass/geom"

// opKind tags the construction that produced a node's appended primitive.
type opKind uint8

const (
	opNone opKind = iota // root node only
	opLineThrough
	opCircleCentered
	opIntersect
)

// String returns the step-report name of the operation.
func (k opKind) String() string {
	switch k {
	case opLineThrough:
		return OpLine
	case opCircleCentered:
		return OpCircle
	case opIntersect:
		return OpIntersection
	default:
		return "none"
	}
}

// node is one search state, stored as a delta against its parent: only the
// appended primitive and the operation that produced it live here. The full
// primitive sequence is rehydrated on demand by walking parent indices.
// Nodes are owned by the engine's arena and freed en masse with it.
type node struct {
	parent int32          // arena index of the parent; -1 for the root
	prim   geom.Primitive // appended primitive; nil for the root
	primID geom.ID        // canonical identity of prim
	op     opKind
	in1    int32  // sequence index of the first operand
	in2    int32  // sequence index of the second operand
	g      int32  // depth: primitives constructed so far
	h      int32  // admissible bound on remaining steps
	hash   uint64 // commutative multiset hash of all member identities
}

// stateHash folds one more identity into a state hash. Addition keeps the
// key commutative over the multiset of member identities, so permuted
// construction orders of the same primitive set collide on purpose.
func stateHash(parentHash uint64, id geom.ID) uint64 {
	return parentHash + geom.HashID(id)
}

// heapItem is an open-set entry. Priority is (f, g, seq): smaller f first,
// then shallower states, then insertion order for deterministic FIFO within
// a tier.
type heapItem struct {
	idx int32  // arena index of the state
	f   int32  // g + h
	g   int32  // tiebreak 1: prefer shallower
	seq uint64 // tiebreak 2: insertion order
}

// openPQ is a min-heap of heapItem implementing container/heap.
type openPQ []heapItem

// Len returns the number of queued states.
func (pq openPQ) Len() int { return len(pq) }

// Less orders by (f, g, seq) ascending.
func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].g != pq[j].g {
		return pq[i].g < pq[j].g
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two entries.
func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new entry; called by heap.Push.
func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(heapItem)) }

// Pop removes and returns the last entry; called by heap.Pop after the
// heap has moved the minimum there.
func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
