// Internal tests for the admissible heuristic: each rule of the bound is
// pinned against hand-built states.
package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/compass/geom"
)

// newHeuristicEngine builds the minimal engine slice the heuristic reads.
func newHeuristicEngine(t *testing.T, target geom.Primitive) *engine {
	t.Helper()
	id, err := geom.IdentityOf(target)
	require.NoError(t, err)

	e := &engine{target: target, targetID: id}
	if c, ok := target.(geom.Circle); ok {
		e.targetCenterID = geom.MustIdentity(geom.Point{X: c.CX, Y: c.CY})
	}

	return e
}

// idSetOf derives the identity set of a primitive slice.
func idSetOf(t *testing.T, prims []geom.Primitive) map[geom.ID]struct{} {
	t.Helper()
	ids := make(map[geom.ID]struct{}, len(prims))
	for _, p := range prims {
		id, err := geom.IdentityOf(p)
		require.NoError(t, err)
		ids[id] = struct{}{}
	}

	return ids
}

func TestHeuristic_ZeroWhenTargetPresent(t *testing.T) {
	target := geom.Point{X: 2, Y: 0}
	e := newHeuristicEngine(t, target)

	prims := []geom.Primitive{geom.Point{X: 0, Y: 0}, target}
	require.EqualValues(t, 0, e.heuristic(prims, idSetOf(t, prims)))
}

func TestHeuristic_InfiniteBelowTwoPrimitives(t *testing.T) {
	e := newHeuristicEngine(t, geom.Point{X: 1, Y: 1})

	prims := []geom.Primitive{geom.Point{X: 0, Y: 0}}
	require.EqualValues(t, infSteps, e.heuristic(prims, idSetOf(t, prims)),
		"a single primitive admits no pair, hence no construction, ever")
}

func TestHeuristic_LineTarget(t *testing.T) {
	target, err := geom.NewLine(0, 1, 0) // the x-axis
	require.NoError(t, err)
	e := newHeuristicEngine(t, target)

	// Two member points on the target line: one straightedge stroke away.
	twoOn := []geom.Primitive{geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}}
	require.EqualValues(t, 1, e.heuristic(twoOn, idSetOf(t, twoOn)))

	// One on, one off: an operand is still missing.
	oneOn := []geom.Primitive{geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 1}}
	require.EqualValues(t, 2, e.heuristic(oneOn, idSetOf(t, oneOn)))
}

func TestHeuristic_CircleTarget(t *testing.T) {
	target := geom.Circle{CX: 0, CY: 0, R: 5}
	e := newHeuristicEngine(t, target)

	// Center and an arc point present: one compass stroke away.
	ready := []geom.Primitive{geom.Point{X: 0, Y: 0}, geom.Point{X: 3, Y: 4}}
	require.EqualValues(t, 1, e.heuristic(ready, idSetOf(t, ready)))

	// Center present but no point at the right distance.
	centerOnly := []geom.Primitive{geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}}
	require.EqualValues(t, 2, e.heuristic(centerOnly, idSetOf(t, centerOnly)))

	// Arc point present but the center is not a member.
	arcOnly := []geom.Primitive{geom.Point{X: 3, Y: 4}, geom.Point{X: 1, Y: 1}}
	require.EqualValues(t, 2, e.heuristic(arcOnly, idSetOf(t, arcOnly)))
}

func TestHeuristic_PointTarget(t *testing.T) {
	target := geom.Point{X: 2, Y: 0}
	e := newHeuristicEngine(t, target)

	xAxis, err := geom.NewLine(0, 1, 0)
	require.NoError(t, err)
	vertical, err := geom.NewLine(1, 0, -2)
	require.NoError(t, err)
	offCircle := geom.Circle{CX: 0, CY: 0, R: 1}

	// Two member curves through the target: intersecting them hits it.
	twoCurves := []geom.Primitive{xAxis, vertical}
	require.EqualValues(t, 1, e.heuristic(twoCurves, idSetOf(t, twoCurves)))

	// Only one curve through the target.
	oneCurve := []geom.Primitive{xAxis, offCircle}
	require.EqualValues(t, 2, e.heuristic(oneCurve, idSetOf(t, oneCurve)))

	// Points alone never produce a point in one step.
	pointsOnly := []geom.Primitive{geom.Point{X: 0, Y: 0}, geom.Point{X: 9, Y: 9}}
	require.EqualValues(t, 2, e.heuristic(pointsOnly, idSetOf(t, pointsOnly)))
}

func TestHeuristic_ToleratesQuantizedOperands(t *testing.T) {
	// A point whose stored double sits a hair off the target circle — the
	// way quantized intersection output does — must still count as "on":
	// missing it would overestimate the remaining cost.
	target := geom.Circle{CX: 0, CY: 0, R: 5}
	e := newHeuristicEngine(t, target)

	arc := geom.Point{X: 3, Y: 4 + 3e-9}
	prims := []geom.Primitive{geom.Point{X: 0, Y: 0}, arc}
	require.EqualValues(t, 1, e.heuristic(prims, idSetOf(t, prims)))
}

func TestHeuristic_NeverExceedsStructuralConstant(t *testing.T) {
	// Whatever the state, the fallback is the structural constant 2 (or the
	// ∞ sentinel); values 3+ would overestimate and break admissibility.
	e := newHeuristicEngine(t, geom.Circle{CX: 100, CY: 100, R: 7})

	prims := []geom.Primitive{geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}}
	require.EqualValues(t, 2, e.heuristic(prims, idSetOf(t, prims)))
}
