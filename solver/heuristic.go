// Admissible heuristic: a cheap lower bound on the remaining construction
// steps, h ∈ {0, 1, 2, ∞}.

package solver

import (
	"math"

	"github.com/katalvlaran/compass/geom"
	"github.com/katalvlaran/compass/predicate"
)

// infSteps is the ∞ sentinel: the target is unreachable from this state no
// matter how many steps are allowed. Kept well below MaxInt32 so f = g + h
// can never overflow.
const infSteps = math.MaxInt32 / 4

// heurTol is the slack, scaled by coordinate magnitude, of the on-curve
// tests below. The tests must err toward "on": a state that truly is one
// kernel operation away from the target has operands within quantization
// distance of the target curve, and missing such a state would make the
// bound overestimate — the one direction admissibility forbids. A false
// "on" only weakens the bound to a still-valid 1.
const heurTol = 1e-7

// heuristic bounds the steps remaining from a state to the target.
//
// Rules, in order:
//   - 0  if the target identity is already a member of the state.
//   - ∞  if the state holds fewer than two primitives: no pair exists, no
//     construction can ever fire, nothing new is reachable.
//   - 1  if one kernel operation over members could produce the target:
//     two member points on a target line; the target circle's center plus
//     a member point on its arc; two member curves through a target point.
//   - 2  otherwise — any other completion needs at least an operand
//     construction before the producing step.
func (e *engine) heuristic(prims []geom.Primitive, ids map[geom.ID]struct{}) int32 {
	if _, ok := ids[e.targetID]; ok {
		return 0
	}
	if len(prims) < 2 {
		return infSteps
	}

	switch t := e.target.(type) {
	case geom.Line:
		// Two distinct member points on the target line ⇒ LineThrough hits it.
		var onCount int
		for _, p := range prims {
			pt, ok := p.(geom.Point)
			if !ok {
				continue
			}
			if pointNearLine(pt, t) {
				onCount++
				if onCount >= 2 {
					return 1
				}
			}
		}

	case geom.Circle:
		// The center as a member point plus any member point on the arc
		// ⇒ CircleCentered hits it.
		if _, ok := ids[e.targetCenterID]; ok {
			for _, p := range prims {
				pt, isPt := p.(geom.Point)
				if !isPt {
					continue
				}
				if pointNearCircle(pt, t) {
					return 1
				}
			}
		}

	case geom.Point:
		// Two distinct member curves through the target point ⇒ their
		// intersection contains it.
		var through int
		for _, p := range prims {
			if curveThroughPoint(p, t) {
				through++
				if through >= 2 {
					return 1
				}
			}
		}
	}

	return 2
}

// pointNearLine reports whether p lies on l up to quantization slack.
// The sign-exact predicate answers first; the tolerance band catches points
// whose stored doubles are within canonical distance of the line.
func pointNearLine(p geom.Point, l geom.Line) bool {
	if geom.OnLine(p, l) == predicate.Zero {
		return true
	}
	// (l.A, l.B) is unit length, so the form value IS the distance.
	d := l.A*p.X + l.B*p.Y + l.C

	return math.Abs(d) <= heurTol*(1+math.Abs(p.X)+math.Abs(p.Y))
}

// pointNearCircle reports whether p lies on c up to quantization slack.
func pointNearCircle(p geom.Point, c geom.Circle) bool {
	if geom.OnCircle(p, c) == predicate.Zero {
		return true
	}
	d := math.Hypot(p.X-c.CX, p.Y-c.CY) - c.R

	return math.Abs(d) <= heurTol*(1+math.Abs(p.X)+math.Abs(p.Y)+c.R)
}

// curveThroughPoint reports whether the member curve passes through pt.
func curveThroughPoint(member geom.Primitive, pt geom.Point) bool {
	switch c := member.(type) {
	case geom.Line:
		return pointNearLine(pt, c)
	case geom.Circle:
		return pointNearCircle(pt, c)
	default:
		return false
	}
}
