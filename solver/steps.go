// Step-list reconstruction and replay.

package solver

import (
	"fmt"

	"github.com/katalvlaran/compass/geom"
)

// solvedAt reconstructs the step list for a search terminated by the
// produced primitive (prim, via op over sequence indices in1/in2) while
// expanding the state at parentIdx. Parent links are walked root-ward,
// reversed, and re-emitted with display ids: user ids for knowns, generated
// p{n}/l{n}/c{n} ids for intermediates, numbered per kind in construction
// order.
func (e *engine) solvedAt(parentIdx int32, prim geom.Primitive, op opKind, in1, in2 int) Result {
	var chain []int32
	for i := parentIdx; i >= 0; i = e.arena[i].parent {
		if e.arena[i].op != opNone {
			chain = append(chain, i)
		}
	}

	// Display ids per sequence index: knowns first, then one per step.
	displayIDs := make([]string, 0, len(e.userIDs)+len(chain)+1)
	displayIDs = append(displayIDs, e.userIDs...)

	var nPoints, nLines, nCircles int
	nextID := func(k geom.Kind) string {
		switch k {
		case geom.KindPoint:
			nPoints++

			return fmt.Sprintf("p%d", nPoints)
		case geom.KindLine:
			nLines++

			return fmt.Sprintf("l%d", nLines)
		default:
			nCircles++

			return fmt.Sprintf("c%d", nCircles)
		}
	}

	steps := make([]Step, 0, len(chain)+1)
	emit := func(op opKind, in1, in2 int32, produced geom.Primitive) {
		out := StepOutput{
			Type: produced.Kind().String(),
			ID:   nextID(produced.Kind()),
		}
		// An intersection may have two roots; record which one this step
		// took so a replay is unambiguous.
		if p, ok := produced.(geom.Point); ok && op == opIntersect {
			out.Coords = []float64{p.X, p.Y}
		}
		steps = append(steps, Step{
			Step:      len(steps) + 1,
			Operation: op.String(),
			Inputs:    [2]string{displayIDs[in1], displayIDs[in2]},
			Output:    out,
		})
		displayIDs = append(displayIDs, out.ID)
	}

	var k int
	for k = len(chain) - 1; k >= 0; k-- {
		nd := e.arena[chain[k]]
		emit(nd.op, nd.in1, nd.in2, nd.prim)
	}
	emit(op, int32(in1), int32(in2), prim)

	return Result{Status: StatusSolved, Steps: steps, Performance: e.perf()}
}

// Replay re-executes a returned step list against the problem's knowns
// through the geometric kernels and returns the final produced primitive.
// It is the constructive proof-check for a Solved result: the returned
// primitive's canonical identity must equal the target's.
//
// Errors:
//   - ErrNoSteps for an empty step list.
//   - ErrBadStep (wrapped with context) for unknown input ids, duplicate
//     output ids, operand kind mismatches, type mismatches, or an
//     intersection step whose recorded root cannot be located.
//   - Problem validation sentinels when the knowns themselves are invalid.
func Replay(problem Problem, steps []Step) (geom.Primitive, error) {
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}
	v, err := problem.validate()
	if err != nil {
		return nil, err
	}

	// Environment: display id → primitive, seeded with the knowns.
	env := make(map[string]geom.Primitive, len(v.ids)+len(steps))
	present := make(map[geom.ID]struct{}, len(v.ids)+len(steps))
	var i int
	for i = range v.ids {
		env[v.ids[i]] = v.prims[i]
		present[v.primIDs[i]] = struct{}{}
	}

	var last geom.Primitive
	for _, s := range steps {
		a, okA := env[s.Inputs[0]]
		b, okB := env[s.Inputs[1]]
		if !okA || !okB {
			return nil, fmt.Errorf("%w: step %d references an unknown input id", ErrBadStep, s.Step)
		}

		var produced geom.Primitive
		switch s.Operation {
		case OpLine:
			pa, isA := a.(geom.Point)
			pb, isB := b.(geom.Point)
			if !isA || !isB {
				return nil, fmt.Errorf("%w: step %d: Line needs two points", ErrBadStep, s.Step)
			}
			produced, err = geom.LineThrough(pa, pb)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", s.Step, err)
			}

		case OpCircle:
			pa, isA := a.(geom.Point)
			pb, isB := b.(geom.Point)
			if !isA || !isB {
				return nil, fmt.Errorf("%w: step %d: Circle needs two points", ErrBadStep, s.Step)
			}
			produced, err = geom.CircleCentered(pa, pb)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", s.Step, err)
			}

		case OpIntersection:
			produced, err = replayIntersection(s, a, b, present)
			if err != nil {
				return nil, err
			}

		default:
			return nil, fmt.Errorf("%w: step %d: unknown operation %q", ErrBadStep, s.Step, s.Operation)
		}

		if produced.Kind().String() != s.Output.Type {
			return nil, fmt.Errorf("%w: step %d produced a %s, recorded %q", ErrBadStep, s.Step, produced.Kind(), s.Output.Type)
		}
		if _, dup := env[s.Output.ID]; dup {
			return nil, fmt.Errorf("%w: step %d reuses output id %q", ErrBadStep, s.Step, s.Output.ID)
		}
		env[s.Output.ID] = produced
		present[geom.MustIdentity(produced)] = struct{}{}
		last = produced
	}

	return last, nil
}

// replayIntersection picks the intersection root a step took. The recorded
// coordinates disambiguate two-root results; without them a single fresh
// root must remain.
func replayIntersection(s Step, a, b geom.Primitive, present map[geom.ID]struct{}) (geom.Primitive, error) {
	pts, err := geom.Intersect(a, b)
	if err != nil {
		return nil, fmt.Errorf("step %d: %w", s.Step, err)
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("%w: step %d: operands do not intersect", ErrBadStep, s.Step)
	}

	if len(s.Output.Coords) == 2 {
		want, werr := geom.IdentityOf(geom.Point{X: s.Output.Coords[0], Y: s.Output.Coords[1]})
		if werr != nil {
			return nil, fmt.Errorf("%w: step %d: bad recorded coordinates", ErrBadStep, s.Step)
		}
		for _, pt := range pts {
			if geom.MustIdentity(pt) == want {
				return pt, nil
			}
		}

		return nil, fmt.Errorf("%w: step %d: recorded root not among intersections", ErrBadStep, s.Step)
	}

	// No recorded root: accept only an unambiguous fresh point.
	var fresh []geom.Point
	for _, pt := range pts {
		if _, ok := present[geom.MustIdentity(pt)]; !ok {
			fresh = append(fresh, pt)
		}
	}
	if len(fresh) != 1 {
		return nil, fmt.Errorf("%w: step %d: ambiguous intersection root", ErrBadStep, s.Step)
	}

	return fresh[0], nil
}
