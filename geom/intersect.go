// Intersection kernels: line/line, line/circle, circle/circle.
//
// Line/circle and circle/circle follow the same discriminant policy: a value
// below −EpsNumeric means no intersection, a magnitude within EpsNumeric
// means tangency (one point), anything else two points. Line/line returns no
// point when the determinant's magnitude is within EpsNumeric, else one.
// Two-point results are ordered by the
// smaller lexicographic quantized (x, y), which makes deduplication
// downstream independent of operand order.

package geom

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Intersect enumerates the intersection points of two curve primitives.
// It returns zero, one, or two points; an empty result is not an error
// (parallel or non-meeting curves simply produce nothing).
//
// Point operands are rejected with ErrBadOperand: no construction takes a
// point as an intersection input — points are what intersections produce.
func Intersect(a, b Primitive) ([]Point, error) {
	switch va := a.(type) {
	case Line:
		switch vb := b.(type) {
		case Line:
			return intersectLines(va, vb), nil
		case Circle:
			return intersectLineCircle(va, vb), nil
		}
	case Circle:
		switch vb := b.(type) {
		case Line:
			return intersectLineCircle(vb, va), nil
		case Circle:
			return intersectCircles(va, vb), nil
		}
	}

	return nil, fmt.Errorf("%w: got %s × %s", ErrBadOperand, a.Kind(), b.Kind())
}

// intersectLines solves the 2×2 linear system of two normalized lines.
func intersectLines(l1, l2 Line) []Point {
	det := l1.A*l2.B - l2.A*l1.B
	if math.Abs(det) <= EpsNumeric {
		return nil // parallel or coincident
	}

	// Cramer's rule on a·x + b·y = −c.
	x := (l1.B*l2.C - l2.B*l1.C) / det
	y := (l2.A*l1.C - l1.A*l2.C) / det

	return []Point{{X: x, Y: y}}
}

// intersectLineCircle drops the perpendicular from the circle center onto
// the line; the signed distance is simply the line form evaluated at the
// center because (a, b) is unit length.
func intersectLineCircle(l Line, c Circle) []Point {
	center := r2.Point{X: c.CX, Y: c.CY}
	n := r2.Point{X: l.A, Y: l.B}
	d0 := l.A*c.CX + l.B*c.CY + l.C
	foot := center.Sub(n.Mul(d0))

	delta := c.R*c.R - d0*d0
	switch {
	case delta < -EpsNumeric:
		return nil // line misses the circle
	case math.Abs(delta) <= EpsNumeric:
		return []Point{{X: foot.X, Y: foot.Y}} // tangent
	}

	// Two crossings: walk ±h along the line direction from the foot.
	h := math.Sqrt(delta)
	t := n.Ortho()
	p1 := foot.Add(t.Mul(h))
	p2 := foot.Sub(t.Mul(h))

	return orderedPair(Point{X: p1.X, Y: p1.Y}, Point{X: p2.X, Y: p2.Y})
}

// intersectCircles uses the classical radical-line construction.
func intersectCircles(c1, c2 Circle) []Point {
	d := r2.Point{X: c2.CX - c1.CX, Y: c2.CY - c1.CY}
	dist2 := d.Dot(d)
	if dist2 <= EpsNumeric*EpsNumeric {
		return nil // concentric centers: coincident or nested, no crossing
	}
	dist := math.Sqrt(dist2)

	// Distance from c1's center to the radical line along the center axis.
	a := (dist2 + c1.R*c1.R - c2.R*c2.R) / (2 * dist)
	delta := c1.R*c1.R - a*a
	switch {
	case delta < -EpsNumeric:
		return nil // circles do not meet
	case math.Abs(delta) <= EpsNumeric:
		mid := r2.Point{X: c1.CX, Y: c1.CY}.Add(d.Mul(a / dist))

		return []Point{{X: mid.X, Y: mid.Y}} // tangent
	}

	h := math.Sqrt(delta)
	mid := r2.Point{X: c1.CX, Y: c1.CY}.Add(d.Mul(a / dist))
	off := d.Ortho().Mul(h / dist)
	p1 := mid.Add(off)
	p2 := mid.Sub(off)

	return orderedPair(Point{X: p1.X, Y: p1.Y}, Point{X: p2.X, Y: p2.Y})
}

// orderedPair returns the two points with the lexicographically smaller
// quantized (x, y) first. Ordering on quantized values keeps the result
// stable when the raw coordinates differ only below EpsCanon.
func orderedPair(p1, p2 Point) []Point {
	q1x, q1y := quantize(p1.X), quantize(p1.Y)
	q2x, q2y := quantize(p2.X), quantize(p2.Y)
	if q2x < q1x || (q2x == q1x && q2y < q1y) {
		return []Point{p2, p1}
	}

	return []Point{p1, p2}
}
