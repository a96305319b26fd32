// Triage tier: fast floating-point evaluation with conservative forward
// error bounds. Uncertain results fall back to the exact tier (exact.go).

package predicate

import "math"

// Sign is the three-valued outcome of a predicate.
type Sign int

// The three possible predicate outcomes.
const (
	// Negative means the polynomial evaluates below zero.
	Negative Sign = -1

	// Zero means the polynomial evaluates to exactly zero.
	Zero Sign = 0

	// Positive means the polynomial evaluates above zero.
	Positive Sign = 1
)

// String returns a human-readable name for the sign.
func (s Sign) String() string {
	switch {
	case s < 0:
		return "negative"
	case s > 0:
		return "positive"
	default:
		return "zero"
	}
}

// ulp is the unit roundoff of IEEE-754 binary64 (2⁻⁵³). Every basic
// floating-point operation is exactly rounded, so fl(a∘b) = (a∘b)(1+δ)
// with |δ| ≤ ulp.
const ulp = 1.1102230246251565e-16

const (
	// orientErrorFactor bounds the error of the 2×2 orientation determinant
	//
	//	(qx−px)·(ry−py) − (qy−py)·(rx−px)
	//
	// evaluated left to right in floating point. Each difference carries one
	// rounding, each product one more, and the final subtraction a third;
	// the classical analysis (Shewchuk, "Adaptive Precision Floating-Point
	// Arithmetic") gives |fl(det) − det| ≤ (3 + 16·ulp)·ulp · detsum, where
	// detsum is the sum of the two product magnitudes.
	orientErrorFactor = 3.3306690738754716e-16

	// onLineErrorFactor bounds the error of a·x + b·y + c: two products
	// (one rounding each) and two additions (one each) compose to at most
	// 4·ulp relative to the magnitude sum; one extra ulp of slack is kept.
	onLineErrorFactor = 5 * ulp

	// onCircleErrorFactor bounds the error of (x−cx)² + (y−cy)² − r².
	// Subtractions are exactly rounded (relative error ulp), squares add
	// one more rounding on top of the squared relative error, and the two
	// accumulating additions one each: at most 6·ulp relative to the
	// magnitude sum of the three quadratic terms, plus slack.
	onCircleErrorFactor = 7 * ulp
)

// Orient returns the sign of the signed area of the triangle pqr:
// Positive for a counter-clockwise turn, Negative for clockwise,
// Zero iff the three points are exactly collinear.
func Orient(px, py, qx, qy, rx, ry float64) Sign {
	// Left/right products of the 2×2 determinant.
	detLeft := (qx - px) * (ry - py)
	detRight := (qy - py) * (rx - px)
	det := detLeft - detRight

	// Certainty check: outside the error envelope the float sign is exact.
	detSum := math.Abs(detLeft) + math.Abs(detRight)
	if det > orientErrorFactor*detSum {
		return Positive
	}
	if det < -orientErrorFactor*detSum {
		return Negative
	}

	return orientExact(px, py, qx, qy, rx, ry)
}

// OnLine returns the sign of a·x + b·y + c for point (x, y) against the
// line a·x + b·y + c = 0. Zero iff the point lies exactly on the line.
func OnLine(x, y, a, b, c float64) Sign {
	s := a*x + b*y + c

	// Magnitude sum of the three summands bounds the accumulated error.
	mag := math.Abs(a*x) + math.Abs(b*y) + math.Abs(c)
	if s > onLineErrorFactor*mag {
		return Positive
	}
	if s < -onLineErrorFactor*mag {
		return Negative
	}

	return onLineExact(x, y, a, b, c)
}

// OnCircle returns the sign of (x−cx)² + (y−cy)² − r² for point (x, y)
// against the circle centered at (cx, cy) with radius r: Positive outside,
// Negative inside, Zero iff the point lies exactly on the circle.
func OnCircle(x, y, cx, cy, r float64) Sign {
	dx := x - cx
	dy := y - cy
	s := dx*dx + dy*dy - r*r

	mag := dx*dx + dy*dy + r*r
	if s > onCircleErrorFactor*mag {
		return Positive
	}
	if s < -onCircleErrorFactor*mag {
		return Negative
	}

	return onCircleExact(x, y, cx, cy, r)
}
