// Package geom core types: the Primitive sum, tolerances, sentinel errors.

package geom

import (
	"errors"
	"math"

	"github.com/katalvlaran/compass/predicate"
)

// Tolerances. Both are immutable module-level constants; there is no way to
// reconfigure them at runtime, which keeps identities comparable across
// independent searches.
const (
	// EpsCanon is the canonicalization quantum: attributes are snapped to a
	// grid of this pitch before identity derivation. Two primitives whose
	// raw attributes round to the same grid indices collapse to one
	// identity; attributes closer than EpsCanon can still fall on opposite
	// sides of a rounding boundary and stay distinct.
	EpsCanon = 1e-9

	// EpsNumeric is the kernel discriminant cutoff: determinants and
	// discriminants with magnitude at or below it are treated as zero
	// (parallel lines, tangent curves).
	EpsNumeric = 1e-12

	// MaxMagnitude bounds acceptable attribute magnitudes. Beyond it the
	// quantized attribute would overflow int64, so validation rejects such
	// inputs up front.
	MaxMagnitude = 1e9
)

// Sentinel errors for primitive validation and construction.
var (
	// ErrNonFinite indicates a NaN, infinite, or out-of-range attribute.
	ErrNonFinite = errors.New("geom: attribute is not finite or exceeds magnitude bound")

	// ErrUnnormalizable indicates line coefficients with a ≈ b ≈ 0.
	ErrUnnormalizable = errors.New("geom: line coefficients not normalizable")

	// ErrDegenerate indicates a construction collapsing to nothing: two
	// coincident defining points, or a circle with radius ≤ EpsCanon.
	ErrDegenerate = errors.New("geom: degenerate input")

	// ErrBadOperand indicates an Intersect call with a point operand;
	// intersections are defined on lines and circles only.
	ErrBadOperand = errors.New("geom: intersection requires line or circle operands")
)

// Kind tags the variants of the Primitive sum.
type Kind uint8

// The three primitive kinds.
const (
	KindPoint Kind = iota + 1
	KindLine
	KindCircle
)

// String returns the wire-format name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// Primitive is the closed sum Point | Line | Circle. The sealed method keeps
// the sum closed so the engine can pattern-match on Kind exhaustively.
type Primitive interface {
	// Kind reports which variant this primitive is.
	Kind() Kind

	sealedPrimitive()
}

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Kind implements Primitive.
func (Point) Kind() Kind { return KindPoint }

func (Point) sealedPrimitive() {}

// Line is a·x + b·y + c = 0, kept normalized so a² + b² = 1 and the first
// nonzero of (a, b) — decided on quantized values — is positive.
type Line struct {
	A, B, C float64
}

// Kind implements Primitive.
func (Line) Kind() Kind { return KindLine }

func (Line) sealedPrimitive() {}

// Circle is the set of points at distance R from center (CX, CY), R > 0.
type Circle struct {
	CX, CY, R float64
}

// Kind implements Primitive.
func (Circle) Kind() Kind { return KindCircle }

func (Circle) sealedPrimitive() {}

// OnLine reports the sign-exact position of p against l: Zero iff p lies
// exactly on l for the stored double-precision attributes.
func OnLine(p Point, l Line) predicate.Sign {
	return predicate.OnLine(p.X, p.Y, l.A, l.B, l.C)
}

// OnCircle reports the sign-exact position of p against c: Negative inside,
// Zero on the circle, Positive outside.
func OnCircle(p Point, c Circle) predicate.Sign {
	return predicate.OnCircle(p.X, p.Y, c.CX, c.CY, c.R)
}

// Orient reports the sign-exact orientation of the triple (p, q, r).
func Orient(p, q, r Point) predicate.Sign {
	return predicate.Orient(p.X, p.Y, q.X, q.Y, r.X, r.Y)
}

// finite reports whether v is a usable attribute value: finite and within
// the quantization-safe magnitude bound.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && math.Abs(v) <= MaxMagnitude
}
