// Constructive kernels: straightedge and compass.

package geom

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// vec converts a Point to an r2 vector for arithmetic.
func vec(p Point) r2.Point { return r2.Point{X: p.X, Y: p.Y} }

// LineThrough constructs the line through two distinct points.
// Fails with ErrDegenerate when p and q share a canonical identity.
func LineThrough(p, q Point) (Line, error) {
	pid, err := IdentityOf(p)
	if err != nil {
		return Line{}, err
	}
	qid, err := IdentityOf(q)
	if err != nil {
		return Line{}, err
	}
	if pid == qid {
		return Line{}, fmt.Errorf("%w: coincident points (%v, %v)", ErrDegenerate, p.X, p.Y)
	}

	// Normal = direction rotated 90°; offset pins the line through p.
	d := vec(q).Sub(vec(p))
	n := d.Ortho()
	c := -(n.X*p.X + n.Y*p.Y)

	return NewLine(n.X, n.Y, c)
}

// CircleCentered constructs the circle centered at c passing through p.
// Fails with ErrDegenerate when c and p share a canonical identity (the
// radius would collapse below EpsCanon).
func CircleCentered(c, p Point) (Circle, error) {
	cid, err := IdentityOf(c)
	if err != nil {
		return Circle{}, err
	}
	pid, err := IdentityOf(p)
	if err != nil {
		return Circle{}, err
	}
	if cid == pid {
		return Circle{}, fmt.Errorf("%w: center coincides with radius point (%v, %v)", ErrDegenerate, c.X, c.Y)
	}

	r := vec(p).Sub(vec(c)).Norm()
	if r <= EpsCanon {
		return Circle{}, fmt.Errorf("%w: radius %v ≤ EpsCanon", ErrDegenerate, r)
	}

	return Circle{CX: c.X, CY: c.Y, R: r}, nil
}
