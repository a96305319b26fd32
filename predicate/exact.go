// Exact tier: arbitrary-precision rational evaluation. Every finite float64
// converts to a big.Rat without loss, so the sign computed here is the
// mathematical sign of the polynomial in the given inputs.

package predicate

import "math/big"

// ratOf converts a float64 to an exact rational. Inputs are validated finite
// by callers (the solver rejects NaN/±Inf coordinates up front); SetFloat64
// returns nil only for non-finite values, which would be a caller bug.
func ratOf(v float64) *big.Rat {
	r := new(big.Rat).SetFloat64(v)
	if r == nil {
		panic("predicate: non-finite coordinate reached exact evaluation")
	}

	return r
}

// orientExact evaluates (qx−px)(ry−py) − (qy−py)(rx−px) over ℚ.
func orientExact(px, py, qx, qy, rx, ry float64) Sign {
	adx := new(big.Rat).Sub(ratOf(qx), ratOf(px))
	ady := new(big.Rat).Sub(ratOf(qy), ratOf(py))
	bdx := new(big.Rat).Sub(ratOf(rx), ratOf(px))
	bdy := new(big.Rat).Sub(ratOf(ry), ratOf(py))

	left := new(big.Rat).Mul(adx, bdy)
	right := new(big.Rat).Mul(ady, bdx)

	return Sign(left.Sub(left, right).Sign())
}

// onLineExact evaluates a·x + b·y + c over ℚ.
func onLineExact(x, y, a, b, c float64) Sign {
	s := new(big.Rat).Mul(ratOf(a), ratOf(x))
	s.Add(s, new(big.Rat).Mul(ratOf(b), ratOf(y)))
	s.Add(s, ratOf(c))

	return Sign(s.Sign())
}

// onCircleExact evaluates (x−cx)² + (y−cy)² − r² over ℚ.
func onCircleExact(x, y, cx, cy, r float64) Sign {
	dx := new(big.Rat).Sub(ratOf(x), ratOf(cx))
	dy := new(big.Rat).Sub(ratOf(y), ratOf(cy))
	rr := ratOf(r)

	s := new(big.Rat).Mul(dx, dx)
	s.Add(s, new(big.Rat).Mul(dy, dy))
	s.Sub(s, rr.Mul(rr, rr))

	return Sign(s.Sign())
}
