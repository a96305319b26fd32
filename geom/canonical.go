// Canonicalization: normalization, quantization, and identity derivation.

package geom

import (
	"encoding/binary"
	"fmt"
	"math"
)

// IDSize is the width of a canonical identity in bytes:
// one kind tag plus three big-endian quantized attributes.
const IDSize = 1 + 3*8

// ID is the canonical identity of a primitive: a fixed-width, comparable
// byte key derived from normalized, quantized attributes. Two primitives
// with equal IDs are treated as the same object everywhere.
type ID [IDSize]byte

// String renders the identity as a compact hex key for debugging.
func (id ID) String() string { return fmt.Sprintf("%x", id[:]) }

// Kind recovers the primitive kind embedded in the identity tag byte.
func (id ID) Kind() Kind { return Kind(id[0]) }

// quantize snaps an attribute to the EpsCanon grid.
func quantize(v float64) int64 { return int64(math.Round(v / EpsCanon)) }

// dequantize maps a grid index back to the canonical attribute value.
func dequantize(q int64) float64 { return float64(q) * EpsCanon }

// packID assembles an identity from a kind tag and three grid indices.
// Point identities zero-pad the third slot.
func packID(k Kind, q0, q1, q2 int64) ID {
	var id ID
	id[0] = byte(k)
	binary.BigEndian.PutUint64(id[1:9], uint64(q0))
	binary.BigEndian.PutUint64(id[9:17], uint64(q1))
	binary.BigEndian.PutUint64(id[17:25], uint64(q2))

	return id
}

// NewLine builds a normalized line from raw coefficients of a·x+b·y+c=0.
//
// Normalization is unique: the triple is scaled so a²+b²=1, then negated if
// the quantized leading coefficient (a, falling back to b when a quantizes
// to zero) is negative. Deciding the flip on quantized values keeps the
// identity stable when a straddles zero by less than EpsCanon.
func NewLine(a, b, c float64) (Line, error) {
	if !finite(a) || !finite(b) || !finite(c) {
		return Line{}, fmt.Errorf("%w: line (%v, %v, %v)", ErrNonFinite, a, b, c)
	}
	n := math.Hypot(a, b)
	if n <= EpsNumeric {
		return Line{}, fmt.Errorf("%w: (%v, %v, %v)", ErrUnnormalizable, a, b, c)
	}
	a, b, c = a/n, b/n, c/n
	// A near-zero normal with a large offset can blow c past the
	// quantization-safe range; reject rather than overflow the identity.
	if !finite(c) {
		return Line{}, fmt.Errorf("%w: normalized offset %v out of range", ErrNonFinite, c)
	}

	// Canonical sign: first nonzero of the quantized (a, b) must be positive.
	qa, qb := quantize(a), quantize(b)
	if qa < 0 || (qa == 0 && qb < 0) {
		a, b, c = -a, -b, -c
	}

	return Line{A: a, B: b, C: c}, nil
}

// Canonicalize returns the canonical representative of p: attributes
// normalized and snapped to the EpsCanon grid. The operation is idempotent:
// Canonicalize(Canonicalize(p)) == Canonicalize(p).
//
// Errors:
//   - ErrNonFinite for NaN/Inf/out-of-range attributes.
//   - ErrUnnormalizable for a line with a ≈ b ≈ 0.
//   - ErrDegenerate for a circle with radius ≤ EpsCanon.
func Canonicalize(p Primitive) (Primitive, error) {
	switch v := p.(type) {
	case Point:
		if !finite(v.X) || !finite(v.Y) {
			return nil, fmt.Errorf("%w: point (%v, %v)", ErrNonFinite, v.X, v.Y)
		}

		return Point{X: dequantize(quantize(v.X)), Y: dequantize(quantize(v.Y))}, nil

	case Line:
		l, err := NewLine(v.A, v.B, v.C)
		if err != nil {
			return nil, err
		}

		return Line{
			A: dequantize(quantize(l.A)),
			B: dequantize(quantize(l.B)),
			C: dequantize(quantize(l.C)),
		}, nil

	case Circle:
		if !finite(v.CX) || !finite(v.CY) || !finite(v.R) {
			return nil, fmt.Errorf("%w: circle (%v, %v, r=%v)", ErrNonFinite, v.CX, v.CY, v.R)
		}
		if v.R <= EpsCanon {
			return nil, fmt.Errorf("%w: circle radius %v ≤ EpsCanon", ErrDegenerate, v.R)
		}

		return Circle{
			CX: dequantize(quantize(v.CX)),
			CY: dequantize(quantize(v.CY)),
			R:  dequantize(quantize(v.R)),
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown primitive kind", ErrBadOperand)
	}
}

// IdentityOf derives the canonical identity of p. The primitive must pass
// Canonicalize; IdentityOf validates the same conditions and returns the
// same sentinels on failure.
func IdentityOf(p Primitive) (ID, error) {
	switch v := p.(type) {
	case Point:
		if !finite(v.X) || !finite(v.Y) {
			return ID{}, fmt.Errorf("%w: point (%v, %v)", ErrNonFinite, v.X, v.Y)
		}

		return packID(KindPoint, quantize(v.X), quantize(v.Y), 0), nil

	case Line:
		l, err := NewLine(v.A, v.B, v.C)
		if err != nil {
			return ID{}, err
		}
		qa, qb, qc := quantize(l.A), quantize(l.B), quantize(l.C)

		return packID(KindLine, qa, qb, qc), nil

	case Circle:
		if !finite(v.CX) || !finite(v.CY) || !finite(v.R) {
			return ID{}, fmt.Errorf("%w: circle (%v, %v, r=%v)", ErrNonFinite, v.CX, v.CY, v.R)
		}
		if v.R <= EpsCanon {
			return ID{}, fmt.Errorf("%w: circle radius %v ≤ EpsCanon", ErrDegenerate, v.R)
		}

		return packID(KindCircle, quantize(v.CX), quantize(v.CY), quantize(v.R)), nil

	default:
		return ID{}, fmt.Errorf("%w: unknown primitive kind", ErrBadOperand)
	}
}

// MustIdentity is IdentityOf for primitives already validated by the caller
// (e.g. values returned from Canonicalize or the kernels). It panics on
// invalid input, which would indicate a bug upstream, not a user error.
func MustIdentity(p Primitive) ID {
	id, err := IdentityOf(p)
	if err != nil {
		panic("geom: MustIdentity on invalid primitive: " + err.Error())
	}

	return id
}

// fnv64Offset and fnv64Prime are the FNV-1a parameters.
const (
	fnv64Offset = 0xcbf29ce484222325
	fnv64Prime  = 0x100000001b3
)

// HashID folds an identity into a 64-bit FNV-1a hash. State identities are
// built by summing these per-primitive hashes, which makes the state key
// commutative over the multiset of member identities.
func HashID(id ID) uint64 {
	h := uint64(fnv64Offset)
	for _, b := range id {
		h ^= uint64(b)
		h *= fnv64Prime
	}

	return h
}
