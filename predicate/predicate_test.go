// Package predicate_test validates the robust predicates.
// Focus:
//  1. Exact results on hand-picked degenerate inputs (collinear, on-curve).
//  2. Sign agreement with an independent big.Rat reference on random inputs.
//  3. Structural identities: antisymmetry and rotation invariance of Orient.
//  4. Near-boundary inputs one ulp away from degeneracy keep a stable sign.
package predicate_test

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/compass/predicate"
)

// refOrient is an independent exact reference: the orientation determinant
// evaluated over big.Rat, written without reuse of the package internals.
func refOrient(px, py, qx, qy, rx, ry float64) predicate.Sign {
	rat := func(v float64) *big.Rat { return new(big.Rat).SetFloat64(v) }
	ux := new(big.Rat).Sub(rat(qx), rat(px))
	uy := new(big.Rat).Sub(rat(qy), rat(py))
	vx := new(big.Rat).Sub(rat(rx), rat(px))
	vy := new(big.Rat).Sub(rat(ry), rat(py))
	det := new(big.Rat).Sub(new(big.Rat).Mul(ux, vy), new(big.Rat).Mul(uy, vx))

	return predicate.Sign(det.Sign())
}

func TestOrient_BasicTurns(t *testing.T) {
	// Counter-clockwise triangle.
	assert.Equal(t, predicate.Positive, predicate.Orient(0, 0, 1, 0, 0, 1), "CCW triple must be positive")

	// Clockwise triangle (swap last two points).
	assert.Equal(t, predicate.Negative, predicate.Orient(0, 0, 0, 1, 1, 0), "CW triple must be negative")

	// Exactly collinear points on y = x, exactly representable coordinates.
	assert.Equal(t, predicate.Zero, predicate.Orient(0.5, 0.5, 12, 12, 24, 24), "collinear triple must be zero")
}

func TestOrient_NearDegenerate(t *testing.T) {
	// Perturb the collinear case by a single ulp: the sign must be exact and
	// consistent with the rational reference, not noise from rounding.
	base := 0.5
	up := math.Nextafter(base, 2)   // 0.5 + 2⁻⁵³
	down := math.Nextafter(base, 0) // 0.5 − 2⁻⁵⁴

	for _, y := range []float64{base, up, down} {
		got := predicate.Orient(12, 12, 24, 24, base, y)
		want := refOrient(12, 12, 24, 24, base, y)
		assert.Equal(t, want, got, "one-ulp perturbation y=%v", y)
	}
}

func TestOrient_Identities(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) // fixed seed for reproducibility
	var coords [6]float64
	for trial := 0; trial < 2000; trial++ {
		for i := range coords {
			coords[i] = (rng.Float64() - 0.5) * 2e6
		}
		px, py, qx, qy, rx, ry := coords[0], coords[1], coords[2], coords[3], coords[4], coords[5]

		s := predicate.Orient(px, py, qx, qy, rx, ry)

		// Exchanging two arguments inverts the sign.
		require.Equal(t, -s, predicate.Orient(qx, qy, px, py, rx, ry), "antisymmetry, trial %d", trial)

		// Rotating the argument order preserves the sign.
		require.Equal(t, s, predicate.Orient(qx, qy, rx, ry, px, py), "rotation, trial %d", trial)
	}
}

func TestOrient_AgreesWithRationalReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var coords [6]float64
	for trial := 0; trial < 5000; trial++ {
		for i := range coords {
			coords[i] = (rng.Float64() - 0.5) * 2e6
		}
		// Force a fraction of the trials onto (or near) a common line to
		// exercise the exact tier, not just the triage fast path.
		if trial%3 == 0 {
			coords[4], coords[5] = coords[0]+2*(coords[2]-coords[0]), coords[1]+2*(coords[3]-coords[1])
		}
		got := predicate.Orient(coords[0], coords[1], coords[2], coords[3], coords[4], coords[5])
		want := refOrient(coords[0], coords[1], coords[2], coords[3], coords[4], coords[5])
		require.Equal(t, want, got, "trial %d: %v", trial, coords)
	}
}

func TestOnLine_ExactMembership(t *testing.T) {
	// The x-axis in normalized form: 0·x + 1·y + 0 = 0.
	assert.Equal(t, predicate.Zero, predicate.OnLine(123.25, 0, 0, 1, 0))
	assert.Equal(t, predicate.Positive, predicate.OnLine(0, 1e-300, 0, 1, 0), "tiny positive offset must not collapse to zero")
	assert.Equal(t, predicate.Negative, predicate.OnLine(0, -1e-300, 0, 1, 0))

	// A slanted line through the origin with exactly representable normal.
	// 0.5·x − 0.5·y = 0 contains every point with x == y.
	assert.Equal(t, predicate.Zero, predicate.OnLine(7.75, 7.75, 0.5, -0.5, 0))
}

func TestOnCircle_ExactMembership(t *testing.T) {
	// 3-4-5 triangle: (3,4) lies exactly on the circle centered at the
	// origin with radius 5; all values are exactly representable.
	assert.Equal(t, predicate.Zero, predicate.OnCircle(3, 4, 0, 0, 5))
	assert.Equal(t, predicate.Negative, predicate.OnCircle(3, 3.99999999, 0, 0, 5), "inside")
	assert.Equal(t, predicate.Positive, predicate.OnCircle(3, 4.00000001, 0, 0, 5), "outside")

	// One-ulp radius perturbations flip membership deterministically.
	assert.Equal(t, predicate.Positive, predicate.OnCircle(3, 4, 0, 0, math.Nextafter(5, 0)))
	assert.Equal(t, predicate.Negative, predicate.OnCircle(3, 4, 0, 0, math.Nextafter(5, 6)))
}

func TestSign_String(t *testing.T) {
	assert.Equal(t, "negative", predicate.Negative.String())
	assert.Equal(t, "zero", predicate.Zero.String())
	assert.Equal(t, "positive", predicate.Positive.String())
}
