// Tests for the constructive kernels LineThrough and CircleCentered.
package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/compass/geom"
)

func TestLineThrough_Horizontal(t *testing.T) {
	l, err := geom.LineThrough(geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0})
	require.NoError(t, err)

	// The x-axis in canonical form is (0, 1, 0).
	assert.InDelta(t, 0.0, l.A, 1e-15)
	assert.InDelta(t, 1.0, l.B, 1e-15)
	assert.InDelta(t, 0.0, l.C, 1e-15)
}

func TestLineThrough_Vertical(t *testing.T) {
	l, err := geom.LineThrough(geom.Point{X: 2, Y: 0}, geom.Point{X: 2, Y: 5})
	require.NoError(t, err)

	// x = 2 canonicalizes to (1, 0, −2) by the leading-sign rule.
	assert.InDelta(t, 1.0, l.A, 1e-15)
	assert.InDelta(t, 0.0, l.B, 1e-15)
	assert.InDelta(t, -2.0, l.C, 1e-15)
}

func TestLineThrough_OperandOrderIrrelevantForIdentity(t *testing.T) {
	p, q := geom.Point{X: 1, Y: 1}, geom.Point{X: 5, Y: 5}

	l1, err := geom.LineThrough(p, q)
	require.NoError(t, err)
	l2, err := geom.LineThrough(q, p)
	require.NoError(t, err)

	assert.Equal(t, geom.MustIdentity(l1), geom.MustIdentity(l2),
		"swapping defining points must not change the canonical identity")
}

func TestLineThrough_CoincidentPoints(t *testing.T) {
	_, err := geom.LineThrough(geom.Point{X: 1, Y: 1}, geom.Point{X: 1, Y: 1})
	assert.ErrorIs(t, err, geom.ErrDegenerate)

	// Sub-epsilon separation counts as coincident: the identities collide.
	_, err = geom.LineThrough(geom.Point{X: 1, Y: 1}, geom.Point{X: 1 + 2e-10, Y: 1})
	assert.ErrorIs(t, err, geom.ErrDegenerate)
}

func TestCircleCentered_Basic(t *testing.T) {
	c, err := geom.CircleCentered(geom.Point{X: 0, Y: 0}, geom.Point{X: 3, Y: 4})
	require.NoError(t, err)

	assert.Equal(t, 0.0, c.CX)
	assert.Equal(t, 0.0, c.CY)
	assert.Equal(t, 5.0, c.R, "3-4-5 radius is exact in binary64")
}

func TestCircleCentered_DirectionMatters(t *testing.T) {
	// circle(A→B) and circle(B→A) are different objects for |AB| > 0 and
	// distinct centers — the two compass variants the engine enumerates.
	a, b := geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}

	cab, err := geom.CircleCentered(a, b)
	require.NoError(t, err)
	cba, err := geom.CircleCentered(b, a)
	require.NoError(t, err)

	assert.NotEqual(t, geom.MustIdentity(cab), geom.MustIdentity(cba))
	assert.Equal(t, cab.R, cba.R)
}

func TestCircleCentered_Degenerate(t *testing.T) {
	_, err := geom.CircleCentered(geom.Point{X: 2, Y: 2}, geom.Point{X: 2, Y: 2})
	assert.ErrorIs(t, err, geom.ErrDegenerate)
}
