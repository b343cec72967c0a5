package quat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvglm/quat"
	"github.com/katalvlaran/lvglm/vec"
)

// TestLerp is a plain componentwise blend.
func TestLerp(t *testing.T) {
	a := quat.Identity[float64]()
	b := quat.Ones[float64]()
	require.Equal(t, quat.New(0.25, 0.25, 0.25, 1), quat.Lerp(a, b, 0.25))
	require.Equal(t, a, quat.Lerp(a, b, 0))
	require.Equal(t, b, quat.Lerp(a, b, 1))
}

// TestSLerp checks the endpoints, the midpoint and the shorter-arc choice.
func TestSLerp(t *testing.T) {
	z := vec.UnitZ3[float64]()
	id := quat.Identity[float64]()
	r90 := quat.FromAxisAngle(math.Pi/2, z)
	r45 := quat.FromAxisAngle(math.Pi/4, z)

	requireQuatNear(t, id, quat.SLerp(id, r90, 0), eps)
	requireQuatNear(t, r90, quat.SLerp(id, r90, 1), eps)
	requireQuatNear(t, r45, quat.SLerp(id, r90, 0.5), eps)
	require.InDelta(t, 1.0, quat.Length(quat.SLerp(id, r90, 0.3)), eps)

	// -r90 is the same rotation; SLerp takes the short way round.
	requireQuatNear(t, r45, quat.SLerp(id, r90.Neg(), 0.5), eps)
}

// TestMix does not flip hemispheres.
func TestMix(t *testing.T) {
	z := vec.UnitZ3[float64]()
	id := quat.Identity[float64]()
	r90 := quat.FromAxisAngle(math.Pi/2, z)

	requireQuatNear(t, quat.FromAxisAngle(math.Pi/4, z), quat.Mix(id, r90, 0.5), eps)
	requireQuatNear(t, quat.FromAxisAngle(-3*math.Pi/4, z), quat.Mix(id, r90.Neg(), 0.5), eps)
}

// TestNearlyEqualFallsBackToLerp avoids dividing by sin(0).
func TestNearlyEqualFallsBackToLerp(t *testing.T) {
	q := quat.Normalized(quat.New(1.0, 2, 3, 4))
	requireQuatNear(t, q, quat.Mix(q, q, 0.3), eps)
	requireQuatNear(t, q, quat.SLerp(q, q, 0.7), eps)

	f := quat.Normalized(quat.New[float32](1, 2, 3, 4))
	got := quat.SLerp(f, f, 0.5)
	require.False(t, vec.Any4(quat.IsNaN(got)), "got %v", got)
	require.InDelta(t, float64(f.W), float64(got.W), 1e-6)
}

// TestSLerpFloat32MatchesFloat64 rounds the float32 blend once, so it lands
// on the float64 result to float32 precision.
func TestSLerpFloat32MatchesFloat64(t *testing.T) {
	a := quat.Normalized(quat.New[float32](0.1, 0.7, -0.2, 0.6))
	b := quat.Normalized(quat.New[float32](-0.5, 0.3, 0.8, 0.1))
	for _, h := range []float32{0.1, 0.3, 0.5, 0.9} {
		got := quat.SLerp(a, b, h)
		want := quat.SLerp(quat.QFloatToQDouble(a), quat.QFloatToQDouble(b), float64(h))
		requireQuatNear(t, want, quat.QFloatToQDouble(got), 2e-7)
	}
}

// TestSquad keeps the documented nesting.
func TestSquad(t *testing.T) {
	y := vec.UnitY3[float64]()
	q1 := quat.FromAxisAngle(0.1, y)
	q2 := quat.FromAxisAngle(0.9, y)
	s1 := quat.FromAxisAngle(0.3, y)
	s2 := quat.FromAxisAngle(0.6, y)
	h := 0.4

	want := quat.Mix(quat.Mix(q1, q2, h), quat.Mix(s1, s2, h), 2*(1-h)*h)
	require.Equal(t, want, quat.Squad(q1, q2, s1, s2, h))

	requireQuatNear(t, q1, quat.Squad(q1, q1, q1, q1, 0.5), eps)
	requireQuatNear(t, q1, quat.Squad(q1, q2, s1, s2, 0), eps)
	requireQuatNear(t, q2, quat.Squad(q1, q2, s1, s2, 1), eps)
}
