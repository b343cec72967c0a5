package quat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	gonumquat "gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/lvglm/quat"
	"github.com/katalvlaran/lvglm/vec"
)

// TestGonumInterop maps W to Real and keeps the Hamilton product.
func TestGonumInterop(t *testing.T) {
	q := quat.New(1.0, 2, 3, 4)
	n := quat.ToGonum(q)
	require.Equal(t, gonumquat.Number{Real: 4, Imag: 1, Jmag: 2, Kmag: 3}, n)
	require.Equal(t, q, quat.FromGonum[float64](n))
	require.Equal(t, quat.New[int32](1, -1, 0, 2), quat.FromGonum[int32](gonumquat.Number{Real: 2.9, Imag: 1.5, Jmag: -1.5, Kmag: 0.2}))

	a := quat.New[int64](1, 2, 3, 4)
	b := quat.New[int64](5, 6, 7, 8)
	require.Equal(t, a.Mul(b), quat.FromGonum[int64](gonumquat.Mul(quat.ToGonum(a), quat.ToGonum(b))))
	require.Equal(t, b.Mul(a), quat.FromGonum[int64](gonumquat.Mul(quat.ToGonum(b), quat.ToGonum(a))))
}

// TestExpLogPow relates the transcendental functions to axis-angle rotations.
func TestExpLogPow(t *testing.T) {
	axis := vec.Normalize3(vec.New3(1.0, 2, 2))
	angle := 1.2
	r := quat.FromAxisAngle(angle, axis)

	// exp(θ/2 · n) is the rotation of θ about n.
	pure := quat.FromVec3(vec.Scale3(axis, angle/2), 0)
	requireQuatNear(t, r, quat.Exp(pure), eps)

	requireQuatNear(t, pure, quat.Log(r), eps)
	requireQuatNear(t, r, quat.Exp(quat.Log(r)), eps)

	requireQuatNear(t, quat.FromAxisAngle(angle/2, axis), quat.Pow(r, 0.5), eps)
	requireQuatNear(t, r.Mul(r), quat.Pow(r, 2), eps)

	// |e^q| = e^w.
	require.InDelta(t, math.E, quat.Length(quat.Exp(quat.New(0.3, 0, 0, 1))), eps)

	f := quat.Exp(quat.FromVec3(vec.New3[float32](0, 0, math.Pi/4), 0))
	require.InDelta(t, math.Sqrt2/2, float64(f.Z), 1e-6)
	require.InDelta(t, math.Sqrt2/2, float64(f.W), 1e-6)
}
