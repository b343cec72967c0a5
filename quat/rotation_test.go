package quat_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvglm"
	"github.com/katalvlaran/lvglm/quat"
	"github.com/katalvlaran/lvglm/vec"
)

const eps = 1e-12

type RotationSuite struct {
	suite.Suite
	q quat.QDouble // an arbitrary unit rotation
}

func (s *RotationSuite) SetupTest() {
	s.q = quat.Normalized(quat.New(1.0, 2, 3, 4))
}

// requireQuatNear compares two quaternions componentwise within delta.
func requireQuatNear(t *testing.T, want, got quat.QDouble, delta float64) {
	t.Helper()
	for i := 0; i < 4; i++ {
		w, _ := want.At(i)
		g, _ := got.At(i)
		require.InDelta(t, w, g, delta, "component %d: want %v, got %v", i, want, got)
	}
}

// requireVecNear compares two 3-vectors componentwise within delta.
func requireVecNear(t *testing.T, want, got vec.Double3, delta float64) {
	t.Helper()
	require.InDelta(t, want.X, got.X, delta, "x: want %v, got %v", want, got)
	require.InDelta(t, want.Y, got.Y, delta, "y: want %v, got %v", want, got)
	require.InDelta(t, want.Z, got.Z, delta, "z: want %v, got %v", want, got)
}

func (s *RotationSuite) TestNormalized() {
	require := require.New(s.T())
	require.InDelta(1.0, quat.Length(s.q), eps)
	require.InDelta(5.0, quat.Length(quat.New(0.0, 3, 4, 0)), eps)
	require.Equal(quat.Identity[float64](), quat.NormalizedSafe(quat.Zero[float64]()))
	requireQuatNear(s.T(), s.q, quat.NormalizedSafe(s.q), eps)
	require.True(math.IsNaN(quat.Normalized(quat.Zero[float64]()).W), "zero has no direction")
}

func (s *RotationSuite) TestInverse() {
	requireQuatNear(s.T(), quat.Identity[float64](), s.q.Mul(quat.Inverse(s.q)), eps)
	requireQuatNear(s.T(), quat.Identity[float64](), quat.Inverse(s.q).Mul(s.q), eps)

	// Non-unit input: Inverse divides by the squared length.
	a := quat.New(0.0, 0, 0, 2)
	s.Require().Equal(quat.New(-0.0, 0, 0, 0.5), quat.Inverse(a))
}

func (s *RotationSuite) TestAxisAngle() {
	require := require.New(s.T())
	axis := vec.Normalize3(vec.New3(1.0, -2, 0.5))
	q := quat.FromAxisAngle(0.7, axis)

	require.InDelta(1.0, quat.Length(q), eps)
	require.InDelta(0.7, quat.Angle(q), eps)
	requireVecNear(s.T(), axis, quat.Axis(q), eps)

	z := quat.FromAxisAngle(math.Pi/2, vec.UnitZ3[float64]())
	requireVecNear(s.T(), vec.UnitY3[float64](), quat.RotateVec3(z, vec.UnitX3[float64]()), eps)
	requireVecNear(s.T(), vec.UnitX3[float64](), quat.InverseRotateVec3(vec.UnitY3[float64](), z), eps)
}

func (s *RotationSuite) TestAxisFallback() {
	var buf bytes.Buffer
	lvglm.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer lvglm.SetLogger(nil)

	got := quat.Axis(quat.New(0.0, 0, 0, 1.5))
	s.Require().Equal(vec.UnitZ3[float64](), got)
	s.Require().Contains(buf.String(), "Axis")

	// An exact identity has no axis.
	s.Require().True(math.IsNaN(quat.Axis(quat.Identity[float64]()).X))
}

func (s *RotationSuite) TestEulerAngles() {
	angles := vec.New3(0.1, 0.2, 0.3)
	q := quat.FromEulerAngles(angles)
	s.Require().InDelta(1.0, quat.Length(q), eps)
	requireVecNear(s.T(), angles, quat.EulerAngles(q), eps)

	s.Require().InDelta(0.1, quat.Pitch(q), eps)
	s.Require().InDelta(0.2, quat.Yaw(q), eps)
	s.Require().InDelta(0.3, quat.Roll(q), eps)

	// A pure pitch is a rotation about X.
	requireQuatNear(s.T(), quat.FromAxisAngle(0.4, vec.UnitX3[float64]()), quat.FromEulerAngles(vec.New3(0.4, 0, 0)), eps)
}

func (s *RotationSuite) TestFromToVectors() {
	u := vec.Normalize3(vec.New3(1.0, 1, 0))
	v := vec.Normalize3(vec.New3(0.0, 1, 1))
	q := quat.FromToVectors(u, v)
	s.Require().InDelta(1.0, quat.Length(q), eps)
	requireVecNear(s.T(), v, quat.RotateVec3(q, u), eps)

	requireQuatNear(s.T(), quat.Identity[float64](), quat.FromToVectors(u, u), eps)
}

func (s *RotationSuite) TestRotated() {
	axis := vec.UnitY3[float64]()
	requireQuatNear(s.T(), quat.FromAxisAngle(0.3, axis), quat.Rotated(quat.Identity[float64](), 0.3, axis), eps)

	// Rotations about one axis compose additively.
	r := quat.Rotated(quat.FromAxisAngle(0.3, axis), 0.5, axis)
	requireQuatNear(s.T(), quat.FromAxisAngle(0.8, axis), r, eps)
}

func (s *RotationSuite) TestRotateVecRoundTrip() {
	v := vec.New3(1.0, 2, 3)
	requireVecNear(s.T(), v, quat.InverseRotateVec3(quat.RotateVec3(s.q, v), s.q), eps)
	requireVecNear(s.T(), v, quat.RotateVec3(quat.Identity[float64](), v), 0)
	s.Require().InDelta(vec.Length3(v), vec.Length3(quat.RotateVec3(s.q, v)), eps)

	w := quat.InverseRotateVec4(quat.RotateVec4(s.q, vec.New4From3(v, 7)), s.q)
	requireVecNear(s.T(), v, w.XYZ(), eps)
	s.Require().Equal(7.0, w.W)
}

func TestRotationSuite(t *testing.T) {
	suite.Run(t, new(RotationSuite))
}

// TestRotationFloat32 runs the main identities at single precision.
func TestRotationFloat32(t *testing.T) {
	q := quat.FromAxisAngle(float32(math.Pi/3), vec.New3[float32](0, 0, 1))
	require.InDelta(t, 1.0, float64(quat.Length(q)), 1e-6)
	require.InDelta(t, math.Pi/3, float64(quat.Angle(q)), 1e-6)

	r := quat.RotateVec3(q, vec.New3[float32](1, 0, 0))
	require.InDelta(t, 0.5, float64(r.X), 1e-6)
	require.InDelta(t, math.Sqrt(3)/2, float64(r.Y), 1e-6)

	id := q.Mul(quat.Inverse(q))
	require.InDelta(t, 1.0, float64(id.W), 1e-6)
}
