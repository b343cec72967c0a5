// SPDX-License-Identifier: MIT

// Package quat: interpolation between quaternions.
//
// Mix and SLerp fall back to Lerp once cos(angle) exceeds 1 - ε, with ε the
// machine epsilon of T, where sin(angle) is too close to zero to divide by.
// Otherwise the spherical blend is computed in float64 and rounded to T once,
// so QFloat results agree with the QDouble ones to float32 precision.
package quat

import (
	"math"

	"github.com/katalvlaran/lvglm/scalar"
)

// Lerp returns a·(1-t) + b·t componentwise. The result is not normalized.
func Lerp[T scalar.Float](a, b Quat[T], t T) Quat[T] {
	return Quat[T]{
		X: a.X*(1-t) + b.X*t,
		Y: a.Y*(1-t) + b.Y*t,
		Z: a.Z*(1-t) + b.Z*t,
		W: a.W*(1-t) + b.W*t,
	}
}

// Mix interpolates spherically from x (t=0) to y (t=1) without choosing the
// shorter arc: x and y are assumed to lie on the same hemisphere.
func Mix[T scalar.Float](x, y Quat[T], t T) Quat[T] {
	cosTheta := float64(x.Dot(y))
	if cosTheta > 1-scalar.Epsilon[T]() {
		return Lerp(x, y, t)
	}

	return spherical(x, y, t, math.Acos(cosTheta))
}

// SLerp interpolates spherically from x to y along the shorter arc, negating
// y when the quaternions lie on opposite hemispheres.
func SLerp[T scalar.Float](x, y Quat[T], t T) Quat[T] {
	z := y
	cosTheta := float64(x.Dot(y))
	if cosTheta < 0 {
		z = y.Neg()
		cosTheta = -cosTheta
	}
	if cosTheta > 1-scalar.Epsilon[T]() {
		return Lerp(x, z, t)
	}

	return spherical(x, z, t, math.Acos(cosTheta))
}

// Squad is spherical cubic interpolation between q1 and q2 with control
// points s1 and s2: Mix(Mix(q1, q2, h), Mix(s1, s2, h), 2(1-h)h).
func Squad[T scalar.Float](q1, q2, s1, s2 Quat[T], h T) Quat[T] {
	return Mix(Mix(q1, q2, h), Mix(s1, s2, h), 2*(1-h)*h)
}

// spherical evaluates (x·sin((1-t)θ) + y·sin(tθ)) / sin(θ) in float64 and
// rounds each component to T once.
func spherical[T scalar.Float](x, y Quat[T], t T, angle float64) Quat[T] {
	a := math.Sin((1 - float64(t)) * angle)
	b := math.Sin(float64(t) * angle)
	s := math.Sin(angle)
	blend := func(p, q T) T { return T((float64(p)*a + float64(q)*b) / s) }

	return Quat[T]{X: blend(x.X, y.X), Y: blend(x.Y, y.Y), Z: blend(x.Z, y.Z), W: blend(x.W, y.W)}
}
