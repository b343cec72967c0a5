package vec

import (
	"math"

	"github.com/katalvlaran/lvglm/scalar"
)

// Add2 returns a + b.
func Add2[T scalar.Number](a, b Vec2[T]) Vec2[T] {
	return Vec2[T]{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub2 returns a - b.
func Sub2[T scalar.Number](a, b Vec2[T]) Vec2[T] {
	return Vec2[T]{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale2 returns v * s.
func Scale2[T scalar.Number](v Vec2[T], s T) Vec2[T] {
	return Vec2[T]{X: v.X * s, Y: v.Y * s}
}

// Dot2 returns the dot product of a and b.
func Dot2[T scalar.Number](a, b Vec2[T]) T {
	return a.X*b.X + a.Y*b.Y
}

// Add3 returns a + b.
func Add3[T scalar.Number](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Sub3 returns a - b.
func Sub3[T scalar.Number](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Scale3 returns v * s.
func Scale3[T scalar.Number](v Vec3[T], s T) Vec3[T] {
	return Vec3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot3 returns the dot product of a and b.
func Dot3[T scalar.Number](a, b Vec3[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Add4 returns a + b.
func Add4[T scalar.Number](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z, W: a.W + b.W}
}

// Sub4 returns a - b.
func Sub4[T scalar.Number](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z, W: a.W - b.W}
}

// Scale4 returns v * s.
func Scale4[T scalar.Number](v Vec4[T], s T) Vec4[T] {
	return Vec4[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Dot4 returns the dot product of a and b.
func Dot4[T scalar.Number](a, b Vec4[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Cross returns the right-handed cross product a × b.
func Cross[T scalar.Number](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Length3 returns the Euclidean length of v.
func Length3[T scalar.Float](v Vec3[T]) T {
	return T(math.Sqrt(float64(Dot3(v, v))))
}

// Normalize3 returns v / Length3(v). A zero vector yields NaN components.
func Normalize3[T scalar.Float](v Vec3[T]) Vec3[T] {
	l := Length3(v)
	return Vec3[T]{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}
