package vec

import "github.com/katalvlaran/lvglm/scalar"

// Equal2 returns a == b per component.
func Equal2[T scalar.Scalar](a, b Vec2[T]) Vec2[bool] { return zip2(a, b, eq[T]) }

// NotEqual2 returns a != b per component.
func NotEqual2[T scalar.Scalar](a, b Vec2[T]) Vec2[bool] { return zip2(a, b, ne[T]) }

// Less2 returns a < b per component.
func Less2[T scalar.Number](a, b Vec2[T]) Vec2[bool] { return zip2(a, b, lt[T]) }

// LessEqual2 returns a <= b per component.
func LessEqual2[T scalar.Number](a, b Vec2[T]) Vec2[bool] { return zip2(a, b, le[T]) }

// Greater2 returns a > b per component.
func Greater2[T scalar.Number](a, b Vec2[T]) Vec2[bool] { return zip2(a, b, gt[T]) }

// GreaterEqual2 returns a >= b per component.
func GreaterEqual2[T scalar.Number](a, b Vec2[T]) Vec2[bool] { return zip2(a, b, ge[T]) }

// Equal3 returns a == b per component.
func Equal3[T scalar.Scalar](a, b Vec3[T]) Vec3[bool] { return zip3(a, b, eq[T]) }

// NotEqual3 returns a != b per component.
func NotEqual3[T scalar.Scalar](a, b Vec3[T]) Vec3[bool] { return zip3(a, b, ne[T]) }

// Less3 returns a < b per component.
func Less3[T scalar.Number](a, b Vec3[T]) Vec3[bool] { return zip3(a, b, lt[T]) }

// LessEqual3 returns a <= b per component.
func LessEqual3[T scalar.Number](a, b Vec3[T]) Vec3[bool] { return zip3(a, b, le[T]) }

// Greater3 returns a > b per component.
func Greater3[T scalar.Number](a, b Vec3[T]) Vec3[bool] { return zip3(a, b, gt[T]) }

// GreaterEqual3 returns a >= b per component.
func GreaterEqual3[T scalar.Number](a, b Vec3[T]) Vec3[bool] { return zip3(a, b, ge[T]) }

// Equal4 returns a == b per component.
func Equal4[T scalar.Scalar](a, b Vec4[T]) Vec4[bool] { return zip4(a, b, eq[T]) }

// NotEqual4 returns a != b per component.
func NotEqual4[T scalar.Scalar](a, b Vec4[T]) Vec4[bool] { return zip4(a, b, ne[T]) }

// Less4 returns a < b per component.
func Less4[T scalar.Number](a, b Vec4[T]) Vec4[bool] { return zip4(a, b, lt[T]) }

// LessEqual4 returns a <= b per component.
func LessEqual4[T scalar.Number](a, b Vec4[T]) Vec4[bool] { return zip4(a, b, le[T]) }

// Greater4 returns a > b per component.
func Greater4[T scalar.Number](a, b Vec4[T]) Vec4[bool] { return zip4(a, b, gt[T]) }

// GreaterEqual4 returns a >= b per component.
func GreaterEqual4[T scalar.Number](a, b Vec4[T]) Vec4[bool] { return zip4(a, b, ge[T]) }
