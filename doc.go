// Package lvglm is a small, dependency-light math toolbox of fixed-size value
// types: vectors, rotation matrices and quaternions over several scalar kinds.
//
// 🚀 What is lvglm?
//
//	A set of generic value types in the spirit of GLSL/glm:
//		• Vectors: Vec2, Vec3, Vec4 over bool, int32, uint32, int64, float32, float64
//		• Swizzles: v.ZYX(), v.BGR(), v.XXZZ(), v.SetXY(...) generated for every arity
//		• Quaternions: Hamilton algebra, rotation of vectors, SLerp/Squad, Euler angles
//		• Matrices: column-major Mat3/Mat4 interop with quaternions and x/image/math
//		• Text: a stable "x, y, z, w" format with locale-aware formatting and parsing
//
// ✨ Why choose lvglm?
//
//   - Value semantics – every type is a plain struct, safe to copy and share
//   - One implementation – generics replace per-scalar duplicated code
//   - Predictable numerics – IEEE 754 for floats, native panics for integer /0
//   - Silent by default – opt-in slog logging through SetLogger
//
// Packages:
//
//	scalar/ - type constraints, scalar text codec, format options, sentinel errors
//	vec/    - Vec2, Vec3, Vec4, comparison/logic helpers, swizzles, conversions
//	matrix/ - Mat3, Mat4 rotation matrices and x/image/math interop
//	quat/   - Quat[T], QBool, rotation math, interpolation, conversions
//
// Quick example:
//
//	q := quat.FromAxisAngle(math.Pi/2, vec.New3(0.0, 0, 1))
//	v := quat.RotateVec3(q, vec.New3(1.0, 0, 0)) // ≈ (0, 1, 0)
//	fmt.Println(v.FormatWith(scalar.WithVerb("%.3f"))) // 0.000, 1.000, 0.000
//
//	go get github.com/katalvlaran/lvglm
package lvglm
