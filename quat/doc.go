// Package quat implements quaternions over int32, int64, float32 and float64,
// plus a boolean 4-tuple QBool.
//
// 🚀 What is a quaternion here?
//
//	A 4-tuple (x, y, z, w). For integer kinds it is a typed 4-vector with the
//	Hamilton algebra on top; for float kinds it additionally represents a 3D
//	rotation when normalized.
//
// ✨ Key features:
//   - Hamilton product (Mul), conjugate, inverse, vector rotation
//     (RotateVec3/RotateVec4 and their inverses)
//   - Rotation properties: Angle, Axis, Yaw, Pitch, Roll, EulerAngles
//   - Construction from axis/angle, Euler angles, two directions, or a
//     rotation matrix (biggest-diagonal algorithm in FromMat3)
//   - Interpolation: Lerp, Mix, SLerp (shortest arc), Squad
//   - Exp, Log and Pow, computed through gonum.org/v1/gonum/num/quat
//     (ToGonum/FromGonum convert between the two representations)
//   - Text: "x, y, z, w" with Parse/TryParse/String/FormatWith
//   - Conversions between kinds: lossless widening helpers (QIntToQFloat, ...)
//     and the explicit Convert / ToQBool / FromQBool
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvglm/quat"
//
//	q := quat.FromAxisAngle(math.Pi/2, vec.New3(0.0, 0, 1))
//	v := quat.RotateVec3(q, vec.New3(1.0, 0, 0)) // ≈ (0, 1, 0)
//	m := quat.ToMat3(q)                          // same rotation as a matrix
//
// Numerics:
//
//   - Floats follow IEEE 754: dividing by zero yields ±Inf/NaN, Inverse of
//     the zero quaternion is NaN, Equal treats NaN as unequal to itself.
//   - Integer Div/DivElem by zero panic exactly like Go's "/" operator;
//     SafeDiv is the error-returning alternative.
//   - Angle/Axis/Euler extraction assume a normalized quaternion and do not
//     normalize internally.
package quat
