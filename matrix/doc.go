// Package matrix offers column-major 3×3 and 4×4 rotation matrices.
//
// The matrix package provides:
//
//   - Mat3[T] and Mat4[T] value types over float32/float64, stored column by
//     column with fields Mcr (column c, row r) as in GLSL/glm.
//   - Safe accessors (At/Set/Col/Row) that return ErrOutOfRange instead of
//     panicking.
//   - Products (Mul, MulVec3, MulVec4), Transpose, Determinant, Inverse (LU
//     with partial pivoting, ErrSingular on a zero pivot), and exact or
//     tolerance-based equality.
//   - Interop with golang.org/x/image/math/f32 and f64, whose matrices are
//     row-major arrays.
//
// Quaternion ↔ matrix conversions live in package quat (ToMat3, FromMat3, ...).
package matrix
