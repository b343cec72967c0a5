// Package vec provides 2-, 3- and 4-component vectors over every scalar kind.
//
// The package provides:
//
//   - Vec2[T], Vec3[T], Vec4[T] value types plus named aliases (Bool4,
//     Float2, Int2, Uint2, Double3, Long4, ...).
//   - An indexer (At/Set) that reports ErrOutOfRange instead of panicking.
//   - The "x, y, z" text format (String, FormatWith, ParseN, TryParseN).
//   - Elementwise comparisons returning boolean vectors, boolean reductions
//     (All, Any) and logic (Not, And, Or, Xor).
//   - Small arithmetic helpers used by quaternion rotation (Add, Sub, Scale,
//     Dot, Cross, Length, Normalize).
//   - Conversions between scalar kinds and to/from golang.org/x/image/math.
//   - Swizzles: every 2/3/4-letter word over x,y,z,w (and r,g,b,a) as a
//     read method (v.ZYX(), v.BGR(), v.XXZZ()) and, for words without
//     repeated letters, a setter (v.SetXY(...)).
//
// Swizzle methods live in swizzle_gen.go and are produced by
// internal/swizzlegen; run `go generate ./vec` after changing the generator.
package vec

//go:generate go run ../internal/swizzlegen -o swizzle_gen.go
