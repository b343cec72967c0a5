// Package scalar holds the scalar layer shared by vec, matrix and quat.
//
// The package provides:
//
//   - Type constraints (Scalar, Number, Signed, Integer, Float) naming the six
//     element kinds the value types are instantiated with: bool, int32, uint32,
//     int64, float32 and float64.
//   - A text codec for single components (Parse, Format) and for whole
//     component lists (ParseInto, FormatAll, Split) using the "x, y, z, w"
//     layout with a configurable separator.
//   - Functional options (WithSeparator, WithVerb, WithLocale) that configure
//     the codec, including locale-aware rendering through golang.org/x/text.
//   - The sentinel errors re-exported by the value-type packages.
//
// Everything here is pure and allocation-light; Options values are immutable
// once built and safe to share between goroutines.
package scalar
