// SPDX-License-Identifier: MIT

// Package vec: vector value types and their named instantiations.
package vec

import (
	"fmt"

	"github.com/katalvlaran/lvglm/scalar"
)

// Vec2 is a 2-component vector laid out as X, Y.
type Vec2[T scalar.Scalar] struct {
	X, Y T
}

// Vec3 is a 3-component vector laid out as X, Y, Z.
type Vec3[T scalar.Scalar] struct {
	X, Y, Z T
}

// Vec4 is a 4-component vector laid out as X, Y, Z, W.
type Vec4[T scalar.Scalar] struct {
	X, Y, Z, W T
}

// Named instantiations, one per scalar kind and arity.
type (
	Bool2 = Vec2[bool]
	Bool3 = Vec3[bool]
	Bool4 = Vec4[bool]

	Int2 = Vec2[int32]
	Int3 = Vec3[int32]
	Int4 = Vec4[int32]

	Uint2 = Vec2[uint32]
	Uint3 = Vec3[uint32]
	Uint4 = Vec4[uint32]

	Long2 = Vec2[int64]
	Long3 = Vec3[int64]
	Long4 = Vec4[int64]

	Float2 = Vec2[float32]
	Float3 = Vec3[float32]
	Float4 = Vec4[float32]

	Double2 = Vec2[float64]
	Double3 = Vec3[float64]
	Double4 = Vec4[float64]
)

// vecErrorf wraps an indexer error with the method and the offending index.
func vecErrorf(method string, i int, err error) error {
	return fmt.Errorf("%s(%d): %w", method, i, err)
}

// opErrorf wraps err with an operation tag.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
