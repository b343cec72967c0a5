package vec

import "github.com/katalvlaran/lvglm/scalar"

// Convert2 casts every component to To with Go conversion rules
// (float→int truncates toward zero).
func Convert2[To, From scalar.Number](v Vec2[From]) Vec2[To] { return map2(v, cast[To, From]) }

// ToBool2 maps each component to component != 0.
func ToBool2[T scalar.Number](v Vec2[T]) Vec2[bool] { return map2(v, scalar.ToBool[T]) }

// FromBool2 maps true to 1 and false to 0 per component.
func FromBool2[T scalar.Number](v Vec2[bool]) Vec2[T] { return map2(v, scalar.FromBool[T]) }

// Convert3 casts every component to To with Go conversion rules
// (float→int truncates toward zero).
func Convert3[To, From scalar.Number](v Vec3[From]) Vec3[To] { return map3(v, cast[To, From]) }

// ToBool3 maps each component to component != 0.
func ToBool3[T scalar.Number](v Vec3[T]) Vec3[bool] { return map3(v, scalar.ToBool[T]) }

// FromBool3 maps true to 1 and false to 0 per component.
func FromBool3[T scalar.Number](v Vec3[bool]) Vec3[T] { return map3(v, scalar.FromBool[T]) }

// Convert4 casts every component to To with Go conversion rules
// (float→int truncates toward zero).
func Convert4[To, From scalar.Number](v Vec4[From]) Vec4[To] { return map4(v, cast[To, From]) }

// ToBool4 maps each component to component != 0.
func ToBool4[T scalar.Number](v Vec4[T]) Vec4[bool] { return map4(v, scalar.ToBool[T]) }

// FromBool4 maps true to 1 and false to 0 per component.
func FromBool4[T scalar.Number](v Vec4[bool]) Vec4[T] { return map4(v, scalar.FromBool[T]) }
