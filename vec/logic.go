package vec

// All2 reports whether every component is true.
func All2(v Vec2[bool]) bool { return v.X && v.Y }

// Any2 reports whether at least one component is true.
func Any2(v Vec2[bool]) bool { return v.X || v.Y }

// Not2 negates every component.
func Not2(v Vec2[bool]) Vec2[bool] { return map2(v, not) }

// And2 combines a and b per component.
func And2(a, b Vec2[bool]) Vec2[bool] { return zip2(a, b, and) }

// Or2 combines a and b per component.
func Or2(a, b Vec2[bool]) Vec2[bool] { return zip2(a, b, or) }

// Xor2 combines a and b per component.
func Xor2(a, b Vec2[bool]) Vec2[bool] { return zip2(a, b, xor) }

// All3 reports whether every component is true.
func All3(v Vec3[bool]) bool { return v.X && v.Y && v.Z }

// Any3 reports whether at least one component is true.
func Any3(v Vec3[bool]) bool { return v.X || v.Y || v.Z }

// Not3 negates every component.
func Not3(v Vec3[bool]) Vec3[bool] { return map3(v, not) }

// And3 combines a and b per component.
func And3(a, b Vec3[bool]) Vec3[bool] { return zip3(a, b, and) }

// Or3 combines a and b per component.
func Or3(a, b Vec3[bool]) Vec3[bool] { return zip3(a, b, or) }

// Xor3 combines a and b per component.
func Xor3(a, b Vec3[bool]) Vec3[bool] { return zip3(a, b, xor) }

// All4 reports whether every component is true.
func All4(v Vec4[bool]) bool { return v.X && v.Y && v.Z && v.W }

// Any4 reports whether at least one component is true.
func Any4(v Vec4[bool]) bool { return v.X || v.Y || v.Z || v.W }

// Not4 negates every component.
func Not4(v Vec4[bool]) Vec4[bool] { return map4(v, not) }

// And4 combines a and b per component.
func And4(a, b Vec4[bool]) Vec4[bool] { return zip4(a, b, and) }

// Or4 combines a and b per component.
func Or4(a, b Vec4[bool]) Vec4[bool] { return zip4(a, b, or) }

// Xor4 combines a and b per component.
func Xor4(a, b Vec4[bool]) Vec4[bool] { return zip4(a, b, xor) }
