package spade

// Vec2 is a 2-component vector backed by a fixed array. The zero value
// is the zero vector; construct with an array literal, Vec2[int]{x, y}.
// Out-of-range access panics via the native array bounds check.
type Vec2[S Scalar] [2]S

// Dims returns 2.
func (Vec2[S]) Dims() int { return 2 }

// Splat returns a vector with both components set to s.
func (Vec2[S]) Splat(s S) Vec2[S] { return Vec2[S]{s, s} }

// At returns the component at index i.
func (v Vec2[S]) At(i int) S { return v[i] }

// SetAt returns a copy with component i set to s.
func (v Vec2[S]) SetAt(i int, s S) Vec2[S] {
	v[i] = s
	return v
}

// Set writes component i in place.
func (v *Vec2[S]) Set(i int, s S) { v[i] = s }

// IsTwoDimensional tags Vec2 as exactly two-dimensional.
func (Vec2[S]) IsTwoDimensional() {}

// Vec3 is a 3-component vector backed by a fixed array.
type Vec3[S Scalar] [3]S

// Dims returns 3.
func (Vec3[S]) Dims() int { return 3 }

// Splat returns a vector with all three components set to s.
func (Vec3[S]) Splat(s S) Vec3[S] { return Vec3[S]{s, s, s} }

// At returns the component at index i.
func (v Vec3[S]) At(i int) S { return v[i] }

// SetAt returns a copy with component i set to s.
func (v Vec3[S]) SetAt(i int, s S) Vec3[S] {
	v[i] = s
	return v
}

// Set writes component i in place.
func (v *Vec3[S]) Set(i int, s S) { v[i] = s }

// IsThreeDimensional tags Vec3 as exactly three-dimensional.
func (Vec3[S]) IsThreeDimensional() {}

// Vec4 is a 4-component vector backed by a fixed array. It carries no
// dimensional marker: there are no 4D-specific operations.
type Vec4[S Scalar] [4]S

// Dims returns 4.
func (Vec4[S]) Dims() int { return 4 }

// Splat returns a vector with all four components set to s.
func (Vec4[S]) Splat(s S) Vec4[S] { return Vec4[S]{s, s, s, s} }

// At returns the component at index i.
func (v Vec4[S]) At(i int) S { return v[i] }

// SetAt returns a copy with component i set to s.
func (v Vec4[S]) SetAt(i int, s S) Vec4[S] {
	v[i] = s
	return v
}

// Set writes component i in place.
func (v *Vec4[S]) Set(i int, s S) { v[i] = s }

// Compile-time contract checks. Instantiating the assert functions
// verifies constraint satisfaction; Vector embeds comparable and cannot
// be used as a plain interface value.
func assertVector[S Scalar, V Vector[V, S]]() {}

func assertTwoDimensional[S Scalar, V TwoDimensional[V, S]]() {}

func assertThreeDimensional[S Scalar, V ThreeDimensional[V, S]]() {}

var (
	_ = assertVector[int, Vec2[int]]
	_ = assertVector[float64, Vec3[float64]]
	_ = assertVector[float32, Vec4[float32]]
	_ = assertTwoDimensional[int, Vec2[int]]
	_ = assertThreeDimensional[int, Vec3[int]]

	_ Mutable[int] = (*Vec2[int])(nil)
	_ Mutable[int] = (*Vec3[int])(nil)
	_ Mutable[int] = (*Vec4[int])(nil)
)
