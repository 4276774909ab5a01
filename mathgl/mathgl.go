package mathgl

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/adamlesinski/spade"
)

// Vec2 adapts mgl64.Vec2. The zero value is the zero vector.
type Vec2 mgl64.Vec2

// Dims returns 2.
func (Vec2) Dims() int { return 2 }

// Splat returns a vector with both components set to s.
func (Vec2) Splat(s float64) Vec2 { return Vec2{s, s} }

// At returns the component at index i.
func (v Vec2) At(i int) float64 { return v[i] }

// SetAt returns a copy with component i set to s.
func (v Vec2) SetAt(i int, s float64) Vec2 {
	v[i] = s
	return v
}

// Set writes component i in place.
func (v *Vec2) Set(i int, s float64) { v[i] = s }

// IsTwoDimensional tags Vec2 as exactly two-dimensional.
func (Vec2) IsTwoDimensional() {}

// MGL returns the underlying mgl64 vector.
func (v Vec2) MGL() mgl64.Vec2 { return mgl64.Vec2(v) }

// Vec3 adapts mgl64.Vec3.
type Vec3 mgl64.Vec3

// Dims returns 3.
func (Vec3) Dims() int { return 3 }

// Splat returns a vector with all three components set to s.
func (Vec3) Splat(s float64) Vec3 { return Vec3{s, s, s} }

// At returns the component at index i.
func (v Vec3) At(i int) float64 { return v[i] }

// SetAt returns a copy with component i set to s.
func (v Vec3) SetAt(i int, s float64) Vec3 {
	v[i] = s
	return v
}

// Set writes component i in place.
func (v *Vec3) Set(i int, s float64) { v[i] = s }

// IsThreeDimensional tags Vec3 as exactly three-dimensional.
func (Vec3) IsThreeDimensional() {}

// MGL returns the underlying mgl64 vector.
func (v Vec3) MGL() mgl64.Vec3 { return mgl64.Vec3(v) }

// Vec4 adapts mgl64.Vec4.
type Vec4 mgl64.Vec4

// Dims returns 4.
func (Vec4) Dims() int { return 4 }

// Splat returns a vector with all four components set to s.
func (Vec4) Splat(s float64) Vec4 { return Vec4{s, s, s, s} }

// At returns the component at index i.
func (v Vec4) At(i int) float64 { return v[i] }

// SetAt returns a copy with component i set to s.
func (v Vec4) SetAt(i int, s float64) Vec4 {
	v[i] = s
	return v
}

// Set writes component i in place.
func (v *Vec4) Set(i int, s float64) { v[i] = s }

// MGL returns the underlying mgl64 vector.
func (v Vec4) MGL() mgl64.Vec4 { return mgl64.Vec4(v) }

// Vec2f adapts mgl32.Vec2.
type Vec2f mgl32.Vec2

// Dims returns 2.
func (Vec2f) Dims() int { return 2 }

// Splat returns a vector with both components set to s.
func (Vec2f) Splat(s float32) Vec2f { return Vec2f{s, s} }

// At returns the component at index i.
func (v Vec2f) At(i int) float32 { return v[i] }

// SetAt returns a copy with component i set to s.
func (v Vec2f) SetAt(i int, s float32) Vec2f {
	v[i] = s
	return v
}

// Set writes component i in place.
func (v *Vec2f) Set(i int, s float32) { v[i] = s }

// IsTwoDimensional tags Vec2f as exactly two-dimensional.
func (Vec2f) IsTwoDimensional() {}

// MGL returns the underlying mgl32 vector.
func (v Vec2f) MGL() mgl32.Vec2 { return mgl32.Vec2(v) }

// Vec3f adapts mgl32.Vec3.
type Vec3f mgl32.Vec3

// Dims returns 3.
func (Vec3f) Dims() int { return 3 }

// Splat returns a vector with all three components set to s.
func (Vec3f) Splat(s float32) Vec3f { return Vec3f{s, s, s} }

// At returns the component at index i.
func (v Vec3f) At(i int) float32 { return v[i] }

// SetAt returns a copy with component i set to s.
func (v Vec3f) SetAt(i int, s float32) Vec3f {
	v[i] = s
	return v
}

// Set writes component i in place.
func (v *Vec3f) Set(i int, s float32) { v[i] = s }

// IsThreeDimensional tags Vec3f as exactly three-dimensional.
func (Vec3f) IsThreeDimensional() {}

// MGL returns the underlying mgl32 vector.
func (v Vec3f) MGL() mgl32.Vec3 { return mgl32.Vec3(v) }

// Vec4f adapts mgl32.Vec4.
type Vec4f mgl32.Vec4

// Dims returns 4.
func (Vec4f) Dims() int { return 4 }

// Splat returns a vector with all four components set to s.
func (Vec4f) Splat(s float32) Vec4f { return Vec4f{s, s, s, s} }

// At returns the component at index i.
func (v Vec4f) At(i int) float32 { return v[i] }

// SetAt returns a copy with component i set to s.
func (v Vec4f) SetAt(i int, s float32) Vec4f {
	v[i] = s
	return v
}

// Set writes component i in place.
func (v *Vec4f) Set(i int, s float32) { v[i] = s }

// MGL returns the underlying mgl32 vector.
func (v Vec4f) MGL() mgl32.Vec4 { return mgl32.Vec4(v) }

func assertVector[S spade.Scalar, V spade.Vector[V, S]]() {}

func assertTwoDimensional[S spade.Scalar, V spade.TwoDimensional[V, S]]() {}

func assertThreeDimensional[S spade.Scalar, V spade.ThreeDimensional[V, S]]() {}

var (
	_ = assertVector[float64, Vec2]
	_ = assertVector[float64, Vec3]
	_ = assertVector[float64, Vec4]
	_ = assertVector[float32, Vec2f]
	_ = assertVector[float32, Vec3f]
	_ = assertVector[float32, Vec4f]
	_ = assertTwoDimensional[float64, Vec2]
	_ = assertTwoDimensional[float32, Vec2f]
	_ = assertThreeDimensional[float64, Vec3]
	_ = assertThreeDimensional[float32, Vec3f]

	_ spade.Mutable[float64] = (*Vec3)(nil)
	_ spade.Mutable[float32] = (*Vec3f)(nil)
)
