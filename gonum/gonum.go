package gonum

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/adamlesinski/spade"
)

// Vec2 adapts r2.Vec. The zero value is the zero vector.
type Vec2 r2.Vec

// Dims returns 2.
func (Vec2) Dims() int { return 2 }

// Splat returns a vector with both components set to s.
func (Vec2) Splat(s float64) Vec2 { return Vec2{X: s, Y: s} }

// At returns the component at index i.
func (v Vec2) At(i int) float64 {
	spade.CheckIndex(i, 2)
	if i == 0 {
		return v.X
	}
	return v.Y
}

// SetAt returns a copy with component i set to s.
func (v Vec2) SetAt(i int, s float64) Vec2 {
	spade.CheckIndex(i, 2)
	if i == 0 {
		v.X = s
	} else {
		v.Y = s
	}
	return v
}

// Set writes component i in place.
func (v *Vec2) Set(i int, s float64) { *v = v.SetAt(i, s) }

// IsTwoDimensional tags Vec2 as exactly two-dimensional.
func (Vec2) IsTwoDimensional() {}

// R2 returns the underlying gonum vector.
func (v Vec2) R2() r2.Vec { return r2.Vec(v) }

// Vec3 adapts r3.Vec.
type Vec3 r3.Vec

// Dims returns 3.
func (Vec3) Dims() int { return 3 }

// Splat returns a vector with all three components set to s.
func (Vec3) Splat(s float64) Vec3 { return Vec3{X: s, Y: s, Z: s} }

// At returns the component at index i.
func (v Vec3) At(i int) float64 {
	spade.CheckIndex(i, 3)
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// SetAt returns a copy with component i set to s.
func (v Vec3) SetAt(i int, s float64) Vec3 {
	spade.CheckIndex(i, 3)
	switch i {
	case 0:
		v.X = s
	case 1:
		v.Y = s
	default:
		v.Z = s
	}
	return v
}

// Set writes component i in place.
func (v *Vec3) Set(i int, s float64) { *v = v.SetAt(i, s) }

// IsThreeDimensional tags Vec3 as exactly three-dimensional.
func (Vec3) IsThreeDimensional() {}

// R3 returns the underlying gonum vector.
func (v Vec3) R3() r3.Vec { return r3.Vec(v) }

func assertVector[S spade.Scalar, V spade.Vector[V, S]]() {}

func assertTwoDimensional[S spade.Scalar, V spade.TwoDimensional[V, S]]() {}

func assertThreeDimensional[S spade.Scalar, V spade.ThreeDimensional[V, S]]() {}

var (
	_ = assertVector[float64, Vec2]
	_ = assertVector[float64, Vec3]
	_ = assertTwoDimensional[float64, Vec2]
	_ = assertThreeDimensional[float64, Vec3]

	_ spade.Mutable[float64] = (*Vec2)(nil)
	_ spade.Mutable[float64] = (*Vec3)(nil)
)
