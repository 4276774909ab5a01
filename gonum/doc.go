// Package gonum binds the gonum spatial vector types to the spade
// vector capability.
//
// [Vec2] wraps spatial/r2.Vec and [Vec3] wraps spatial/r3.Vec; gonum's
// spatial group has no 4-component type. The underlying representations
// use named X/Y/Z fields, so component access switches on the index and
// fails fast through spade.CheckIndex for anything out of range.
//
//	v := gonum.Vec3{X: 1, Y: 2, Z: 3}
//	d := spade.Dot[float64](v, v)
//	r := v.R3()                      // r3.Vec, for gonum APIs
package gonum
