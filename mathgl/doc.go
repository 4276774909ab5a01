// Package mathgl binds the go-gl/mathgl vector types to the spade
// vector capability.
//
// Both scalar widths are covered: [Vec2], [Vec3] and [Vec4] wrap the
// mgl64 types, [Vec2f], [Vec3f] and [Vec4f] the mgl32 ones. The
// wrappers are plain type conversions of the underlying fixed arrays,
// so moving between a wrapper and its mathgl type is free:
//
//	v := mathgl.Vec3{1, 2, 3}
//	m := v.MGL()                  // mgl64.Vec3
//	back := mathgl.Vec3(m.Normalize())
//
// All derived behavior comes from the spade package; this package only
// supplies the capability primitives.
package mathgl
