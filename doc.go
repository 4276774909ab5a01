// Package spade provides a dimension-generic abstraction over fixed-size
// numeric vectors.
//
// Geometric algorithms written against the [Vector] constraint work with
// any 2-, 3- or 4-component vector type whose scalar supports arithmetic,
// instead of depending on one concrete representation. Bindings are
// included for fixed arrays (see [Vec2], [Vec3], [Vec4]) and, in the
// mathgl and gonum subpackages, for the vector types of
// github.com/go-gl/mathgl and gonum.org/v1/gonum. Implement [Vector] to
// plug in your own type; the testutil package has a conformance harness
// for checking a binding against the contract.
//
// # Quick Start
//
//	a := spade.Vec3[int]{1, 2, 3}
//	b := spade.Vec3[int]{4, 5, 6}
//
//	sum := spade.Add[int](a, b)      // Vec3[int]{5, 7, 9}
//	d := spade.Dot[int](a, b)        // 32
//	n := spade.Cross[int](a, b)      // Vec3[int]{-3, 6, -3}
//
// # Derived Operations
//
// Every operation beyond the [Vector] primitives is a free generic
// function defined once for all implementors: component-wise arithmetic
// ([Add], [Sub], [Mul], [Div], [ComponentWise]), folds and predicates
// ([Fold], [AllCompWise]), products ([Dot], [Length2], [Cross]) and
// component-wise extrema ([MinVec], [MaxVec]). A binding only supplies
// the four primitives.
//
// # Dimensional Markers
//
// [TwoDimensional] and [ThreeDimensional] refine [Vector] with a
// compile-time dimension guarantee. Data structures that only make sense
// for planar input constrain on TwoDimensional and reject 3D/4D types at
// the interface boundary; [Cross] is only callable through
// ThreeDimensional.
//
// # Failure Model
//
// Out-of-range component access is a programming error and panics
// immediately; it is never reported as a recoverable error, since a
// silently corrupted coordinate has no detectable signature downstream.
// Scalar faults (integer division by zero, float Inf/NaN) keep Go's own
// semantics.
package spade
