package spade

import "fmt"

// Operations without a scalar-typed argument cannot infer S from the
// call site; the scalar parameter comes first everywhere so it can be
// supplied alone, e.g. spade.Add[float64](a, b), with V inferred.

// New returns the zero vector: every component set to the scalar zero
// value.
func New[S Scalar, V Vector[V, S]]() V {
	var v V
	var zero S
	return v.Splat(zero)
}

// Add returns the component-wise sum of a and b.
func Add[S Scalar, V Vector[V, S]](a, b V) V {
	return ComponentWise(a, b, func(l, r S) S { return l + r })
}

// Sub returns the component-wise difference of a and b.
func Sub[S Scalar, V Vector[V, S]](a, b V) V {
	return ComponentWise(a, b, func(l, r S) S { return l - r })
}

// Mul returns v with every component multiplied by s.
func Mul[S Scalar, V Vector[V, S]](v V, s S) V {
	return mapSame(v, func(x S) S { return x * s })
}

// Div returns v with every component divided by s. Division by a zero
// scalar follows the scalar's own semantics (panic for integers,
// Inf/NaN for floats).
func Div[S Scalar, V Vector[V, S]](v V, s S) V {
	return mapSame(v, func(x S) S { return x / s })
}

// ComponentWise combines a and b with f, index by index: component i of
// the result is f(a.At(i), b.At(i)). All binary component-wise
// operations are special cases of this.
func ComponentWise[S Scalar, V Vector[V, S]](a, b V, f func(l, r S) S) V {
	out := a
	for i := 0; i < a.Dims(); i++ {
		out = out.SetAt(i, f(a.At(i), b.At(i)))
	}
	return out
}

// Map applies f to every component of v, producing a vector of a
// possibly different type W over a possibly different scalar type.
//
// W must have the same dimension as V; Map panics on a mismatch rather
// than silently truncating or under-filling the result. The target type
// is usually supplied explicitly:
//
//	f := spade.Map[float64, spade.Vec3[float64]](v, func(x int) float64 { return float64(x) })
func Map[T Scalar, W Vector[W, T], S Scalar, V Vector[V, S]](v V, f func(s S) T) W {
	var w W
	var zero T
	out := w.Splat(zero)
	if out.Dims() != v.Dims() {
		panic(fmt.Sprintf("spade: cannot map %d-dimensional vector into %d-dimensional vector", v.Dims(), out.Dims()))
	}
	for i := 0; i < v.Dims(); i++ {
		out = out.SetAt(i, f(v.At(i)))
	}
	return out
}

// MinVec returns the component-wise minimum of a and b.
func MinVec[S Scalar, V Vector[V, S]](a, b V) V {
	return ComponentWise(a, b, minScalar[S])
}

// MaxVec returns the component-wise maximum of a and b.
func MaxVec[S Scalar, V Vector[V, S]](a, b V) V {
	return ComponentWise(a, b, maxScalar[S])
}

// Fold reduces v left to right, visiting components in index order
// 0, 1, ..., Dims()-1. Visit order is part of the contract; it matters
// for non-commutative f.
func Fold[A any, S Scalar, V Vector[V, S]](v V, acc A, f func(acc A, s S) A) A {
	for i := 0; i < v.Dims(); i++ {
		acc = f(acc, v.At(i))
	}
	return acc
}

// AllCompWise reports whether pred holds for every component pair of a
// and b. It short-circuits on the first index where pred fails,
// visiting indices in ascending order.
func AllCompWise[S Scalar, V Vector[V, S]](a, b V, pred func(l, r S) bool) bool {
	for i := 0; i < a.Dims(); i++ {
		if !pred(a.At(i), b.At(i)) {
			return false
		}
	}
	return true
}

// Dot returns the dot product of a and b: component-wise multiply, then
// sum-fold from zero.
func Dot[S Scalar, V Vector[V, S]](a, b V) S {
	var zero S
	return Fold(ComponentWise(a, b, func(l, r S) S { return l * r }), zero,
		func(acc, s S) S { return acc + s })
}

// Length2 returns the squared Euclidean norm of v. No square root is
// taken, so the result stays exact in the scalar's own arithmetic.
func Length2[S Scalar, V Vector[V, S]](v V) S {
	return Dot(v, v)
}

// Equal reports whether a and b agree on every component. Equivalent to
// == for any correct binding; provided for symmetry with the other
// component-wise predicates.
func Equal[S Scalar, V Vector[V, S]](a, b V) bool {
	return AllCompWise(a, b, func(l, r S) bool { return l == r })
}

// MapInPlace applies f to every component of v, writing results back
// through the [Mutable] interface.
func MapInPlace[S Scalar](v Mutable[S], f func(s S) S) {
	for i := 0; i < v.Dims(); i++ {
		v.Set(i, f(v.At(i)))
	}
}

// mapSame is Map specialized to a single vector type; it avoids the
// cross-type dimension check that can never fail here.
func mapSame[S Scalar, V Vector[V, S]](v V, f func(S) S) V {
	out := v
	for i := 0; i < v.Dims(); i++ {
		out = out.SetAt(i, f(v.At(i)))
	}
	return out
}

func minScalar[S Scalar](l, r S) S {
	if r < l {
		return r
	}
	return l
}

func maxScalar[S Scalar](l, r S) S {
	if r > l {
		return r
	}
	return l
}
