package spade

// TwoDimensional marks vector types whose fixed dimension is exactly 2.
// Data structures that only work on planar input constrain on it instead
// of [Vector], rejecting 3D and 4D types at compile time.
//
// Implement it only for types whose Dims() is genuinely 2; the tag is
// trusted, never re-checked at runtime.
type TwoDimensional[V any, S Scalar] interface {
	Vector[V, S]

	// IsTwoDimensional is a tag method with no behavior. Go interfaces
	// are structural, so the dimension claim needs a method to carry it;
	// implementations are empty.
	IsTwoDimensional()
}

// ThreeDimensional marks vector types whose fixed dimension is exactly
// 3, unlocking [Cross]. Same trust model as [TwoDimensional].
type ThreeDimensional[V any, S Scalar] interface {
	Vector[V, S]

	// IsThreeDimensional is a tag method with no behavior.
	IsThreeDimensional()
}

// Cross returns the right-hand-rule cross product of a and b. It is
// constrained on [ThreeDimensional], so it cannot be instantiated for a
// type of any other dimension.
func Cross[S Scalar, V ThreeDimensional[V, S]](a, b V) V {
	out := New[S, V]()
	out = out.SetAt(0, a.At(1)*b.At(2)-a.At(2)*b.At(1))
	out = out.SetAt(1, a.At(2)*b.At(0)-a.At(0)*b.At(2))
	out = out.SetAt(2, a.At(0)*b.At(1)-a.At(1)*b.At(0))
	return out
}
