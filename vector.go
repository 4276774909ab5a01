package spade

import "fmt"

// Scalar constrains the component type of a vector: the built-in integer
// and floating-point types, plus any type whose underlying type is one of
// them. Scalars are copied by assignment, ordered by < and have a usable
// zero value.
//
// Component-wise extrema ([MinVec], [MaxVec]) rely on the ordering being
// total; float NaN gets no special treatment.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Vector is the minimal capability a fixed-size vector type must provide.
// V is the implementing type itself, S its component type.
//
// The constraint embeds comparable: every binding must support == (which
// gives structural, component-wise equality) and should print usefully
// with the fmt verbs.
//
// All derived operations (see [Add], [ComponentWise], [Fold], ...) are
// defined purely in terms of these four methods and apply to every
// implementor; a binding never reimplements them.
type Vector[V any, S Scalar] interface {
	comparable

	// Dims returns the fixed number of components of this vector type.
	// It must be a pure function of the type: the same literal for every
	// value, including the zero value.
	Dims() int

	// Splat returns a vector with every component set to s.
	Splat(s S) V

	// At returns the component at index i. Valid for 0 <= i < Dims();
	// any other index is a programming error and must panic.
	At(i int) S

	// SetAt returns a copy of the receiver with component i replaced by
	// s. The receiver is not modified. Same index contract as At.
	SetAt(i int, s S) V
}

// Mutable is satisfied by pointers to vector types that support writing
// components in place. It is not part of the generic operation layer,
// which is purely functional; use it when a binding's storage should be
// updated without copying, e.g. via [MapInPlace].
type Mutable[S Scalar] interface {
	// Dims returns the fixed number of components.
	Dims() int
	// At returns the component at index i.
	At(i int) S
	// Set writes component i in place. Same index contract as At.
	Set(i int, s S)
}

// CheckIndex panics if i is not a valid component index for a vector
// with dims components. Bindings backed by named fields rather than an
// array use it to honor the fail-fast access contract.
func CheckIndex(i, dims int) {
	if i < 0 || i >= dims {
		panic(fmt.Sprintf("spade: component index %d out of range for %d-dimensional vector", i, dims))
	}
}
