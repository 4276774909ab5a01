package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamlesinski/spade"
)

// Conformance asserts that V honors the vector capability contract:
// a positive fixed dimension, Splat broadcasting to every component,
// SetAt replacing exactly one component without touching the receiver,
// and a panic on out-of-range access.
//
// sample must be non-zero so broadcast and write effects are visible.
// The harness cannot verify dimensional marker claims; implementing a
// marker for a wrong-dimension type stays the binding author's
// responsibility.
func Conformance[S spade.Scalar, V spade.Vector[V, S]](t testing.TB, sample S) {
	t.Helper()

	var zero S
	require.NotEqual(t, zero, sample, "sample scalar must be non-zero")

	var v V
	splat := v.Splat(sample)
	dims := splat.Dims()
	require.Positive(t, dims, "Dims must report a positive fixed dimension")
	require.Equal(t, dims, v.Dims(), "Dims must not depend on the instance")

	for i := 0; i < dims; i++ {
		require.Equal(t, sample, splat.At(i), "Splat must broadcast to component %d", i)
	}

	zeroVec := spade.New[S, V]()
	for i := 0; i < dims; i++ {
		set := zeroVec.SetAt(i, sample)
		for j := 0; j < dims; j++ {
			if j == i {
				require.Equal(t, sample, set.At(j), "SetAt(%d) must write component %d", i, i)
			} else {
				require.Equal(t, zero, set.At(j), "SetAt(%d) must not touch component %d", i, j)
			}
		}
		require.Equal(t, zero, zeroVec.At(i), "SetAt must not modify the receiver")
	}

	require.Panics(t, func() { splat.At(dims) }, "At(Dims()) must panic")
	require.Panics(t, func() { splat.At(-1) }, "At(-1) must panic")
	require.Panics(t, func() { splat.SetAt(dims, sample) }, "SetAt(Dims(), s) must panic")
}

// ConformanceMutable asserts the in-place counterpart of the contract
// for bindings whose pointer type satisfies [spade.Mutable].
func ConformanceMutable[S spade.Scalar, V spade.Vector[V, S], P interface {
	*V
	spade.Mutable[S]
}](t testing.TB, sample S) {
	t.Helper()

	var zero S
	require.NotEqual(t, zero, sample, "sample scalar must be non-zero")

	v := spade.New[S, V]()
	p := P(&v)
	for i := 0; i < p.Dims(); i++ {
		p.Set(i, sample)
		require.Equal(t, sample, p.At(i), "Set(%d) must write in place", i)
	}
	require.Panics(t, func() { p.Set(p.Dims(), sample) }, "Set(Dims(), s) must panic")
}
