package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adamlesinski/spade"
)

func TestUniform(t *testing.T) {
	rng := NewRNG(4711)

	v := Uniform[float64, spade.Vec3[float64]](rng, -1, 1)

	for i := 0; i < v.Dims(); i++ {
		assert.GreaterOrEqual(t, v.At(i), -1.0)
		assert.Less(t, v.At(i), 1.0)
	}
}

func TestUniformVectors(t *testing.T) {
	rng := NewRNG(4711)

	vs := UniformVectors[float64, spade.Vec2[float64]](rng, 8, 0, 1)

	assert.Len(t, vs, 8)
	for _, v := range vs {
		assert.GreaterOrEqual(t, v.At(0), 0.0)
		assert.Less(t, v.At(1), 1.0)
	}
}

func TestUniformDeterministic(t *testing.T) {
	a := UniformVectors[float64, spade.Vec3[float64]](NewRNG(42), 4, 0, 1)
	b := UniformVectors[float64, spade.Vec3[float64]](NewRNG(42), 4, 0, 1)

	assert.Equal(t, a, b)
}

func TestRNGReset(t *testing.T) {
	rng := NewRNG(7)
	first := Uniform[float64, spade.Vec4[float64]](rng, 0, 1)

	rng.Reset()

	assert.Equal(t, first, Uniform[float64, spade.Vec4[float64]](rng, 0, 1))
	assert.Equal(t, int64(7), rng.Seed())
}

func TestConformanceArrayBindings(t *testing.T) {
	t.Run("Vec2", func(t *testing.T) { Conformance[int, spade.Vec2[int]](t, 7) })
	t.Run("Vec3", func(t *testing.T) { Conformance[float64, spade.Vec3[float64]](t, 7.5) })
	t.Run("Vec4", func(t *testing.T) { Conformance[float32, spade.Vec4[float32]](t, 7.5) })
}

func TestConformanceMutableArrayBindings(t *testing.T) {
	ConformanceMutable[int, spade.Vec3[int], *spade.Vec3[int]](t, 7)
}
