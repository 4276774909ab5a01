package testutil

import (
	"math/rand"
	"sync"

	"github.com/adamlesinski/spade"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Uniform generates a random vector with components uniform in
// [lo, hi). For integer scalars the sampled value is truncated.
//
// Methods cannot carry type parameters, so the vector generators are
// free functions over *RNG.
func Uniform[S spade.Scalar, V spade.Vector[V, S]](r *RNG, lo, hi S) V {
	v := spade.New[S, V]()
	for i := 0; i < v.Dims(); i++ {
		v = v.SetAt(i, lo+S(r.Float64()*float64(hi-lo)))
	}
	return v
}

// UniformVectors generates num random vectors with components uniform
// in [lo, hi).
func UniformVectors[S spade.Scalar, V spade.Vector[V, S]](r *RNG, num int, lo, hi S) []V {
	vectors := make([]V, num)
	for i := range vectors {
		vectors[i] = Uniform[S, V](r, lo, hi)
	}
	return vectors
}
