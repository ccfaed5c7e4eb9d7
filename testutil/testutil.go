package testutil

import (
	"math"
	"math/bits"
	"math/rand"
	"sync"

	"github.com/stretchr/testify/require"
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

// Coefficients returns n values uniform in [-1, 1).
func (r *RNG) Coefficients(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := make([]float64, n)
	for i := range c {
		c[i] = r.rand.Float64()*2 - 1
	}
	return c
}

// Graded returns n coefficients where only blades of the given grade are
// nonzero. n must be a power of two.
func (r *RNG) Graded(n, grade int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := make([]float64, n)
	for i := range c {
		if bits.OnesCount(uint(i)) == grade {
			c[i] = r.rand.Float64()*2 - 1
		}
	}
	return c
}

// Vector returns n coefficients with a random grade-1 part.
func (r *RNG) Vector(n int) []float64 { return r.Graded(n, 1) }

// Sparse returns n coefficients of which roughly density are nonzero.
func (r *RNG) Sparse(n int, density float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := make([]float64, n)
	for i := range c {
		if r.rand.Float64() < density {
			c[i] = r.rand.Float64()*2 - 1
		}
	}
	return c
}

// RequireInDeltaSlice fails the test unless want and got have the same
// length and every element differs by at most delta.
func RequireInDeltaSlice[T ~float32 | ~float64](t require.TestingT, want, got []T, delta float64, msgAndArgs ...any) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	require.Len(t, got, len(want), msgAndArgs...)
	for i := range want {
		d := math.Abs(float64(want[i]) - float64(got[i]))
		if d > delta || math.IsNaN(d) {
			require.Failf(t, "slices differ",
				"index %d: want %v, got %v (delta %g > %g)\nwant: %v\ngot:  %v",
				append([]any{i, want[i], got[i], d, delta, want, got}, msgAndArgs...)...)
		}
	}
}
