package random

import (
	"math/rand/v2"
	"sync"
)

// Source is the randomness used by drop resolution. Implementations must be
// safe for concurrent use.
type Source interface {
	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
	// IntN returns a value in [0, n). n must be > 0.
	IntN(n int) int
	// Shuffle pseudo-randomizes the order of n elements
	Shuffle(n int, swap func(i, j int))
}

type shared struct{}

// Shared returns a Source backed by the math/rand/v2 top-level functions,
// which are safe for concurrent use without external locking.
func Shared() Source {
	return shared{}
}

func (shared) Float64() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

func (shared) IntN(n int) int {
	return rand.IntN(n) //nolint:gosec // Game logic randomness, not security critical
}

func (shared) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap) //nolint:gosec // Game logic randomness, not security critical
}

type seeded struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded returns a reproducible Source. Calls are serialized with a mutex.
func NewSeeded(seed uint64) Source {
	return &seeded{
		rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)), //nolint:gosec // reproducible simulations
	}
}

func (s *seeded) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *seeded) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

func (s *seeded) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(n, swap)
}

// IntRange returns a value in [min, max] inclusive. When max < min it returns min.
func IntRange(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.IntN(max-min+1)
}
