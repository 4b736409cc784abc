// Package weighted provides a proportional-probability draw over candidates
// registered with positive integer weights.
package weighted

import (
	"fmt"

	"github.com/osse101/WorldLoot_Go/internal/domain"
	"github.com/osse101/WorldLoot_Go/internal/random"
)

// MinWeight is the smallest weight a candidate may be registered with
const MinWeight = 1

type entry[T any] struct {
	value       T
	cumulWeight int // cumulative weight up to and including this entry
}

// Set is a multiset of weighted candidates. It is not safe for concurrent
// mutation; instances are meant to live for one resolution.
type Set[T any] struct {
	entries     []entry[T]
	totalWeight int
}

// New creates an empty Set
func New[T any]() *Set[T] {
	return &Set[T]{}
}

// NewWithCapacity creates an empty Set with room for n candidates
func NewWithCapacity[T any](n int) *Set[T] {
	return &Set[T]{entries: make([]entry[T], 0, n)}
}

// Add registers a candidate. Weights <= 0 are rejected; callers clamp first.
// The same value added twice is twice as likely to be drawn.
func (s *Set[T]) Add(value T, weight int) error {
	if weight < MinWeight {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidWeight, weight)
	}
	s.totalWeight += weight
	s.entries = append(s.entries, entry[T]{value: value, cumulWeight: s.totalWeight})
	return nil
}

// Count returns the number of registered candidates
func (s *Set[T]) Count() int {
	return len(s.entries)
}

// TotalWeight returns the sum of all registered weights
func (s *Set[T]) TotalWeight() int {
	return s.totalWeight
}

// Get draws one candidate with probability weight/TotalWeight.
// It returns false when the set is empty.
func (s *Set[T]) Get(src random.Source) (T, bool) {
	if len(s.entries) == 0 {
		var zero T
		return zero, false
	}
	return s.pick(src.IntN(s.totalWeight)), true
}

// pick returns the candidate whose cumulative range contains roll in [0, TotalWeight).
func (s *Set[T]) pick(roll int) T {
	lo, hi := 0, len(s.entries)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if s.entries[mid].cumulWeight <= roll {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return s.entries[lo].value
}

// ClampWeight rounds a computed weight up to MinWeight
func ClampWeight(weight int) int {
	if weight < MinWeight {
		return MinWeight
	}
	return weight
}
