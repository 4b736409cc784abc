package random

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSeeded_Reproducible(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestIntRange(t *testing.T) {
	src := NewSeeded(7)

	t.Run("inclusive bounds", func(t *testing.T) {
		seen := make(map[int]bool)
		for i := 0; i < 2000; i++ {
			v := IntRange(src, 3, 6)
			assert.GreaterOrEqual(t, v, 3)
			assert.LessOrEqual(t, v, 6)
			seen[v] = true
		}
		assert.Len(t, seen, 4, "every value in [3,6] should appear")
	})

	t.Run("equal bounds", func(t *testing.T) {
		assert.Equal(t, 5, IntRange(src, 5, 5))
	})

	t.Run("inverted bounds return min", func(t *testing.T) {
		assert.Equal(t, 9, IntRange(src, 9, 2))
	})
}

func TestSources_ConcurrentUse(t *testing.T) {
	for name, src := range map[string]Source{"shared": Shared(), "seeded": NewSeeded(1)} {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			for g := 0; g < 8; g++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := 0; i < 500; i++ {
						f := src.Float64()
						assert.GreaterOrEqual(t, f, 0.0)
						assert.Less(t, f, 1.0)
						n := src.IntN(10)
						assert.GreaterOrEqual(t, n, 0)
						assert.Less(t, n, 10)
					}
				}()
			}
			wg.Wait()
		})
	}
}
