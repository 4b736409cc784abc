// Package rates holds the live economy multipliers read by drop resolution.
package rates

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	"github.com/osse101/WorldLoot_Go/internal/domain"
	"github.com/osse101/WorldLoot_Go/internal/metrics"
)

// Provider exposes the current multipliers. Each call reads the latest value;
// there is no guarantee that two calls observe the same operator update.
type Provider interface {
	GlobalDropRate() float64
	BossDropRate() float64
	RareDropRate() float64
	MesoDropRate() float64
}

// Store is a Provider whose values can be changed at runtime by operators.
// Reads and writes are lock-free.
type Store struct {
	global atomic.Uint64
	boss   atomic.Uint64
	rare   atomic.Uint64
	mesos  atomic.Uint64
}

// NewStore creates a Store seeded with initial values
func NewStore(initial domain.Rates) (*Store, error) {
	s := &Store{}
	for key, value := range map[string]float64{
		KeyGlobal: initial.GlobalDropRate,
		KeyBoss:   initial.BossDropRate,
		KeyRare:   initial.RareDropRate,
		KeyMesos:  initial.MesoDropRate,
	} {
		if err := s.Set(key, value); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) GlobalDropRate() float64 { return load(&s.global) }
func (s *Store) BossDropRate() float64   { return load(&s.boss) }
func (s *Store) RareDropRate() float64   { return load(&s.rare) }
func (s *Store) MesoDropRate() float64   { return load(&s.mesos) }

// Snapshot copies all current values. The copy is not atomic across keys.
func (s *Store) Snapshot() domain.Rates {
	return domain.Rates{
		GlobalDropRate: s.GlobalDropRate(),
		BossDropRate:   s.BossDropRate(),
		RareDropRate:   s.RareDropRate(),
		MesoDropRate:   s.MesoDropRate(),
	}
}

// Set changes one multiplier. Values must be finite and >= 0.
func (s *Store) Set(key string, value float64) error {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %s=%v", domain.ErrInvalidRate, key, value)
	}

	key = strings.ToLower(key)
	var target *atomic.Uint64
	switch key {
	case KeyGlobal:
		target = &s.global
	case KeyBoss:
		target = &s.boss
	case KeyRare:
		target = &s.rare
	case KeyMesos:
		target = &s.mesos
	default:
		return fmt.Errorf("%w: %q (use %s)", domain.ErrUnknownRateKey, key, strings.Join(Keys, "|"))
	}

	target.Store(math.Float64bits(value))
	metrics.LootRate.WithLabelValues(key).Set(value)
	return nil
}

// Static is a fixed Provider, handy for simulations and tests
type Static struct {
	Rates domain.Rates
}

// NewStatic wraps fixed rates as a Provider
func NewStatic(r domain.Rates) Static {
	return Static{Rates: r}
}

func (s Static) GlobalDropRate() float64 { return s.Rates.GlobalDropRate }
func (s Static) BossDropRate() float64   { return s.Rates.BossDropRate }
func (s Static) RareDropRate() float64   { return s.Rates.RareDropRate }
func (s Static) MesoDropRate() float64   { return s.Rates.MesoDropRate }

func load(v *atomic.Uint64) float64 {
	return math.Float64frombits(v.Load())
}
