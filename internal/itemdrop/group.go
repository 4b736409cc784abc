package itemdrop

import (
	"math"

	"github.com/osse101/WorldLoot_Go/internal/domain"
	"github.com/osse101/WorldLoot_Go/internal/metrics"
	"github.com/osse101/WorldLoot_Go/internal/utils"
	"github.com/osse101/WorldLoot_Go/internal/weighted"
)

// rollGroup decides whether a group drops this time and returns the number of
// item draws to perform. 0 means no drop.
//
// Buckets with count <= 0 only add to the denominator of the base probability.
func (s *service) rollGroup(kind domain.BoxKind, conds domain.GroupConditions, counts []domain.DropCount, level int, field domain.Field, isBoss bool) int {
	units, outcome := s.evaluateGroup(conds, counts, level, field, isBoss)
	metrics.DropGroupRolls.WithLabelValues(string(kind), outcome).Inc()
	return units
}

func (s *service) evaluateGroup(conds domain.GroupConditions, counts []domain.DropCount, level int, field domain.Field, isBoss bool) (int, string) {
	if !conds.Admits(level, field) {
		return 0, metrics.OutcomeVetoed
	}

	sumZero, sumPositive := 0, 0
	positive := weighted.NewWithCapacity[int](len(counts))
	for _, dc := range counts {
		if dc.Probability <= 0 {
			continue
		}
		if dc.Count <= 0 {
			sumZero += dc.Probability
			continue
		}
		sumPositive += dc.Probability
		_ = positive.Add(dc.Count, dc.Probability) // probability >= 1 here
	}
	if sumPositive <= 0 {
		return 0, metrics.OutcomeNoPositive
	}

	dropRate := s.rates.GlobalDropRate()
	if isBoss {
		dropRate *= s.rates.BossDropRate()
	}
	if math.IsNaN(dropRate) || dropRate <= 0 {
		return 0, metrics.OutcomeZeroRate
	}

	base := float64(sumPositive) / float64(sumZero+sumPositive)
	p := utils.ClampProbability(base * dropRate)
	if s.rng.Float64() >= p {
		return 0, metrics.OutcomeMissed
	}

	units, ok := positive.Get(s.rng)
	if !ok {
		return 0, metrics.OutcomeNoPositive
	}
	return units, metrics.OutcomeDropped
}
