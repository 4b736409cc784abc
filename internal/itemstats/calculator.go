// Package itemstats rolls stat blocks and socket layouts for newly created items.
package itemstats

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/WorldLoot_Go/internal/domain"
	"github.com/osse101/WorldLoot_Go/internal/random"
	"github.com/osse101/WorldLoot_Go/internal/utils"
)

// rangeKey is keyed by metadata identity so ranges derived from replaced
// tables are never served for the new ones.
type rangeKey struct {
	meta   *domain.ItemMetadata
	rarity int
}

// Calculator rolls stats from per-(item, rarity) ranges. The scaled ranges are
// cached; call Purge when the underlying item tables change to release them.
type Calculator struct {
	ranges *expirable.LRU[rangeKey, []domain.StatRange]
	rng    random.Source
}

// NewCalculator creates a Calculator caching up to size scaled ranges for ttl
func NewCalculator(size int, ttl time.Duration, rng random.Source) *Calculator {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if rng == nil {
		rng = random.Shared()
	}
	return &Calculator{
		ranges: expirable.NewLRU[rangeKey, []domain.StatRange](size, nil, ttl),
		rng:    rng,
	}
}

// GetStats rolls the basic stats of an item. rollMax pins every stat to the top
// of its range. Items without stat rules get nil.
func (c *Calculator) GetStats(meta *domain.ItemMetadata, rarity int, rollMax bool) *domain.ItemStats {
	if meta == nil || meta.Option == nil || len(meta.Option.Stats) == 0 {
		return nil
	}

	ranges := c.scaledRanges(meta, rarity)
	stats := &domain.ItemStats{Basic: make(map[domain.StatAttribute]int, len(ranges))}
	for _, r := range ranges {
		if rollMax {
			stats.Basic[r.Attribute] = r.Max
			continue
		}
		stats.Basic[r.Attribute] = random.IntRange(c.rng, r.Min, r.Max)
	}
	return stats
}

// GetSockets rolls the socket count of an item. Items without sockets get nil.
func (c *Calculator) GetSockets(meta *domain.ItemMetadata, rollMax bool) *domain.ItemSocket {
	if meta == nil || meta.Option == nil || meta.Option.SocketMax <= 0 {
		return nil
	}

	slots := meta.Option.SocketMax
	if !rollMax {
		slots = random.IntRange(c.rng, meta.Option.SocketMin, meta.Option.SocketMax)
	}
	return &domain.ItemSocket{MaxSlots: slots}
}

// Purge drops every cached range
func (c *Calculator) Purge() {
	c.ranges.Purge()
}

// CachedRanges reports how many scaled ranges are cached
func (c *Calculator) CachedRanges() int {
	return c.ranges.Len()
}

func (c *Calculator) scaledRanges(meta *domain.ItemMetadata, rarity int) []domain.StatRange {
	key := rangeKey{meta: meta, rarity: rarity}
	if cached, ok := c.ranges.Get(key); ok {
		return cached
	}

	scale, ok := rarityScale[rarity]
	if !ok {
		scale = rarityScale[domain.RarityNormal]
	}

	ranges := make([]domain.StatRange, len(meta.Option.Stats))
	for i, base := range meta.Option.Stats {
		lo := utils.RoundToInt(float64(base.Min) * scale)
		hi := utils.RoundToInt(float64(base.Max) * scale)
		if hi < lo {
			hi = lo
		}
		ranges[i] = domain.StatRange{Attribute: base.Attribute, Min: lo, Max: hi}
	}

	c.ranges.Add(key, ranges)
	return ranges
}
