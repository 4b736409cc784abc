package itemstats

import "time"

// Cache defaults
const (
	DefaultCacheSize = 4096
	DefaultCacheTTL  = 30 * time.Minute
)

// rarityScale multiplies the base stat window of an item per rarity grade.
// Grades outside the table use the grade 1 scale.
var rarityScale = map[int]float64{
	1: 1.00,
	2: 1.10,
	3: 1.25,
	4: 1.45,
	5: 1.70,
	6: 2.00,
}
