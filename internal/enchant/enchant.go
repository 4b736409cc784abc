// Package enchant applies pre-rolled enchant levels to newly created items.
package enchant

import (
	"github.com/osse101/WorldLoot_Go/internal/domain"
)

// MaxLevel is the highest enchant level an item can carry
const MaxLevel = 15

// OptionTable resolves the bonus rates of an enchant level
type OptionTable interface {
	EnchantOption(level int) (domain.EnchantOption, bool)
}

// Enchanter builds enchant blocks from an OptionTable
type Enchanter struct {
	table OptionTable
}

// NewEnchanter creates an Enchanter
func NewEnchanter(table OptionTable) *Enchanter {
	return &Enchanter{table: table}
}

// GetEnchant returns the enchant block for an item at level. Only items with a
// stat block can be enchanted; unknown levels return false.
func (e *Enchanter) GetEnchant(meta *domain.ItemMetadata, level int) (*domain.ItemEnchant, bool) {
	if meta == nil || meta.Option == nil || level <= 0 || level > MaxLevel {
		return nil, false
	}

	opt, ok := e.table.EnchantOption(level)
	if !ok {
		return nil, false
	}

	basic := make(map[domain.StatAttribute]float64, len(opt.Rates))
	for _, stat := range meta.Option.Stats {
		if rate, ok := opt.Rates[stat.Attribute]; ok {
			basic[stat.Attribute] = rate
		}
	}
	// Attack and defense bonuses apply to every equippable item
	for _, attr := range []domain.StatAttribute{domain.StatAttack, domain.StatDefense} {
		if rate, ok := opt.Rates[attr]; ok {
			basic[attr] = rate
		}
	}

	return &domain.ItemEnchant{Level: level, BasicOptions: basic}, true
}
