package gamedata

import (
	"github.com/osse101/WorldLoot_Go/internal/domain"
)

// Tables is an immutable, fully indexed set of game data. Safe for concurrent reads.
type Tables struct {
	items           map[int]*domain.ItemMetadata
	globalBoxes     map[int]*domain.GlobalDropBox
	individualBoxes map[int]*domain.IndividualDropBox
	palettes        map[int][]domain.ColorPaletteEntry
	enchants        map[int]domain.EnchantOption
}

// Item returns item metadata by id
func (t *Tables) Item(itemID int) (*domain.ItemMetadata, bool) {
	item, ok := t.items[itemID]
	return item, ok
}

// GlobalDropBox returns a global box by id
func (t *Tables) GlobalDropBox(boxID int) (*domain.GlobalDropBox, bool) {
	box, ok := t.globalBoxes[boxID]
	return box, ok
}

// IndividualDropBox returns an individual box by id
func (t *Tables) IndividualDropBox(boxID int) (*domain.IndividualDropBox, bool) {
	box, ok := t.individualBoxes[boxID]
	return box, ok
}

// ColorPalette returns the ordered entries of a palette
func (t *Tables) ColorPalette(paletteID int) ([]domain.ColorPaletteEntry, bool) {
	entries, ok := t.palettes[paletteID]
	return entries, ok
}

// EnchantOption returns the bonus table of an enchant level
func (t *Tables) EnchantOption(level int) (domain.EnchantOption, bool) {
	opt, ok := t.enchants[level]
	return opt, ok
}

// ItemCount returns the number of known items
func (t *Tables) ItemCount() int {
	return len(t.items)
}

// Counts summarizes the table sizes for logging
func (t *Tables) Counts() map[string]int {
	return map[string]int{
		"items":            len(t.items),
		"global_boxes":     len(t.globalBoxes),
		"individual_boxes": len(t.individualBoxes),
		"palettes":         len(t.palettes),
		"enchants":         len(t.enchants),
	}
}
