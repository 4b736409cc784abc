package domain

import "github.com/google/uuid"

// Gender restricts who may receive or equip an item
type Gender int

const (
	GenderMale   Gender = 0
	GenderFemale Gender = 1
	GenderAll    Gender = 2
)

// JobCode identifies a character class. JobNone inside a recommendation list
// marks an item as suitable for every job.
type JobCode int

const (
	JobNone        JobCode = 0
	JobNewbie      JobCode = 1
	JobKnight      JobCode = 10
	JobBerserker   JobCode = 20
	JobWizard      JobCode = 30
	JobPriest      JobCode = 40
	JobArcher      JobCode = 50
	JobHeavyGunner JobCode = 60
	JobThief       JobCode = 70
	JobAssassin    JobCode = 80
	JobRuneBlader  JobCode = 90
	JobStriker     JobCode = 100
	JobSoulBinder  JobCode = 110
)

// StatAttribute names a basic item stat
type StatAttribute string

const (
	StatStrength     StatAttribute = "str"
	StatDexterity    StatAttribute = "dex"
	StatIntelligence StatAttribute = "int"
	StatLuck         StatAttribute = "luk"
	StatHealth       StatAttribute = "hp"
	StatAttack       StatAttribute = "attack"
	StatDefense      StatAttribute = "defense"
)

// StatRange is an inclusive [Min, Max] roll window for one attribute
type StatRange struct {
	Attribute StatAttribute `json:"attribute"`
	Min       int           `json:"min"`
	Max       int           `json:"max"`
}

// ItemLimit holds the equip/ownership restrictions of an item
type ItemLimit struct {
	Gender        Gender    `json:"gender"`
	JobRecommends []JobCode `json:"job_recommends,omitempty"`
	LevelMin      int       `json:"level_min,omitempty"`
	TradableCount int       `json:"tradable_count,omitempty"`
}

// ItemProperty holds economic properties of an item
type ItemProperty struct {
	SellPrices       []int64 `json:"sell_prices,omitempty"`
	CustomSellPrices []int64 `json:"custom_sell_prices,omitempty"`
	SlotMax          int     `json:"slot_max,omitempty"`
}

// ItemOption describes how the item's stats are generated
type ItemOption struct {
	ConstantID int         `json:"constant_id,omitempty"` // fixed rarity when in 1..6
	Stats      []StatRange `json:"stats,omitempty"`
	SocketMin  int         `json:"socket_min,omitempty"`
	SocketMax  int         `json:"socket_max,omitempty"`
}

// ItemCustomize describes the cosmetic color setup of an item
type ItemCustomize struct {
	ColorPalette      int `json:"color_palette,omitempty"`
	DefaultColorIndex int `json:"default_color_index"` // negative means random
}

// ItemMetadata is the static, read-only definition of an item
type ItemMetadata struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Limit     ItemLimit      `json:"limit"`
	Property  ItemProperty   `json:"property"`
	Option    *ItemOption    `json:"option,omitempty"`
	Customize *ItemCustomize `json:"customize,omitempty"`
}

// IsJobRecommended reports whether the item suits the given job. Items without
// a recommendation list suit everyone.
func (m *ItemMetadata) IsJobRecommended(job JobCode) bool {
	if len(m.Limit.JobRecommends) == 0 {
		return true
	}
	for _, code := range m.Limit.JobRecommends {
		if code == job || code == JobNone {
			return true
		}
	}
	return false
}

// SellPrice returns the first positive price, preferring custom sell prices.
func (m *ItemMetadata) SellPrice() (int64, bool) {
	prices := m.Property.SellPrices
	if len(m.Property.CustomSellPrices) > 0 {
		prices = m.Property.CustomSellPrices
	}
	if len(prices) > 0 && prices[0] > 0 {
		return prices[0], true
	}
	return 0, false
}

// IsCurrency reports whether an item id is one of the reserved meso pouches.
func IsCurrency(itemID int) bool {
	return itemID >= CurrencyItemMin && itemID <= CurrencyItemMax
}

// EquipColor is a resolved palette entry
type EquipColor struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Tertiary  string `json:"tertiary"`
	Palette   int    `json:"palette"`
	Index     int    `json:"index"`
}

// ColorPaletteEntry is one color of a palette
type ColorPaletteEntry struct {
	Index     int    `json:"index"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Tertiary  string `json:"tertiary"`
}

// ItemStats is the rolled stat block of an item
type ItemStats struct {
	Basic map[StatAttribute]int `json:"basic"`
}

// ItemSocket is the rolled socket layout of an item
type ItemSocket struct {
	MaxSlots    int `json:"max_slots"`
	UnlockSlots int `json:"unlock_slots"`
}

// ItemEnchant holds applied enchantment state
type ItemEnchant struct {
	Level        int                       `json:"level"`
	BasicOptions map[StatAttribute]float64 `json:"basic_options,omitempty"`
}

// ItemTransfer holds trade/binding bookkeeping
type ItemTransfer struct {
	RemainTrades   int    `json:"remain_trades"`
	RepackageCount int    `json:"repackage_count"`
	BindCharacter  int64  `json:"bind_character_id,omitempty"`
	BindName       string `json:"bind_name,omitempty"`
}

// Bind ties the item to a character
func (t *ItemTransfer) Bind(character *Character) {
	t.BindCharacter = character.ID
	t.BindName = character.Name
}

// IsBound reports whether the item is bound to a character
func (t *ItemTransfer) IsBound() bool {
	return t.BindCharacter != 0
}

// ResolvedItem is a fully materialized drop. It is owned by the caller once returned.
type ResolvedItem struct {
	UID      uuid.UUID     `json:"uid"`
	ItemID   int           `json:"item_id"`
	Rarity   int           `json:"rarity"`
	Amount   int           `json:"amount"`
	Stats    *ItemStats    `json:"stats,omitempty"`
	Socket   *ItemSocket   `json:"socket,omitempty"`
	Color    *EquipColor   `json:"color,omitempty"`
	Enchant  *ItemEnchant  `json:"enchant,omitempty"`
	Transfer *ItemTransfer `json:"transfer"`
}

// EnchantOption is the stat bonus granted at one enchant level
type EnchantOption struct {
	Level int                       `json:"level"`
	Rates map[StatAttribute]float64 `json:"rates"`
}

// ColorPalette groups the selectable colors of a palette id
type ColorPalette struct {
	ID      int                 `json:"id"`
	Entries []ColorPaletteEntry `json:"entries"`
}
