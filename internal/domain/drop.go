package domain

// DropCount is one drop-count bucket of a group. Count <= 0 means "no drop".
type DropCount struct {
	Count       int `json:"count"`
	Probability int `json:"probability"`
}

// QuantityRange is an inclusive [Min, Max] number of units per draw
type QuantityRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// RarityWeight is one entry of a candidate's rarity table
type RarityWeight struct {
	Grade       int `json:"grade"`
	Probability int `json:"probability"`
}

// GroupConditions are the veto checks shared by both box flavors
type GroupConditions struct {
	MinLevel           int `json:"min_level,omitempty"`
	MaxLevel           int `json:"max_level,omitempty"` // 0 = unbounded
	MapTypeCondition   int `json:"map_type_condition,omitempty"`
	ContinentCondition int `json:"continent_condition,omitempty"`
}

// GlobalDropItem is a candidate of a global drop group. Rarity is fixed per entry.
type GlobalDropItem struct {
	ItemID          int           `json:"item_id"`
	MinLevel        int           `json:"min_level,omitempty"`
	MaxLevel        int           `json:"max_level,omitempty"`
	MapIDs          []int         `json:"map_ids,omitempty"`
	QuestConstraint bool          `json:"quest_constraint,omitempty"`
	Rarity          int           `json:"rarity"`
	Weight          int           `json:"weight"`
	Quantity        QuantityRange `json:"quantity"`
}

// GlobalDropGroup is one group of a global box
type GlobalDropGroup struct {
	GroupID int `json:"group_id"`
	GroupConditions
	DropCounts []DropCount       `json:"drop_counts"`
	Items      []GlobalDropItem `json:"items"`
}

// GlobalDropBox is a box resolved against level/boss/field only
type GlobalDropBox struct {
	ID     int               `json:"id"`
	Groups []GlobalDropGroup `json:"groups"`
}

// IndividualDropItem is a candidate of an individual drop group
type IndividualDropItem struct {
	ItemIDs           []int          `json:"item_ids"`
	MinLevel          int            `json:"min_level,omitempty"`
	MaxLevel          int            `json:"max_level,omitempty"`
	MapIDs            []int          `json:"map_ids,omitempty"`
	QuestID           int            `json:"quest_id,omitempty"`
	Weight            int            `json:"weight"`
	ProperJobWeight   int            `json:"proper_job_weight,omitempty"`
	ImproperJobWeight int            `json:"improper_job_weight,omitempty"`
	Quantity          QuantityRange  `json:"quantity"`
	Rarities          []RarityWeight `json:"rarities,omitempty"`
	Bind              bool           `json:"bind,omitempty"`
	DeductTradeCount  bool           `json:"deduct_trade_count,omitempty"`
	DeductRepackLimit bool           `json:"deduct_repack_limit,omitempty"`
	EnchantLevel      int            `json:"enchant_level,omitempty"`
}

// PrimaryItemID returns the first linked item id, or 0 when the entry is empty
func (i *IndividualDropItem) PrimaryItemID() int {
	if len(i.ItemIDs) == 0 {
		return 0
	}
	return i.ItemIDs[0]
}

// IndividualDropGroup is one group of an individual box
type IndividualDropGroup struct {
	GroupID int `json:"group_id"`
	GroupConditions
	SmartGender   bool                 `json:"smart_gender,omitempty"`
	SmartDropRate int                  `json:"smart_drop_rate,omitempty"` // > 0 enables job weighting
	DropCounts    []DropCount          `json:"drop_counts"`
	Items         []IndividualDropItem `json:"items"`
}

// IndividualDropBox is a box resolved with full per-character filtering
type IndividualDropBox struct {
	ID     int                   `json:"id"`
	Groups []IndividualDropGroup `json:"groups"`
}

// Group returns the group with the given id
func (b *IndividualDropBox) Group(groupID int) (*IndividualDropGroup, bool) {
	for i := range b.Groups {
		if b.Groups[i].GroupID == groupID {
			return &b.Groups[i], true
		}
	}
	return nil, false
}

// InLevelWindow reports whether level lies in [min, max]. A max of 0 is unbounded.
func InLevelWindow(level, min, max int) bool {
	return level >= min && (max <= 0 || level <= max)
}

// Admits reports whether the group's veto checks pass for level on field
func (c GroupConditions) Admits(level int, field Field) bool {
	if !InLevelWindow(level, c.MinLevel, c.MaxLevel) {
		return false
	}
	if c.MapTypeCondition != 0 && c.MapTypeCondition != field.MapType {
		return false
	}
	return c.ContinentCondition == 0 || c.ContinentCondition == field.Continent
}

// MapAllowed reports whether mapID is in the allow-list. An empty list allows every map.
func MapAllowed(mapIDs []int, mapID int) bool {
	if len(mapIDs) == 0 {
		return true
	}
	for _, id := range mapIDs {
		if id == mapID {
			return true
		}
	}
	return false
}
