package domain

// Reserved meso pouch item ids. Their amount is converted into a meso value on creation.
const (
	CurrencyItemMin = 90000001
	CurrencyItemMax = 90000003
)

// Rarity grades
const (
	RarityUnset        = -1
	RarityNormal       = 1
	RarityRare         = 2
	RarityExceptional  = 3
	RarityEpic         = 4
	RarityLegendary    = 5
	RarityAscendant    = 6
	RareGradeThreshold = RarityExceptional
)

// BoxKind labels the flavor of a drop box
type BoxKind string

const (
	BoxKindGlobal     BoxKind = "global"
	BoxKindIndividual BoxKind = "individual"
	BoxKindRarity     BoxKind = "individual_rarity"
)
