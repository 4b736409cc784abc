package domain

// Rates is a point-in-time copy of the live economy multipliers
type Rates struct {
	GlobalDropRate float64 `json:"global_drop_rate"`
	BossDropRate   float64 `json:"boss_drop_rate"`
	RareDropRate   float64 `json:"rare_drop_rate"`
	MesoDropRate   float64 `json:"meso_drop_rate"`
}

// DefaultRates returns neutral multipliers
func DefaultRates() Rates {
	return Rates{
		GlobalDropRate: 1.0,
		BossDropRate:   1.0,
		RareDropRate:   1.0,
		MesoDropRate:   1.0,
	}
}

// IsRareGrade reports whether a rarity grade is subject to the rare-drop multiplier
func IsRareGrade(grade int) bool {
	return grade >= RareGradeThreshold
}
