package utils

import (
	"math"
)

// ClampFloat bounds value to [min, max]. NaN is treated as min.
func ClampFloat(value, min, max float64) float64 {
	if math.IsNaN(value) || value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampProbability bounds a probability to [0, 1]
func ClampProbability(p float64) float64 {
	return ClampFloat(p, 0, 1)
}

// RoundToInt rounds half away from zero, saturating at the int32 range
func RoundToInt(value float64) int {
	if math.IsNaN(value) {
		return 0
	}
	r := math.Round(value)
	if r > math.MaxInt32 {
		return math.MaxInt32
	}
	if r < math.MinInt32 {
		return math.MinInt32
	}
	return int(r)
}

// ScaleWeight multiplies a weight by factor, rounds to the nearest integer and floors at 1
func ScaleWeight(weight int, factor float64) int {
	scaled := RoundToInt(float64(weight) * factor)
	if scaled < 1 {
		return 1
	}
	return scaled
}

// SaturatingMulInt32 multiplies two non-negative values and clamps the result
// to math.MaxInt32 instead of wrapping.
func SaturatingMulInt32(a, b int64) int {
	if a <= 0 || b <= 0 {
		return 0
	}
	if a > math.MaxInt32/b {
		return math.MaxInt32
	}
	return int(a * b)
}
