package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	EnergyPlaces  int32 = 2
	MoneyPlaces   int32 = 2
	PercentPlaces int32 = 1
	PowerPlaces   int32 = 2
)

// Round rounds v half-to-even at the given number of decimal places.
// The value goes through its shortest decimal form first, so 0.125 rounds
// to 0.12 and re-rounding an already rounded value returns it unchanged.
// Infinities and NaN are returned as is.
func Round(v float64, places int32) float64 {
	if !IsFinite(v) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).RoundBank(places).Float64()
	return f
}

func IsFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
