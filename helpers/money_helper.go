package helpers

import "github.com/shopspring/decimal"

// RoundMoney rounds a monetary value to 2 decimal places, half-up.
// Every calculator applies it at the point of producing a result
// field and never mid-calculation, so intermediate precision is kept.
func RoundMoney(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// RoundRate rounds an effective/marginal rate to 4 decimal places.
func RoundRate(value float64) float64 {
	return decimal.NewFromFloat(value).Round(4).InexactFloat64()
}

// ClampNonNegative floors a value at zero. Deductions exceeding gross
// are valid low-income inputs, not errors, so negatives clamp rather
// than fail.
func ClampNonNegative(value float64) float64 {
	if value < 0 {
		return 0
	}
	return value
}
