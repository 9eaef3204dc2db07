package evaluator

import (
	"fmt"
	"math"
)

// Money is a monetary amount in minor units (cents). All financial
// arithmetic in the quote engine runs on integers so that repeated
// recomputation is exact and reproducible.
type Money int64

// MoneyFromFloat converts a major-unit amount (e.g. user input "12.50")
// to Money, rounding to the nearest cent.
// Returns EINVALID for NaN or infinite input.
func MoneyFromFloat(v float64) (Money, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, Invalid("Amount must be a finite number")
	}
	return Money(math.Round(v * 100)), nil
}

// Float64 returns the amount in major units. Intended for display and
// serialization only, never for arithmetic.
func (m Money) Float64() float64 {
	return float64(m) / 100
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m < 0
}

// Percent returns p percent of the amount, rounded half-up at the cent.
// The receiver must be non-negative.
func (m Money) Percent(p int64) Money {
	return Money((int64(m)*p + 50) / 100)
}

// String formats the amount in major units with two decimals, e.g. "137.50".
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
