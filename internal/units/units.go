// Package units converts between kilograms, the canonical storage unit for
// every weight in the API, and pounds, which exist only for display.
package units

import (
	"fmt"
	"math"
)

// KgPerLb is the exact conversion factor: 1 lb = 0.45359237 kg.
const KgPerLb = 0.45359237

// Unit is a weight display unit.
type Unit string

const (
	KG Unit = "kg"
	LB Unit = "lb"
)

// Valid reports whether u is a known unit.
func (u Unit) Valid() bool {
	return u == KG || u == LB
}

// RoundToNearest5 rounds x to the nearest multiple of 5.
func RoundToNearest5(x float64) float64 {
	return math.Round(x/5) * 5
}

// Format renders a kilogram weight for display in the given unit.
// Kilograms keep one decimal place; pounds are rounded to the nearest 5
// and shown whole.
func Format(kg float64, unit Unit) string {
	if unit == LB {
		return fmt.Sprintf("%.0f", RoundToNearest5(kg/KgPerLb))
	}
	return fmt.Sprintf("%.1f", kg)
}

// ToKilograms converts a user-entered weight to kilograms. Pound values are
// rounded to the nearest 5 before conversion, so a value that survives one
// display round-trip converts back to the same displayed number.
// Non-positive weights are rejected, never clamped.
func ToKilograms(value float64, unit Unit) (float64, error) {
	if value <= 0 {
		return 0, fmt.Errorf("weight must be positive")
	}
	if unit == LB {
		rounded := RoundToNearest5(value)
		if rounded <= 0 {
			return 0, fmt.Errorf("weight must be positive")
		}
		return rounded * KgPerLb, nil
	}
	return value, nil
}
