package presentation

import (
	"fmt"
	"math"
)

// FormatShortNotation formats an amount using short notation (e.g. 50k
// instead of 50000). Used for chart labels where space is tight.
func FormatShortNotation(value float64) string {
	abs := math.Abs(value)
	sign := ""
	if value < 0 {
		sign = "-"
	}

	switch {
	case abs >= 1_000_000_000_000:
		return fmt.Sprintf("%s%.2fT", sign, abs/1_000_000_000_000)
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%s%.2fB", sign, abs/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%s%.2fM", sign, abs/1_000_000)
	case abs >= 10_000:
		return fmt.Sprintf("%s%dk", sign, int64(abs)/1_000)
	case abs >= 1_000:
		return fmt.Sprintf("%s%.1fk", sign, abs/1_000)
	default:
		return fmt.Sprintf("%s%d", sign, int64(abs))
	}
}

// niceCeiling rounds v up to 1, 2, 2.5 or 5 times a power of ten so axis
// ticks land on readable values.
func niceCeiling(v float64) float64 {
	if v <= 0 {
		return 1
	}
	exp := math.Floor(math.Log10(v))
	base := math.Pow(10, exp)
	for _, m := range []float64{1, 2, 2.5, 5, 10} {
		if v <= m*base {
			return m * base
		}
	}
	return 10 * base
}
