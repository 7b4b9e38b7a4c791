package application

import (
	"math"

	"github.com/shopspring/decimal"
)

// AmountScale is the number of decimal places kept on currency amounts.
const AmountScale = 6

// MaxAmount caps every currency amount; larger inputs are clamped to it.
var MaxAmount = decimal.New(1, 15)

// BoundAmount clamps d into [0, MaxAmount] and truncates it to AmountScale
// places. The magnitude is estimated from the coefficient bit length and the
// exponent before any arithmetic runs, so an input like 1e300000000 never
// reaches a rescale.
func BoundAmount(d decimal.Decimal) decimal.Decimal {
	if d.Sign() <= 0 {
		return decimal.Zero
	}

	bits := float64(d.Coefficient().BitLen())
	exp := float64(d.Exponent())
	if (bits-1)*math.Log10(2)+exp > 15 {
		return MaxAmount
	}
	if bits*math.Log10(2)+exp < -AmountScale {
		return decimal.Zero
	}

	if d.Exponent() < -AmountScale {
		d = d.Truncate(AmountScale)
	}
	if d.GreaterThan(MaxAmount) {
		return MaxAmount
	}
	return d
}
