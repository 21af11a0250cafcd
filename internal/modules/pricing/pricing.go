package pricing

import "math"

// Net applies a percent discount to a price. A zero discount leaves the price
// untouched. Out-of-range discounts are a caller error and are not clamped.
func Net(price, discount float64) float64 {
	if discount == 0 {
		return price
	}
	return price - price*discount/100
}

// Round2 rounds to the currency's minor unit. It is applied exactly once, on
// the final aggregate, so per-line rounding error cannot compound.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
