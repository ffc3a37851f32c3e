package utils

import "math"

// DiscountAmount converts a percentage promo into an absolute amount in
// minor currency units: round(price * percent / 100), capped at the price.
func DiscountAmount(priceMinor int64, percent int) int64 {
	if percent <= 0 || priceMinor <= 0 {
		return 0
	}
	discount := int64(math.Round(float64(priceMinor) * float64(percent) / 100.0))
	if discount > priceMinor {
		discount = priceMinor
	}
	return discount
}

// OrderTotal is the price after discount, floored at zero.
func OrderTotal(priceMinor, discountMinor int64) int64 {
	total := priceMinor - discountMinor
	if total < 0 {
		return 0
	}
	return total
}
