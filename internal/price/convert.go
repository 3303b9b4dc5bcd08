// Package price converts BTC amounts to a display currency and maintains the
// current exchange price behind an explicit provider object.
package price

// ToDisplayCurrency converts a BTC amount to the display currency at the
// given price.
func ToDisplayCurrency(btc, price float64) float64 {
	return btc * price
}

// FromDisplayCurrency converts a display-currency amount back to BTC.
// A zero or negative price yields 0 rather than dividing by zero.
func FromDisplayCurrency(amount, price float64) float64 {
	if price <= 0 {
		return 0
	}
	return amount / price
}
