package price

import "strings"

// fallbackUSDPrice is used until the first successful fetch.
const fallbackUSDPrice = 50000.0

// exchangeRates approximates USD-relative rates when the price feed cannot
// serve a currency directly.
var exchangeRates = map[string]float64{
	"USD": 1.0,
	"EUR": 0.92,
	"GBP": 0.79,
	"JPY": 150.0,
	"CNY": 7.2,
	"CAD": 1.35,
	"AUD": 1.52,
	"CHF": 0.88,
	"INR": 83.0,
	"BRL": 4.95,
	"KRW": 1300.0,
	"MXN": 17.0,
}

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"CAD": "C$",
	"AUD": "A$",
	"CHF": "CHF",
	"INR": "₹",
	"BRL": "R$",
	"KRW": "₩",
	"MXN": "$",
}

// Symbol returns the display symbol for a currency code, falling back to the
// code itself.
func Symbol(currency string) string {
	if s, ok := symbols[strings.ToUpper(currency)]; ok {
		return s
	}
	return strings.ToUpper(currency)
}

// fallbackPrice estimates a price for the currency from the static USD rate
// table.
func fallbackPrice(currency string) float64 {
	rate, ok := exchangeRates[strings.ToUpper(currency)]
	if !ok {
		rate = 1.0
	}
	return fallbackUSDPrice * rate
}
