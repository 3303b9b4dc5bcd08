package price

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDisplayCurrency(t *testing.T) {
	assert.Equal(t, 50000.0, ToDisplayCurrency(1.0, 50000))
	assert.Equal(t, 500.0, ToDisplayCurrency(0.01, 50000))
	assert.Equal(t, 0.0, ToDisplayCurrency(0, 50000))
}

func TestFromDisplayCurrency(t *testing.T) {
	assert.Equal(t, 0.002, FromDisplayCurrency(100, 50000))
	assert.Equal(t, 1.0, FromDisplayCurrency(50000, 50000))
}

func TestFromDisplayCurrencyZeroPrice(t *testing.T) {
	// No division by zero
	assert.Equal(t, 0.0, FromDisplayCurrency(100, 0))
	assert.Equal(t, 0.0, FromDisplayCurrency(100, -1))
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "$", Symbol("USD"))
	assert.Equal(t, "€", Symbol("EUR"))
	assert.Equal(t, "$", Symbol("usd"))
	assert.Equal(t, "XYZ", Symbol("xyz"))
}
