// Package unit converts between BTC and satoshis and formats amounts for
// display. 1 BTC = 100,000,000 satoshis.
package unit

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
)

// Display units
const (
	UnitBTC = "BTC"
	UnitSAT = "SAT"
)

// ToSatoshis converts a BTC amount to satoshis, rounding to the nearest
// whole satoshi.
func ToSatoshis(btc float64) btcutil.Amount {
	return btcutil.Amount(math.Round(btc * btcutil.SatoshiPerBitcoin))
}

// ToBTC converts a satoshi amount to BTC.
func ToBTC(sats btcutil.Amount) float64 {
	return sats.ToBTC()
}

// FormatAmount renders a satoshi amount in the given display unit:
// BTC with 8 decimal places, SAT as a comma-grouped integer.
func FormatAmount(sats btcutil.Amount, unit string) string {
	if unit == UnitSAT {
		return groupThousands(int64(sats))
	}
	return strconv.FormatFloat(sats.ToBTC(), 'f', 8, 64)
}

// UnitLabel returns the human label for a display unit.
func UnitLabel(unit string) string {
	if unit == UnitSAT {
		return "sats"
	}
	return "BTC"
}

// FormatAmountWithUnit renders an amount followed by its unit label.
func FormatAmountWithUnit(sats btcutil.Amount, unit string) string {
	return fmt.Sprintf("%s %s", FormatAmount(sats, unit), UnitLabel(unit))
}

// groupThousands formats n with commas between thousands groups.
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
