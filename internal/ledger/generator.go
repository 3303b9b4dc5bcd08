// Package ledger produces the wallet's fixed historical transaction set: a
// deterministic schedule of 8 receives and 1 send spread over the trailing
// 12 months whose net sum equals the wallet's fixed balance.
package ledger

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/thanhnp/wallet-apis/internal/models"
)

const (
	// WalletAddress is the wallet's single fixed address.
	WalletAddress = "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh"

	// FixedBalance is the net of the historical schedule: 1.348369 BTC
	// received minus 0.1 BTC sent. It never changes at runtime.
	FixedBalance btcutil.Amount = 124836900
)

// entrySpec is one slot of the hard-coded historical schedule. monthsBack
// positions the entry within the trailing 12-month window; the newest
// receive uses daysBack instead.
type entrySpec struct {
	direction    models.Direction
	amount       btcutil.Amount
	fee          btcutil.Amount
	feeRate      int64
	counterparty string
	blockHeight  int64
	monthsBack   int
	daysBack     int
}

var schedule = []entrySpec{
	{models.DirectionReceived, 15000000, 0, 0, "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", 800000, 12, 0},
	{models.DirectionReceived, 18000000, 0, 0, "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy", 810000, 10, 0},
	{models.DirectionReceived, 22000000, 0, 0, "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", 820000, 8, 0},
	{models.DirectionReceived, 16000000, 0, 0, "1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2", 830000, 6, 0},
	{models.DirectionSent, 10000000, models.DefaultFee, models.DefaultFeeRate, "bc1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3qccfmv3", 840000, 4, 0},
	{models.DirectionReceived, 18836900, 0, 0, "1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAs", 850000, 3, 0},
	{models.DirectionReceived, 21000000, 0, 0, "3Kzh9qAqVWQhEsfQz7zEQL1EuSx5tyNLNS", 860000, 2, 0},
	{models.DirectionReceived, 19000000, 0, 0, "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh", 870000, 1, 0},
	{models.DirectionReceived, 5000000, 0, 0, "1F1tAaz5x1HUXrCNLbtMDqcw6o5GNn4xqX", 880000, 0, 14},
}

// Generator materializes the historical ledger. Amounts, directions,
// counterparties, and relative timing are fixed; only the txids differ
// between calls.
type Generator struct{}

// NewGenerator creates a new Generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns the historical transaction set anchored at now, in
// ascending chronological order. It never fails.
func (g *Generator) Generate(now time.Time) []*models.HistoricalTransaction {
	txs := make([]*models.HistoricalTransaction, 0, len(schedule))
	for _, spec := range schedule {
		blockTime := now.AddDate(0, 0, -spec.daysBack)
		if spec.monthsBack > 0 {
			blockTime = now.AddDate(0, 0, -30*spec.monthsBack)
		}

		txs = append(txs, &models.HistoricalTransaction{
			TxID:          models.NewTxID(),
			Direction:     spec.direction,
			Amount:        spec.amount,
			Fee:           spec.fee,
			FeeRate:       spec.feeRate,
			Counterparty:  spec.counterparty,
			BlockHeight:   spec.blockHeight,
			BlockHash:     blockHash(spec.blockHeight),
			BlockTime:     blockTime.Unix(),
			Confirmations: models.ConfirmedConfirmations,
		})
	}
	return txs
}

// blockHash derives a stable display hash for a block height.
func blockHash(height int64) string {
	h := chainhash.DoubleHashH([]byte(fmt.Sprintf("block:%d", height)))
	return h.String()
}
