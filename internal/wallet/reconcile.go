package wallet

import (
	"fmt"
	"sort"
	"time"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/thanhnp/wallet-apis/internal/ledger"
	"github.com/thanhnp/wallet-apis/internal/models"
)

// UnknownGroupLabel is the bucket for entries without a usable timestamp.
const UnknownGroupLabel = "Unknown"

// MonthGroup is one calendar month of ledger entries.
type MonthGroup struct {
	Label   string         `json:"label"`
	Entries []models.Entry `json:"entries"`
}

// Ledger is the reconciled view of both transaction sources: month-grouped
// entries, newest first, plus the single displayed balance.
type Ledger struct {
	Groups  []MonthGroup   `json:"groups"`
	Balance btcutil.Amount `json:"balance"`
}

// Reconcile merges the historical ledger and the simulated transfers into
// one ordered, grouped view and computes the displayed balance. It is a pure
// function of its inputs: no clock reads or store access happen inside.
//
// The displayed balance is the fixed historical balance minus amount+fee of
// every simulated transfer, pending or confirmed.
func Reconcile(history []*models.HistoricalTransaction, transfers []*models.SimulatedTransaction, now time.Time) Ledger {
	entries := make([]models.Entry, 0, len(history)+len(transfers))
	for _, tx := range history {
		entries = append(entries, models.NormalizeHistorical(tx))
	}

	var committed btcutil.Amount
	for _, tx := range transfers {
		entries = append(entries, models.NormalizeSimulated(tx))
		committed += tx.Amount + tx.Fee
	}

	// Newest first; ties keep their original relative order. Entries with
	// no timestamp sort last and land in the Unknown bucket.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp > entries[j].Timestamp
	})

	return Ledger{
		Groups:  groupByMonth(entries, now.Location()),
		Balance: ledger.FixedBalance - committed,
	}
}

// groupByMonth buckets timestamp-sorted entries by calendar month+year.
// Sorted input keeps each month contiguous, so a single pass suffices.
func groupByMonth(entries []models.Entry, loc *time.Location) []MonthGroup {
	groups := []MonthGroup{}
	for _, e := range entries {
		label := UnknownGroupLabel
		if e.Timestamp > 0 {
			t := time.Unix(e.Timestamp, 0).In(loc)
			label = fmt.Sprintf("%s %d", t.Month(), t.Year())
		}

		if n := len(groups); n > 0 && groups[n-1].Label == label {
			groups[n-1].Entries = append(groups[n-1].Entries, e)
			continue
		}
		groups = append(groups, MonthGroup{Label: label, Entries: []models.Entry{e}})
	}
	return groups
}
