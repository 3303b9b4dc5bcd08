package wallet

import (
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thanhnp/wallet-apis/internal/clock"
	"github.com/thanhnp/wallet-apis/internal/ledger"
	"github.com/thanhnp/wallet-apis/internal/models"
	"github.com/thanhnp/wallet-apis/internal/storage"
)

func newTestService(t *testing.T) (*Service, *storage.TransferStore, *clock.TestClock) {
	t.Helper()
	clk := clock.NewTestClock(time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC))
	store := newTestStore(t, clk)
	sched := NewScheduler(store, clk)
	t.Cleanup(sched.Stop)
	svc := NewService(store, ledger.NewGenerator(), sched, clk, time.Minute)
	return svc, store, clk
}

func TestServiceAddress(t *testing.T) {
	svc, _, _ := newTestService(t)
	assert.Equal(t, "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh", svc.Address())
}

func TestServiceHistoryGeneratedOncePerSession(t *testing.T) {
	svc, _, _ := newTestService(t)

	first := svc.History()
	second := svc.History()
	require.Len(t, first, 9)
	assert.Equal(t, first[0].TxID, second[0].TxID)
}

func TestServiceBalance(t *testing.T) {
	svc, _, _ := newTestService(t)

	balance, err := svc.Balance()
	require.NoError(t, err)
	assert.Equal(t, ledger.FixedBalance, balance)

	_, err = svc.CreateTransfer("addr", 1000000, 10000)
	require.NoError(t, err)

	balance, err = svc.Balance()
	require.NoError(t, err)
	assert.Equal(t, ledger.FixedBalance-1010000, balance)
}

func TestServiceCreateTransferDefaultsFee(t *testing.T) {
	svc, _, _ := newTestService(t)

	tx, err := svc.CreateTransfer("addr", 1000000, 0)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultFee, tx.Fee)
	assert.Equal(t, models.StatusPending, tx.Status)
}

func TestServiceCreateTransferRejectsInvalidAmount(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateTransfer("addr", 0, 0)
	assert.ErrorIs(t, err, storage.ErrInvalidAmount)
}

func TestServiceCreateTransferRejectsOverdraft(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateTransfer("addr", ledger.FixedBalance, models.DefaultFee)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// Spending everything minus the fee is allowed
	tx, err := svc.CreateTransfer("addr", ledger.FixedBalance-models.DefaultFee, models.DefaultFee)
	require.NoError(t, err)

	balance, err := svc.Balance()
	require.NoError(t, err)
	assert.Equal(t, btcutil.Amount(0), balance)
	assert.NotEmpty(t, tx.TxID)
}

func TestServiceCreateTransferSchedulesConfirmation(t *testing.T) {
	svc, store, clk := newTestService(t)

	tx, err := svc.CreateTransfer("addr", 1000000, 0)
	require.NoError(t, err)

	clk.Advance(time.Minute)
	require.Eventually(t, func() bool {
		return transferStatus(t, store, tx.TxID) == models.StatusConfirmed
	}, time.Second, 5*time.Millisecond)
}

func TestServiceLedger(t *testing.T) {
	svc, _, clk := newTestService(t)

	_, err := svc.CreateTransfer("addr", 1000000, 10000)
	require.NoError(t, err)

	view, err := svc.Ledger(clk.Now())
	require.NoError(t, err)

	assert.Equal(t, ledger.FixedBalance-1010000, view.Balance)

	var total int
	for _, g := range view.Groups {
		total += len(g.Entries)
	}
	assert.Equal(t, 10, total)
}

func TestServiceClearTransfers(t *testing.T) {
	svc, _, clk := newTestService(t)

	_, err := svc.CreateTransfer("addr", 1000000, 0)
	require.NoError(t, err)
	require.NoError(t, svc.ClearTransfers())

	balance, err := svc.Balance()
	require.NoError(t, err)
	assert.Equal(t, ledger.FixedBalance, balance)

	view, err := svc.Ledger(clk.Now())
	require.NoError(t, err)
	for _, g := range view.Groups {
		for _, e := range g.Entries {
			assert.False(t, e.Simulated)
		}
	}
}

func TestServiceResumePending(t *testing.T) {
	svc, store, clk := newTestService(t)

	// A transfer created 2 minutes ago that never got confirmed: its delay
	// has already elapsed, so resuming promotes it immediately.
	overdue, err := store.Create("addr", 1000000, models.DefaultFee)
	require.NoError(t, err)
	clk.Advance(2 * time.Minute)

	// A fresh transfer keeps its remaining delay.
	fresh, err := store.Create("addr", 2000000, models.DefaultFee)
	require.NoError(t, err)

	require.NoError(t, svc.ResumePending())

	require.Eventually(t, func() bool {
		return transferStatus(t, store, overdue.TxID) == models.StatusConfirmed
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, models.StatusPending, transferStatus(t, store, fresh.TxID))

	clk.Advance(time.Minute)
	require.Eventually(t, func() bool {
		return transferStatus(t, store, fresh.TxID) == models.StatusConfirmed
	}, time.Second, 5*time.Millisecond)
}

func TestServiceResumeSkipsConfirmed(t *testing.T) {
	svc, store, _ := newTestService(t)

	tx, err := store.Create("addr", 1000000, models.DefaultFee)
	require.NoError(t, err)
	_, _, err = store.UpdateStatus(tx.TxID, models.StatusConfirmed, models.ConfirmedConfirmations)
	require.NoError(t, err)

	require.NoError(t, svc.ResumePending())
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, models.StatusConfirmed, transferStatus(t, store, tx.TxID))
}
