package storage

import (
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thanhnp/wallet-apis/internal/clock"
	"github.com/thanhnp/wallet-apis/internal/models"
)

func newTestDB(t *testing.T) *PebbleDB {
	t.Helper()
	db, err := NewPebbleDB(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestStore(t *testing.T) (*TransferStore, *clock.TestClock) {
	t.Helper()
	clk := clock.NewTestClock(time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC))
	return NewTransferStore(newTestDB(t), clk), clk
}

func TestCreate(t *testing.T) {
	store, clk := newTestStore(t)

	tx, err := store.Create("bc1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3qccfmv3", 1000000, models.DefaultFee)
	require.NoError(t, err)

	assert.Len(t, tx.TxID, 64)
	assert.Equal(t, models.StatusPending, tx.Status)
	assert.Equal(t, int32(0), tx.Confirmations)
	assert.Equal(t, btcutil.Amount(1000000), tx.Amount)
	assert.Equal(t, models.DefaultFee, tx.Fee)
	assert.Equal(t, models.DefaultFeeRate, tx.FeeRate)
	assert.Equal(t, clk.Now().Unix(), tx.Timestamp)

	got, err := store.Get(tx.TxID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, tx, got)
}

func TestCreateRejectsNonPositiveAmount(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Create("addr", 0, models.DefaultFee)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = store.Create("addr", -1, models.DefaultFee)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	txs, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	store, _ := newTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		tx, err := store.Create("addr", 1000, models.DefaultFee)
		require.NoError(t, err)
		assert.False(t, seen[tx.TxID], "txid reused: %s", tx.TxID)
		seen[tx.TxID] = true
	}
}

func TestListInsertionOrder(t *testing.T) {
	store, _ := newTestStore(t)

	var want []string
	for i := 0; i < 5; i++ {
		tx, err := store.Create("addr", btcutil.Amount(1000*(i+1)), models.DefaultFee)
		require.NoError(t, err)
		want = append(want, tx.TxID)
	}

	txs, err := store.List()
	require.NoError(t, err)
	require.Len(t, txs, 5)
	for i, tx := range txs {
		assert.Equal(t, want[i], tx.TxID)
		assert.Equal(t, uint64(i+1), tx.Seq)
	}
}

func TestUpdateStatus(t *testing.T) {
	store, _ := newTestStore(t)

	tx, err := store.Create("addr", 1000000, models.DefaultFee)
	require.NoError(t, err)

	updated, found, err := store.UpdateStatus(tx.TxID, models.StatusConfirmed, models.ConfirmedConfirmations)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
	assert.Equal(t, models.ConfirmedConfirmations, updated.Confirmations)

	got, err := store.Get(tx.TxID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, got.Status)
}

func TestUpdateStatusIdempotent(t *testing.T) {
	store, _ := newTestStore(t)

	tx, err := store.Create("addr", 1000000, models.DefaultFee)
	require.NoError(t, err)

	first, found, err := store.UpdateStatus(tx.TxID, models.StatusConfirmed, models.ConfirmedConfirmations)
	require.NoError(t, err)
	require.True(t, found)

	second, found, err := store.UpdateStatus(tx.TxID, models.StatusConfirmed, models.ConfirmedConfirmations)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, first, second)

	txs, err := store.List()
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, first, txs[0])
}

func TestUpdateStatusUnknownID(t *testing.T) {
	store, _ := newTestStore(t)

	tx, err := store.Create("addr", 1000000, models.DefaultFee)
	require.NoError(t, err)

	updated, found, err := store.UpdateStatus("deadbeef", models.StatusConfirmed, models.ConfirmedConfirmations)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, updated)

	// Store unchanged
	got, err := store.Get(tx.TxID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestTotalCommitted(t *testing.T) {
	store, _ := newTestStore(t)

	total, err := store.TotalCommitted()
	require.NoError(t, err)
	assert.Equal(t, btcutil.Amount(0), total)

	tx1, err := store.Create("addr", 1000000, 10000)
	require.NoError(t, err)
	_, err = store.Create("addr", 2000000, 10000)
	require.NoError(t, err)

	// Status has no effect on the committed total
	_, _, err = store.UpdateStatus(tx1.TxID, models.StatusConfirmed, models.ConfirmedConfirmations)
	require.NoError(t, err)

	total, err = store.TotalCommitted()
	require.NoError(t, err)
	assert.Equal(t, btcutil.Amount(3020000), total)
}

func TestClear(t *testing.T) {
	db := newTestDB(t)
	clk := clock.NewTestClock(time.Unix(1700000000, 0))
	store := NewTransferStore(db, clk)
	memos := NewMemoStore(db)

	tx, err := store.Create("addr", 1000000, models.DefaultFee)
	require.NoError(t, err)
	require.NoError(t, memos.Set(tx.TxID, "rent"))

	require.NoError(t, store.Clear())

	txs, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, txs)

	memo, err := memos.Get(tx.TxID)
	require.NoError(t, err)
	assert.Empty(t, memo)
}

func TestCorruptRecordFailsSoft(t *testing.T) {
	db := newTestDB(t)
	clk := clock.NewTestClock(time.Unix(1700000000, 0))
	store := NewTransferStore(db, clk)

	tx, err := store.Create("addr", 1000000, models.DefaultFee)
	require.NoError(t, err)

	// Plant a record that does not decode
	require.NoError(t, db.Put(CFTransfers, []byte("garbage"), []byte("{not json")))

	txs, err := store.List()
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, tx.TxID, txs[0].TxID)

	got, err := store.Get("garbage")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	clk := clock.NewTestClock(time.Unix(1700000000, 0))

	db, err := NewPebbleDB(dir)
	require.NoError(t, err)
	store := NewTransferStore(db, clk)

	tx, err := store.Create("addr", 1000000, models.DefaultFee)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = NewPebbleDB(dir)
	require.NoError(t, err)
	defer db.Close()
	store = NewTransferStore(db, clk)

	txs, err := store.List()
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, tx, txs[0])

	// Sequence counter survives too: the next transfer keeps insertion order
	tx2, err := store.Create("addr", 500, models.DefaultFee)
	require.NoError(t, err)
	assert.Equal(t, tx.Seq+1, tx2.Seq)
}
