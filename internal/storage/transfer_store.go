package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/thanhnp/wallet-apis/internal/clock"
	"github.com/thanhnp/wallet-apis/internal/models"
)

// ErrInvalidAmount is returned when a transfer is created with a
// non-positive amount.
var ErrInvalidAmount = errors.New("transfer amount must be positive")

// TransferStore handles simulated transfer storage operations. Records are
// stored one key per transfer, JSON-encoded, with insertion order tracked by
// a persisted sequence counter.
type TransferStore struct {
	db    *PebbleDB
	meta  *MetaStore
	clock clock.Clock
}

// NewTransferStore creates a new TransferStore
func NewTransferStore(db *PebbleDB, clk clock.Clock) *TransferStore {
	return &TransferStore{
		db:    db,
		meta:  NewMetaStore(db),
		clock: clk,
	}
}

// Create validates and persists a new pending transfer. The write is synced
// to disk before returning.
func (s *TransferStore) Create(recipient string, amount, fee btcutil.Amount) (*models.SimulatedTransaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	seq, err := s.meta.NextTransferSeq()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate transfer sequence: %w", err)
	}

	tx := &models.SimulatedTransaction{
		TxID:          models.NewTxID(),
		Recipient:     recipient,
		Amount:        amount,
		Fee:           fee,
		FeeRate:       models.DefaultFeeRate,
		Status:        models.StatusPending,
		Confirmations: 0,
		Timestamp:     s.clock.Now().Unix(),
		Seq:           seq,
	}

	if err := s.save(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Get retrieves a transfer by its txid. A missing or undecodable record
// returns (nil, nil).
func (s *TransferStore) Get(txid string) (*models.SimulatedTransaction, error) {
	data, err := s.db.Get(CFTransfers, []byte(txid))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var tx models.SimulatedTransaction
	if err := json.Unmarshal(data, &tx); err != nil {
		log.Printf("[store] Dropping corrupt transfer record %s: %v", txid, err)
		return nil, nil
	}
	return &tx, nil
}

// List returns all transfers in insertion order. Corrupt records are skipped
// rather than failing the whole read.
func (s *TransferStore) List() ([]*models.SimulatedTransaction, error) {
	iter, err := s.db.NewIterator(CFTransfers)
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var txs []*models.SimulatedTransaction
	for ; iter.Valid(); iter.Next() {
		var tx models.SimulatedTransaction
		if err := json.Unmarshal(iter.Value(), &tx); err != nil {
			log.Printf("[store] Skipping corrupt transfer record %s: %v", string(iter.Key()), err)
			continue
		}
		txs = append(txs, &tx)
	}

	sort.Slice(txs, func(i, j int) bool {
		return txs[i].Seq < txs[j].Seq
	})
	return txs, nil
}

// UpdateStatus overwrites the status and confirmation count of a transfer.
// An unknown txid is a silent no-op reported as found=false, so the
// confirmation scheduler can tolerate deletion races without an error path.
// The call is idempotent for a given target state.
func (s *TransferStore) UpdateStatus(txid string, status models.TransferStatus, confirmations int32) (*models.SimulatedTransaction, bool, error) {
	tx, err := s.Get(txid)
	if err != nil {
		return nil, false, err
	}
	if tx == nil {
		return nil, false, nil
	}

	tx.Status = status
	tx.Confirmations = confirmations
	if err := s.save(tx); err != nil {
		return nil, false, err
	}
	return tx, true, nil
}

// Clear removes every transfer and its memo in a single synced batch.
func (s *TransferStore) Clear() error {
	iter, err := s.db.NewIterator(CFTransfers)
	if err != nil {
		return err
	}

	var txids []string
	for ; iter.Valid(); iter.Next() {
		txids = append(txids, string(iter.Key()))
	}
	if err := iter.Close(); err != nil {
		return err
	}

	batch := s.db.NewBatch()
	defer batch.Destroy()

	for _, txid := range txids {
		if err := s.db.DeleteBatch(batch, CFTransfers, []byte(txid)); err != nil {
			return err
		}
		if err := s.db.DeleteBatch(batch, CFMemos, []byte(txid)); err != nil {
			return err
		}
	}

	return s.db.WriteBatch(batch)
}

// TotalCommitted returns the sum of amount+fee over every stored transfer
// regardless of status. Pending transfers count against the spendable
// balance just like confirmed ones.
func (s *TransferStore) TotalCommitted() (btcutil.Amount, error) {
	txs, err := s.List()
	if err != nil {
		return 0, err
	}

	var total btcutil.Amount
	for _, tx := range txs {
		total += tx.Amount + tx.Fee
	}
	return total, nil
}

// save marshals and durably persists a transfer record.
func (s *TransferStore) save(tx *models.SimulatedTransaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transfer: %w", err)
	}
	return s.db.Put(CFTransfers, []byte(tx.TxID), data)
}
