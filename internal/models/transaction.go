package models

import (
	"github.com/btcsuite/btcd/btcutil"
)

// Direction indicates whether a transaction moved funds into or out of the wallet
type Direction string

const (
	DirectionSent     Direction = "sent"
	DirectionReceived Direction = "received"
)

// TransferStatus is the lifecycle state of a simulated transfer
type TransferStatus string

const (
	StatusPending   TransferStatus = "pending"
	StatusConfirmed TransferStatus = "confirmed"
)

const (
	// ConfirmedConfirmations is the confirmation count assigned once a
	// transaction is considered fully confirmed.
	ConfirmedConfirmations int32 = 6

	// DefaultFeeRate is the fee rate stamped on every simulated transfer,
	// in sat/vByte.
	DefaultFeeRate int64 = 138

	// DefaultFee is the flat network fee for outgoing transfers (0.0001 BTC).
	DefaultFee btcutil.Amount = 10000
)

// HistoricalTransaction is a pre-generated ledger entry simulating past chain
// activity. Its chain metadata (block height/hash, confirmations) is fixed at
// generation time and never recomputed.
type HistoricalTransaction struct {
	TxID          string         `json:"txid"`
	Direction     Direction      `json:"direction"`
	Amount        btcutil.Amount `json:"amount"`
	Fee           btcutil.Amount `json:"fee,omitempty"`
	FeeRate       int64          `json:"fee_rate,omitempty"`
	Counterparty  string         `json:"counterparty"`
	BlockHeight   int64          `json:"block_height"`
	BlockHash     string         `json:"block_hash"`
	BlockTime     int64          `json:"block_time"` // Unix seconds
	Confirmations int32          `json:"confirmations"`
}

// SimulatedTransaction is a user-created outgoing transfer tracked locally.
// Timestamp is Unix seconds; Seq records insertion order within the store.
type SimulatedTransaction struct {
	TxID          string         `json:"txid"`
	Recipient     string         `json:"recipient"`
	Amount        btcutil.Amount `json:"amount"`
	Fee           btcutil.Amount `json:"fee"`
	FeeRate       int64          `json:"fee_rate"`
	Status        TransferStatus `json:"status"`
	Confirmations int32          `json:"confirmations"`
	Timestamp     int64          `json:"timestamp"`
	Seq           uint64         `json:"seq"`
}

// Entry is the normalized display shape shared by both transaction variants.
type Entry struct {
	TxID         string         `json:"txid"`
	Direction    Direction      `json:"direction"`
	Amount       btcutil.Amount `json:"amount"`
	Fee          btcutil.Amount `json:"fee,omitempty"`
	Counterparty string         `json:"counterparty"`
	Timestamp    int64          `json:"timestamp"` // Unix seconds, 0 if unknown
	StatusLabel  string         `json:"status"`
	Simulated    bool           `json:"simulated"`
}

// NormalizeHistorical converts a historical transaction to the shared entry shape.
func NormalizeHistorical(tx *HistoricalTransaction) Entry {
	return Entry{
		TxID:         tx.TxID,
		Direction:    tx.Direction,
		Amount:       tx.Amount,
		Fee:          tx.Fee,
		Counterparty: tx.Counterparty,
		Timestamp:    tx.BlockTime,
		StatusLabel:  string(StatusConfirmed),
		Simulated:    false,
	}
}

// NormalizeSimulated converts a simulated transfer to the shared entry shape.
// Simulated transfers are always outgoing.
func NormalizeSimulated(tx *SimulatedTransaction) Entry {
	return Entry{
		TxID:         tx.TxID,
		Direction:    DirectionSent,
		Amount:       tx.Amount,
		Fee:          tx.Fee,
		Counterparty: tx.Recipient,
		Timestamp:    tx.Timestamp,
		StatusLabel:  string(tx.Status),
		Simulated:    true,
	}
}
