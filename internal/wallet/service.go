package wallet

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/thanhnp/wallet-apis/internal/clock"
	"github.com/thanhnp/wallet-apis/internal/ledger"
	"github.com/thanhnp/wallet-apis/internal/models"
	"github.com/thanhnp/wallet-apis/internal/storage"
)

// DefaultConfirmationDelay is how long a transfer stays pending before the
// scheduler promotes it.
const DefaultConfirmationDelay = 60 * time.Second

// ErrInsufficientFunds is returned when a transfer's amount plus fee exceeds
// the spendable balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Service ties the historical generator, the transfer store, and the
// confirmation scheduler into the wallet's engine surface.
type Service struct {
	store        *storage.TransferStore
	generator    *ledger.Generator
	scheduler    *Scheduler
	clock        clock.Clock
	confirmDelay time.Duration

	mu      sync.Mutex
	history []*models.HistoricalTransaction
}

// NewService creates a new Service. A non-positive confirmDelay falls back
// to the default.
func NewService(store *storage.TransferStore, gen *ledger.Generator, sched *Scheduler, clk clock.Clock, confirmDelay time.Duration) *Service {
	if confirmDelay <= 0 {
		confirmDelay = DefaultConfirmationDelay
	}
	return &Service{
		store:        store,
		generator:    gen,
		scheduler:    sched,
		clock:        clk,
		confirmDelay: confirmDelay,
	}
}

// Address returns the wallet's fixed address.
func (s *Service) Address() string {
	return ledger.WalletAddress
}

// History returns the historical ledger, generated once per session.
func (s *Service) History() []*models.HistoricalTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.history == nil {
		s.history = s.generator.Generate(s.clock.Now())
	}
	return s.history
}

// Balance returns the spendable balance: the fixed historical balance minus
// amount+fee of every simulated transfer regardless of status.
func (s *Service) Balance() (btcutil.Amount, error) {
	committed, err := s.store.TotalCommitted()
	if err != nil {
		return 0, fmt.Errorf("failed to total committed transfers: %w", err)
	}
	return ledger.FixedBalance - committed, nil
}

// CreateTransfer validates, persists, and schedules confirmation of a new
// outgoing transfer. A non-positive fee falls back to the fixed network fee.
func (s *Service) CreateTransfer(recipient string, amount, fee btcutil.Amount) (*models.SimulatedTransaction, error) {
	if fee <= 0 {
		fee = models.DefaultFee
	}

	if amount > 0 {
		balance, err := s.Balance()
		if err != nil {
			return nil, err
		}
		if amount+fee > balance {
			return nil, ErrInsufficientFunds
		}
	}

	tx, err := s.store.Create(recipient, amount, fee)
	if err != nil {
		return nil, err
	}

	s.scheduler.Schedule(tx.TxID, s.confirmDelay)
	log.Printf("[wallet] Created transfer %s for %s, confirming in %s", tx.TxID, tx.Amount, s.confirmDelay)
	return tx, nil
}

// ListTransfers returns all simulated transfers in insertion order.
func (s *Service) ListTransfers() ([]*models.SimulatedTransaction, error) {
	return s.store.List()
}

// ClearTransfers removes every simulated transfer and its memo.
func (s *Service) ClearTransfers() error {
	return s.store.Clear()
}

// Ledger builds the reconciled month-grouped view of both transaction
// sources at the given time.
func (s *Service) Ledger(now time.Time) (Ledger, error) {
	transfers, err := s.store.List()
	if err != nil {
		return Ledger{}, fmt.Errorf("failed to list transfers: %w", err)
	}
	return Reconcile(s.History(), transfers, now), nil
}

// ResumePending re-arms confirmations for transfers that were still pending
// when the process last stopped. Transfers already past their delay promote
// on a zero timer.
func (s *Service) ResumePending() error {
	transfers, err := s.store.List()
	if err != nil {
		return fmt.Errorf("failed to list transfers: %w", err)
	}

	now := s.clock.Now()
	for _, tx := range transfers {
		if tx.Status != models.StatusPending {
			continue
		}
		remaining := s.confirmDelay - now.Sub(time.Unix(tx.Timestamp, 0))
		if remaining < 0 {
			remaining = 0
		}
		log.Printf("[wallet] Resuming confirmation for pending transfer %s in %s", tx.TxID, remaining)
		s.scheduler.Schedule(tx.TxID, remaining)
	}
	return nil
}
