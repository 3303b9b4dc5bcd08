package wallet

import (
	"log"
	"sync"
	"time"

	"github.com/thanhnp/wallet-apis/internal/clock"
	"github.com/thanhnp/wallet-apis/internal/models"
)

// transferUpdater is the part of the transfer store the scheduler needs.
type transferUpdater interface {
	UpdateStatus(txid string, status models.TransferStatus, confirmations int32) (*models.SimulatedTransaction, bool, error)
}

// Scheduler promotes pending transfers to confirmed after a fixed delay.
// Each Schedule call arms exactly one one-shot timer; there is no
// cancellation API. If the transfer is cleared before the timer fires, the
// promotion is a silent no-op.
type Scheduler struct {
	store transferUpdater
	clock clock.Clock

	wg       sync.WaitGroup
	quit     chan struct{}
	stopOnce sync.Once
}

// NewScheduler creates a new Scheduler
func NewScheduler(store transferUpdater, clk clock.Clock) *Scheduler {
	return &Scheduler{
		store: store,
		clock: clk,
		quit:  make(chan struct{}),
	}
}

// Schedule arms a one-shot promotion of txid after delay. The timer is
// armed before Schedule returns.
func (s *Scheduler) Schedule(txid string, delay time.Duration) {
	fire := s.clock.After(delay)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		select {
		case <-fire:
		case <-s.quit:
			return
		}

		_, found, err := s.store.UpdateStatus(txid, models.StatusConfirmed, models.ConfirmedConfirmations)
		if err != nil {
			log.Printf("[wallet] Failed to confirm transfer %s: %v", txid, err)
			return
		}
		if !found {
			// Transfer was cleared before the timer fired
			log.Printf("[wallet] Confirmation for %s dropped: transfer no longer exists", txid)
			return
		}
		log.Printf("[wallet] Transfer %s confirmed", txid)
	}()
}

// Stop abandons all armed timers and waits for their goroutines to exit.
// Promotions that have not fired yet are lost; the transfers stay pending.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
	})
	s.wg.Wait()
}
