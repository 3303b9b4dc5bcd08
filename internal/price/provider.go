package price

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultPollInterval is how often the provider refreshes the price.
const DefaultPollInterval = 30 * time.Second

// fetcher is the part of Client the provider needs.
type fetcher interface {
	BitcoinPrice(ctx context.Context, currency string) (float64, error)
}

// Provider owns the lifecycle of the current-price value: it polls the feed
// on a fixed interval and serves the last known price. On fetch failure it
// keeps the previous value, seeded from the static fallback table.
type Provider struct {
	client   fetcher
	currency string
	interval time.Duration

	mu    sync.RWMutex
	price float64

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewProvider creates a Provider for the given display currency.
func NewProvider(client *Client, currency string, interval time.Duration) *Provider {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Provider{
		client:   client,
		currency: currency,
		interval: interval,
		price:    fallbackPrice(currency),
	}
}

// Start begins polling. The first fetch happens immediately.
func (p *Provider) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		p.refresh(ctx)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.refresh(ctx)
			}
		}
	}()
}

// Stop halts polling and waits for the poll goroutine to exit.
func (p *Provider) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
}

// CurrentPrice returns the last known price for the provider's currency.
func (p *Provider) CurrentPrice() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.price
}

// Currency returns the provider's display currency code.
func (p *Provider) Currency() string {
	return p.currency
}

func (p *Provider) refresh(ctx context.Context) {
	value, err := p.client.BitcoinPrice(ctx, p.currency)
	if err != nil {
		log.Printf("[price] Fetch failed, keeping last known price: %v", err)
		return
	}

	p.mu.Lock()
	p.price = value
	p.mu.Unlock()
}
