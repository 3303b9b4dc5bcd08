package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thanhnp/wallet-apis/internal/clock"
	"github.com/thanhnp/wallet-apis/internal/price"
	"github.com/thanhnp/wallet-apis/internal/unit"
	"github.com/thanhnp/wallet-apis/internal/wallet"
)

// priceProvider is the part of the price provider the handlers need.
type priceProvider interface {
	CurrentPrice() float64
	Currency() string
}

// WalletHandler handles wallet summary and ledger API requests
type WalletHandler struct {
	service *wallet.Service
	prices  priceProvider
	clock   clock.Clock
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(service *wallet.Service, prices priceProvider, clk clock.Clock) *WalletHandler {
	return &WalletHandler{
		service: service,
		prices:  prices,
		clock:   clk,
	}
}

// Get returns the wallet address and spendable balance
// GET /api/v1/wallet
func (h *WalletHandler) Get(c *gin.Context) {
	balance, err := h.service.Balance()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	btc := unit.ToBTC(balance)
	currentPrice := h.prices.CurrentPrice()

	c.JSON(http.StatusOK, gin.H{
		"address":     h.service.Address(),
		"balance_btc": btc,
		"balance_sat": int64(balance),
		"fiat_value":  price.ToDisplayCurrency(btc, currentPrice),
		"currency":    h.prices.Currency(),
		"symbol":      price.Symbol(h.prices.Currency()),
	})
}

// GetLedger returns the reconciled, month-grouped transaction view
// GET /api/v1/wallet/ledger
func (h *WalletHandler) GetLedger(c *gin.Context) {
	view, err := h.service.Ledger(h.clock.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	count := 0
	for _, g := range view.Groups {
		count += len(g.Entries)
	}

	c.JSON(http.StatusOK, gin.H{
		"groups":      view.Groups,
		"balance_btc": unit.ToBTC(view.Balance),
		"balance_sat": int64(view.Balance),
		"count":       count,
	})
}

// GetPrice returns the current price for the configured display currency
// GET /api/v1/wallet/price
func (h *WalletHandler) GetPrice(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"price":    h.prices.CurrentPrice(),
		"currency": h.prices.Currency(),
		"symbol":   price.Symbol(h.prices.Currency()),
	})
}
