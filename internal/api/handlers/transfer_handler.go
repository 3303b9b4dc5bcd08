package handlers

import (
	"errors"
	"net/http"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/gin-gonic/gin"

	"github.com/thanhnp/wallet-apis/internal/models"
	"github.com/thanhnp/wallet-apis/internal/storage"
	"github.com/thanhnp/wallet-apis/internal/unit"
	"github.com/thanhnp/wallet-apis/internal/wallet"
)

// TransferHandler handles simulated transfer API requests
type TransferHandler struct {
	service *wallet.Service
}

// NewTransferHandler creates a new TransferHandler
func NewTransferHandler(service *wallet.Service) *TransferHandler {
	return &TransferHandler{service: service}
}

// createTransferRequest is the body of POST /transfers. Amounts are in BTC.
type createTransferRequest struct {
	Recipient string  `json:"recipient" binding:"required"`
	AmountBTC float64 `json:"amount_btc" binding:"required"`
	FeeBTC    float64 `json:"fee_btc"`
}

// Create validates and records a new outgoing transfer
// POST /api/v1/wallet/transfers
func (h *TransferHandler) Create(c *gin.Context) {
	var req createTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Recipient format is the caller's responsibility, and the API layer is
	// that caller: reject anything that is not a valid mainnet address.
	if _, err := btcutil.DecodeAddress(req.Recipient, &chaincfg.MainNetParams); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipient address"})
		return
	}

	tx, err := h.service.CreateTransfer(req.Recipient, unit.ToSatoshis(req.AmountBTC), unit.ToSatoshis(req.FeeBTC))
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, wallet.ErrInsufficientFunds):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, tx)
}

// List returns all simulated transfers in insertion order
// GET /api/v1/wallet/transfers
func (h *TransferHandler) List(c *gin.Context) {
	txs, err := h.service.ListTransfers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if txs == nil {
		txs = []*models.SimulatedTransaction{}
	}

	c.JSON(http.StatusOK, gin.H{
		"count":     len(txs),
		"transfers": txs,
	})
}

// Clear removes every simulated transfer
// DELETE /api/v1/wallet/transfers
func (h *TransferHandler) Clear(c *gin.Context) {
	if err := h.service.ClearTransfers(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
