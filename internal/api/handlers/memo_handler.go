package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thanhnp/wallet-apis/internal/storage"
)

// MemoHandler handles per-transaction memo API requests
type MemoHandler struct {
	memos *storage.MemoStore
}

// NewMemoHandler creates a new MemoHandler
func NewMemoHandler(memos *storage.MemoStore) *MemoHandler {
	return &MemoHandler{memos: memos}
}

// Get returns the memo for a transaction
// GET /api/v1/wallet/transactions/:txid/memo
func (h *MemoHandler) Get(c *gin.Context) {
	txid := c.Param("txid")

	memo, err := h.memos.Get(txid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"txid": txid,
		"memo": memo,
	})
}

// Put sets the memo for a transaction. An empty memo removes it.
// PUT /api/v1/wallet/transactions/:txid/memo
func (h *MemoHandler) Put(c *gin.Context) {
	txid := c.Param("txid")

	var req struct {
		Memo string `json:"memo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.memos.Set(txid, req.Memo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"txid": txid,
		"memo": req.Memo,
	})
}

// Delete removes the memo for a transaction
// DELETE /api/v1/wallet/transactions/:txid/memo
func (h *MemoHandler) Delete(c *gin.Context) {
	if err := h.memos.Delete(c.Param("txid")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
