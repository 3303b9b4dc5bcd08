package api

import (
	"github.com/gin-gonic/gin"

	"github.com/thanhnp/wallet-apis/internal/api/handlers"
	"github.com/thanhnp/wallet-apis/internal/api/middleware"
	"github.com/thanhnp/wallet-apis/internal/clock"
	"github.com/thanhnp/wallet-apis/internal/storage"
	"github.com/thanhnp/wallet-apis/internal/wallet"
)

// PriceProvider supplies the current display-currency price.
type PriceProvider interface {
	CurrentPrice() float64
	Currency() string
}

// Router wraps the Gin router with handlers
type Router struct {
	engine          *gin.Engine
	walletHandler   *handlers.WalletHandler
	transferHandler *handlers.TransferHandler
	memoHandler     *handlers.MemoHandler
}

// NewRouter creates a new Router with all handlers
func NewRouter(
	service *wallet.Service,
	memos *storage.MemoStore,
	prices PriceProvider,
	clk clock.Clock,
) *Router {
	gin.SetMode(gin.ReleaseMode)

	r := &Router{
		engine:          gin.New(),
		walletHandler:   handlers.NewWalletHandler(service, prices, clk),
		transferHandler: handlers.NewTransferHandler(service),
		memoHandler:     handlers.NewMemoHandler(memos),
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

// setupMiddleware configures middleware
func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger())
	r.engine.Use(middleware.CORS())
}

// setupRoutes configures API routes
func (r *Router) setupRoutes() {
	// Health check
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := r.engine.Group("/api/v1/wallet")
	{
		v1.GET("", r.walletHandler.Get)
		v1.GET("/ledger", r.walletHandler.GetLedger)
		v1.GET("/price", r.walletHandler.GetPrice)

		transfers := v1.Group("/transfers")
		{
			transfers.POST("", r.transferHandler.Create)
			transfers.GET("", r.transferHandler.List)
			transfers.DELETE("", r.transferHandler.Clear)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.GET("/:txid/memo", r.memoHandler.Get)
			transactions.PUT("/:txid/memo", r.memoHandler.Put)
			transactions.DELETE("/:txid/memo", r.memoHandler.Delete)
		}
	}
}

// Engine returns the underlying Gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
