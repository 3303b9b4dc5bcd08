package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thanhnp/wallet-apis/internal/api"
	"github.com/thanhnp/wallet-apis/internal/clock"
	"github.com/thanhnp/wallet-apis/internal/config"
	"github.com/thanhnp/wallet-apis/internal/ledger"
	"github.com/thanhnp/wallet-apis/internal/price"
	"github.com/thanhnp/wallet-apis/internal/storage"
	"github.com/thanhnp/wallet-apis/internal/wallet"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Println("Starting Wallet APIs server...")

	// Open the wallet database
	log.Printf("Opening Pebble database at %s", cfg.Pebble.Path)
	db, err := storage.NewPebbleDB(cfg.Pebble.Path)
	if err != nil {
		log.Fatalf("Failed to open Pebble database: %v", err)
	}

	clk := clock.NewDefaultClock()

	// Wire the engine: transfer store, historical generator, confirmation
	// scheduler, and the wallet service on top
	transferStore := storage.NewTransferStore(db, clk)
	memoStore := storage.NewMemoStore(db)
	scheduler := wallet.NewScheduler(transferStore, clk)
	service := wallet.NewService(transferStore, ledger.NewGenerator(), scheduler, clk, cfg.ConfirmDelay())

	// Re-arm confirmations for transfers left pending by a previous run
	if err := service.ResumePending(); err != nil {
		log.Printf("Warning: Failed to resume pending transfers: %v", err)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start the price feed
	provider := price.NewProvider(price.NewClient(cfg.Price.APIKey), cfg.Price.Currency, cfg.PollInterval())
	provider.Start(ctx)
	log.Printf("Price feed started (%s, every %s)", cfg.Price.Currency, cfg.PollInterval())

	// Initialize API router
	router := api.NewRouter(service, memoStore, provider, clk)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router.Engine(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start HTTP server in goroutine
	go func() {
		log.Printf("HTTP server listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	// Stop background workers. Unfired confirmations are abandoned; the
	// transfers stay pending and are re-armed on the next start.
	cancel()
	provider.Stop()
	scheduler.Stop()

	// Close the database
	if err := db.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
