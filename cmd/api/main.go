package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qa-banking-sandbox/config"
	httpHandler "qa-banking-sandbox/internal/adapter/http/handler"
	"qa-banking-sandbox/internal/adapter/http/middleware"
	"qa-banking-sandbox/internal/adapter/storage/memory"
	"qa-banking-sandbox/internal/core/ports"
	"qa-banking-sandbox/internal/service"
	"qa-banking-sandbox/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Bool("seeded", cfg.Bank.Seed).
		Msg("Starting QA Banking Sandbox")

	// Initialize the in-memory ledger store
	store := memory.NewStore(cfg.Bank.Seed)

	// Initialize business services
	policy := service.PolicyFromConfig(cfg.Bank)
	ledgerSvc := service.NewLedgerService(
		store.Accounts,
		store.Transactions,
		store.Recipients,
		store.Transactor,
		policy,
		log,
	)
	productSvc := service.NewProductService(store.Accounts, store.Requests, store.Transactor, log)
	reportingSvc := service.NewReportingService(
		store.Accounts,
		store.Transactions,
		store.Recipients,
		store.Cards,
		store.Requests,
	)

	// Initialize rate limit store
	var rateLimitStore *middleware.RateLimitStore
	if cfg.HTTP.RateLimit {
		rateLimitStore = middleware.NewRateLimitStore()
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		LedgerSvc:      ledgerSvc,
		ProductSvc:     productSvc,
		ReportingSvc:   reportingSvc,
		RateLimitStore: rateLimitStore,
		MaxBodyBytes:   cfg.HTTP.MaxBodyBytes,
		HealthCheckers: []ports.HealthChecker{memory.NewHealthCheck(store)},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
