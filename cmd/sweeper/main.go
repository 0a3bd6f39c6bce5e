package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Kaysanshaikh/HealthLedger/internal/adapter"
	"github.com/Kaysanshaikh/HealthLedger/internal/config"
	"github.com/Kaysanshaikh/HealthLedger/internal/ledger"
	"github.com/Kaysanshaikh/HealthLedger/internal/logger"
	"github.com/Kaysanshaikh/HealthLedger/internal/messaging"
	"github.com/Kaysanshaikh/HealthLedger/internal/providers/jetstream"
	"github.com/Kaysanshaikh/HealthLedger/internal/store"
	"github.com/Kaysanshaikh/HealthLedger/internal/sweeper"
	syncengine "github.com/Kaysanshaikh/HealthLedger/internal/sync"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting HealthLedger cache resync sweeper")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Connect to the ledger
	ledgerClient, err := ledger.Dial(ctx, adapter.NewEthClientDialer(), cfg.Ledger.RPCURL, cfg.Ledger.ContractAddress, cfg.Ledger.CallTimeout)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to ledger RPC", zap.Error(err), zap.String("rpc_url", cfg.Ledger.RPCURL))
	}
	defer ledgerClient.Close()
	logger.InfoCtx(ctx, "Connected to ledger", zap.String("contract", cfg.Ledger.ContractAddress))

	// Connect to NATS JetStream when configured
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), adapter.NewJSON())
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))
	} else {
		publisher = messaging.NewNoopPublisher()
		logger.WarnCtx(ctx, "NATS URL not configured, events will be discarded")
	}
	defer publisher.Close()

	// Reconciler driving each resync
	reconciler := syncengine.NewReconciler(ledgerClient, dataStore, publisher)

	// Create the sweeper
	resync := sweeper.NewResyncSweeper(&sweeper.ResyncSweeperConfig{
		BatchSize:      cfg.BatchSize,
		WorkerPoolSize: cfg.Worker.WorkerPoolSize,
		QueueSize:      cfg.Worker.WorkerQueueSize,
	}, dataStore, reconciler, adapter.NewClock())

	// Start sweeper in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := resync.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully stop the sweeper
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", resync.Name()))
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Stopping sweeper...")
	if err := resync.Stop(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Sweeper forced to stop", zap.Error(err))
	}
	cancel()

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("Sweeper stopped")
}
