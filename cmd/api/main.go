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

	"github.com/Kaysanshaikh/HealthLedger/internal/access"
	"github.com/Kaysanshaikh/HealthLedger/internal/adapter"
	"github.com/Kaysanshaikh/HealthLedger/internal/api/server"
	"github.com/Kaysanshaikh/HealthLedger/internal/auth"
	"github.com/Kaysanshaikh/HealthLedger/internal/config"
	"github.com/Kaysanshaikh/HealthLedger/internal/contentstore"
	"github.com/Kaysanshaikh/HealthLedger/internal/ledger"
	"github.com/Kaysanshaikh/HealthLedger/internal/logger"
	"github.com/Kaysanshaikh/HealthLedger/internal/messaging"
	"github.com/Kaysanshaikh/HealthLedger/internal/providers/jetstream"
	"github.com/Kaysanshaikh/HealthLedger/internal/records"
	"github.com/Kaysanshaikh/HealthLedger/internal/store"
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
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
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
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting HealthLedger API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}

	// Run schema migrations
	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Connect to the ledger
	ledgerClient, err := ledger.Dial(ctx, adapter.NewEthClientDialer(), cfg.Ledger.RPCURL, cfg.Ledger.ContractAddress, cfg.Ledger.CallTimeout)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to ledger RPC", zap.Error(err), zap.String("rpc_url", cfg.Ledger.RPCURL))
	}
	defer ledgerClient.Close()
	logger.InfoCtx(ctx, "Connected to ledger",
		zap.String("contract", cfg.Ledger.ContractAddress),
		zap.Uint64("chain_id", cfg.Ledger.ChainID),
	)

	// Connect to NATS JetStream when configured; events are best-effort
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

	// Content store client
	contentClient := contentstore.NewClient(adapter.NewHTTPClient(30*time.Second), contentstore.Config{
		APIURL:            cfg.ContentStore.APIURL,
		APIKey:            cfg.ContentStore.APIKey,
		APISecret:         cfg.ContentStore.APISecret,
		Gateways:          cfg.ContentStore.Gateways,
		MaxUploadSize:     cfg.ContentStore.MaxUploadSize,
		AllowedExtensions: cfg.ContentStore.AllowedExtensions,
	})

	// Domain services
	reconciler := syncengine.NewReconciler(ledgerClient, dataStore, publisher)
	accessEngine := access.NewEngine(dataStore, publisher)
	recordsService := records.NewService(dataStore, reconciler, contentClient, accessEngine)

	gate, err := auth.NewGate(auth.Config{
		JWTSecret:     cfg.Auth.JWTSecret,
		TokenTTL:      cfg.Auth.TokenTTL,
		AdminAPIKey:   cfg.Auth.AdminAPIKey,
		AdminSecret:   cfg.Auth.AdminSecret,
		AdminTokenTTL: cfg.Auth.AdminTokenTTL,
	}, reconciler, ledgerClient, adapter.NewClock())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create auth gate", zap.Error(err))
	}

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Create and start server
	srv := server.New(serverConfig, gate, reconciler, recordsService, accessEngine, dataStore)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
