package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Kaysanshaikh/HealthLedger/internal/access"
	"github.com/Kaysanshaikh/HealthLedger/internal/api/middleware"
	"github.com/Kaysanshaikh/HealthLedger/internal/api/rest"
	"github.com/Kaysanshaikh/HealthLedger/internal/auth"
	"github.com/Kaysanshaikh/HealthLedger/internal/logger"
	"github.com/Kaysanshaikh/HealthLedger/internal/records"
	"github.com/Kaysanshaikh/HealthLedger/internal/store"
	syncengine "github.com/Kaysanshaikh/HealthLedger/internal/sync"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	gate       auth.Gate
	reconciler syncengine.Reconciler
	records    records.Service
	access     access.Engine
	store      store.Store
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, gate auth.Gate, reconciler syncengine.Reconciler, recordsSvc records.Service, accessEngine access.Engine, cacheStore store.Store) *Server {
	return &Server{
		config:     cfg,
		gate:       gate,
		reconciler: reconciler,
		records:    recordsSvc,
		access:     accessEngine,
		store:      cacheStore,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	// Create REST handler
	restHandler := rest.NewHandler(s.gate, s.reconciler, s.records, s.access, s.store)

	// Setup REST routes
	rest.SetupRoutes(router, restHandler, s.gate)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
