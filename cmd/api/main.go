// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/glowcart-backend/internal/config"
	"github.com/your-org/glowcart-backend/internal/domain/cart"
	"github.com/your-org/glowcart-backend/internal/domain/catalog"
	"github.com/your-org/glowcart-backend/internal/domain/todo"
	"github.com/your-org/glowcart-backend/internal/infrastructure/database/redis"
	"github.com/your-org/glowcart-backend/internal/interfaces/http"
	"github.com/your-org/glowcart-backend/internal/pkg/kvstore"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := newLogger(cfg)
	logger.WithFields(logrus.Fields{
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
		"backend":     cfg.Storage.Backend,
	}).Infof("🚀 Starting %s", cfg.App.Name)

	// Load the embedded product catalog
	provider, err := catalog.NewProvider()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load product catalog")
	}
	logger.WithField("products", provider.Len()).Info("Product catalog loaded")

	// Select the key-value backend
	var (
		kv          kvstore.KV
		redisClient *redis.Client
	)
	switch cfg.Storage.Backend {
	case config.StorageBackendRedis:
		redisClient, err = redis.NewConnection(cfg)
		if err != nil {
			logger.WithError(err).Fatal("Failed to connect to Redis")
		}
		defer redisClient.Close()

		if err := redisClient.Health(); err != nil {
			logger.WithError(err).Fatal("Redis health check failed")
		}
		kv = redisClient
	case config.StorageBackendMemory:
		logger.Warn("Using in-memory storage; state will not survive restarts")
		kv = kvstore.NewMemory()
	}

	// Domain services notify the sync logger after every persisted change
	notifier := syncNotifier{logger: logger}
	cartService := cart.NewService(kv, provider, cfg.Storage.CartKey, notifier, logger)
	todoService := todo.NewService(kv, cfg.Storage.TodoKey, cfg.Storage.TodoFilterKey, notifier, logger)
	editor := todo.NewEditor(todoService)

	logger.Info("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(cfg, logger, provider, cartService, todoService, editor, redisClient)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.WithError(err).Fatal("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("👋 Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logger.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	logger.Info("✅ Server shutdown completed")
}

// newLogger builds the process-wide logrus logger from config.
func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}

// syncNotifier satisfies both cart.Notifier and todo.Notifier. Each
// persisted mutation announces its scope, which is what downstream
// consumers key their refreshes on.
type syncNotifier struct {
	logger *logrus.Logger
}

func (n syncNotifier) Changed(scope string) {
	n.logger.WithField("scope", scope).Debug("State changed")
}
