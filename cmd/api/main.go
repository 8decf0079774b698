// Package main is the entry point for the Motorista Real API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/motorista-real/backend/config"
	"github.com/motorista-real/backend/internal/application/adapter"
	"github.com/motorista-real/backend/internal/infra/db"
	"github.com/motorista-real/backend/internal/infra/dependency"
	"github.com/motorista-real/backend/internal/integration/persistence"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Motorista Real API",
		"environment", cfg.Server.Environment,
		"store_backend", cfg.Store.Backend,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	store, storeHealthChecker, cleanup, err := openStore(cfg)
	if err != nil {
		slog.Error("Failed to open blob store", "backend", cfg.Store.Backend, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// Wire dependencies
	injector := dependency.NewInjector(cfg, store, storeHealthChecker)
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// openStore builds the blob store selected by STORE_BACKEND along with its
// health checker and a cleanup function for shutdown.
func openStore(cfg *config.Config) (adapter.BlobStore, func() bool, func(), error) {
	switch cfg.Store.Backend {
	case config.StoreBackendRedis:
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("invalid redis url: %w", err)
		}
		if cfg.Redis.Password != "" {
			opts.Password = cfg.Redis.Password
		}
		opts.DB = cfg.Redis.DB

		client := redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		slog.Info("Redis connection established", "db", cfg.Redis.DB)

		healthChecker := func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(ctx).Err() == nil
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				slog.Error("Failed to close redis connection", "error", err)
			}
		}
		return persistence.NewRedisStore(client, cfg.Store.KeyPrefix), healthChecker, cleanup, nil

	case config.StoreBackendPostgres:
		database, err := db.NewPostgresConnection(&cfg.Database)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := persistence.Migrate(database.DB()); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		slog.Info("Database migrations completed successfully")

		cleanup := func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}
		return persistence.NewGormStore(database.DB()), database.HealthCheck, cleanup, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
