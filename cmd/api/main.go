package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/denisok6893-rgb/portfolio-matching/internal/config"
	httpapi "github.com/denisok6893-rgb/portfolio-matching/internal/http"
	logpkg "github.com/denisok6893-rgb/portfolio-matching/internal/logger"
	"github.com/denisok6893-rgb/portfolio-matching/internal/matching"
	"github.com/denisok6893-rgb/portfolio-matching/internal/storage"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	opts := cfg.MatchOptions()
	logger.Info("Starting portfolio matching API",
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_path", cfg.Database.Path),
		zap.Float64("tolerance", opts.Tolerance),
		zap.Bool("ignore_location", opts.IgnoreLocation),
	)

	ctx := context.Background()

	store, err := storage.OpenSQLite(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		logger.Fatal("Failed to ensure schema", zap.Error(err))
	}
	if err := seed(ctx, store, cfg.Seed, logger); err != nil {
		logger.Fatal("Failed to seed database", zap.Error(err))
	}

	engine := matching.NewEngine(opts)
	srv := httpapi.NewServer(engine, store, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      srv.Routes(),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("API listening", zap.String("addr", addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}
	logger.Info("Server stopped")
}

// seed loads the configured JSON files into empty tables.
func seed(ctx context.Context, store *storage.SQLiteStore, cfg config.SeedConfig, logger *zap.Logger) error {
	if cfg.ListingsPath != "" {
		n, err := store.CountListings(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			items, err := storage.LoadListingsFromFile(cfg.ListingsPath)
			if err != nil {
				return err
			}
			if err := store.UpsertListings(ctx, items); err != nil {
				return fmt.Errorf("upsert listings: %w", err)
			}
			logger.Info("Seeded listings", zap.Int("count", len(items)), zap.String("path", cfg.ListingsPath))
		}
	}
	if cfg.RequestsPath != "" {
		n, err := store.CountRequests(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			items, err := storage.LoadRequestsFromFile(cfg.RequestsPath)
			if err != nil {
				return err
			}
			if err := store.UpsertRequests(ctx, items); err != nil {
				return fmt.Errorf("upsert requests: %w", err)
			}
			logger.Info("Seeded requests", zap.Int("count", len(items)), zap.String("path", cfg.RequestsPath))
		}
	}
	return nil
}
