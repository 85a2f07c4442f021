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

	"sankalp/internal/config"
	"sankalp/internal/logging"
	"sankalp/internal/server"
	"sankalp/internal/services"
	"sankalp/internal/store"
	"sankalp/internal/submission"
)

const (
	shutdownTimeout = 30 * time.Second
	readTimeout     = 15 * time.Second
	writeTimeout    = 15 * time.Second
	idleTimeout     = 60 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.App, cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting",
		zap.Bool("debug", cfg.App.Debug),
		zap.String("addr", cfg.App.Addr()),
		zap.String("data_dir", cfg.Storage.DataDir),
	)

	st, err := store.OpenOS(cfg.Storage.DataDir, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	// Create service instances
	forms := services.NewFormService(submission.NewRegistry(st), logger)
	health := services.NewHealthService(st, cfg.App.Name)

	httpServer := &http.Server{
		Addr:         cfg.App.Addr(),
		Handler:      server.New(cfg, forms, health, logger),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
		ErrorLog:     zap.NewStdLog(logger.Named("http")),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	// Wait for interrupt signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		logger.Info("starting graceful shutdown", zap.Stringer("signal", sig))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		if errors.Is(err, context.DeadlineExceeded) {
			_ = httpServer.Close()
		}
	}

	logger.Info("server shutdown complete")
	return nil
}
