package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/echoscript/EchoScript_Go/internal/auth"
	"github.com/echoscript/EchoScript_Go/internal/config"
	"github.com/echoscript/EchoScript_Go/internal/database"
	"github.com/echoscript/EchoScript_Go/internal/database/postgres"
	"github.com/echoscript/EchoScript_Go/internal/handler"
	"github.com/echoscript/EchoScript_Go/internal/logger"
	"github.com/echoscript/EchoScript_Go/internal/server"
	"github.com/echoscript/EchoScript_Go/internal/transcript"
	"github.com/echoscript/EchoScript_Go/internal/user"
)

const (
	dbMaxConnections = 10
	dbMaxIdleTime    = 5 * time.Minute
	dbMaxLifetime    = 30 * time.Minute
	shutdownTimeout  = 10 * time.Second
)

// @title EchoScript API
// @version 1.0
// @description Video transcription request intake service
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.Setup(os.Stdout, cfg.LogLevel)

	pool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConnections, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Migrate(pool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepository(pool)
	videoRepo := postgres.NewVideoRepository(pool)
	requestRepo := postgres.NewVideoRequestRepository(pool)

	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	tokens := auth.NewTokenManager([]byte(cfg.JWTSecret), cfg.TokenTTL)

	userService := user.NewService(userRepo, hasher, tokens)
	transcriptService := transcript.NewService(videoRepo, requestRepo)

	handler.InitValidator()

	srv := server.NewServer(cfg.Port, pool, tokens, userService, transcriptService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Server stopped")
	}
}
