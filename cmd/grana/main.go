package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"grana/internal/bot"
	"grana/internal/chat/console"
	"grana/internal/config"
	"grana/internal/ledger"
	"grana/internal/ledger/memory"
	"grana/internal/ledger/sqlite"
	applog "grana/internal/log"
)

func main() {
	// Load .env file for local development (ignore errors elsewhere)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}

	store, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize ledger", applog.FieldError, err, applog.FieldBackend, cfg.LedgerBackend)
		os.Exit(1)
	}
	defer store.Close()

	assistant := bot.New(store, logger, bot.Config{
		DelayMin: cfg.ReplyDelayMin,
		DelayMax: cfg.ReplyDelayMax,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gateway := console.New(assistant, logger)
	logger.Info("Starting grana console gateway", applog.FieldBackend, cfg.LedgerBackend)
	if err := gateway.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Gateway error", applog.FieldError, err)
		os.Exit(1)
	}

	logger.Info("Assistant stopped")
}

func openStore(cfg *config.Config, logger *applog.Logger) (ledger.Store, error) {
	switch cfg.LedgerBackend {
	case "sqlite":
		logger.Info("Initialized sqlite ledger backend", "dsn", cfg.SQLiteDSN)
		return sqlite.Open(cfg.SQLiteDSN)
	default:
		logger.Info("Initialized memory ledger backend")
		return memory.New(), nil
	}
}
