package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"grana/internal/bot"
	chatamqp "grana/internal/chat/amqp"
	"grana/internal/config"
	"grana/internal/ledger"
	"grana/internal/ledger/memory"
	"grana/internal/ledger/sqlite"
	applog "grana/internal/log"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	logger.Info("Starting grana-worker")

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

	client, err := chatamqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPInboundQueue, cfg.AMQPReplyQueue, logger)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", applog.FieldError, err)
		os.Exit(1)
	}
	defer client.Close()

	assistant := bot.New(store, logger, bot.Config{
		DelayMin: cfg.ReplyDelayMin,
		DelayMax: cfg.ReplyDelayMax,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return client.Consume(ctx, assistant)
	})
	g.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		return nil
	})

	logger.Info("Assistente financeiro pronto!",
		applog.FieldExchange, cfg.AMQPExchange,
		applog.FieldQueue, cfg.AMQPInboundQueue,
		applog.FieldBackend, cfg.LedgerBackend)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker error", applog.FieldError, err)
		os.Exit(1)
	}

	logger.Info("Worker stopped gracefully")
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
