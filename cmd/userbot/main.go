package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amarnathcjd/gogram/telegram"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/afrinode-dev/userbot/internal/biz/domain"
	"github.com/afrinode-dev/userbot/internal/biz/usecase"
	"github.com/afrinode-dev/userbot/internal/conf"
	"github.com/afrinode-dev/userbot/internal/data"
	"github.com/afrinode-dev/userbot/internal/server"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := conf.LoadFromEnv()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if cfg.Debug {
		logger = logger.Level(zerolog.DebugLevel)
	}

	// Missing credentials are fatal at startup, not at first API call.
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	sourceStore, err := data.NewSourceStore(cfg.SourcesFile())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open source store")
	}
	stateStore, err := data.NewStateStore(cfg.StateDBPath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open state store")
	}

	client, err := telegram.NewClient(telegram.ClientConfig{
		AppID:         cfg.Telegram.AppID,
		AppHash:       cfg.Telegram.AppHash,
		SessionName:   cfg.Telegram.SessionFile,
		StringSession: cfg.Telegram.StringSession,
		LogLevel:      telegram.LogInfo,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create Telegram client")
	}

	if err := client.Connect(); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to Telegram")
	}
	// First run walks through the interactive phone/code/password login.
	if err := client.Start(); err != nil {
		logger.Fatal().Err(err).Msg("failed to authorize")
	}

	if me, err := client.GetMe(); err == nil {
		logger.Info().Int64("user_id", me.ID).Str("username", me.Username).
			Msg("logged in")
	}

	ctx := context.Background()
	messenger := data.NewMessengerRepo(client)

	registryUC := usecase.NewRegistryUsecase(sourceStore, cfg.Forward.InitialSources, logger)
	registryUC.Load(ctx)

	gate := domain.NewGate()
	routerUC := usecase.NewRouterUsecase(cfg.ToRouterConfig(), gate, registryUC, messenger, stateStore, logger)
	dispatcherUC := usecase.NewDispatcherUsecase(cfg.ToDispatcherConfig(), registryUC, gate, stateStore, messenger, routerUC, stateStore, logger)
	dispatcherUC.RestoreGate(ctx)

	srv := server.NewTelegramServer(client, routerUC, dispatcherUC, logger)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info().Msg("shutting down")
		srv.Stop()
		_ = stateStore.Close()
		os.Exit(0)
	}()

	logger.Info().Str("dest", cfg.Forward.DestChat).Msg("starting userbot")
	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}
