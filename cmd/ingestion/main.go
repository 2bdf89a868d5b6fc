package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"jobsignals/internal/api"
	"jobsignals/internal/config"
	"jobsignals/internal/events"
	"jobsignals/internal/scheduler"
	"jobsignals/internal/telemetry"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			log.Printf("failed to sync logger: %v", err)
		}
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	logger.Info("starting ingestion service",
		zap.String("adzuna_base_url", cfg.AdzunaBaseURL),
		zap.Strings("keywords", cfg.Keywords),
		zap.Strings("states", cfg.QueryStates),
		zap.Duration("polling_interval", cfg.PollingInterval))

	shutdownTracing, err := telemetry.InitTracer(context.Background(), "jobsignals-ingestion", cfg.OTELCollectorURL)
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
	} else {
		defer shutdownTracing()
	}

	client, err := api.NewJobSearchClient(logger, cfg)
	if err != nil {
		logger.Fatal("failed to create search client", zap.Error(err))
	}

	publisher, err := events.NewPublisher(cfg.NATSURL, logger)
	if err != nil {
		logger.Fatal("failed to create NATS publisher", zap.Error(err))
	}
	defer publisher.Close()

	sched := scheduler.New(client, publisher, logger, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := sched.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("scheduler failed", zap.Error(err))
		}
	}()

	logger.Info("ingestion service started successfully")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	sched.Stop()
	logger.Info("shutdown complete")
}
