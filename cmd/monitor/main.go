// The monitor binary runs the health checks once, prunes aged raw snapshots,
// and exits. Intended to run on a cron alongside the pipeline.
package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"jobsignals/internal/config"
	"jobsignals/internal/database"
	"jobsignals/internal/monitoring"
	"jobsignals/internal/store"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	ctx := context.Background()

	db, err := database.New(ctx, database.Options{
		DSN:             cfg.ClickHouseDSN,
		MaxOpenConns:    cfg.ClickHouseMaxOpenConns,
		MaxIdleConns:    cfg.ClickHouseMaxIdleConns,
		ConnMaxLifetime: cfg.ClickHouseConnMaxLife,
		Username:        cfg.ClickHouseUsername,
		Password:        cfg.ClickHousePassword,
		Database:        cfg.ClickHouseDatabase,
	}, logger)
	if err != nil {
		logger.Fatal("failed to connect to ClickHouse", zap.Error(err))
	}
	defer db.Close()

	checker := monitoring.NewChecker(store.New(db.Conn(), logger), logger)

	alerts, err := checker.Run(ctx)
	if err != nil {
		logger.Fatal("health checks failed", zap.Error(err))
	}

	deleted, kept, err := monitoring.CleanupRawSnapshots(cfg.RawDir, cfg.RetentionDays, logger)
	if err != nil {
		logger.Fatal("snapshot cleanup failed", zap.Error(err))
	}

	logger.Info("monitoring run complete",
		zap.Int("alerts", alerts),
		zap.Int("snapshots_deleted", deleted),
		zap.Int("snapshots_kept", kept))
}
