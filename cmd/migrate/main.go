package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"jobsignals/internal/config"
	"jobsignals/internal/database"
	"jobsignals/internal/store/schema"
	"jobsignals/internal/store/schema/migrations"
)

func main() {
	logger, err := zap.NewDevelopment()
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

	migrator := schema.NewMigrator(db.Conn(), logger)

	if err := migrator.CreateMigrationsTable(ctx); err != nil {
		logger.Fatal("failed to create migrations table", zap.Error(err))
	}

	applied, err := migrator.GetAppliedMigrations(ctx)
	if err != nil {
		logger.Fatal("failed to get applied migrations", zap.Error(err))
	}

	for _, migration := range migrations.All {
		if _, ok := applied[migration.Version]; ok {
			logger.Info("migration already applied",
				zap.Int("version", migration.Version),
				zap.String("description", migration.Description))
			continue
		}

		logger.Info("applying migration",
			zap.Int("version", migration.Version),
			zap.String("description", migration.Description))

		if err := migrator.ApplyMigration(ctx, migration); err != nil {
			logger.Fatal("failed to apply migration",
				zap.Int("version", migration.Version),
				zap.Error(err))
		}
	}

	logger.Info("all migrations completed successfully")
}
