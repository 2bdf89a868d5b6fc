package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"jobsignals/internal/config"
	"jobsignals/internal/database"
	"jobsignals/internal/events"
	"jobsignals/internal/features"
	"jobsignals/internal/processor"
	"jobsignals/internal/skills"
	"jobsignals/internal/store"
	"jobsignals/internal/telemetry"
)

// registerTracing starts the OTLP trace exporter with the app. A collector
// that cannot be reached downgrades to the noop provider instead of blocking
// startup.
func registerTracing(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) {
	var shutdown func()
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s, err := telemetry.InitTracer(ctx, "jobsignals-pipeline", cfg.OTELCollectorURL)
			if err != nil {
				logger.Warn("tracing disabled", zap.Error(err))
				return nil
			}
			shutdown = s
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if shutdown != nil {
				shutdown()
			}
			return nil
		},
	})
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return zap.NewProduction()
}

func newNATSConnection(cfg *config.Config) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.Timeout(cfg.NATSConnTimeout),
		nats.Name("jobsignals-pipeline"),
		nats.RetryOnFailedConnect(true),
	}
	return nats.Connect(cfg.NATSURL, opts...)
}

func newClickHouseConnection(cfg *config.Config, logger *zap.Logger) (clickhouse.Conn, error) {
	db, err := database.New(context.Background(), database.Options{
		DSN:             cfg.ClickHouseDSN,
		MaxOpenConns:    cfg.ClickHouseMaxOpenConns,
		MaxIdleConns:    cfg.ClickHouseMaxIdleConns,
		ConnMaxLifetime: cfg.ClickHouseConnMaxLife,
		Username:        cfg.ClickHouseUsername,
		Password:        cfg.ClickHousePassword,
		Database:        cfg.ClickHouseDatabase,
	}, logger)
	if err != nil {
		return nil, err
	}
	return db.Conn(), nil
}

// newDictionary loads the skills config. A bad config is fatal: the pipeline
// must not run extraction without a valid dictionary.
func newDictionary(cfg *config.Config, logger *zap.Logger) (*skills.Dictionary, error) {
	dict, err := skills.Load(cfg.SkillsPath)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded skills dictionary",
		zap.String("path", cfg.SkillsPath),
		zap.Int("skills", dict.Len()))
	return dict, nil
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			newLogger,
			newNATSConnection,
			newClickHouseConnection,
			newDictionary,
			features.NewExtractor,
			store.New,
			processor.New,
			events.NewHandler,
		),
		fx.Invoke(
			registerTracing,
			func(handler *events.Handler, lc fx.Lifecycle) error {
				return handler.RegisterSubscriptions(lc)
			},
		),
	)

	startCtx := context.Background()
	if err := app.Start(startCtx); err != nil {
		log.Fatal(err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	stopCtx := context.Background()
	if err := app.Stop(stopCtx); err != nil {
		log.Fatal(err)
	}
}
