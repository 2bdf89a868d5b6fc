// Package scheduler drives the periodic ingestion sweep over the
// keyword x state search grid.
package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"jobsignals/internal/api"
	"jobsignals/internal/config"
	"jobsignals/internal/errors"
	"jobsignals/internal/events"
	"jobsignals/internal/telemetry"
)

var tracer = telemetry.GetTracer("jobsignals/scheduler")

type Scheduler struct {
	client    api.JobSearchClient
	publisher *events.Publisher
	snapshots *snapshotWriter
	logger    *zap.Logger
	config    *config.Config
	mutex     sync.Mutex
	isActive  bool
}

func New(client api.JobSearchClient, publisher *events.Publisher, logger *zap.Logger, cfg *config.Config) *Scheduler {
	return &Scheduler{
		client:    client,
		publisher: publisher,
		snapshots: newSnapshotWriter(cfg.RawDir, logger),
		logger:    logger,
		config:    cfg,
	}
}

// Start runs one sweep immediately, then one per polling interval until the
// context is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mutex.Lock()
	if s.isActive {
		s.mutex.Unlock()
		return nil
	}
	s.isActive = true
	s.mutex.Unlock()

	ticker := time.NewTicker(s.config.PollingInterval)
	defer ticker.Stop()

	if err := s.sweep(ctx); err != nil {
		s.logger.Error("initial sweep failed", zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.sweep(ctx); err != nil {
				s.logger.Error("periodic sweep failed", zap.Error(err))
			}
		}
	}
}

func (s *Scheduler) Stop() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.isActive = false
}

type query struct {
	keyword string
	state   string
}

type sweepStats struct {
	queriesRun      int32
	postingsFetched int32
	publishFailures int32
}

// sweep walks the full search grid with a small worker pool. Queries are
// independent, so a failed query is logged and the sweep continues.
func (s *Scheduler) sweep(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Scheduler.sweep")
	defer span.End()

	fetchedAt := time.Now().UTC()
	s.logger.Info("starting ingestion sweep",
		zap.Strings("keywords", s.config.Keywords),
		zap.Strings("states", s.config.QueryStates))

	queries := make(chan query)
	stats := &sweepStats{}

	wg := s.startQueryWorkers(ctx, stats, queries, fetchedAt)

	for _, state := range s.config.QueryStates {
		for _, keyword := range s.config.Keywords {
			select {
			case <-ctx.Done():
				close(queries)
				wg.Wait()
				return ctx.Err()
			case queries <- query{keyword: keyword, state: state}:
			}
		}
	}
	close(queries)
	wg.Wait()

	span.SetAttributes(
		telemetry.Int("sweep.queries", int(stats.queriesRun)),
		telemetry.Int("sweep.postings", int(stats.postingsFetched)),
	)
	s.logger.Info("ingestion sweep complete",
		zap.Int32("queries", stats.queriesRun),
		zap.Int32("postings", stats.postingsFetched),
		zap.Int32("publish_failures", stats.publishFailures))

	if stats.queriesRun == 0 {
		return errors.Unavailable("no queries completed in sweep", nil)
	}
	return nil
}
