package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const queryWorkers = 3

func (s *Scheduler) startQueryWorkers(ctx context.Context, stats *sweepStats, queries chan query, fetchedAt time.Time) *sync.WaitGroup {
	var wg sync.WaitGroup

	for i := 0; i < queryWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for q := range queries {
				if err := s.runQuery(ctx, q, stats, fetchedAt); err != nil {
					s.logger.Error("query failed",
						zap.String("keyword", q.keyword),
						zap.String("state", q.state),
						zap.Error(err))
					continue
				}
				atomic.AddInt32(&stats.queriesRun, 1)
			}
		}()
	}

	return &wg
}

func (s *Scheduler) runQuery(ctx context.Context, q query, stats *sweepStats, fetchedAt time.Time) error {
	resp, err := s.client.Search(ctx, q.keyword, q.state)
	if err != nil {
		return err
	}

	// Overwrite the raw snapshot for this (state, keyword) cell; retention
	// cleanup prunes stale cells later.
	if err := s.snapshots.write(q.state, q.keyword, resp.Raw); err != nil {
		s.logger.Warn("failed to write raw snapshot",
			zap.String("keyword", q.keyword),
			zap.String("state", q.state),
			zap.Error(err))
	}

	for _, result := range resp.Results {
		posting := result.ToRawPosting(q.state, fetchedAt)
		if err := s.publisher.PublishRawPosting(ctx, posting); err != nil {
			atomic.AddInt32(&stats.publishFailures, 1)
			continue
		}
		atomic.AddInt32(&stats.postingsFetched, 1)
	}

	return nil
}
