package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"jobsignals/internal/errors"
	"jobsignals/internal/models"
	"jobsignals/internal/telemetry"
)

// RawPostingSubject carries freshly fetched postings from ingestion to the
// pipeline.
const RawPostingSubject = "jobs.raw.fetched"

const connectTimeout = 10 * time.Second

var tracer = telemetry.GetTracer("jobsignals/events")

type Publisher struct {
	nc     *nats.Conn
	logger *zap.Logger
}

func NewPublisher(natsURL string, logger *zap.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.Timeout(connectTimeout),
		nats.Name("jobsignals-ingestion"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
	}

	nc, err := nats.Connect(natsURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	return &Publisher{
		nc:     nc,
		logger: logger,
	}, nil
}

func (p *Publisher) PublishRawPosting(ctx context.Context, posting models.RawPosting) error {
	_, span := tracer.Start(ctx, "PublishRawPosting")
	defer span.End()

	data, err := json.Marshal(posting)
	if err != nil {
		span.RecordError(err)
		return errors.Internal("marshaling raw posting", err)
	}

	span.SetAttributes(
		telemetry.String("nats.subject", RawPostingSubject),
		telemetry.Int("message.size", len(data)),
	)

	if err := p.nc.Publish(RawPostingSubject, data); err != nil {
		span.RecordError(err)
		p.logger.Error("failed to publish raw posting",
			zap.String("job_id", posting.JobID),
			zap.Error(err))
		return errors.Internal("publishing raw posting", err)
	}

	p.logger.Debug("published raw posting",
		zap.String("job_id", posting.JobID),
		zap.String("title", posting.Title))
	return nil
}

func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
}
