package events

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"jobsignals/internal/config"
	"jobsignals/internal/processor"
)

type Handler struct {
	logger    *zap.Logger
	nc        *nats.Conn
	processor *processor.Processor
	timeout   time.Duration
	sub       *nats.Subscription
}

func NewHandler(logger *zap.Logger, nc *nats.Conn, proc *processor.Processor, cfg *config.Config) *Handler {
	return &Handler{
		logger:    logger,
		nc:        nc,
		processor: proc,
		timeout:   cfg.ProcessingTimeout,
	}
}

func (h *Handler) RegisterSubscriptions(lc fx.Lifecycle) error {
	sub, err := h.nc.QueueSubscribe(RawPostingSubject, "jobsignals-pipeline", h.handleRawPosting)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", RawPostingSubject, err)
	}

	h.sub = sub
	h.logger.Info("registered NATS subscriptions", zap.String("subject", RawPostingSubject))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return h.sub.Unsubscribe()
		},
	})

	return nil
}

func (h *Handler) handleRawPosting(msg *nats.Msg) {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	ctx, span := tracer.Start(ctx, "handleRawPosting")
	defer span.End()

	if err := h.processor.ProcessRawPosting(ctx, msg.Data); err != nil {
		span.RecordError(err)
		h.logger.Error("failed to process raw posting",
			zap.Error(err),
			zap.String("subject", msg.Subject))
		return
	}

	h.logger.Debug("processed raw posting", zap.String("subject", msg.Subject))
}
