// Package processor runs one posting through the full derivation chain:
// parse, clean transform, feature extraction, persistence.
package processor

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"jobsignals/internal/config"
	"jobsignals/internal/errors"
	"jobsignals/internal/features"
	"jobsignals/internal/models"
	"jobsignals/internal/store"
	"jobsignals/internal/telemetry"
	"jobsignals/internal/transform"
)

var tracer = telemetry.GetTracer("jobsignals/processor")

type Processor struct {
	logger    *zap.Logger
	store     *store.Store
	extractor *features.Extractor
	config    *config.Config
}

func New(logger *zap.Logger, st *store.Store, extractor *features.Extractor, cfg *config.Config) *Processor {
	return &Processor{
		logger:    logger,
		store:     st,
		extractor: extractor,
		config:    cfg,
	}
}

// ProcessRawPosting handles one raw posting event end to end. The record is
// persisted whole or not at all; a failure anywhere drops the record and
// surfaces the error.
func (p *Processor) ProcessRawPosting(ctx context.Context, data []byte) error {
	ctx, span := tracer.Start(ctx, "ProcessRawPosting")
	defer span.End()

	var raw models.RawPosting
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.InvalidInput("unmarshaling raw posting", err)
	}
	span.SetAttributes(telemetry.String("job_id", raw.JobID))

	clean := transform.Clean(raw)
	record := p.extractor.Extract(clean, time.Now().UTC())

	if err := p.store.UpsertCleanPostings(ctx, []models.CleanPosting{clean}); err != nil {
		span.RecordError(err)
		return errors.Internal("storing clean posting", err)
	}
	if err := p.store.UpsertFeatures(ctx, []models.FeatureRecord{record}); err != nil {
		span.RecordError(err)
		return errors.Internal("storing feature record", err)
	}

	p.logger.Debug("processed posting",
		zap.String("job_id", raw.JobID),
		zap.String("role_family", record.RoleFamily),
		zap.Int("skills_count", record.SkillsCount))
	return nil
}

// RecomputeAll re-derives features for every stored clean posting. Full
// recomputation keeps feature rows consistent after a rule or dictionary
// change; the upsert overwrites prior rows per job_id.
func (p *Processor) RecomputeAll(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "RecomputeAll")
	defer span.End()

	postings, err := p.store.ListCleanPostings(ctx, p.config.RecomputeLimit)
	if err != nil {
		span.RecordError(err)
		return errors.Internal("listing clean postings", err)
	}
	span.SetAttributes(telemetry.Int("postings.count", len(postings)))
	p.logger.Info("recomputing features", zap.Int("postings", len(postings)))

	records := p.extractor.ExtractBatch(postings, time.Now().UTC())

	if err := p.store.UpsertFeatures(ctx, records); err != nil {
		span.RecordError(err)
		return errors.Internal("storing recomputed features", err)
	}

	p.logger.Info("feature recompute complete", zap.Int("records", len(records)))
	return nil
}
