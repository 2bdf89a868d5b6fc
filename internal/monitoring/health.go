// Package monitoring checks pipeline health and prunes aged raw snapshots.
package monitoring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jobsignals/internal/store"
)

const (
	AlertTypeStaleIngestion  = "STALE_INGESTION"
	AlertTypeFeatureCoverage = "LOW_FEATURE_COVERAGE"
	AlertTypeVolumeAnomaly   = "VOLUME_ANOMALY"

	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// coverage below this ratio of clean rows with feature rows raises an alert
const minFeatureCoverage = 0.95

// today's ingest volume outside this band around the trailing daily average
// raises an alert
const (
	volumeDropRatio  = 0.5
	volumeSpikeRatio = 2.0
	volumeWindowDays = 7
)

type Checker struct {
	store  *store.Store
	logger *zap.Logger
}

func NewChecker(st *store.Store, logger *zap.Logger) *Checker {
	return &Checker{
		store:  st,
		logger: logger,
	}
}

// Run executes all health checks, recording an alert row per finding.
// Returns the number of alerts raised.
func (c *Checker) Run(ctx context.Context) (int, error) {
	alerts := 0

	raised, err := c.checkIngestionFreshness(ctx)
	if err != nil {
		return alerts, err
	}
	alerts += raised

	raised, err = c.checkFeatureCoverage(ctx)
	if err != nil {
		return alerts, err
	}
	alerts += raised

	raised, err = c.checkVolumeAnomaly(ctx)
	if err != nil {
		return alerts, err
	}
	alerts += raised

	c.logger.Info("health checks complete", zap.Int("alerts", alerts))
	return alerts, nil
}

func (c *Checker) checkIngestionFreshness(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().Add(-24 * time.Hour)
	count, err := c.store.CountCleanSince(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	alert := store.Alert{
		ID:         uuid.New(),
		DetectedAt: time.Now().UTC(),
		Type:       AlertTypeStaleIngestion,
		Severity:   SeverityCritical,
		Details:    "no postings ingested in the last 24h",
	}
	if err := c.store.InsertAlert(ctx, alert); err != nil {
		return 0, err
	}
	return 1, nil
}

func (c *Checker) checkVolumeAnomaly(ctx context.Context) (int, error) {
	since := time.Now().UTC().AddDate(0, 0, -(volumeWindowDays + 1))
	counts, err := c.store.DailyCleanCounts(ctx, since)
	if err != nil {
		return 0, err
	}
	if len(counts) < 2 {
		return 0, nil
	}

	today := counts[len(counts)-1].Count
	history := make([]uint64, 0, len(counts)-1)
	for _, d := range counts[:len(counts)-1] {
		history = append(history, d.Count)
	}

	details, anomalous := volumeAnomaly(today, history)
	if !anomalous {
		return 0, nil
	}

	alert := store.Alert{
		ID:         uuid.New(),
		DetectedAt: time.Now().UTC(),
		Type:       AlertTypeVolumeAnomaly,
		Severity:   SeverityWarning,
		Details:    details,
	}
	if err := c.store.InsertAlert(ctx, alert); err != nil {
		return 0, err
	}
	return 1, nil
}

// volumeAnomaly compares today's ingest volume against the trailing daily
// average. An empty or all-zero history yields no verdict.
func volumeAnomaly(today uint64, history []uint64) (string, bool) {
	if len(history) == 0 {
		return "", false
	}
	var total uint64
	for _, n := range history {
		total += n
	}
	avg := float64(total) / float64(len(history))
	if avg == 0 {
		return "", false
	}

	ratio := float64(today) / avg
	switch {
	case ratio < volumeDropRatio:
		return fmt.Sprintf("ingest volume dropped to %.0f%% of the %d-day average (%d vs %.1f)",
			ratio*100, len(history), today, avg), true
	case ratio > volumeSpikeRatio:
		return fmt.Sprintf("ingest volume spiked to %.0f%% of the %d-day average (%d vs %.1f)",
			ratio*100, len(history), today, avg), true
	}
	return "", false
}

func (c *Checker) checkFeatureCoverage(ctx context.Context) (int, error) {
	clean, err := c.store.CountClean(ctx)
	if err != nil {
		return 0, err
	}
	if clean == 0 {
		return 0, nil
	}

	featured, err := c.store.CountFeatures(ctx)
	if err != nil {
		return 0, err
	}

	coverage := float64(featured) / float64(clean)
	if coverage >= minFeatureCoverage {
		return 0, nil
	}

	alert := store.Alert{
		ID:         uuid.New(),
		DetectedAt: time.Now().UTC(),
		Type:       AlertTypeFeatureCoverage,
		Severity:   SeverityWarning,
		Details: fmt.Sprintf("feature coverage %.1f%% (%d of %d clean rows)",
			coverage*100, featured, clean),
	}
	if err := c.store.InsertAlert(ctx, alert); err != nil {
		return 0, err
	}
	return 1, nil
}
