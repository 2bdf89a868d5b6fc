// Package store persists clean postings, feature records, and monitoring
// alerts to ClickHouse.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"jobsignals/internal/models"
)

type Store struct {
	conn   clickhouse.Conn
	logger *zap.Logger
}

func New(conn clickhouse.Conn, logger *zap.Logger) *Store {
	return &Store{
		conn:   conn,
		logger: logger,
	}
}

// UpsertCleanPostings writes a batch of clean rows. ReplacingMergeTree on
// job_id makes reruns overwrite prior rows for the same posting.
func (s *Store) UpsertCleanPostings(ctx context.Context, postings []models.CleanPosting) error {
	if len(postings) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO job_postings_clean (
			job_id, source, fetched_at, posted_at, title, company, location_raw,
			city, state, url, salary_min, salary_max, salary_mid,
			description_clean, query_state
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare clean postings batch: %w", err)
	}

	for _, p := range postings {
		if err := batch.Append(
			p.JobID,
			p.Source,
			p.FetchedAt,
			p.PostedAt,
			p.Title,
			p.Company,
			p.LocationRaw,
			p.City,
			p.State,
			p.URL,
			p.SalaryMin,
			p.SalaryMax,
			p.SalaryMid,
			p.DescriptionClean,
			p.QueryState,
		); err != nil {
			return fmt.Errorf("append clean posting %s: %w", p.JobID, err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send clean postings batch: %w", err)
	}

	s.logger.Debug("upserted clean postings", zap.Int("count", len(postings)))
	return nil
}

// UpsertFeatures writes a batch of feature records, full overwrite per job_id.
func (s *Store) UpsertFeatures(ctx context.Context, records []models.FeatureRecord) error {
	if len(records) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO job_postings_features (
			job_id, extracted_at, state, city, role_family, seniority,
			is_remote, years_experience_min, skills, skills_count, top_skills,
			has_explicit_skills, role_baseline_skills
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare features batch: %w", err)
	}

	for _, r := range records {
		if err := batch.Append(
			r.JobID,
			r.ExtractedAt,
			r.State,
			r.City,
			r.RoleFamily,
			r.Seniority,
			r.IsRemote,
			r.YearsExperienceMin,
			r.Skills,
			int32(r.SkillsCount),
			r.TopSkills,
			r.HasExplicitSkills,
			r.RoleBaselineSkills,
		); err != nil {
			return fmt.Errorf("append feature record %s: %w", r.JobID, err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send features batch: %w", err)
	}

	s.logger.Debug("upserted feature records", zap.Int("count", len(records)))
	return nil
}

// ListCleanPostings reads stored clean rows for a full feature recompute.
func (s *Store) ListCleanPostings(ctx context.Context, limit int) ([]models.CleanPosting, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT job_id, source, fetched_at, posted_at, title, company,
		       location_raw, city, state, url, salary_min, salary_max,
		       salary_mid, description_clean, query_state
		FROM job_postings_clean FINAL
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query clean postings: %w", err)
	}
	defer rows.Close()

	var out []models.CleanPosting
	for rows.Next() {
		var p models.CleanPosting
		if err := rows.Scan(
			&p.JobID,
			&p.Source,
			&p.FetchedAt,
			&p.PostedAt,
			&p.Title,
			&p.Company,
			&p.LocationRaw,
			&p.City,
			&p.State,
			&p.URL,
			&p.SalaryMin,
			&p.SalaryMax,
			&p.SalaryMid,
			&p.DescriptionClean,
			&p.QueryState,
		); err != nil {
			return nil, fmt.Errorf("scan clean posting row: %w", err)
		}
		out = append(out, p)
	}

	return out, nil
}

// Alert is one monitoring finding.
type Alert struct {
	ID         uuid.UUID
	DetectedAt time.Time
	Type       string
	Severity   string
	Details    string
}

func (s *Store) InsertAlert(ctx context.Context, alert Alert) error {
	if err := s.conn.Exec(ctx, `
		INSERT INTO job_monitoring_alerts (id, detected_at, alert_type, severity, details)
		VALUES (?, ?, ?, ?, ?)
	`, alert.ID, alert.DetectedAt, alert.Type, alert.Severity, alert.Details); err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}

	s.logger.Warn("monitoring alert recorded",
		zap.String("type", alert.Type),
		zap.String("severity", alert.Severity),
		zap.String("details", alert.Details))
	return nil
}

// CountCleanSince reports how many clean rows were fetched after the cutoff.
func (s *Store) CountCleanSince(ctx context.Context, cutoff time.Time) (uint64, error) {
	var count uint64
	if err := s.conn.QueryRow(ctx, `
		SELECT count() FROM job_postings_clean FINAL WHERE fetched_at >= ?
	`, cutoff).Scan(&count); err != nil {
		return 0, fmt.Errorf("count clean postings: %w", err)
	}
	return count, nil
}

// DailyCount is the number of clean rows fetched on one day.
type DailyCount struct {
	Day   time.Time
	Count uint64
}

// DailyCleanCounts reports per-day clean row counts since the cutoff,
// oldest day first. Days with no rows are absent.
func (s *Store) DailyCleanCounts(ctx context.Context, since time.Time) ([]DailyCount, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT toDate(fetched_at) AS day, count() AS n
		FROM job_postings_clean FINAL
		WHERE fetched_at >= ?
		GROUP BY day
		ORDER BY day
	`, since)
	if err != nil {
		return nil, fmt.Errorf("query daily clean counts: %w", err)
	}
	defer rows.Close()

	var out []DailyCount
	for rows.Next() {
		var d DailyCount
		if err := rows.Scan(&d.Day, &d.Count); err != nil {
			return nil, fmt.Errorf("scan daily count row: %w", err)
		}
		out = append(out, d)
	}
	return out, nil
}

// CountFeatures reports the total number of feature rows.
func (s *Store) CountFeatures(ctx context.Context) (uint64, error) {
	var count uint64
	if err := s.conn.QueryRow(ctx, `
		SELECT count() FROM job_postings_features FINAL
	`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count feature records: %w", err)
	}
	return count, nil
}

// CountClean reports the total number of clean rows.
func (s *Store) CountClean(ctx context.Context) (uint64, error) {
	var count uint64
	if err := s.conn.QueryRow(ctx, `
		SELECT count() FROM job_postings_clean FINAL
	`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count clean postings: %w", err)
	}
	return count, nil
}
