package migrations

import "jobsignals/internal/store/schema"

// ReplacingMergeTree keyed on job_id gives replace-on-conflict semantics:
// rerunning a stage rewrites the whole row for each job.

var CreateCleanPostingsTable = schema.Migration{
	Version:     1,
	Description: "Create job_postings_clean table",
	Up: `
		CREATE TABLE IF NOT EXISTS job_postings_clean (
			job_id String,
			source String,
			fetched_at DateTime,
			posted_at Nullable(DateTime),
			title String,
			company String,
			location_raw String,
			city Nullable(String),
			state Nullable(String),
			url String,
			salary_min Nullable(Float64),
			salary_max Nullable(Float64),
			salary_mid Nullable(Float64),
			description_clean Nullable(String),
			query_state String,
			PRIMARY KEY (job_id)
		) ENGINE = ReplacingMergeTree(fetched_at)
		ORDER BY (job_id)
		SETTINGS index_granularity = 8192
	`,
	Down: `DROP TABLE IF EXISTS job_postings_clean`,
}

var CreateFeaturesTable = schema.Migration{
	Version:     2,
	Description: "Create job_postings_features table",
	Up: `
		CREATE TABLE IF NOT EXISTS job_postings_features (
			job_id String,
			extracted_at DateTime,
			state Nullable(String),
			city Nullable(String),
			role_family String,
			seniority String,
			is_remote Bool,
			years_experience_min Nullable(Decimal(5, 2)),
			skills Array(String),
			skills_count Int32,
			top_skills Array(String),
			has_explicit_skills Bool,
			role_baseline_skills Array(String),
			PRIMARY KEY (job_id)
		) ENGINE = ReplacingMergeTree(extracted_at)
		ORDER BY (job_id)
		SETTINGS index_granularity = 8192
	`,
	Down: `DROP TABLE IF EXISTS job_postings_features`,
}

var CreateMonitoringAlertsTable = schema.Migration{
	Version:     3,
	Description: "Create job_monitoring_alerts table",
	Up: `
		CREATE TABLE IF NOT EXISTS job_monitoring_alerts (
			id UUID,
			detected_at DateTime,
			alert_type String,
			severity String,
			details String,
			PRIMARY KEY (id)
		) ENGINE = MergeTree()
		ORDER BY (id)
		SETTINGS index_granularity = 8192
	`,
	Down: `DROP TABLE IF EXISTS job_monitoring_alerts`,
}

// All lists migrations in apply order.
var All = []schema.Migration{
	CreateCleanPostingsTable,
	CreateFeaturesTable,
	CreateMonitoringAlertsTable,
}
