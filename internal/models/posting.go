package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawPosting is one job posting as fetched from the source API, before any
// cleaning. Nullable fields use pointers so that "absent" survives the trip
// through JSON and the database.
type RawPosting struct {
	JobID       string     `json:"job_id"`
	Source      string     `json:"source"`
	SourceJobID string     `json:"source_job_id"`
	FetchedAt   time.Time  `json:"fetched_at"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	PostedAt    *time.Time `json:"posted_at,omitempty"`
	URL         string     `json:"url"`
	SalaryMin   *float64   `json:"salary_min,omitempty"`
	SalaryMax   *float64   `json:"salary_max,omitempty"`
	// QueryState is the state the search query that produced this posting was
	// scoped to. Used as a location fallback when the free-text location does
	// not parse.
	QueryState string `json:"query_state"`
	RawJSON    string `json:"raw_json,omitempty"`
}

// CleanPosting is the output of the clean-transform stage: parsed location,
// stripped description, salary midpoint.
type CleanPosting struct {
	JobID            string
	Source           string
	FetchedAt        time.Time
	PostedAt         *time.Time
	Title            string
	Company          string
	LocationRaw      string
	City             *string
	State            *string
	URL              string
	SalaryMin        *float64
	SalaryMax        *float64
	SalaryMid        *float64
	DescriptionClean *string
	QueryState       string
}

// FeatureRecord holds the derived signals for one posting. Recomputed in full
// on every run; consumers persist it keyed on JobID with replace-on-conflict
// semantics.
type FeatureRecord struct {
	JobID              string
	ExtractedAt        time.Time
	State              *string
	City               *string
	RoleFamily         string
	Seniority          string
	IsRemote           bool
	YearsExperienceMin *decimal.Decimal
	Skills             []string
	SkillsCount        int
	TopSkills          []string
	HasExplicitSkills  bool
	RoleBaselineSkills []string
}
