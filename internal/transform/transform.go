// Package transform is the clean stage between raw ingestion and feature
// extraction: location parsing, description cleanup, salary midpoint.
package transform

import (
	"jobsignals/internal/location"
	"jobsignals/internal/models"
	"jobsignals/internal/textnorm"
)

// Clean derives a CleanPosting from a raw one. Pure and per-record; any field
// that cannot be derived stays nil rather than failing the record.
func Clean(raw models.RawPosting) models.CleanPosting {
	loc := location.ParseWithFallback(raw.Location, raw.QueryState)

	var desc *string
	if raw.Description != "" {
		desc = textnorm.CleanDescription(&raw.Description)
	}

	return models.CleanPosting{
		JobID:            raw.JobID,
		Source:           raw.Source,
		FetchedAt:        raw.FetchedAt,
		PostedAt:         raw.PostedAt,
		Title:            raw.Title,
		Company:          raw.Company,
		LocationRaw:      raw.Location,
		City:             loc.City,
		State:            loc.State,
		URL:              raw.URL,
		SalaryMin:        raw.SalaryMin,
		SalaryMax:        raw.SalaryMax,
		SalaryMid:        textnorm.SalaryMid(raw.SalaryMin, raw.SalaryMax),
		DescriptionClean: desc,
		QueryState:       raw.QueryState,
	}
}

// CleanBatch transforms a batch of raw postings record by record.
func CleanBatch(raws []models.RawPosting) []models.CleanPosting {
	out := make([]models.CleanPosting, 0, len(raws))
	for _, r := range raws {
		out = append(out, Clean(r))
	}
	return out
}
