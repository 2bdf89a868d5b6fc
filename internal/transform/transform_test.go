package transform

import (
	"testing"
	"time"

	"jobsignals/internal/models"
)

func TestClean(t *testing.T) {
	min, max := 90000.0, 110000.0
	fetched := time.Now().UTC()

	raw := models.RawPosting{
		JobID:       "j1",
		Source:      "adzuna",
		FetchedAt:   fetched,
		Title:       "Data Analyst",
		Company:     "Acme",
		Location:    "Dallas, Texas",
		Description: "<p>Great role</p> with <b>SQL</b>",
		SalaryMin:   &min,
		SalaryMax:   &max,
		QueryState:  "Texas",
	}

	clean := Clean(raw)

	if clean.JobID != "j1" || clean.Source != "adzuna" || !clean.FetchedAt.Equal(fetched) {
		t.Errorf("identity fields not carried: %+v", clean)
	}
	if clean.City == nil || *clean.City != "Dallas" {
		t.Errorf("City = %v", clean.City)
	}
	if clean.State == nil || *clean.State != "Texas" {
		t.Errorf("State = %v", clean.State)
	}
	if clean.LocationRaw != "Dallas, Texas" {
		t.Errorf("LocationRaw = %q", clean.LocationRaw)
	}
	if clean.DescriptionClean == nil || *clean.DescriptionClean != "Great role with SQL" {
		t.Errorf("DescriptionClean = %v", clean.DescriptionClean)
	}
	if clean.SalaryMid == nil || *clean.SalaryMid != 100000.0 {
		t.Errorf("SalaryMid = %v", clean.SalaryMid)
	}
}

func TestCleanQueryStateFallback(t *testing.T) {
	clean := Clean(models.RawPosting{JobID: "j2", Location: "Austin", QueryState: "Texas"})
	if clean.State == nil || *clean.State != "Texas" {
		t.Errorf("State = %v, want fallback Texas", clean.State)
	}
	if clean.City == nil || *clean.City != "Austin" {
		t.Errorf("City = %v", clean.City)
	}
}

func TestCleanEmptyFields(t *testing.T) {
	clean := Clean(models.RawPosting{JobID: "j3"})

	if clean.City != nil || clean.State != nil {
		t.Errorf("expected nil location, got city=%v state=%v", clean.City, clean.State)
	}
	if clean.DescriptionClean != nil {
		t.Errorf("expected nil description, got %v", clean.DescriptionClean)
	}
	if clean.SalaryMid != nil {
		t.Errorf("expected nil salary mid, got %v", clean.SalaryMid)
	}
}

func TestCleanBatch(t *testing.T) {
	out := CleanBatch([]models.RawPosting{{JobID: "a"}, {JobID: "b"}})
	if len(out) != 2 || out[0].JobID != "a" || out[1].JobID != "b" {
		t.Errorf("CleanBatch = %+v", out)
	}
}
