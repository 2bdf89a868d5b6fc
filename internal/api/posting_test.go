package api

import (
	"encoding/json"
	"testing"
	"time"
)

func TestJobIDDeterministic(t *testing.T) {
	a := JobID("adzuna", "12345")
	b := JobID("adzuna", "12345")
	if a != b {
		t.Errorf("JobID not deterministic: %s != %s", a, b)
	}
	if JobID("adzuna", "12346") == a {
		t.Error("distinct source ids produced the same JobID")
	}
	if JobID("other", "12345") == a {
		t.Error("distinct sources produced the same JobID")
	}
}

func TestToRawPosting(t *testing.T) {
	payload := `{
		"id": "999",
		"title": "Data Analyst",
		"company": {"display_name": "Acme"},
		"location": {"display_name": "Dallas, Texas"},
		"description": "SQL required",
		"redirect_url": "https://example.com/999",
		"salary_min": 80000,
		"salary_max": 100000
	}`

	var result SearchResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}

	fetched := time.Now().UTC()
	raw := result.ToRawPosting("Texas", fetched)

	if raw.SourceJobID != "999" || raw.Source != "adzuna" {
		t.Errorf("source identity wrong: %+v", raw)
	}
	if raw.JobID != JobID("adzuna", "999") {
		t.Errorf("JobID mismatch: %s", raw.JobID)
	}
	if raw.Title != "Data Analyst" || raw.Company != "Acme" || raw.Location != "Dallas, Texas" {
		t.Errorf("fields not mapped: %+v", raw)
	}
	if raw.SalaryMin == nil || *raw.SalaryMin != 80000 {
		t.Errorf("SalaryMin = %v", raw.SalaryMin)
	}
	if raw.QueryState != "Texas" || !raw.FetchedAt.Equal(fetched) {
		t.Errorf("query context not carried: %+v", raw)
	}
	if raw.RawJSON == "" {
		t.Error("RawJSON empty")
	}
}

func TestFlexFloatTolerance(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    *float64
	}{
		{"number", `{"salary_min": 72500.5}`, f64(72500.5)},
		{"string number", `{"salary_min": "72500.5"}`, f64(72500.5)},
		{"garbage", `{"salary_min": "competitive"}`, nil},
		{"null", `{"salary_min": null}`, nil},
		{"absent", `{}`, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var result SearchResult
			if err := json.Unmarshal([]byte(tc.payload), &result); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			got := result.SalaryMin.Value
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			if got != nil && *got != *tc.want {
				t.Errorf("got %v, want %v", *got, *tc.want)
			}
		})
	}
}

func f64(v float64) *float64 { return &v }
