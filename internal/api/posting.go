package api

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"jobsignals/internal/models"
)

var jobIDNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// JobID derives a stable UUID for a source posting. Deterministic, so reruns
// over the same source data land on the same primary key.
func JobID(source, sourceJobID string) string {
	return uuid.NewSHA1(jobIDNamespace, []byte(source+":"+sourceJobID)).String()
}

// ToRawPosting converts one search result into the pipeline's raw posting
// model, tagged with the state the query was scoped to.
func (r SearchResult) ToRawPosting(queryState string, fetchedAt time.Time) models.RawPosting {
	rawJSON, _ := json.Marshal(r)

	return models.RawPosting{
		JobID:       JobID(sourceName, r.ID),
		Source:      sourceName,
		SourceJobID: r.ID,
		FetchedAt:   fetchedAt,
		Title:       r.Title,
		Company:     r.Company.DisplayName,
		Location:    r.Location.DisplayName,
		Description: r.Description,
		PostedAt:    r.Created,
		URL:         r.RedirectURL,
		SalaryMin:   r.SalaryMin.Value,
		SalaryMax:   r.SalaryMax.Value,
		QueryState:  queryState,
		RawJSON:     string(rawJSON),
	}
}
