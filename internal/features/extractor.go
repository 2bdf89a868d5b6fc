// Package features derives the structured feature record for a posting from
// its cleaned text.
package features

import (
	"strings"
	"time"

	"jobsignals/internal/classify"
	"jobsignals/internal/experience"
	"jobsignals/internal/models"
	"jobsignals/internal/skills"
)

// Extractor is the feature-extraction engine. It holds only the compiled
// alias dictionary, which is read-only, so one Extractor may serve any number
// of concurrent workers.
type Extractor struct {
	dict *skills.Dictionary
}

func NewExtractor(dict *skills.Dictionary) *Extractor {
	return &Extractor{dict: dict}
}

// Extract computes the full feature record for one posting. It is a pure
// function of the posting and the dictionary: reruns over the same input
// yield identical records apart from the timestamp, and the record is
// produced whole or not at all.
func (e *Extractor) Extract(p models.CleanPosting, extractedAt time.Time) models.FeatureRecord {
	desc := ""
	if p.DescriptionClean != nil {
		desc = *p.DescriptionClean
	}
	blob := strings.Join([]string{p.Title, p.LocationRaw, desc}, "\n")

	roleFamily := classify.RoleFamily(p.Title)
	found, top := e.dict.Extract(blob)

	return models.FeatureRecord{
		JobID:              p.JobID,
		ExtractedAt:        extractedAt.UTC(),
		State:              p.State,
		City:               p.City,
		RoleFamily:         roleFamily,
		Seniority:          classify.Seniority(p.Title),
		IsRemote:           classify.IsRemote(blob),
		YearsExperienceMin: experience.MinYears(blob),
		Skills:             found,
		SkillsCount:        len(found),
		TopSkills:          top,
		HasExplicitSkills:  len(found) > 0,
		RoleBaselineSkills: classify.BaselineSkills(roleFamily),
	}
}

// ExtractBatch derives one feature record per posting, all stamped with the
// same extraction time. Records are independent; nothing here holds state
// across postings.
func (e *Extractor) ExtractBatch(postings []models.CleanPosting, extractedAt time.Time) []models.FeatureRecord {
	out := make([]models.FeatureRecord, 0, len(postings))
	for _, p := range postings {
		out = append(out, e.Extract(p, extractedAt))
	}
	return out
}
