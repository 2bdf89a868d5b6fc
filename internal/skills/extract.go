package skills

import "jobsignals/internal/textnorm"

// TopSkillsCap bounds the top_skills view of an extraction result.
const TopSkillsCap = 10

// Extract returns the canonical skills whose matchers fire on the text, in
// dictionary definition order, plus the capped top-skills view. The text is
// normalized before matching; duplicates are impossible because each canonical
// skill is tested once.
func (d *Dictionary) Extract(text string) (found, top []string) {
	normalized := textnorm.Normalize(text)
	found = []string{}
	for i := range d.matchers {
		if d.matchers[i].Match(normalized) {
			found = append(found, d.matchers[i].Canonical)
		}
	}
	top = found
	if len(top) > TopSkillsCap {
		top = found[:TopSkillsCap]
	}
	return found, top
}
