// Package classify derives role family, seniority tier, and remote flag from
// posting text using ordered keyword rule chains.
package classify

import (
	"regexp"
	"strings"
)

// Role family and seniority labels.
const (
	RoleDataEngineering = "Data Engineering"
	RoleDataScience     = "Data Science"
	RoleBI              = "Business Intelligence"
	RoleAnalytics       = "Analytics"
	RoleOther           = "Other"

	SeniorityIntern     = "Intern"
	SeniorityManagement = "Management"
	SenioritySenior     = "Senior"
	SeniorityEntry      = "Entry"
	SeniorityMid        = "Mid"
)

// keywordRule is one link in a rule chain: plain case-insensitive substring
// needles plus optional standalone-token patterns. Chains are evaluated
// top-to-bottom, first match wins, so precedence stays auditable as data.
type keywordRule struct {
	substrings []string
	tokens     []*regexp.Regexp
	result     string
}

func (r keywordRule) matches(text string) bool {
	for _, s := range r.substrings {
		if strings.Contains(text, s) {
			return true
		}
	}
	for _, tok := range r.tokens {
		if tok.MatchString(text) {
			return true
		}
	}
	return false
}

func evaluate(rules []keywordRule, text, fallback string) string {
	for _, r := range rules {
		if r.matches(text) {
			return r.result
		}
	}
	return fallback
}

func token(word string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + word + `\b`)
}

// "ml" and "bi" match as whole words only; every other keyword is a plain
// substring ("html" must not trip the ml rule).
var roleRules = []keywordRule{
	{substrings: []string{"data engineer", "etl", "pipeline"}, result: RoleDataEngineering},
	{substrings: []string{"data scientist", "machine learning"}, tokens: []*regexp.Regexp{token("ml")}, result: RoleDataScience},
	{substrings: []string{"business intelligence", "power bi", "tableau"}, tokens: []*regexp.Regexp{token("bi")}, result: RoleBI},
	{substrings: []string{"analyst", "analytics"}, result: RoleAnalytics},
}

var seniorityRules = []keywordRule{
	{substrings: []string{"intern", "co-op", "student"}, result: SeniorityIntern},
	{substrings: []string{"director", "head", "vp", "vice president", "manager"}, result: SeniorityManagement},
	{substrings: []string{"principal", "staff", "lead", "senior", "sr.", "sr "}, result: SenioritySenior},
	{substrings: []string{"junior", "jr.", "entry", "associate", "new grad"}, result: SeniorityEntry},
}

var remoteSignals = []string{
	"remote", "work from home", "wfh", "telecommute",
	"fully remote", "100% remote", "anywhere",
}

// RoleFamily classifies a posting title into a coarse job category.
func RoleFamily(title string) string {
	return evaluate(roleRules, strings.ToLower(title), RoleOther)
}

// Seniority classifies a posting title into an experience tier.
func Seniority(title string) string {
	return evaluate(seniorityRules, strings.ToLower(title), SeniorityMid)
}

// IsRemote reports whether any remote signal appears anywhere in the blob.
// Non-exclusive: a single signal flips it true.
func IsRemote(blob string) bool {
	t := strings.ToLower(blob)
	for _, s := range remoteSignals {
		if strings.Contains(t, s) {
			return true
		}
	}
	return false
}
