// Package experience extracts a conservative minimum-years-of-experience
// figure from posting text.
package experience

import (
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"

	"jobsignals/internal/textnorm"
)

// Patterns run against normalized text, where punctuation has already been
// collapsed to spaces. "yrs" counts the same as "years".
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2})\s*\+\s*(?:years|yrs)\b`),
	regexp.MustCompile(`minimum\s+(\d{1,2})\s*(?:years|yrs)\b`),
	regexp.MustCompile(`at\s+least\s+(\d{1,2})\s*(?:years|yrs)\b`),
	regexp.MustCompile(`(\d{1,2})\s*(?:years|yrs)\s+of\s+experience`),
}

// MinYears collects every year count matched by any pattern and returns the
// smallest as an exact decimal, or nil when nothing matched. Individual parse
// failures are skipped; they never abort the extraction.
func MinYears(blob string) *decimal.Decimal {
	t := textnorm.Normalize(blob)

	var hits []int
	for _, p := range patterns {
		for _, m := range p.FindAllStringSubmatch(t, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			hits = append(hits, n)
		}
	}
	if len(hits) == 0 {
		return nil
	}

	min := hits[0]
	for _, n := range hits[1:] {
		if n < min {
			min = n
		}
	}
	d := decimal.NewFromInt(int64(min))
	return &d
}
