// Package textnorm canonicalizes posting text for matching and cleans raw
// descriptions for storage.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	separators = regexp.MustCompile(`[/,_\-|]`)
	// everything that is not a word character, whitespace, or '+'. The '+' is
	// kept so "5+ years" survives normalization.
	symbols    = regexp.MustCompile(`[^\w\s+]`)
	whitespace = regexp.MustCompile(`\s+`)
	markup     = regexp.MustCompile(`<[^>]+>`)
)

// Normalize lower-cases text, turns slash/comma/underscore/hyphen/pipe into
// spaces, drops the remaining punctuation except '+', and collapses runs of
// whitespace. Idempotent; empty input yields empty output.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = separators.ReplaceAllString(s, " ")
	s = symbols.ReplaceAllString(s, " ")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// CleanDescription strips angle-bracket markup and collapses whitespace.
// A nil input stays nil so "no description" is distinguishable from an empty
// description downstream.
func CleanDescription(s *string) *string {
	if s == nil {
		return nil
	}
	out := markup.ReplaceAllString(*s, " ")
	out = strings.TrimSpace(whitespace.ReplaceAllString(out, " "))
	return &out
}

// SalaryMid returns the midpoint of a salary range, or nil when either bound
// is absent.
func SalaryMid(min, max *float64) *float64 {
	if min == nil || max == nil {
		return nil
	}
	mid := (*min + *max) / 2.0
	return &mid
}
