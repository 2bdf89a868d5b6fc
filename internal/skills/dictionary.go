// Package skills compiles a canonical-skill alias dictionary into word-boundary
// matchers and extracts canonical skills from normalized posting text.
package skills

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"jobsignals/internal/errors"
)

// Matcher tests whether any alias of one canonical skill occurs in normalized
// text as a whole word or phrase.
type Matcher struct {
	Canonical string
	Aliases   []string
	pattern   *regexp.Regexp
}

func (m *Matcher) Match(normalized string) bool {
	return m.pattern.MatchString(normalized)
}

// Dictionary is the compiled alias dictionary. Built once at startup and
// read-only afterwards, so it is safe to share across workers.
type Dictionary struct {
	matchers []Matcher
}

// Matchers returns the compiled matchers in dictionary definition order.
func (d *Dictionary) Matchers() []Matcher {
	return d.matchers
}

func (d *Dictionary) Len() int {
	return len(d.matchers)
}

// Load reads and compiles the skills configuration file. A missing or
// malformed file is a startup-class error; extraction must not proceed.
func Load(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.InvalidConfig(fmt.Sprintf("reading skills config %s", path), err)
	}
	return Parse(data)
}

// Parse compiles a YAML document of the form:
//
//	skills:
//	  sql: ["sql", "structured query language"]
//	  power bi: ["power bi", "powerbi"]
//
// The mapping must be non-empty and shaped canonical -> list of aliases.
// Document order is preserved so extraction output order is deterministic.
func Parse(data []byte) (*Dictionary, error) {
	var doc struct {
		Skills yaml.Node `yaml:"skills"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.InvalidConfig("parsing skills config", err)
	}
	if doc.Skills.Kind == 0 || doc.Skills.Tag == "!!null" {
		return nil, errors.InvalidConfig("skills config has no 'skills' mapping", nil)
	}
	if doc.Skills.Kind != yaml.MappingNode {
		return nil, errors.InvalidConfig("skills config must map canonical skill to alias list", nil)
	}

	// Duplicate canonical keys dedupe last-wins, keeping the first key's
	// position, so canonical names stay unique in the compiled dictionary.
	var order []string
	aliasNodes := make(map[string]*yaml.Node)
	for i := 0; i+1 < len(doc.Skills.Content); i += 2 {
		canonical := strings.ToLower(strings.TrimSpace(doc.Skills.Content[i].Value))
		if canonical == "" {
			return nil, errors.InvalidConfig("skills config contains an empty canonical name", nil)
		}
		if _, seen := aliasNodes[canonical]; !seen {
			order = append(order, canonical)
		}
		aliasNodes[canonical] = doc.Skills.Content[i+1]
	}

	var matchers []Matcher
	for _, canonical := range order {
		valNode := aliasNodes[canonical]

		if valNode.Tag == "!!null" {
			// skill with no aliases: skipped, not an error
			continue
		}
		if valNode.Kind != yaml.SequenceNode {
			return nil, errors.InvalidConfig(
				fmt.Sprintf("aliases for %q must be a list", canonical), nil)
		}

		var aliases []string
		for _, item := range valNode.Content {
			if a := strings.ToLower(strings.TrimSpace(item.Value)); a != "" {
				aliases = append(aliases, a)
			}
		}
		if len(aliases) == 0 {
			continue
		}

		pattern, err := compileAliases(aliases)
		if err != nil {
			return nil, errors.InvalidConfig(
				fmt.Sprintf("compiling aliases for %q", canonical), err)
		}
		matchers = append(matchers, Matcher{
			Canonical: canonical,
			Aliases:   aliases,
			pattern:   pattern,
		})
	}

	if len(matchers) == 0 {
		return nil, errors.InvalidConfig("skills config is empty", nil)
	}
	return &Dictionary{matchers: matchers}, nil
}

// compileAliases builds one case-insensitive alternation per skill. RE2 has no
// lookarounds, so word boundaries are expressed as consumed non-word-or-edge
// groups; that is equivalent for existence tests. Alias text is matched
// literally, and internal spaces match runs of whitespace.
func compileAliases(aliases []string) (*regexp.Regexp, error) {
	alts := make([]string, 0, len(aliases))
	for _, a := range aliases {
		alts = append(alts, strings.ReplaceAll(regexp.QuoteMeta(a), " ", `\s+`))
	}
	return regexp.Compile(`(?i)(?:^|[^\w])(?:` + strings.Join(alts, "|") + `)(?:[^\w]|$)`)
}
