// Package location parses city and state out of free-text job locations.
package location

import "strings"

// Result is a parsed location. Either field may be nil; State, when set, is
// always the full state name.
type Result struct {
	City  *string
	State *string
}

// Parse extracts (city, state) from heterogeneous location formats:
//
//	"Dallas, Texas"  -> city=Dallas, state=Texas
//	"New York, NY"   -> city=New York, state=New York
//	"Austin TX"      -> city=Austin, state=Texas
//	"Remote, USA"    -> city=Remote, state unset
func Parse(raw string) Result {
	var res Result
	loc := strings.TrimSpace(raw)
	if loc == "" {
		return res
	}

	var parts []string
	for _, p := range strings.Split(loc, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	if len(parts) >= 2 {
		res.City = &parts[0]
		maybeState := parts[1]

		if full, ok := StateName(maybeState); ok {
			res.State = &full
		} else if fields := strings.Fields(maybeState); len(fields) > 0 {
			// trailing text such as "NY, USA" or "TX 75201"
			if full, ok := StateName(fields[0]); ok {
				res.State = &full
			}
		}
		return res
	}

	// No comma. A trailing abbreviation ("Austin TX") still counts as a state;
	// anything else is city-only and the caller's fallback may fill the state.
	tokens := strings.Fields(loc)
	if len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		if full, ok := stateByAbbr[last]; ok {
			res.State = &full
			if city := strings.TrimSpace(strings.Join(tokens[:len(tokens)-1], " ")); city != "" {
				res.City = &city
			}
			return res
		}
	}
	res.City = &loc
	return res
}

// ParseWithFallback parses raw and, when no state could be determined from
// the text, fills in fallbackState. The query scope that produced a posting
// is considered more reliable than a failed text parse.
func ParseWithFallback(raw, fallbackState string) Result {
	res := Parse(raw)
	if res.State == nil && fallbackState != "" {
		res.State = &fallbackState
	}
	return res
}
