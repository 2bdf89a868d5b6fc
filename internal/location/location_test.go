package location

import "testing"

func strVal(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		city  string
		state string
	}{
		{"city and full state", "Dallas, Texas", "Dallas", "Texas"},
		{"city and abbreviation", "New York, NY", "New York", "New York"},
		{"no comma trailing abbr", "Austin TX", "Austin", "Texas"},
		{"state with trailing country", "Brooklyn, NY, USA", "Brooklyn", "New York"},
		{"second part with extra text", "Plano, TX 75024", "Plano", "Texas"},
		{"unrecognized second part", "Remote, USA", "Remote", "<nil>"},
		{"city only", "Austin", "Austin", "<nil>"},
		{"multi word city with abbr", "Salt Lake City UT", "Salt Lake City", "Utah"},
		{"empty", "", "<nil>", "<nil>"},
		{"whitespace only", "   ", "<nil>", "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if strVal(got.City) != tt.city {
				t.Errorf("Parse(%q).City = %q, want %q", tt.raw, strVal(got.City), tt.city)
			}
			if strVal(got.State) != tt.state {
				t.Errorf("Parse(%q).State = %q, want %q", tt.raw, strVal(got.State), tt.state)
			}
		})
	}
}

func TestParseWithFallback(t *testing.T) {
	got := ParseWithFallback("Austin", "Texas")
	if strVal(got.City) != "Austin" || strVal(got.State) != "Texas" {
		t.Errorf("fallback not applied: city=%q state=%q", strVal(got.City), strVal(got.State))
	}

	// a parsed state wins over the fallback
	got = ParseWithFallback("Dallas, Texas", "California")
	if strVal(got.State) != "Texas" {
		t.Errorf("parsed state overridden by fallback: %q", strVal(got.State))
	}

	// no fallback leaves state unset
	got = ParseWithFallback("Remote, USA", "")
	if got.State != nil {
		t.Errorf("expected nil state, got %q", strVal(got.State))
	}
}

func TestStateName(t *testing.T) {
	if full, ok := StateName("TX"); !ok || full != "Texas" {
		t.Errorf("StateName(TX) = %q, %v", full, ok)
	}
	if full, ok := StateName("Texas"); !ok || full != "Texas" {
		t.Errorf("StateName(Texas) = %q, %v", full, ok)
	}
	if _, ok := StateName("tx"); ok {
		t.Error("lowercase abbreviation should not be recognized")
	}
	if _, ok := StateName("USA"); ok {
		t.Error("USA should not be recognized as a state")
	}
}

func TestStateAbbr(t *testing.T) {
	if abbr, ok := StateAbbr("New York"); !ok || abbr != "NY" {
		t.Errorf("StateAbbr(New York) = %q, %v", abbr, ok)
	}
	if _, ok := StateAbbr("Gotham"); ok {
		t.Error("unknown state name should not resolve")
	}
}
