package experience

import "testing"

func TestMinYears(t *testing.T) {
	tests := []struct {
		name string
		blob string
		want string // "" means nil
	}{
		{"plus years", "5+ years building pipelines", "5"},
		{"plus yrs", "3+ yrs with SQL", "3"},
		{"minimum years", "minimum 4 years in analytics", "4"},
		{"at least years", "at least 2 years required", "2"},
		{"years of experience", "7 years of experience with Python", "7"},
		{"yrs of experience", "6 yrs of experience", "6"},
		{"minimum wins across phrasings", "5+ years of SQL and at least 3 years of Python", "3"},
		{"punctuation between number and unit", "8+ years, ideally more", "8"},
		{"two digit count", "12+ years leading teams", "12"},
		{"no signal", "experienced self-starter wanted", ""},
		{"empty", "", ""},
		{"bare number without unit", "team of 5 engineers", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MinYears(tt.blob)
			if tt.want == "" {
				if got != nil {
					t.Errorf("MinYears(%q) = %s, want nil", tt.blob, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("MinYears(%q) = nil, want %s", tt.blob, tt.want)
			}
			if got.String() != tt.want {
				t.Errorf("MinYears(%q) = %s, want %s", tt.blob, got, tt.want)
			}
		})
	}
}

func TestMinYearsRunsAfterNormalization(t *testing.T) {
	// hyphen and comma collapse to spaces before the patterns run
	got := MinYears("Minimum-3-years, hands-on")
	if got == nil || got.String() != "3" {
		t.Errorf("MinYears = %v, want 3", got)
	}
}
