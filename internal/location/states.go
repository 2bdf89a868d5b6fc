package location

// stateByAbbr maps the 50 US two-letter state abbreviations to full names.
var stateByAbbr = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"FL": "Florida", "GA": "Georgia", "HI": "Hawaii", "ID": "Idaho",
	"IL": "Illinois", "IN": "Indiana", "IA": "Iowa", "KS": "Kansas",
	"KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi",
	"MO": "Missouri", "MT": "Montana", "NE": "Nebraska", "NV": "Nevada",
	"NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio", "OK": "Oklahoma",
	"OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah",
	"VT": "Vermont", "VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming",
}

var abbrByName = func() map[string]string {
	m := make(map[string]string, len(stateByAbbr))
	for abbr, name := range stateByAbbr {
		m[name] = abbr
	}
	return m
}()

// StateName expands a two-letter abbreviation or validates a full state name.
// Returns the full name and whether the token was recognized.
func StateName(token string) (string, bool) {
	if full, ok := stateByAbbr[token]; ok {
		return full, true
	}
	if _, ok := abbrByName[token]; ok {
		return token, true
	}
	return "", false
}

// StateAbbr returns the two-letter abbreviation for a full state name.
func StateAbbr(name string) (string, bool) {
	abbr, ok := abbrByName[name]
	return abbr, ok
}
