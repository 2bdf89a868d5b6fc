package classify

// baselineSkills lists the expected skills per role family. This is a
// dashboard comparison reference, independent of what a posting states.
var baselineSkills = map[string][]string{
	RoleAnalytics:       {"sql", "excel"},
	RoleBI:              {"sql", "power bi", "tableau"},
	RoleDataEngineering: {"sql", "python", "etl", "cloud"},
	RoleDataScience:     {"python", "statistics", "machine learning"},
	RoleOther:           {},
}

// BaselineSkills returns the expected skill list for a role family. Unknown
// families get the empty list.
func BaselineSkills(roleFamily string) []string {
	if skills, ok := baselineSkills[roleFamily]; ok {
		out := make([]string, len(skills))
		copy(out, skills)
		return out
	}
	return []string{}
}
