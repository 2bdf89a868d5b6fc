package classify

import (
	"reflect"
	"testing"
)

func TestRoleFamily(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Senior Data Engineer", RoleDataEngineering},
		{"ETL Developer", RoleDataEngineering},
		{"Pipeline Architect", RoleDataEngineering},
		{"Data Scientist II", RoleDataScience},
		{"Machine Learning Engineer", RoleDataScience},
		{"ML Engineer", RoleDataScience},
		{"HTML Developer", RoleOther}, // "ml" only matches as a whole word
		{"Business Intelligence Developer", RoleBI},
		{"Power BI Specialist", RoleBI},
		{"Tableau Developer", RoleBI},
		{"BI Consultant", RoleBI},
		{"Mobile Engineer", RoleOther}, // "bi" inside "mobile" must not fire
		{"Data Analyst", RoleAnalytics},
		{"Analytics Consultant", RoleAnalytics},
		{"Backend Developer", RoleOther},
		{"", RoleOther},
		// data engineering wins before data science on shared keywords
		{"Machine Learning Pipeline Engineer", RoleDataEngineering},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := RoleFamily(tt.title); got != tt.want {
				t.Errorf("RoleFamily(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestSeniority(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Data Engineering Intern", SeniorityIntern},
		{"Co-op Student Analyst", SeniorityIntern},
		{"Director of Analytics", SeniorityManagement},
		{"VP Data", SeniorityManagement},
		{"Engineering Manager", SeniorityManagement},
		{"Principal Data Scientist", SenioritySenior},
		{"Staff Engineer", SenioritySenior},
		{"Sr. Analyst", SenioritySenior},
		{"Sr Data Engineer", SenioritySenior},
		{"Junior Developer", SeniorityEntry},
		{"New Grad Analyst", SeniorityEntry},
		{"Data Analyst", SeniorityMid},
		{"", SeniorityMid},
		// intern rule fires before the senior rule
		{"Senior Data Engineer Intern", SeniorityIntern},
		// management fires before senior
		{"Senior Engineering Manager", SeniorityManagement},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := Seniority(tt.title); got != tt.want {
				t.Errorf("Seniority(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestIsRemote(t *testing.T) {
	positives := []string{
		"This role is Remote",
		"work from home friendly",
		"WFH possible",
		"option to telecommute",
		"Fully Remote team",
		"100% remote forever",
		"work from anywhere",
	}
	for _, blob := range positives {
		if !IsRemote(blob) {
			t.Errorf("IsRemote(%q) = false, want true", blob)
		}
	}

	negatives := []string{
		"",
		"on-site in Dallas, Texas",
		"hybrid 3 days in office",
	}
	for _, blob := range negatives {
		if IsRemote(blob) {
			t.Errorf("IsRemote(%q) = true, want false", blob)
		}
	}
}

func TestBaselineSkills(t *testing.T) {
	tests := []struct {
		family string
		want   []string
	}{
		{RoleAnalytics, []string{"sql", "excel"}},
		{RoleBI, []string{"sql", "power bi", "tableau"}},
		{RoleDataEngineering, []string{"sql", "python", "etl", "cloud"}},
		{RoleDataScience, []string{"python", "statistics", "machine learning"}},
		{RoleOther, []string{}},
		{"Wizardry", []string{}},
		{"", []string{}},
	}

	for _, tt := range tests {
		got := BaselineSkills(tt.family)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("BaselineSkills(%q) = %v, want %v", tt.family, got, tt.want)
		}
	}
}

func TestBaselineSkillsReturnsCopy(t *testing.T) {
	first := BaselineSkills(RoleAnalytics)
	first[0] = "cobol"
	if second := BaselineSkills(RoleAnalytics); second[0] != "sql" {
		t.Error("BaselineSkills leaks its backing array to callers")
	}
}
