package skills

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

const testConfig = `
skills:
  sql: ["sql", "structured query language"]
  python: ["python"]
  java: ["java"]
  power bi: ["power bi", "powerbi"]
  excel: ["excel", "microsoft excel"]
  c++: ["c++"]
  orphan:
`

func mustParse(t *testing.T) *Dictionary {
	t.Helper()
	d, err := Parse([]byte(testConfig))
	require.NoError(t, err)
	return d
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty document", ""},
		{"missing skills key", "other: 1"},
		{"skills not a mapping", "skills: [sql, python]"},
		{"aliases not a list", "skills:\n  sql: \"sql\""},
		{"only alias-less skills", "skills:\n  sql:\n  python:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			require.Error(t, err)
		})
	}
}

func TestParseDuplicateCanonicalLastWins(t *testing.T) {
	cfg := "skills:\n" +
		"  sql: [\"sql\"]\n" +
		"  python: [\"python\"]\n" +
		"  sql: [\"structured query language\"]\n"

	d, err := Parse([]byte(cfg))
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())

	// last definition wins, first position is kept
	found, _ := d.Extract("knows structured query language and python")
	require.Equal(t, []string{"sql", "python"}, found)

	// the earlier alias list is gone entirely
	found, _ = d.Extract("plain sql only")
	require.Equal(t, []string{}, found)
}

func TestParseSkipsAliaslessSkills(t *testing.T) {
	d := mustParse(t)
	for _, m := range d.Matchers() {
		require.NotEqual(t, "orphan", m.Canonical)
	}
	require.Equal(t, 6, d.Len())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skills.yml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 6, d.Len())

	_, err = Load(filepath.Join(dir, "missing.yml"))
	require.Error(t, err)
}

func TestWordBoundaryMatching(t *testing.T) {
	d := mustParse(t)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"alias inside longer word does not match", "javascript developer role", []string{}},
		{"whole word matches", "java developer role", []string{"java"}},
		{"case insensitive phrase", "experience with Power BI required", []string{"power bi"}},
		{"hyphen collapsed by normalization", "power-bi dashboards", []string{"power bi"}},
		{"phrase not inside longer word", "rides a powerbike to work", []string{}},
		{"variable internal whitespace", "power   bi reporting", []string{"power bi"}},
		{"multi word alias", "knows structured query language well", []string{"sql"}},
		{"literal special characters", "modern c++ experience", []string{"c++"}},
		{"several skills in dictionary order", "Excel and SQL and Python", []string{"sql", "python", "excel"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, _ := d.Extract(tt.text)
			require.Equal(t, tt.want, found)
		})
	}
}

func TestExtractDeterministic(t *testing.T) {
	d := mustParse(t)
	text := "Python, SQL, Power BI and Excel. Also more SQL."

	first, firstTop := d.Extract(text)
	for i := 0; i < 5; i++ {
		again, againTop := d.Extract(text)
		if !reflect.DeepEqual(first, again) || !reflect.DeepEqual(firstTop, againTop) {
			t.Fatalf("extraction not deterministic: %v vs %v", first, again)
		}
	}
	require.Equal(t, []string{"sql", "python", "power bi", "excel"}, first)
}

func TestTopSkillsCap(t *testing.T) {
	cfg := "skills:\n"
	text := ""
	for _, s := range []string{"a1", "b2", "c3", "d4", "e5", "f6", "g7", "h8", "i9", "j10", "k11", "l12"} {
		cfg += "  " + s + ": [\"" + s + "\"]\n"
		text += s + " "
	}

	d, err := Parse([]byte(cfg))
	require.NoError(t, err)

	found, top := d.Extract(text)
	require.Len(t, found, 12)
	require.Len(t, top, TopSkillsCap)
	require.Equal(t, found[:TopSkillsCap], top)
}
