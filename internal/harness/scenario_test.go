package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", "retro_preference.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "retro_preference", s.Name)
	assert.NotEmpty(t, s.Description)
	assert.Len(t, s.LogA, 2)
	assert.Len(t, s.LogB, 2)
	assert.NotEmpty(t, s.Assertions)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join("testdata", "scenarios", "does_not_exist.yaml"))
	require.Error(t, err)
}

func TestLoadScenarioBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: [unclosed"), 0644))

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing scenario")
}

func TestLoadScenarioMissingName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("description: nameless\n"), 0644))

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing name")
}

func TestRun(t *testing.T) {
	s := &Scenario{
		Name: "inline",
		LogA: []string{"1327421400 work aa [2012.01.24 10:30:00 Tue]"},
		LogB: []string{"1327421400 work bb [2012.01.24 10:30:00 Tue]"},
	}

	res, err := Run(s)
	require.NoError(t, err)
	assert.Equal(t, "1327421400 work bb [2012.01.24 10:30:00 Tue]\n", res.Output)
	assert.Equal(t, []string{"1327421400 work bb [2012.01.24 10:30:00 Tue]"}, res.Lines)
}

func TestRunEmptyLogs(t *testing.T) {
	res, err := Run(&Scenario{Name: "empty"})
	require.NoError(t, err)
	assert.Empty(t, res.Output)
	assert.Nil(t, res.Lines)
}

func TestVerify(t *testing.T) {
	res := &Result{
		Output: "1327421400 work a b c\n1327425000 email a b c\n",
		Lines:  []string{"1327421400 work a b c", "1327425000 email a b c"},
	}

	t.Run("passing assertions", func(t *testing.T) {
		s := &Scenario{
			Name: "pass",
			Assertions: []Assertion{
				{Type: AssertOutputContains, Line: "1327421400 work a b c"},
				{Type: AssertOutputExcludes, Line: "1327428600 gone a b c"},
				{Type: AssertOutputLineCount, Count: 2},
				{Type: AssertOutputEquals, Lines: []string{"1327421400 work a b c", "1327425000 email a b c"}},
			},
		}
		assert.Empty(t, Verify(s, res))
	})

	t.Run("failing assertions", func(t *testing.T) {
		s := &Scenario{
			Name: "fail",
			Assertions: []Assertion{
				{Type: AssertOutputContains, Line: "not there"},
				{Type: AssertOutputExcludes, Line: "1327421400 work a b c"},
				{Type: AssertOutputLineCount, Count: 5},
				{Type: AssertOutputEquals, Lines: []string{"wrong"}},
			},
		}
		errs := Verify(s, res)
		assert.Len(t, errs, 4)
	})

	t.Run("unknown assertion type", func(t *testing.T) {
		s := &Scenario{
			Name:       "unknown",
			Assertions: []Assertion{{Type: "output_sorted"}},
		}
		errs := Verify(s, res)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Error(), "unknown assertion type")
	})
}
