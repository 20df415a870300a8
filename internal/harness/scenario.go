package harness

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/pingmerge/internal/merge"
)

// Scenario defines a merge conformance scenario: two input logs and
// assertions on the merged output.
type Scenario struct {
	// Name uniquely identifies this scenario; it is also the golden
	// file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// LogA and LogB are the two input logs, one entry per element,
	// without line terminators. An empty element is a blank line, which
	// is how the malformed-line truncation cases are expressed.
	LogA []string `yaml:"log_a"`
	LogB []string `yaml:"log_b"`

	// Assertions validate the merged output.
	// Supported types: output_contains, output_excludes,
	// output_line_count, output_equals.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Assertion types.
const (
	AssertOutputContains  = "output_contains"
	AssertOutputExcludes  = "output_excludes"
	AssertOutputLineCount = "output_line_count"
	AssertOutputEquals    = "output_equals"
)

// Assertion validates one property of the merged output.
type Assertion struct {
	// Type selects the assertion.
	Type string `yaml:"type"`

	// Line is the exact line expected present (output_contains) or
	// absent (output_excludes).
	Line string `yaml:"line,omitempty"`

	// Count is the expected line count (output_line_count).
	Count int `yaml:"count,omitempty"`

	// Lines is the complete expected output (output_equals).
	Lines []string `yaml:"lines,omitempty"`
}

// LoadScenario reads and validates a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s: missing name", path)
	}
	return &s, nil
}

// Result holds the merged output of one scenario run.
type Result struct {
	// Output is the merged log, byte for byte.
	Output string

	// Lines is Output split into lines, without terminators. Empty
	// output yields a nil slice.
	Lines []string
}

// Run executes the merge over the scenario's two logs in memory.
func Run(s *Scenario) (*Result, error) {
	var out bytes.Buffer
	a := strings.NewReader(renderLog(s.LogA))
	b := strings.NewReader(renderLog(s.LogB))
	if err := merge.Merge(a, b, &out); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	res := &Result{Output: out.String()}
	if res.Output != "" {
		res.Lines = strings.Split(strings.TrimSuffix(res.Output, "\n"), "\n")
	}
	return res, nil
}

// Verify checks every assertion against the result, returning one error
// per failed assertion.
func Verify(s *Scenario, res *Result) []error {
	var errs []error
	for i, a := range s.Assertions {
		if err := checkAssertion(res, a); err != nil {
			errs = append(errs, fmt.Errorf("scenario %s, assertion %d (%s): %w", s.Name, i, a.Type, err))
		}
	}
	return errs
}

func checkAssertion(res *Result, a Assertion) error {
	switch a.Type {
	case AssertOutputContains:
		if !slices.Contains(res.Lines, a.Line) {
			return fmt.Errorf("output does not contain line %q", a.Line)
		}
		return nil
	case AssertOutputExcludes:
		if slices.Contains(res.Lines, a.Line) {
			return fmt.Errorf("output contains excluded line %q", a.Line)
		}
		return nil
	case AssertOutputLineCount:
		if len(res.Lines) != a.Count {
			return fmt.Errorf("output has %d line(s), want %d", len(res.Lines), a.Count)
		}
		return nil
	case AssertOutputEquals:
		if !slices.Equal(res.Lines, a.Lines) {
			return fmt.Errorf("output is %q, want %q", res.Lines, a.Lines)
		}
		return nil
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

// renderLog turns scenario entries into log file contents: one entry per
// line, each newline-terminated.
func renderLog(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
