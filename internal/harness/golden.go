package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a scenario, verifies its assertions, and
// compares the merged output byte-for-byte against the golden file
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Golden files pin the exact merged bytes for each conformance case;
// assertions catch the specific property a scenario exists for, the
// golden comparison catches everything else.
//
// Returns error if scenario execution fails. Assertion and golden
// mismatches are reported as test failures on t.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	for _, verr := range Verify(scenario, result) {
		t.Error(verr)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, []byte(result.Output))

	return nil
}
