// Package harness provides conformance testing for the merge.
//
// Scenarios are YAML files pairing two input logs with assertions on the
// merged output:
//
//	name: retro_preference
//	description: "A prompt-time answer beats a backfilled one"
//	log_a:
//	  - "1327421400 slp RETRO [2012.01.24 10:30:00 Tue]"
//	log_b:
//	  - "1327421400 work code [2012.01.24 10:30:00 Tue]"
//	assertions:
//	  - type: output_contains
//	    line: "1327421400 work code [2012.01.24 10:30:00 Tue]"
//
// RunWithGolden additionally compares the full merged output against a
// golden file, so the exact bytes of every conformance case are pinned.
// New merge behavior cases should be added as scenario files, not code.
package harness
