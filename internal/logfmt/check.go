package logfmt

import (
	"bufio"
	"fmt"
	"io"
)

// Finding codes reported by Check.
const (
	// CodeMalformed marks a line whose leading timestamp is missing or
	// not an integer. The merge treats such a line as end-of-stream and
	// silently truncates, so this is worth surfacing before merging.
	CodeMalformed = "E001"

	// CodeOutOfOrder marks a line whose timestamp is lower than the one
	// before it. The merge trusts ascending input and does not detect
	// this itself.
	CodeOutOfOrder = "E002"
)

// Finding is one problem detected in a log by Check.
type Finding struct {
	Line    int    `json:"line"`    // 1-based line number
	Code    string `json:"code"`    // E001, E002
	Message string `json:"message"` // human-readable description
}

// Check scans a single log and reports malformed lines and
// ascending-order violations. It is advisory tooling: the merge itself
// stays permissive, Check exists so operators can catch logs that would
// silently truncate a merge or break its ordering assumption.
//
// The returned error covers I/O failures only; findings are not errors.
func Check(r io.Reader) ([]Finding, error) {
	var findings []Finding

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)

	lineNo := 0
	var prev int64
	havePrev := false
	for sc.Scan() {
		lineNo++
		line := sc.Text()

		ts, ok := LeadingTimestamp(line)
		if !ok {
			findings = append(findings, Finding{
				Line:    lineNo,
				Code:    CodeMalformed,
				Message: "missing or malformed leading timestamp; a merge would stop combining here",
			})
			// ordering can't be judged without a timestamp
			continue
		}

		if havePrev && ts < prev {
			findings = append(findings, Finding{
				Line:    lineNo,
				Code:    CodeOutOfOrder,
				Message: fmt.Sprintf("timestamp %d is lower than preceding timestamp %d", ts, prev),
			})
		}
		prev = ts
		havePrev = true
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading log: %w", err)
	}
	return findings, nil
}
