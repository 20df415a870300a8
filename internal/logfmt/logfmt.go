// Package logfmt parses TagTime-style ping log lines.
//
// A log line is a whitespace-delimited record:
//
//	<timestamp> <tag>* <dateToken1> <dateToken2> <dateToken3>
//
// The first token is the ping's Unix timestamp. The last three tokens are
// human-readable date text (TagTime writes "[2012.01.01 17:42:00 Sun]",
// which splits into exactly three tokens); they are carried through
// verbatim and never used for comparison. Everything in between is the
// ordered tag list. The literal tag "RETRO" marks a ping whose answer was
// supplied after the fact rather than at prompt time.
//
// Parsing never reconstructs a line: Entry.Raw is always the byte-exact
// input, and callers that emit lines emit Raw, not a rendering of the
// parsed fields.
package logfmt

import (
	"strconv"
	"strings"
)

// RetroTag is the literal tag marking a retroactively answered ping.
const RetroTag = "RETRO"

// MaxLineBytes bounds a single log line for scanners over ping logs.
// Real ping lines are well under 1 KiB; 1 MiB leaves room without letting
// a corrupt file balloon memory.
const MaxLineBytes = 1 << 20

// trailingDateTokens is the fixed arity of the trailing date text.
// The last three whitespace-delimited tokens of every line are date text,
// positionally, regardless of their content.
const trailingDateTokens = 3

// Entry is one parsed log line. Two entries describe the same ping if and
// only if their timestamps are equal; their content may still differ.
type Entry struct {
	// Timestamp is the ping's scheduled or recorded instant, from the
	// first token of the line.
	Timestamp int64

	// Tags is the ordered tag list: every token between the timestamp
	// and the trailing date text. May be empty.
	Tags []string

	// TrailingDate holds the last three tokens of the line. On lines
	// with fewer than four tokens only the leading positions are set.
	TrailingDate [3]string

	// Raw is the exact original line.
	Raw string
}

// LeadingTimestamp parses the first whitespace-delimited token of line as
// a base-10 integer. It reports false for an empty line, a line with no
// tokens, or a non-integer first token.
func LeadingTimestamp(line string) (int64, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, false
	}
	ts, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, false
	}
	return ts, true
}

// Parse splits line into an Entry. It reports false only when the leading
// timestamp is absent or malformed; any line with a valid timestamp
// parses, however few tokens follow it.
func Parse(line string) (Entry, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Entry{}, false
	}
	ts, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Entry{}, false
	}

	e := Entry{Timestamp: ts, Raw: line}

	rest := fields[1:]
	dateCount := trailingDateTokens
	if len(rest) < dateCount {
		dateCount = len(rest)
	}
	copy(e.TrailingDate[:], rest[len(rest)-dateCount:])
	if tags := rest[:len(rest)-dateCount]; len(tags) > 0 {
		e.Tags = tags
	}
	return e, true
}

// Retro reports whether the entry carries the RETRO tag.
//
// This is an exact match over the parsed tag set: a tag like
// "RETROSPECTIVE" does not count, and neither does "RETRO" appearing in
// the trailing date positions. A raw substring search would
// false-positive on longer tags, so the match is on token boundaries
// even though that can change the winner for logs written by tools that
// matched the substring " RETRO " instead.
func (e Entry) Retro() bool {
	for _, tag := range e.Tags {
		if tag == RetroTag {
			return true
		}
	}
	return false
}
