package merge

import (
	"bufio"
	"fmt"
	"io"

	"github.com/roach88/pingmerge/internal/logfmt"
)

// cursor owns one input stream and its single line of lookahead.
type cursor struct {
	name string // "A" or "B", for error context
	sc   *bufio.Scanner
	line string
	ok   bool // a line is buffered
}

func newCursor(name string, r io.Reader) *cursor {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), logfmt.MaxLineBytes)
	return &cursor{name: name, sc: sc}
}

// advance buffers the next line, or marks the cursor exhausted.
func (c *cursor) advance() error {
	if c.sc.Scan() {
		c.line = c.sc.Text()
		c.ok = true
		return nil
	}
	c.ok = false
	c.line = ""
	if err := c.sc.Err(); err != nil {
		return fmt.Errorf("reading log %s: %w", c.name, err)
	}
	return nil
}

// Merge reconciles the two time-ordered logs a and b into w, line by
// line. Each input is assumed to already be ascending by timestamp; the
// merge does not re-sort.
//
// Every emitted line is the byte-exact winning input line, terminated
// with a newline. Merge fails only on an I/O error from a reader or the
// writer, never on content.
func Merge(a, b io.Reader, w io.Writer) error {
	ca := newCursor("A", a)
	cb := newCursor("B", b)
	out := bufio.NewWriter(w)

	if err := ca.advance(); err != nil {
		return err
	}
	if err := cb.advance(); err != nil {
		return err
	}

	// BothActive: one buffered line per side, compare and emit.
	for ca.ok && cb.ok {
		ta, okA := logfmt.LeadingTimestamp(ca.line)
		tb, okB := logfmt.LeadingTimestamp(cb.line)
		if !okA || !okB {
			if err := shortCircuit(ca, okA, cb, okB, out); err != nil {
				return err
			}
			return flush(out)
		}

		switch {
		case ta < tb:
			if err := emit(out, ca.line); err != nil {
				return err
			}
			if err := ca.advance(); err != nil {
				return err
			}
		case ta > tb:
			if err := emit(out, cb.line); err != nil {
				return err
			}
			if err := cb.advance(); err != nil {
				return err
			}
		default:
			// Same ping on both sides.
			if err := emit(out, resolve(ca.line, cb.line)); err != nil {
				return err
			}
			if err := ca.advance(); err != nil {
				return err
			}
			if err := cb.advance(); err != nil {
				return err
			}
		}
	}

	// OneActive: flush the survivor, buffered line first.
	surv := ca
	if cb.ok {
		surv = cb
	}
	for surv.ok {
		if err := emit(out, surv.line); err != nil {
			return err
		}
		if err := surv.advance(); err != nil {
			return err
		}
	}

	return flush(out)
}

// shortCircuit handles a buffered line with no parseable timestamp while
// both streams were active. The malformed side is finished: its buffered
// line and everything after it are dropped. The well-formed side's
// buffered line was already consumed into the lookahead and is lost with
// the aborted comparison; only its not-yet-read remainder is flushed.
// When both sides are malformed at once, nothing further is emitted.
func shortCircuit(ca *cursor, okA bool, cb *cursor, okB bool, out *bufio.Writer) error {
	var surv *cursor
	switch {
	case okA && !okB:
		surv = ca
	case okB && !okA:
		surv = cb
	default:
		return nil
	}

	if err := surv.advance(); err != nil {
		return err
	}
	for surv.ok {
		if err := emit(out, surv.line); err != nil {
			return err
		}
		if err := surv.advance(); err != nil {
			return err
		}
	}
	return nil
}

// resolve picks the winning line for two entries sharing a timestamp.
func resolve(lineA, lineB string) string {
	if lineA == lineB {
		return lineA
	}

	// Timestamps were validated by the caller, so both lines parse.
	ea, _ := logfmt.Parse(lineA)
	eb, _ := logfmt.Parse(lineB)

	// The directly-recorded answer beats the backfilled one.
	switch {
	case ea.Retro() && !eb.Retro():
		return lineB
	case eb.Retro() && !ea.Retro():
		return lineA
	}

	// More characters as a proxy for more detail entered. B wins ties.
	if len(lineA) > len(lineB) {
		return lineA
	}
	return lineB
}

func emit(out *bufio.Writer, line string) error {
	if _, err := out.WriteString(line); err != nil {
		return fmt.Errorf("writing merged log: %w", err)
	}
	if err := out.WriteByte('\n'); err != nil {
		return fmt.Errorf("writing merged log: %w", err)
	}
	return nil
}

func flush(out *bufio.Writer) error {
	if err := out.Flush(); err != nil {
		return fmt.Errorf("writing merged log: %w", err)
	}
	return nil
}
