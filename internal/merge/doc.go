// Package merge reconciles two time-ordered ping logs into one canonical
// log.
//
// Two devices sampling with the same clock and seed produce logs whose
// entries should agree, but diverge when a user tags a ping on one device
// and not the other, or answers a ping retroactively. The merge runs
// unattended (it is meant to sit behind a file synchronizer's
// external-merge hook), so every disagreement must resolve
// deterministically.
//
// ARCHITECTURE:
//
// Single pass, two cursors, one line of lookahead per input:
//   - Both streams active: parse the leading timestamp of each buffered
//     line; emit the lower one verbatim and advance only its stream.
//     Equal timestamps are the same ping recorded twice and go through
//     conflict resolution.
//   - One stream exhausted: flush the survivor unchanged, in order.
//   - Both exhausted: done.
//
// Conflict resolution, in order:
//  1. Textually identical lines collapse to one copy.
//  2. A RETRO-tagged line loses to a non-RETRO one: the answer given at
//     prompt time beats the backfilled one.
//  3. Otherwise the longer raw line wins, as a proxy for more detail
//     entered; on an exact length tie stream B's line wins. The B-on-tie
//     rule is part of the contract, not an arbitrary choice: both sides
//     of a sync must pick the same winner.
//
// Memory is O(1) in log size: at most one buffered line per input, never
// a materialized collection. The engine is single-threaded, synchronous,
// and deterministic, so repeated runs over the same inputs are idempotent
// and safe to retry.
//
// QUIRK, PRESERVED DELIBERATELY:
//
// A blank or otherwise timestamp-less line encountered while both streams
// are active is treated like end of stream, not skipped. The side that
// produced it is finished (that line and everything after it are
// dropped), and the other side's already-buffered line is lost with the
// aborted comparison; only the other side's not-yet-read remainder is
// flushed. This can silently truncate valid data, but two devices must
// agree on merge results, so the behavior is kept exactly as every
// deployed copy of the merge has it. Use logfmt.Check to detect logs
// that would trigger it.
package merge
