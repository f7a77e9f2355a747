package memory

import "github.com/clockworkengineer/bencode/ir"

// DefaultLimit is the ceiling used by NewTracker(DefaultLimit) when callers
// want a bound without choosing one.
const DefaultLimit = 64 << 20

// Tracker accounts committed bytes against an optional limit. A limit of 0
// means unlimited. A Tracker is not safe for concurrent use; give each
// parse its own.
type Tracker struct {
	current int64
	peak    int64
	limit   int64
}

func NewTracker(limit int64) *Tracker {
	return &Tracker{limit: limit}
}

// Record applies delta to the current total. A positive delta that would
// take the total past the limit is refused with ErrMemoryBoundsExceeded and
// nothing is committed. A negative delta never takes the total below zero.
func (t *Tracker) Record(delta int64) error {
	if delta < 0 {
		t.current = max(t.current+delta, 0)
		return nil
	}
	next := t.current + delta
	if next < t.current || (t.limit > 0 && next > t.limit) {
		return ir.ErrMemoryBoundsExceeded
	}
	t.current = next
	t.peak = max(t.peak, next)
	return nil
}

func (t *Tracker) Alloc(n int) error { return t.Record(int64(n)) }
func (t *Tracker) Free(n int)        { _ = t.Record(-int64(n)) }

// Fits reports whether n more bytes could be committed.
func (t *Tracker) Fits(n int) bool {
	return t.limit <= 0 || t.current+int64(n) <= t.limit
}

func (t *Tracker) Current() int64 { return t.current }
func (t *Tracker) Peak() int64    { return t.peak }
func (t *Tracker) Limit() int64   { return t.limit }

// Remaining is the number of bytes left before the limit, or -1 when
// unlimited.
func (t *Tracker) Remaining() int64 {
	if t.limit <= 0 {
		return -1
	}
	return t.limit - t.current
}

// Reset clears the current and peak totals, keeping the limit.
func (t *Tracker) Reset() {
	t.current = 0
	t.peak = 0
}
