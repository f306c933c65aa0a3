package engine

import "sort"

// sourceEntry is one indexed line of a single source.
type sourceEntry struct {
	ts   int64
	line int
}

// SourceIndex is the per-source ordered mapping from timestamp to line
// number. Entries with equal timestamps keep their insertion order, so the
// index preserves file order for append-only logs. Mutated only while a
// source is being indexed; read-only afterwards.
type SourceIndex struct {
	entries []sourceEntry
}

// NewSourceIndex creates an empty source index.
func NewSourceIndex() *SourceIndex {
	return &SourceIndex{}
}

// Insert records a (timestamp, line) pair. Appends are O(1) amortized when
// timestamps arrive in non-decreasing order; an out-of-order timestamp is
// placed by binary search after any equal timestamps already present.
func (x *SourceIndex) Insert(ts int64, line int) {
	n := len(x.entries)
	if n == 0 || x.entries[n-1].ts <= ts {
		x.entries = append(x.entries, sourceEntry{ts: ts, line: line})
		return
	}
	// Upper bound keeps insertion order stable among equal timestamps.
	i := sort.Search(n, func(i int) bool { return x.entries[i].ts > ts })
	x.entries = append(x.entries, sourceEntry{})
	copy(x.entries[i+1:], x.entries[i:])
	x.entries[i] = sourceEntry{ts: ts, line: line}
}

// LowerBound returns the rank of the first entry with timestamp >= ts, or
// Size() if no entry qualifies.
func (x *SourceIndex) LowerBound(ts int64) int {
	return sort.Search(len(x.entries), func(i int) bool { return x.entries[i].ts >= ts })
}

// At returns the (timestamp, line) pair at the given rank.
func (x *SourceIndex) At(rank int) (int64, int) {
	e := x.entries[rank]
	return e.ts, e.line
}

// Size returns the number of indexed entries.
func (x *SourceIndex) Size() int {
	return len(x.entries)
}
