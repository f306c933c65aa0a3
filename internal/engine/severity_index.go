package engine

import (
	"sort"

	"github.com/logqio/logq/internal/domain"
)

// severityEntry identifies one line across all sources at a given severity.
type severityEntry struct {
	ts     int64
	source string
	line   int
}

func (a severityEntry) less(b severityEntry) bool {
	if a.ts != b.ts {
		return a.ts < b.ts
	}
	if a.source != b.source {
		return a.source < b.source
	}
	return a.line < b.line
}

// SeverityIndex keeps one ordered set of (timestamp, source, line) triples
// per severity level. Every indexed line lives in exactly one bucket.
// Write-once per source; read-many after indexing completes.
type SeverityIndex struct {
	buckets map[domain.Severity][]severityEntry
}

// NewSeverityIndex creates an empty severity index.
func NewSeverityIndex() *SeverityIndex {
	return &SeverityIndex{buckets: make(map[domain.Severity][]severityEntry)}
}

// Insert adds a triple to the bucket for its severity. O(log k) to place,
// O(1) amortized when triples arrive in timestamp order.
func (x *SeverityIndex) Insert(sev domain.Severity, ts int64, source string, line int) {
	e := severityEntry{ts: ts, source: source, line: line}
	bucket := x.buckets[sev]
	n := len(bucket)
	if n == 0 || !e.less(bucket[n-1]) {
		x.buckets[sev] = append(bucket, e)
		return
	}
	i := sort.Search(n, func(i int) bool { return e.less(bucket[i]) })
	bucket = append(bucket, severityEntry{})
	copy(bucket[i+1:], bucket[i:])
	bucket[i] = e
	x.buckets[sev] = bucket
}

// Contains reports whether the triple is present at the given severity.
// O(log k) in the bucket size.
func (x *SeverityIndex) Contains(sev domain.Severity, ts int64, source string, line int) bool {
	bucket := x.buckets[sev]
	e := severityEntry{ts: ts, source: source, line: line}
	i := sort.Search(len(bucket), func(i int) bool { return !bucket[i].less(e) })
	return i < len(bucket) && bucket[i] == e
}

// Size returns the number of entries at the given severity.
func (x *SeverityIndex) Size(sev domain.Severity) int {
	return len(x.buckets[sev])
}
