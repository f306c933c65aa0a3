package engine

import (
	"container/heap"

	"github.com/logqio/logq/internal/domain"
)

// EntryRef identifies one accepted log line in the global timestamp order.
type EntryRef struct {
	Timestamp int64
	Source    string
	Line      int
}

// mergeItem is a heap element: one candidate line plus its rank within its
// source index, so the merge can advance that source after a pop.
type mergeItem struct {
	ts     int64
	source string
	line   int
	rank   int
}

// mergeHeap orders candidates by timestamp, breaking ties by source id and
// then line number so results are deterministic across runs.
type mergeHeap []mergeItem

func (h mergeHeap) Len() int { return len(h) }

func (h mergeHeap) Less(i, j int) bool {
	if h[i].ts != h[j].ts {
		return h[i].ts < h[j].ts
	}
	if h[i].source != h[j].source {
		return h[i].source < h[j].source
	}
	return h[i].line < h[j].line
}

func (h mergeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *mergeHeap) Push(x any) {
	*h = append(*h, x.(mergeItem))
}

func (h *mergeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// mergeSearch produces up to limit entry refs, ascending by timestamp, drawn
// from the requested sources, keeping only lines whose severity bucket is at
// or above minSeverity and whose timestamp is at or after startEpoch.
//
// Each source is seeded with its lower-bound entry for startEpoch; a source
// with nothing at or after the start contributes nothing. After every pop the
// popped source's next rank is pushed, so the heap never holds more than one
// candidate per source.
func mergeSearch(indexes map[string]*SourceIndex, severities *SeverityIndex,
	sources []string, minSeverity domain.Severity, startEpoch int64, limit int) []EntryRef {

	if limit <= 0 || len(sources) == 0 {
		return nil
	}

	h := &mergeHeap{}
	heap.Init(h)
	for _, source := range sources {
		idx := indexes[source]
		rank := idx.LowerBound(startEpoch)
		if rank >= idx.Size() {
			continue
		}
		ts, line := idx.At(rank)
		heap.Push(h, mergeItem{ts: ts, source: source, line: line, rank: rank})
	}

	qualifying := domain.SeveritiesAtLeast(minSeverity)
	var result []EntryRef
	for h.Len() > 0 {
		item := heap.Pop(h).(mergeItem)

		// A line lives in exactly one severity bucket, so the first hit
		// among qualifying levels decides acceptance.
		for _, sev := range qualifying {
			if severities.Contains(sev, item.ts, item.source, item.line) {
				result = append(result, EntryRef{Timestamp: item.ts, Source: item.source, Line: item.line})
				break
			}
		}
		if len(result) >= limit {
			return result
		}

		idx := indexes[item.source]
		if next := item.rank + 1; next < idx.Size() {
			ts, line := idx.At(next)
			heap.Push(h, mergeItem{ts: ts, source: item.source, line: line, rank: next})
		}
	}

	return result
}
