// Package query answers nearest-neighbor lookups over the normalized
// word and document matrices, via a bounded min-heap of size K.
package query

import "container/heap"

// Result is one similarity match.
type Result struct {
	Index      uint32
	Similarity float64
}

// resultHeap is a min-heap on Similarity: the smallest current match
// sits at the root, so it is always the one evicted when a bigger
// candidate shows up.
type resultHeap []Result

func (h resultHeap) Len() int            { return len(h) }
func (h resultHeap) Less(i, j int) bool  { return h[i].Similarity < h[j].Similarity }
func (h resultHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *resultHeap) Push(x interface{}) { *h = append(*h, x.(Result)) }
func (h *resultHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// topK maintains a bounded min-heap of the K best results seen so far.
type topK struct {
	h heap.Interface
	k int
}

func newTopK(k int) *topK {
	rh := make(resultHeap, 0, k)
	return &topK{h: &rh, k: k}
}

// offer considers one candidate, keeping it only if the heap has room or
// it beats the current worst kept result.
func (t *topK) offer(r Result) {
	rh := t.h.(*resultHeap)
	if len(*rh) < t.k {
		heap.Push(t.h, r)
		return
	}
	if r.Similarity > (*rh)[0].Similarity {
		heap.Pop(t.h)
		heap.Push(t.h, r)
	}
}

// sortedDescending drains the heap into a slice ordered best-first.
func (t *topK) sortedDescending() []Result {
	rh := t.h.(*resultHeap)
	out := make([]Result, len(*rh))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(t.h).(Result)
	}
	return out
}
