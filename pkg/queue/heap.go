// Package queue provides a minimum binary heap parameterised over a
// caller-supplied score, used by the pathfinder as its open set.
package queue

import "container/heap"

// Scored is implemented by anything the heap can order and relocate.
// Score is re-read on every comparison, so lowering it and calling
// Rescore is enough to re-heapify - no separate decrease-key value is
// threaded through the queue.
type Scored interface {
	Score() float64
	index() int
	setIndex(i int)
}

// Item embeds into a caller type to satisfy the index bookkeeping half of
// Scored; the caller still implements Score().
type Item struct {
	idx int // heap position + 1, so the zero value means "not in a heap"
}

func (it *Item) index() int     { return it.idx - 1 }
func (it *Item) setIndex(i int) { it.idx = i + 1 }

// innerHeap implements container/heap.Interface over Scored elements.
type innerHeap []Scored

func (h innerHeap) Len() int           { return len(h) }
func (h innerHeap) Less(i, j int) bool { return h[i].Score() < h[j].Score() }
func (h innerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].setIndex(i)
	h[j].setIndex(j)
}
func (h *innerHeap) Push(x any) {
	n := len(*h)
	item := x.(Scored)
	item.setIndex(n)
	*h = append(*h, item)
}
func (h *innerHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.setIndex(-1)
	*h = old[:n-1]
	return item
}

// MinHeap is a min-heap of Scored elements supporting push, pop, rescore
// and remove. Pop on an empty heap is undefined behavior - callers must
// check Len() first. Rescore assumes the element's score did not increase
// since it was last heapified; behavior under an increase is undefined.
type MinHeap[T Scored] struct {
	h innerHeap
}

// NewMinHeap returns an empty heap ready for use.
func NewMinHeap[T Scored]() *MinHeap[T] {
	return &MinHeap[T]{h: make(innerHeap, 0)}
}

// Len returns the number of elements currently in the heap.
func (m *MinHeap[T]) Len() int { return m.h.Len() }

// Push inserts e into the heap.
func (m *MinHeap[T]) Push(e T) { heap.Push(&m.h, e) }

// Pop removes and returns the minimum-score element. Undefined if empty.
func (m *MinHeap[T]) Pop() T { return heap.Pop(&m.h).(T) }

// Rescore re-heapifies after e's score has been lowered in place.
func (m *MinHeap[T]) Rescore(e T) { heap.Fix(&m.h, e.index()) }

// Remove takes e out of the heap, wherever it currently sits.
func (m *MinHeap[T]) Remove(e T) { heap.Remove(&m.h, e.index()) }

// InHeap reports whether e is currently tracked by the heap (has a valid
// index). Useful to distinguish "never pushed" from "already visited".
func InHeap(e Scored) bool { return e.index() >= 0 }
