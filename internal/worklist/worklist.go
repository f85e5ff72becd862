// Package worklist provides a FIFO queue of ordered index pairs with an
// O(1) presence cache, the low-level primitive that the path-consistency
// engine uses to avoid enqueuing the same edge twice while it is already
// pending.
package worklist

// Pair is an ordered pair of dense indices, e.g. an edge (i, j) in a
// square matrix.
type Pair struct {
	I, J int
}

// Queue is a FIFO worklist of Pairs backed by a dense n×n presence matrix.
// Zero value is not usable; construct with New.
type Queue struct {
	items   []Pair
	head    int
	present []bool
	n       int
}

// New creates a Queue sized for indices in [0, n).
func New(n int) *Queue {
	return &Queue{
		items:   make([]Pair, 0, n),
		present: make([]bool, n*n),
		n:       n,
	}
}

// Push enqueues (i, j) unless it is already present. Returns true if the
// pair was newly enqueued.
func (q *Queue) Push(i, j int) bool {
	idx := i*q.n + j
	if q.present[idx] {
		return false
	}
	q.present[idx] = true
	q.items = append(q.items, Pair{I: i, J: j})
	return true
}

// Pop removes and returns the front pair. Behavior is undefined if the
// queue is empty; callers must check Empty first.
func (q *Queue) Pop() Pair {
	p := q.items[q.head]
	q.head++
	q.present[p.I*q.n+p.J] = false
	// Reclaim the backing array once fully drained so repeated Push/Pop
	// cycles on the same queue don't grow it unbounded.
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return p
}

// Empty reports whether the queue has no pending pairs.
func (q *Queue) Empty() bool {
	return q.head == len(q.items)
}
