package allen

import "allennet/internal/worklist"

// engine runs Allen's corrected path-consistency algorithm to a fixed
// point over a matrix, given a worklist pre-seeded with the edges whose
// change needs propagating.
//
// Two corrections versus the algorithm as originally published apply
// here: the subset test that decides whether an edge needs re-enqueuing
// is taken against the *destination* of the tightened edge, not its
// source; and the composition table itself carries the corrected
// contains/overlaps/overlappedBy cells (compose.go).
type engine struct {
	m  *matrix
	wl *worklist.Queue
}

func newEngine(m *matrix, wl *worklist.Queue) *engine {
	return &engine{m: m, wl: wl}
}

// run drains the worklist, tightening the matrix at every triple touched
// by a changed edge, until it empties (consistent) or a cell collapses to
// EMPTY (inconsistent). The final matrix is independent of the worklist's
// visitation order (bit-set intersection is confluent); FIFO is used only
// for reproducibility of traces.
func (e *engine) run() bool {
	n := e.m.size()
	for !e.wl.Empty() {
		p := e.wl.Pop()
		i, j := p.I, p.J
		for k := 0; k < n; k++ {
			if !e.tighten(k, j, e.m.at(k, i), e.m.at(i, j)) {
				return false
			}
			if !e.tighten(i, k, e.m.at(i, j), e.m.at(j, k)) {
				return false
			}
		}
	}
	return true
}

// tighten intersects M[dst0][dst1] with compose(a, b) and, if that
// strictly narrows the destination cell, writes the new value and its
// inverse and re-enqueues both directions. Returns false if the
// intersection is empty (the network is inconsistent).
func (e *engine) tighten(dst0, dst1 int, a, b RelSet) bool {
	current := e.m.at(dst0, dst1)
	next := current.Intersect(a.Compose(b))
	if next.IsEmpty() {
		return false
	}
	if next == current {
		return true
	}
	e.m.set(dst0, dst1, next)
	e.m.set(dst1, dst0, next.Inverse())
	e.wl.Push(dst0, dst1)
	e.wl.Push(dst1, dst0)
	return true
}
