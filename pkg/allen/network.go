// Package allen implements the core of a constraint network over Allen's
// thirteen basic interval relations: a compact bitset encoding of
// relation sets (RelSet), the corresponding composition and inverse
// operators, a dense constraint matrix over registered nodes, and the
// worklist-driven path-consistency engine that tightens the matrix to a
// fixed point while detecting inconsistency.
//
// The package has no notion of CLI, persistence, visualisation, or a
// calendar system; an interval identifier is an opaque, caller-chosen
// comparable value. A Network is not safe for concurrent mutation —
// callers needing concurrency must serialize access externally.
package allen

import "allennet/internal/worklist"

// Constraint is a user-asserted triple: the relation between source and
// destination lies within RelSet. Constraint values are immutable once
// returned by AddConstraint.
type Constraint[T comparable] struct {
	src Node[T]
	dst Node[T]
	rel RelSet
}

// Source returns the node the constraint was asserted from.
func (c Constraint[T]) Source() Node[T] { return c.src }

// Destination returns the node the constraint was asserted to.
func (c Constraint[T]) Destination() Node[T] { return c.dst }

// RelSet returns the asserted admissible relation set from Source to
// Destination.
func (c Constraint[T]) RelSet() RelSet { return c.rel }

// Network is a constraint network over nodes identified by T: an ordered
// list of Nodes, a dense matrix of RelSets between them, the list of
// user-asserted Constraints, and a sticky inconsistency flag: once
// propagation detects an empty cell, the network stays inconsistent until
// the offending constraint is removed.
type Network[T comparable] struct {
	nodes        *registry[T]
	m            *matrix
	constraints  []Constraint[T]
	inconsistent bool
}

// New creates an empty constraint network.
func New[T comparable]() *Network[T] {
	return &Network[T]{
		nodes: newRegistry[T](),
		m:     newMatrix(),
	}
}

// AddNode registers a new node under identifier id. Returns ErrDuplicateNode,
// with no state change, if id is already registered.
func (n *Network[T]) AddNode(id T) (Node[T], error) {
	node, ok := n.nodes.add(id)
	if !ok {
		return Node[T]{}, ErrDuplicateNode
	}
	n.m.grow()
	return node, nil
}

// AddConstraint asserts that the relation from src to dst lies within
// rel. Returns ErrUnknownNode, with no state change, if either endpoint
// is unregistered, or ErrDuplicateConstraint if the unordered pair
// already carries an asserted constraint. On success, returns
// a nil error regardless of whether propagation leaves the network
// inconsistent — call PathConsistency to observe the verdict.
func (n *Network[T]) AddConstraint(srcID, dstID T, rel RelSet) (Constraint[T], error) {
	src, ok := n.nodes.get(srcID)
	if !ok {
		return Constraint[T]{}, ErrUnknownNode
	}
	dst, ok := n.nodes.get(dstID)
	if !ok {
		return Constraint[T]{}, ErrUnknownNode
	}
	for _, c := range n.constraints {
		if (c.src.index == src.index && c.dst.index == dst.index) ||
			(c.src.index == dst.index && c.dst.index == src.index) {
			return Constraint[T]{}, ErrDuplicateConstraint
		}
	}

	c := Constraint[T]{src: src, dst: dst, rel: rel}
	n.constraints = append(n.constraints, c)
	n.m.set(src.index, dst.index, rel)
	n.m.set(dst.index, src.index, rel.Inverse())

	wl := worklist.New(n.m.size())
	wl.Push(src.index, dst.index)
	wl.Push(dst.index, src.index)
	if !newEngine(n.m, wl).run() {
		n.inconsistent = true
	}
	return c, nil
}

// RemoveConstraint removes c from the asserted set and rebuilds the
// matrix from the remaining constraints — removal cannot be applied
// incrementally because tightening is lossy. Clears the sticky
// inconsistency flag and re-runs path consistency honestly. Returns
// ErrUnknownConstraint if c was not asserted.
func (n *Network[T]) RemoveConstraint(c Constraint[T]) error {
	idx := -1
	for i, existing := range n.constraints {
		if existing.src.index == c.src.index && existing.dst.index == c.dst.index && existing.rel == c.rel {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrUnknownConstraint
	}
	n.constraints = append(n.constraints[:idx], n.constraints[idx+1:]...)
	n.rebuild()
	return nil
}

// rebuild resets the matrix to its default (ALL off-diagonal, {equals} on
// it), re-applies every remaining asserted constraint, clears the sticky
// flag, and re-runs path consistency to a fixed point.
func (n *Network[T]) rebuild() {
	n.m.reset()
	n.inconsistent = false
	if len(n.constraints) == 0 {
		return
	}
	wl := worklist.New(n.m.size())
	for _, c := range n.constraints {
		n.m.set(c.src.index, c.dst.index, c.rel)
		n.m.set(c.dst.index, c.src.index, c.rel.Inverse())
		wl.Push(c.src.index, c.dst.index)
		wl.Push(c.dst.index, c.src.index)
	}
	if !newEngine(n.m, wl).run() {
		n.inconsistent = true
	}
}

// PathConsistency returns the current path-consistency verdict,
// re-running the fixed-point computation if there is anything left to
// confirm. Idempotent when nothing has changed since the last run: with
// no asserted constraints the network is trivially consistent, and a
// network already latched inconsistent stays inconsistent until the
// offending constraint is removed.
func (n *Network[T]) PathConsistency() bool {
	if n.inconsistent {
		return false
	}
	if len(n.constraints) == 0 {
		return true
	}
	wl := worklist.New(n.m.size())
	for _, c := range n.constraints {
		wl.Push(c.src.index, c.dst.index)
		wl.Push(c.dst.index, c.src.index)
	}
	if !newEngine(n.m, wl).run() {
		n.inconsistent = true
		return false
	}
	return true
}

// ConstraintNetwork returns a read-only snapshot of the current n×n
// matrix, indexed by Node.Index(). The caller must not mutate the
// returned RelSets' backing values by aliasing internal state — the
// slice returned is a copy.
func (n *Network[T]) ConstraintNetwork() [][]RelSet {
	size := n.m.size()
	out := make([][]RelSet, size)
	for i := 0; i < size; i++ {
		row := make([]RelSet, size)
		for j := 0; j < size; j++ {
			row[j] = n.m.at(i, j)
		}
		out[i] = row
	}
	return out
}

// ModeledConstraints returns every constraint currently asserted, in
// insertion order.
func (n *Network[T]) ModeledConstraints() []Constraint[T] {
	out := make([]Constraint[T], len(n.constraints))
	copy(out, n.constraints)
	return out
}

// ModeledNodes returns every registered node, in registration order.
func (n *Network[T]) ModeledNodes() []Node[T] {
	return append([]Node[T](nil), n.nodes.all()...)
}

// Size returns the number of registered nodes.
func (n *Network[T]) Size() int {
	return n.nodes.size()
}
