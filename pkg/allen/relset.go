package allen

import "math/bits"

// RelSet is a subset of the thirteen basic Allen relations packed into the
// low 13 bits of a uint16, following the canonical encoding in Relation:
// bit i is set iff Relation(i) is a member of the set. Bits above position
// 12 must never be set; RelSet is a value type and all operations on it
// are total: no operation on a well-formed RelSet fails.
type RelSet uint16

// Singleton RelSets, one per basic relation, plus the two derived
// constants EMPTY (no relation admissible) and ALL (every relation
// admissible, the default before any constraint narrows a pair).
const (
	EMPTY RelSet = 0

	SetBefore       RelSet = 1 << Before
	SetAfter        RelSet = 1 << After
	SetDuring       RelSet = 1 << During
	SetContains     RelSet = 1 << Contains
	SetOverlaps     RelSet = 1 << Overlaps
	SetOverlappedBy RelSet = 1 << OverlappedBy
	SetMeets        RelSet = 1 << Meets
	SetMetBy        RelSet = 1 << MetBy
	SetStarts       RelSet = 1 << Starts
	SetStartedBy    RelSet = 1 << StartedBy
	SetFinishes     RelSet = 1 << Finishes
	SetFinishedBy   RelSet = 1 << FinishedBy
	SetEquals       RelSet = 1 << Equals

	ALL RelSet = SetBefore | SetAfter | SetDuring | SetContains |
		SetOverlaps | SetOverlappedBy | SetMeets | SetMetBy |
		SetStarts | SetStartedBy | SetFinishes | SetFinishedBy | SetEquals
)

// Of builds the RelSet containing exactly the given relations.
func Of(rs ...Relation) RelSet {
	var s RelSet
	for _, r := range rs {
		s |= 1 << r
	}
	return s
}

// Union returns the set of relations admissible under either operand.
func (s RelSet) Union(other RelSet) RelSet {
	return s | other
}

// Intersect returns the set of relations admissible under both operands.
func (s RelSet) Intersect(other RelSet) RelSet {
	return s & other
}

// IsEmpty reports whether no relation is admissible.
func (s RelSet) IsEmpty() bool {
	return s == EMPTY
}

// Contains reports whether r is a member of s.
func (s RelSet) Contains(r Relation) bool {
	return s&(1<<r) != 0
}

// IsSubset reports whether every relation in s is also in other.
func (s RelSet) IsSubset(other RelSet) bool {
	return s&other == s
}

// Count returns the number of basic relations admissible in s.
func (s RelSet) Count() int {
	return bits.OnesCount16(uint16(s))
}

// Inverse returns { Inverse(r) | r ∈ s }, the relation set seen from the
// other endpoint of the pair.
func (s RelSet) Inverse() RelSet {
	var out RelSet
	for b := uint16(s); b != 0; b &= b - 1 {
		i := bits.TrailingZeros16(b)
		out |= 1 << inverseOf[Relation(i)]
	}
	return out
}

// Names returns the human-readable names of the relations in s, in
// canonical enumeration order.
func (s RelSet) Names() []string {
	names := make([]string, 0, s.Count())
	for b := uint16(s); b != 0; b &= b - 1 {
		i := bits.TrailingZeros16(b)
		names = append(names, Relation(i).String())
	}
	return names
}

// Compose returns the relation set implied by transitivity: the set of c
// such that some configuration satisfies (X a Y) ∧ (Y b Z) ∧ (X c Z) for
// some a ∈ s, b ∈ other. Backed by the precomputed composition table with
// an early exit once the accumulated result reaches ALL.
func (s RelSet) Compose(other RelSet) RelSet {
	var out RelSet
	for b := uint16(s); b != 0; b &= b - 1 {
		a := bits.TrailingZeros16(b)
		row := compositionTable[a]
		for c := uint16(other); c != 0; c &= c - 1 {
			out |= row[bits.TrailingZeros16(c)]
			if out == ALL {
				return ALL
			}
		}
	}
	return out
}
