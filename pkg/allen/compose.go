package allen

// compositionTable[a][b] is the RelSet of relations c such that some
// temporal configuration satisfies (X a Y) ∧ (Y b Z) ∧ (X c Z), for basic
// relations a and b indexed by their Relation position. Rows and columns
// follow the canonical order in relation.go.
//
// This is Allen's 1983 transitivity table with three corrected cells: the
// contains⊗during cell, and the overlaps⊗overlappedBy / overlappedBy⊗overlaps
// cells, each gain starts, startedBy, finishes, finishedBy that the
// original paper omitted. The values below were cross-checked cell-by-cell
// against the corrected table shipped in the reference implementation this
// package's algorithm is grounded on.
var compositionTable = [numRelations][numRelations]RelSet{
	// before
	{
		SetBefore, ALL, SetBefore | SetOverlaps | SetMeets | SetDuring | SetStarts,
		SetBefore, SetBefore, SetBefore | SetOverlaps | SetMeets | SetDuring | SetStarts,
		SetBefore, SetBefore | SetOverlaps | SetMeets | SetDuring | SetStarts,
		SetBefore, SetBefore, SetBefore | SetOverlaps | SetMeets | SetDuring | SetStarts,
		SetBefore, SetBefore,
	},
	// after
	{
		ALL, SetAfter, SetAfter | SetOverlappedBy | SetMetBy | SetDuring | SetFinishes,
		SetAfter, SetAfter | SetOverlappedBy | SetMetBy | SetDuring | SetFinishes,
		SetAfter, SetAfter | SetOverlappedBy | SetMetBy | SetDuring | SetFinishes,
		SetAfter, SetAfter | SetOverlappedBy | SetMetBy | SetDuring | SetFinishes,
		SetAfter, SetAfter, SetAfter, SetAfter,
	},
	// during
	{
		SetBefore, SetAfter, SetDuring, ALL,
		SetBefore | SetOverlaps | SetMeets | SetDuring | SetStarts,
		SetAfter | SetOverlappedBy | SetMetBy | SetDuring | SetFinishes,
		SetBefore, SetAfter, SetDuring,
		SetAfter | SetOverlappedBy | SetMetBy | SetDuring | SetFinishes,
		SetDuring, SetBefore | SetOverlaps | SetMeets | SetDuring | SetStarts, SetDuring,
	},
	// contains (corrected: gains starts, startedBy, finishes, finishedBy in the during column)
	{
		SetBefore | SetOverlaps | SetMeets | SetContains | SetFinishedBy,
		SetAfter | SetOverlappedBy | SetContains | SetMetBy | SetStartedBy,
		SetOverlaps | SetOverlappedBy | SetDuring | SetContains | SetEquals | SetStarts | SetStartedBy | SetFinishes | SetFinishedBy,
		SetContains,
		SetOverlaps | SetContains | SetFinishedBy,
		SetOverlappedBy | SetContains | SetStartedBy,
		SetOverlaps | SetContains | SetFinishedBy,
		SetOverlappedBy | SetContains | SetStartedBy,
		SetContains | SetFinishedBy | SetOverlaps,
		SetContains,
		SetContains | SetStartedBy | SetOverlappedBy,
		SetContains, SetContains,
	},
	// overlaps
	{
		SetBefore,
		SetAfter | SetOverlappedBy | SetContains | SetMetBy | SetStartedBy,
		SetOverlaps | SetDuring | SetStarts,
		SetBefore | SetOverlaps | SetMeets | SetContains | SetFinishedBy,
		SetBefore | SetOverlaps | SetMeets,
		SetOverlaps | SetOverlappedBy | SetDuring | SetContains | SetEquals | SetStarts | SetStartedBy | SetFinishes | SetFinishedBy,
		SetBefore,
		SetOverlappedBy | SetContains | SetStartedBy,
		SetOverlaps,
		SetContains | SetFinishedBy | SetOverlaps,
		SetDuring | SetStarts | SetOverlaps,
		SetBefore | SetOverlaps | SetMeets,
		SetOverlaps,
	},
	// overlappedBy (corrected: gains starts, startedBy, finishes, finishedBy in the overlaps column)
	{
		SetBefore | SetOverlaps | SetMeets | SetContains | SetFinishedBy,
		SetAfter,
		SetOverlappedBy | SetDuring | SetFinishes,
		SetAfter | SetOverlappedBy | SetMetBy | SetContains | SetStartedBy,
		SetOverlaps | SetOverlappedBy | SetDuring | SetContains | SetEquals | SetStarts | SetStartedBy | SetFinishes | SetFinishedBy,
		SetAfter | SetOverlappedBy | SetMetBy,
		SetOverlaps | SetContains | SetFinishedBy,
		SetAfter,
		SetOverlappedBy | SetDuring | SetFinishes,
		SetOverlappedBy | SetAfter | SetMetBy,
		SetOverlappedBy,
		SetOverlappedBy | SetContains | SetStartedBy,
		SetOverlappedBy,
	},
	// meets
	{
		SetBefore,
		SetAfter | SetOverlappedBy | SetMetBy | SetContains | SetStartedBy,
		SetOverlaps | SetDuring | SetStarts,
		SetBefore, SetBefore,
		SetOverlaps | SetDuring | SetStarts,
		SetBefore,
		SetFinishes | SetFinishedBy | SetEquals,
		SetMeets, SetMeets,
		SetDuring | SetStarts | SetOverlaps,
		SetBefore, SetMeets,
	},
	// metBy
	{
		SetBefore | SetOverlaps | SetMeets | SetContains | SetFinishedBy,
		SetAfter,
		SetOverlappedBy | SetDuring | SetFinishes,
		SetAfter,
		SetOverlappedBy | SetDuring | SetFinishes,
		SetAfter,
		SetStarts | SetStartedBy | SetEquals,
		SetAfter,
		SetDuring | SetFinishes | SetOverlappedBy,
		SetAfter, SetMetBy, SetMetBy, SetMetBy,
	},
	// starts
	{
		SetBefore, SetAfter, SetDuring,
		SetBefore | SetOverlaps | SetMeets | SetContains | SetFinishedBy,
		SetBefore | SetOverlaps | SetMeets,
		SetOverlappedBy | SetDuring | SetFinishes,
		SetBefore, SetMetBy, SetStarts,
		SetStarts | SetStartedBy | SetEquals,
		SetDuring,
		SetBefore | SetMeets | SetOverlaps, SetStarts,
	},
	// startedBy
	{
		SetBefore | SetOverlaps | SetMeets | SetContains | SetFinishedBy,
		SetAfter,
		SetOverlappedBy | SetDuring | SetFinishes,
		SetContains,
		SetOverlaps | SetContains | SetFinishedBy,
		SetOverlappedBy,
		SetOverlaps | SetContains | SetFinishedBy,
		SetMetBy,
		SetStarts | SetStartedBy | SetEquals,
		SetStartedBy, SetOverlappedBy, SetContains, SetStartedBy,
	},
	// finishes
	{
		SetBefore, SetAfter, SetDuring,
		SetAfter | SetOverlappedBy | SetMetBy | SetContains | SetStartedBy,
		SetOverlaps | SetDuring | SetStarts,
		SetAfter | SetOverlappedBy | SetMetBy,
		SetMeets, SetAfter, SetDuring,
		SetAfter | SetOverlappedBy | SetMetBy,
		SetFinishes,
		SetFinishes | SetFinishedBy | SetEquals,
		SetFinishes,
	},
	// finishedBy
	{
		SetBefore,
		SetAfter | SetOverlappedBy | SetMetBy | SetContains | SetStartedBy,
		SetOverlaps | SetDuring | SetStarts,
		SetContains, SetOverlaps,
		SetOverlappedBy | SetContains | SetStartedBy,
		SetMeets,
		SetStartedBy | SetOverlappedBy | SetContains,
		SetOverlaps, SetContains,
		SetFinishes | SetFinishedBy | SetEquals,
		SetFinishedBy, SetFinishedBy,
	},
	// equals
	{
		SetBefore, SetAfter, SetDuring, SetContains, SetOverlaps, SetOverlappedBy,
		SetMeets, SetMetBy, SetStarts, SetStartedBy, SetFinishes, SetFinishedBy, SetEquals,
	},
}
