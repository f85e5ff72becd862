package allen

// matrix is a dense, row-major square array of RelSets indexed by
// internal node index. A flat array with explicit indexing beats a nested
// [][]RelSet for cache behavior and for resizing one row/column at a time
// as nodes are added.
type matrix struct {
	n    int
	cell []RelSet
}

func newMatrix() *matrix {
	return &matrix{}
}

// at returns M[i][j].
func (m *matrix) at(i, j int) RelSet {
	return m.cell[i*m.n+j]
}

// set assigns M[i][j] = v.
func (m *matrix) set(i, j int, v RelSet) {
	m.cell[i*m.n+j] = v
}

// grow extends the matrix from n×n to (n+1)×(n+1). New off-diagonal
// entries default to ALL; the new diagonal entry is {equals}. Existing
// rows/columns are preserved.
func (m *matrix) grow() {
	next := make([]RelSet, (m.n+1)*(m.n+1))
	for i := range next {
		next[i] = ALL
	}
	for i := 0; i < m.n; i++ {
		copy(next[i*(m.n+1):i*(m.n+1)+m.n], m.cell[i*m.n:i*m.n+m.n])
	}
	newIdx := m.n
	m.n++
	m.cell = next
	m.set(newIdx, newIdx, SetEquals)
}

// reset restores the matrix to its just-grown state: ALL off the
// diagonal, {equals} on it. Used by RemoveConstraint's full rebuild —
// removal cannot be applied incrementally because tightening is lossy.
func (m *matrix) reset() {
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if i == j {
				m.set(i, j, SetEquals)
			} else {
				m.set(i, j, ALL)
			}
		}
	}
}

// size returns the matrix's current dimension.
func (m *matrix) size() int {
	return m.n
}
