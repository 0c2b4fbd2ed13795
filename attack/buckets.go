package attack

// degreeBuckets groups dense vertex indices by their current degree.
//
// Invariant (between operations): every live vertex i appears exactly once,
// in slots[deg[i]] at position pos[i]. The slot array is sized once from the
// initial maximum degree; degrees only ever decrease, so it never grows.
type degreeBuckets struct {
	slots [][]int // slots[d]: vertices whose current degree is d
	pos   []int   // pos[i]: index of i inside slots[deg[i]], -1 once popped
	deg   []int   // deg[i]: current degree of i
}

// newDegreeBuckets takes ownership of deg and buckets every vertex by it.
// Complexity: O(n).
func newDegreeBuckets(deg []int) *degreeBuckets {
	maxDeg := 0
	for _, d := range deg {
		maxDeg = max(maxDeg, d)
	}

	b := &degreeBuckets{
		slots: make([][]int, maxDeg+1),
		pos:   make([]int, len(deg)),
		deg:   deg,
	}
	for i, d := range deg {
		b.pos[i] = len(b.slots[d])
		b.slots[d] = append(b.slots[d], i)
	}

	return b
}

// maxDegree returns the highest bucket index.
func (b *degreeBuckets) maxDegree() int { return len(b.slots) - 1 }

// pop removes and returns the last vertex of bucket d.
// Complexity: O(1).
func (b *degreeBuckets) pop(d int) (int, bool) {
	s := b.slots[d]
	if len(s) == 0 {
		return -1, false
	}
	i := s[len(s)-1]
	b.slots[d] = s[:len(s)-1]
	b.pos[i] = -1

	return i, true
}

// decrement moves live vertex i from bucket deg[i] to deg[i]-1.
// It reports false, leaving the buckets untouched, if i is not live or
// already has degree 0.
// Complexity: O(1).
func (b *degreeBuckets) decrement(i int) bool {
	d, p := b.deg[i], b.pos[i]
	if d == 0 || p < 0 {
		return false
	}

	// swap-remove i from its current slot
	s := b.slots[d]
	last := s[len(s)-1]
	s[p] = last
	b.pos[last] = p
	b.slots[d] = s[:len(s)-1]

	d--
	b.deg[i] = d
	b.pos[i] = len(b.slots[d])
	b.slots[d] = append(b.slots[d], i)

	return true
}
