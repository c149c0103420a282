package tapec

// Cell is a tape cell index: a non-negative integer naming a position on
// the target machine's tape.
type Cell int

// allocator hands out Cell indices and reclaims freed ones, biasing
// reclaimed space towards shrinking the high-water mark rather than
// growing gaps. It emits no target code; it is pure compile-time
// bookkeeping.
type allocator struct {
	nextFree Cell
	gaps     []Cell
}

func newAllocator() *allocator {
	return &allocator{}
}

// allocate returns a fresh Cell. If a freed gap is available it is reused
// (deterministically, the oldest-freed gap first); otherwise the
// high-water mark advances by one.
func (a *allocator) allocate() Cell {
	if len(a.gaps) > 0 {
		c := a.gaps[0]
		a.gaps = a.gaps[1:]
		return c
	}
	c := a.nextFree
	a.nextFree++
	return c
}

// free releases a Cell. If it sits at the current high-water mark the
// mark shrinks; otherwise the index is remembered as a gap for reuse.
func (a *allocator) free(c Cell) {
	if c+1 == a.nextFree {
		a.nextFree--
		return
	}
	a.gaps = append(a.gaps, c)
}

// live reports whether index c currently names an allocated cell; used
// only by tests to check which cells are allocated or freed.
func (a *allocator) live(c Cell) bool {
	if c < 0 || c >= a.nextFree {
		return false
	}
	for _, g := range a.gaps {
		if g == c {
			return false
		}
	}
	return true
}
