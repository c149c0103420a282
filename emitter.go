package tapec

import "strings"

// emitter is the single sink of all target characters. It appends to an
// ordered buffer and tracks the predicted head position, which must be an
// exact prediction of the runtime tape head at every emitted character.
type emitter struct {
	buf  strings.Builder
	head Cell
}

func newEmitter() *emitter {
	return &emitter{}
}

// emit appends chars verbatim. Callers that move the head (goto,
// moveCell) are responsible for keeping e.head in sync; emit itself never
// touches it.
func (e *emitter) emit(chars string) {
	e.buf.WriteString(chars)
}

func (e *emitter) program() string {
	return e.buf.String()
}

// goto moves the predicted head to target, emitting the run of '>' or '<'
// needed to get there.
func (e *emitter) goTo(target Cell) {
	switch {
	case target > e.head:
		e.emit(strings.Repeat(">", int(target-e.head)))
	case target < e.head:
		e.emit(strings.Repeat("<", int(e.head-target)))
	}
	e.head = target
}

// moveCell emits the canonical destructive-move idiom: drain src into each
// of dsts, multiplier times per decrement of src. Precondition: src must
// not appear in dsts. Postcondition: head is back at src, src holds zero,
// and each destination has multiplier*initial(src) added to its prior
// content.
func (e *emitter) moveCell(src Cell, multiplier int, dsts ...Cell) {
	e.goTo(src)
	e.loop(func() error {
		e.emit("-")
		for _, dst := range dsts {
			e.goTo(dst)
			e.emit(strings.Repeat("+", multiplier))
		}
		e.goTo(src)
		return nil
	})
}

// loop emits a balanced '[' ']' pair around body. If body returns an error
// that error is returned as-is: the compiler is aborting regardless, so
// there is no reason to also judge head balance on a body that bailed out
// partway through. Otherwise it asserts that the predicted head at scope
// exit equals the head at scope entry — any loop body that leaves the
// head in a data-dependent position would emit a target program the
// compiler can no longer reason about.
func (e *emitter) loop(body func() error) error {
	entry := e.head
	e.emit("[")
	err := body()
	e.emit("]")
	if err != nil {
		return err
	}
	if e.head != entry {
		return newFault(UnbalancedLoop, "loop entered at cell %d but exited at cell %d", entry, e.head)
	}
	return nil
}

// zero emits the idiom to clear the cell at c, moving the head there
// first. Used whenever an intrinsic writes a byte whose old content
// might be non-zero (fresh cells are not guaranteed zero once the
// allocator has reused a freed gap).
func (e *emitter) zero(c Cell) {
	e.goTo(c)
	e.loop(func() error {
		e.emit("-")
		return nil
	})
}
