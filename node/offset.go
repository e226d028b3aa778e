package node

import "strconv"

// Offset addresses an item position inside a single node.
//
// Besides the concrete positions 0…ItemCount-1 there is one distinguished
// sentinel position "before the first item", used whenever a search has to
// descend into a node's leftmost child. The sentinel is a proper variant of
// the type, not a reserved negative number. The zero value of Offset
// addresses position 0.
type Offset struct {
	pos    int
	before bool
}

// At returns the offset of the concrete position i.
func At(i int) Offset {
	assert(i >= 0, "offset position must not be negative")
	return Offset{pos: i}
}

// Before returns the sentinel offset preceding position 0.
func Before() Offset {
	return Offset{before: true}
}

// IsBefore is true for the sentinel offset.
func (o Offset) IsBefore() bool {
	return o.before
}

// Value returns the concrete position of o, with ok=false for the sentinel.
func (o Offset) Value() (int, bool) {
	if o.before {
		return 0, false
	}
	return o.pos, true
}

// Index returns the concrete position of o and panics for the sentinel.
func (o Offset) Index() int {
	assert(!o.before, "sentinel offset holds no index")
	return o.pos
}

// Next returns the offset one position to the right. The sentinel increments
// to position 0.
func (o Offset) Next() Offset {
	if o.before {
		return Offset{}
	}
	return Offset{pos: o.pos + 1}
}

// Prev returns the offset one position to the left. Position 0 decrements to
// the sentinel, and the sentinel saturates: decrementing it yields the
// sentinel again, never a concrete position.
func (o Offset) Prev() Offset {
	if o.before || o.pos == 0 {
		return Offset{before: true}
	}
	return Offset{pos: o.pos - 1}
}

// Compare orders two offsets. The sentinel precedes every concrete position
// and equals only itself.
func (o Offset) Compare(p Offset) int {
	switch {
	case o.before && p.before:
		return 0
	case o.before:
		return -1
	case p.before:
		return 1
	case o.pos < p.pos:
		return -1
	case o.pos > p.pos:
		return 1
	}
	return 0
}

// CompareIndex orders o against a raw non-negative position. The sentinel
// compares less than any position.
func (o Offset) CompareIndex(i int) int {
	switch {
	case o.before:
		return -1
	case o.pos < i:
		return -1
	case o.pos > i:
		return 1
	}
	return 0
}

func (o Offset) String() string {
	if o.before {
		return "-1"
	}
	return strconv.Itoa(o.pos)
}
