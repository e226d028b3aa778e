package node

import "errors"

var (
	// ErrWouldUnderflow signals that a boundary pop would drop a node below
	// its minimum occupancy. The caller is expected to merge instead of
	// borrow.
	ErrWouldUnderflow = errors.New("node: pop would underflow node")
	// ErrKeyNotSeparator signals InsertByKey on an internal node for a key
	// that is not stored as a separator at this level. New separators enter
	// internal nodes only as the side effect of a child split.
	ErrKeyNotSeparator = errors.New("node: key is not a separator of this node")
	// ErrInvalidOrder signals occupancy bounds that cannot sustain a B-tree.
	ErrInvalidOrder = errors.New("node: invalid tree order")
	// ErrInvariant signals a failed consistency check.
	ErrInvariant = errors.New("node: invariant violated")
)
