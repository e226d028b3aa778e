package node

import "iter"

// ChildSpan is one step of ChildrenWithSeparators: a child address together
// with references to the separator items bounding its key range. Left is nil
// for the leading child, Right is nil for the last one.
type ChildSpan[K, V any, I comparable] struct {
	Left  *Item[K, V]
	Child I
	Right *Item[K, V]
}

// Children yields the node's child addresses from left to right. The
// sequence is lazy with O(1) steps and restartable: every range loop reads
// through to the node's current state.
func (n *InternalNode[K, V, I]) Children() iter.Seq[I] {
	return func(yield func(I) bool) {
		if !yield(n.first) {
			return
		}
		for i := range n.branches {
			if !yield(n.branches[i].Child) {
				return
			}
		}
	}
}

// ChildrenWithSeparators yields the node's children together with their
// bounding separators. Traversal, validation and presentation are built on
// this sequence.
func (n *InternalNode[K, V, I]) ChildrenWithSeparators() iter.Seq[ChildSpan[K, V, I]] {
	return func(yield func(ChildSpan[K, V, I]) bool) {
		var left *Item[K, V]
		child := n.first
		for i := range n.branches {
			sep := &n.branches[i].Item
			if !yield(ChildSpan[K, V, I]{Left: left, Child: child, Right: sep}) {
				return
			}
			left = sep
			child = n.branches[i].Child
		}
		yield(ChildSpan[K, V, I]{Left: left, Child: child})
	}
}
