package node

import (
	"fmt"
	"iter"
	"slices"
)

// Branch pairs a separator item with the address of the subtree holding the
// keys greater than the separator.
type Branch[K, V any, I comparable] struct {
	Item  Item[K, V]
	Child I
}

// InternalNode stores separator items interleaved with child addresses: one
// leading left child plus, per item, the child to the item's right. A node
// with n items therefore references exactly n+1 children.
//
// The node never resolves the addresses it holds. Operations that move
// children around return the affected addresses so that the driver, the only
// layer with arena access, can re-home parent back-references right away.
type InternalNode[K, V any, I comparable] struct {
	parent    I
	hasParent bool
	first     I
	branches  []Branch[K, V, I]
}

// Parent returns the address of the node's parent, with ok=false at the root.
func (n *InternalNode[K, V, I]) Parent() (I, bool) {
	return n.parent, n.hasParent
}

// SetParent re-homes the node to a new parent address.
func (n *InternalNode[K, V, I]) SetParent(id I) {
	n.parent = id
	n.hasParent = true
}

// ClearParent marks the node as parentless, i.e. the root.
func (n *InternalNode[K, V, I]) ClearParent() {
	var none I
	n.parent = none
	n.hasParent = false
}

// ItemCount returns the number of separator items stored in the node.
func (n *InternalNode[K, V, I]) ItemCount() int {
	return len(n.branches)
}

// ChildCount returns the number of child addresses, always ItemCount()+1.
func (n *InternalNode[K, V, I]) ChildCount() int {
	return len(n.branches) + 1
}

// Balance grades the node's occupancy against ord.
func (n *InternalNode[K, V, I]) Balance(ord Order) Balance {
	return ord.Classify(len(n.branches))
}

// Items yields the node's separator items in ascending key order.
func (n *InternalNode[K, V, I]) Items() iter.Seq[Item[K, V]] {
	return func(yield func(Item[K, V]) bool) {
		for i := range n.branches {
			if !yield(n.branches[i].Item) {
				return
			}
		}
	}
}

func (n *InternalNode[K, V, I]) search(key K, compare CompareFunc[K]) (int, bool) {
	return slices.BinarySearchFunc(n.branches, key, func(b Branch[K, V, I], k K) int {
		return compare(b.Item.key, k)
	})
}

// Get returns a reference to the value stored under key if key is one of the
// node's separators. Otherwise the value reference is nil and descend names
// the child the search must continue in — this is the dispatch contract that
// lets the driver run a recursive search without this layer knowing about
// multi-level structure.
func (n *InternalNode[K, V, I]) Get(key K, compare CompareFunc[K]) (value *V, descend I) {
	i, found := n.search(key, compare)
	if found {
		return &n.branches[i].Item.value, descend
	}
	return nil, n.ChildID(i)
}

// OffsetOf locates key among the node's separators. On a match, found is
// true and at is the separator's offset. Otherwise childIndex and childID
// name the subtree the search must descend into.
func (n *InternalNode[K, V, I]) OffsetOf(key K, compare CompareFunc[K]) (at Offset, childIndex int, childID I, found bool) {
	i, ok := n.search(key, compare)
	if ok {
		return At(i), 0, childID, true
	}
	return Offset{}, i, n.ChildID(i), false
}

// Item returns a reference to the separator item at the given offset, or nil
// when the offset does not address an item of this node.
func (n *InternalNode[K, V, I]) Item(at Offset) *Item[K, V] {
	if i, ok := at.Value(); ok && i < len(n.branches) {
		return &n.branches[i].Item
	}
	return nil
}

// ChildID returns the address of the child at position i; position 0 is the
// leading left child. It panics when i is out of range.
func (n *InternalNode[K, V, I]) ChildID(i int) I {
	id, ok := n.ChildIDOpt(i)
	assert(ok, "child index out of range")
	return id
}

// ChildIDOpt returns the address of the child at position i, with ok=false
// when i is out of range.
func (n *InternalNode[K, V, I]) ChildIDOpt(i int) (I, bool) {
	var none I
	switch {
	case i < 0 || i > len(n.branches):
		return none, false
	case i == 0:
		return n.first, true
	}
	return n.branches[i-1].Child, true
}

// ChildIndex returns the position of the child with the given address, with
// ok=false when this node does not reference the address.
func (n *InternalNode[K, V, I]) ChildIndex(id I) (int, bool) {
	if n.first == id {
		return 0, true
	}
	for i := range n.branches {
		if n.branches[i].Child == id {
			return i + 1, true
		}
	}
	return 0, false
}

// InsertByKey replaces the value of an existing separator and returns the
// previous value with the separator's offset. A key that is not a separator
// at this level fails with ErrKeyNotSeparator: internal nodes never invent
// separators from a bare key, that only happens through Insert or a boundary
// push when the driver splits a child.
func (n *InternalNode[K, V, I]) InsertByKey(key K, value V, compare CompareFunc[K]) (at Offset, previous V, err error) {
	i, found := n.search(key, compare)
	if !found {
		return Offset{}, previous, fmt.Errorf("%w: %v", ErrKeyNotSeparator, key)
	}
	return At(i), n.branches[i].Item.SetValue(value), nil
}

// Insert places a (separator, right child) pair at the given offset, shifting
// later branches to the right. Order correctness and overflow handling are
// the caller's concern.
func (n *InternalNode[K, V, I]) Insert(at Offset, item Item[K, V], child I) {
	i, ok := at.Value()
	assert(ok, "cannot insert at the sentinel offset")
	assert(i <= len(n.branches), "branch insert offset out of range")
	n.branches = slices.Insert(n.branches, i, Branch[K, V, I]{Item: item, Child: child})
}

// Replace swaps the separator item at the given offset and returns the old
// one. It serves promotion of an in-order predecessor during deletes; the
// caller guarantees the new key still bounds the two adjacent subtrees.
func (n *InternalNode[K, V, I]) Replace(at Offset, item Item[K, V]) Item[K, V] {
	i, ok := at.Value()
	assert(ok && i < len(n.branches), "replace offset out of range")
	old := n.branches[i].Item
	n.branches[i].Item = item
	return old
}

// Remove deletes the branch at the given offset, returning the separator item
// and the address of the separator's right child, which is no longer
// referenced by this node. The caller decides the orphan's fate; Merge is the
// usual consumer.
func (n *InternalNode[K, V, I]) Remove(at Offset) (Item[K, V], I) {
	i, ok := at.Value()
	assert(ok, "cannot remove at the sentinel offset")
	assert(i < len(n.branches), "branch remove offset out of range")
	b := n.branches[i]
	n.branches = slices.Delete(n.branches, i, i+1)
	return b.Item, b.Child
}

// RemoveLast removes the maximum branch, like Remove at the last offset.
func (n *InternalNode[K, V, I]) RemoveLast() (Item[K, V], I) {
	assert(len(n.branches) > 0, "cannot remove from an empty node")
	return n.Remove(At(len(n.branches) - 1))
}

// Merged reports the outcome of merging two adjacent children.
type Merged[K, V any, I comparable] struct {
	// Length is the item count of the merging node after losing the
	// separator.
	Length int
	// Freed is the child address that is no longer referenced. The caller
	// appends the freed node into Surviving and releases the address.
	Freed I
	// Surviving is the child that absorbs the separator and the freed node.
	Surviving I
	// Separator is the demoted item that sat between the two children.
	Separator Item[K, V]
	// Balance grades this node's occupancy after losing one item and one
	// child, so rebalancing obligations propagate upward without a second
	// classification call.
	Balance Balance
}

// Merge books the merge of two adjacent children out of this node: the
// separator between them is demoted and the right child's address dropped,
// leaving the left child as the survivor. The nodes behind the two addresses
// are untouched — only the caller can dereference them, appending the freed
// node into the surviving one and releasing the freed address.
func (n *InternalNode[K, V, I]) Merge(leftIndex, rightIndex int, ord Order) Merged[K, V, I] {
	assert(rightIndex == leftIndex+1, "can only merge adjacent children")
	assert(leftIndex >= 0 && rightIndex <= len(n.branches), "merge child index out of range")
	surviving := n.ChildID(leftIndex)
	separator, freed := n.Remove(At(leftIndex))
	return Merged[K, V, I]{
		Length:    len(n.branches),
		Freed:     freed,
		Surviving: surviving,
		Separator: separator,
		Balance:   ord.Classify(len(n.branches)),
	}
}

// PushLeft prepends a (separator, child) pair: the pushed child becomes the
// node's new leading child and the previous leading child becomes the
// separator's right child, preserving child/item parity.
func (n *InternalNode[K, V, I]) PushLeft(item Item[K, V], child I) {
	n.branches = slices.Insert(n.branches, 0, Branch[K, V, I]{Item: item, Child: n.first})
	n.first = child
}

// PopLeft removes the minimum (separator, child) pair, the exact inverse of
// PushLeft. It fails with ErrWouldUnderflow at minimum occupancy.
func (n *InternalNode[K, V, I]) PopLeft(ord Order) (Item[K, V], I, error) {
	if len(n.branches) <= ord.MinItems {
		var none I
		return Item[K, V]{}, none, ErrWouldUnderflow
	}
	child := n.first
	head := n.branches[0]
	n.branches = slices.Delete(n.branches, 0, 1)
	n.first = head.Child
	return head.Item, child, nil
}

// PushRight appends a (separator, child) pair at the high end.
func (n *InternalNode[K, V, I]) PushRight(item Item[K, V], child I) {
	n.branches = append(n.branches, Branch[K, V, I]{Item: item, Child: child})
}

// PopRight removes the maximum (separator, child) pair together with the
// offset the separator occupied. It fails with ErrWouldUnderflow at minimum
// occupancy.
func (n *InternalNode[K, V, I]) PopRight(ord Order) (Offset, Item[K, V], I, error) {
	if len(n.branches) <= ord.MinItems {
		var none I
		return Offset{}, Item[K, V]{}, none, ErrWouldUnderflow
	}
	last := len(n.branches) - 1
	b := n.branches[last]
	n.branches = slices.Delete(n.branches, last, last+1)
	return At(last), b.Item, b.Child, nil
}

// Split partitions the node's branches roughly in half. The median separator
// is promoted out; the right sibling adopts the median's old right child as
// its leading child plus all branches above the median. The redistributed
// children keep stale parent references until the caller re-homes them — the
// sibling holds no address before the arena assigns one.
func (n *InternalNode[K, V, I]) Split() (int, Item[K, V], *InternalNode[K, V, I]) {
	cnt := len(n.branches)
	assert(cnt >= 3, "cannot split an internal node with fewer than 3 items")
	mid := cnt / 2
	median := n.branches[mid].Item
	right := &InternalNode[K, V, I]{
		parent:    n.parent,
		hasParent: n.hasParent,
		first:     n.branches[mid].Child,
		branches:  slices.Clone(n.branches[mid+1:]),
	}
	n.branches = slices.Delete(n.branches, mid, cnt)
	return len(n.branches), median, right
}

// Append concatenates self + separator + other into self: the separator
// adopts other's leading child as its right child and other's branches
// follow. The offset at which the separator landed is returned; other is
// drained, and re-homing the adopted children is the caller's job.
func (n *InternalNode[K, V, I]) Append(separator Item[K, V], other *InternalNode[K, V, I]) Offset {
	at := At(len(n.branches))
	n.branches = append(n.branches, Branch[K, V, I]{Item: separator, Child: other.first})
	n.branches = append(n.branches, other.branches...)
	other.branches = nil
	return at
}

// Separators returns the keys bounding the child at the given position: the
// separator to the child's left and the one to its right, nil at the open
// ends.
func (n *InternalNode[K, V, I]) Separators(childIndex int) (left, right *K) {
	assert(childIndex >= 0 && childIndex <= len(n.branches), "child index out of range")
	if childIndex > 0 {
		left = &n.branches[childIndex-1].Item.key
	}
	if childIndex < len(n.branches) {
		right = &n.branches[childIndex].Item.key
	}
	return left, right
}
