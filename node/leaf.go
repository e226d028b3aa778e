package node

import (
	"iter"
	"slices"
)

// LeafNode is a flat, key-ordered sequence of items without children.
//
// The type parameter I is the node-address type of the surrounding tree; a
// leaf only uses it for its parent back-reference.
type LeafNode[K, V any, I comparable] struct {
	parent    I
	hasParent bool
	items     []Item[K, V]
}

// Parent returns the address of the node's parent, with ok=false at the root.
func (l *LeafNode[K, V, I]) Parent() (I, bool) {
	return l.parent, l.hasParent
}

// SetParent re-homes the node to a new parent address.
func (l *LeafNode[K, V, I]) SetParent(id I) {
	l.parent = id
	l.hasParent = true
}

// ClearParent marks the node as parentless, i.e. the root.
func (l *LeafNode[K, V, I]) ClearParent() {
	var none I
	l.parent = none
	l.hasParent = false
}

// ItemCount returns the number of items stored in the leaf.
func (l *LeafNode[K, V, I]) ItemCount() int {
	return len(l.items)
}

// Balance grades the leaf's occupancy against ord.
func (l *LeafNode[K, V, I]) Balance(ord Order) Balance {
	return ord.Classify(len(l.items))
}

// Items yields the leaf's items in ascending key order.
func (l *LeafNode[K, V, I]) Items() iter.Seq[Item[K, V]] {
	return slices.Values(l.items)
}

func (l *LeafNode[K, V, I]) search(key K, compare CompareFunc[K]) (int, bool) {
	return slices.BinarySearchFunc(l.items, key, func(it Item[K, V], k K) int {
		return compare(it.key, k)
	})
}

// Get returns a reference to the value stored under key, or nil when the key
// is not present in this leaf. A leaf miss is definitive for the whole
// subtree. The reference stays valid until the next structural mutation.
func (l *LeafNode[K, V, I]) Get(key K, compare CompareFunc[K]) *V {
	if i, found := l.search(key, compare); found {
		return &l.items[i].value
	}
	return nil
}

// OffsetOf locates key inside the leaf. On a match, found is true and at is
// the item's offset. Otherwise insertAt is the raw position at which the key
// would have to be inserted to keep the leaf ordered.
func (l *LeafNode[K, V, I]) OffsetOf(key K, compare CompareFunc[K]) (at Offset, insertAt int, found bool) {
	i, ok := l.search(key, compare)
	if ok {
		return At(i), 0, true
	}
	return Offset{}, i, false
}

// Item returns a reference to the item at the given offset, or nil when the
// offset does not address an item of this leaf.
func (l *LeafNode[K, V, I]) Item(at Offset) *Item[K, V] {
	if i, ok := at.Value(); ok && i < len(l.items) {
		return &l.items[i]
	}
	return nil
}

// InsertByKey puts a key/value entry into the leaf, keeping items ordered.
// An existing entry under the same key has its value replaced and returned
// with replaced=true. The leaf is assumed to have capacity left; the caller
// inspects the balance afterwards and splits before inserting further.
func (l *LeafNode[K, V, I]) InsertByKey(key K, value V, compare CompareFunc[K]) (at Offset, previous V, replaced bool) {
	i, found := l.search(key, compare)
	if found {
		return At(i), l.items[i].SetValue(value), true
	}
	l.items = slices.Insert(l.items, i, NewItem(key, value))
	return At(i), previous, false
}

// Insert places item at the given offset, shifting later items to the right.
// Order correctness and overflow handling are the caller's concern.
func (l *LeafNode[K, V, I]) Insert(at Offset, item Item[K, V]) {
	i, ok := at.Value()
	assert(ok, "cannot insert at the sentinel offset")
	assert(i <= len(l.items), "leaf insert offset out of range")
	l.items = slices.Insert(l.items, i, item)
}

// Remove deletes and returns the item at the given offset.
func (l *LeafNode[K, V, I]) Remove(at Offset) Item[K, V] {
	i, ok := at.Value()
	assert(ok, "cannot remove at the sentinel offset")
	assert(i < len(l.items), "leaf remove offset out of range")
	item := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	return item
}

// RemoveLast pops the maximum-key item. It supplies the in-order predecessor
// when a separator is deleted one level up.
func (l *LeafNode[K, V, I]) RemoveLast() Item[K, V] {
	assert(len(l.items) > 0, "cannot remove from an empty leaf")
	last := len(l.items) - 1
	item := l.items[last]
	l.items = slices.Delete(l.items, last, last+1)
	return item
}

// PushLeft prepends an item below the current minimum. The caller guarantees
// the item's key precedes every key in the leaf, which holds by construction
// when borrowing rotates items through the parent separator.
func (l *LeafNode[K, V, I]) PushLeft(item Item[K, V]) {
	l.items = slices.Insert(l.items, 0, item)
}

// PopLeft removes and returns the minimum item. It fails with
// ErrWouldUnderflow when the leaf cannot give up an item without dropping
// below ord.MinItems, telling the caller to merge instead of borrow.
func (l *LeafNode[K, V, I]) PopLeft(ord Order) (Item[K, V], error) {
	if len(l.items) <= ord.MinItems {
		return Item[K, V]{}, ErrWouldUnderflow
	}
	item := l.items[0]
	l.items = slices.Delete(l.items, 0, 1)
	return item, nil
}

// PushRight appends an item above the current maximum.
func (l *LeafNode[K, V, I]) PushRight(item Item[K, V]) {
	l.items = append(l.items, item)
}

// PopRight removes and returns the maximum item together with the offset it
// occupied. It fails with ErrWouldUnderflow like PopLeft.
func (l *LeafNode[K, V, I]) PopRight(ord Order) (Offset, Item[K, V], error) {
	if len(l.items) <= ord.MinItems {
		return Offset{}, Item[K, V]{}, ErrWouldUnderflow
	}
	last := len(l.items) - 1
	item := l.items[last]
	l.items = slices.Delete(l.items, last, last+1)
	return At(last), item, nil
}

// Split partitions the leaf roughly in half. The median item is removed from
// both halves and returned for promotion into the parent; the right sibling
// takes the items above the median while the leaf keeps those below. The
// sibling is a bare value the caller hands to the arena.
func (l *LeafNode[K, V, I]) Split() (int, Item[K, V], *LeafNode[K, V, I]) {
	n := len(l.items)
	assert(n >= 3, "cannot split a leaf with fewer than 3 items")
	mid := n / 2
	median := l.items[mid]
	right := &LeafNode[K, V, I]{
		parent:    l.parent,
		hasParent: l.hasParent,
		items:     slices.Clone(l.items[mid+1:]),
	}
	l.items = slices.Delete(l.items, mid, n)
	return len(l.items), median, right
}

// Append concatenates self + separator + other into self and returns the
// offset at which the separator landed. The other leaf is drained; retiring
// its address is the caller's job.
func (l *LeafNode[K, V, I]) Append(separator Item[K, V], other *LeafNode[K, V, I]) Offset {
	at := At(len(l.items))
	l.items = append(l.items, separator)
	l.items = append(l.items, other.items...)
	other.items = nil
	return at
}
