package node

import "iter"

// Node is the uniform operation surface over the two node variants. Exactly
// one variant is set; the zero Node is invalid. The driver holds Nodes by
// address and mostly does not care about the variant: operations dispatch,
// and calling a variant-specific operation on the wrong variant panics. Such
// a call indicates a driver bug, never recoverable input.
type Node[K, V any, I comparable] struct {
	leaf     *LeafNode[K, V, I]
	internal *InternalNode[K, V, I]
}

// NewLeaf creates a parentless leaf node holding a single item. This is how
// the first node of a tree comes into existence.
func NewLeaf[K, V any, I comparable](item Item[K, V]) Node[K, V, I] {
	return Node[K, V, I]{
		leaf: &LeafNode[K, V, I]{items: []Item[K, V]{item}},
	}
}

// NewBinary creates a parentless internal node holding one separator between
// two children: the root a tree grows when its old root splits.
func NewBinary[K, V any, I comparable](left I, median Item[K, V], right I) Node[K, V, I] {
	return Node[K, V, I]{
		internal: &InternalNode[K, V, I]{
			first:    left,
			branches: []Branch[K, V, I]{{Item: median, Child: right}},
		},
	}
}

// IsLeaf is true when the node is a leaf.
func (n *Node[K, V, I]) IsLeaf() bool {
	return n.leaf != nil
}

// IsInternal is true when the node is an internal node.
func (n *Node[K, V, I]) IsInternal() bool {
	return n.internal != nil
}

// Leaf returns the leaf variant, or nil for internal nodes.
func (n *Node[K, V, I]) Leaf() *LeafNode[K, V, I] {
	return n.leaf
}

// Internal returns the internal variant, or nil for leaves.
func (n *Node[K, V, I]) Internal() *InternalNode[K, V, I] {
	return n.internal
}

// Parent returns the node's parent address, with ok=false at the root.
func (n *Node[K, V, I]) Parent() (I, bool) {
	if n.leaf != nil {
		return n.leaf.Parent()
	}
	return n.internal.Parent()
}

// SetParent re-homes the node to a new parent address.
func (n *Node[K, V, I]) SetParent(id I) {
	if n.leaf != nil {
		n.leaf.SetParent(id)
		return
	}
	n.internal.SetParent(id)
}

// ClearParent marks the node as parentless, i.e. the root.
func (n *Node[K, V, I]) ClearParent() {
	if n.leaf != nil {
		n.leaf.ClearParent()
		return
	}
	n.internal.ClearParent()
}

// ItemCount returns the number of items stored in the node.
func (n *Node[K, V, I]) ItemCount() int {
	if n.leaf != nil {
		return n.leaf.ItemCount()
	}
	return n.internal.ItemCount()
}

// ChildCount returns the number of child addresses: ItemCount()+1 for
// internal nodes, 0 for leaves.
func (n *Node[K, V, I]) ChildCount() int {
	if n.internal == nil {
		return 0
	}
	return n.internal.ChildCount()
}

// Balance grades the node's occupancy against ord.
func (n *Node[K, V, I]) Balance(ord Order) Balance {
	return ord.Classify(n.ItemCount())
}

// Items yields the node's items in ascending key order.
func (n *Node[K, V, I]) Items() iter.Seq[Item[K, V]] {
	if n.leaf != nil {
		return n.leaf.Items()
	}
	return n.internal.Items()
}

// Get returns a reference to the value under key if this node stores it.
// When an internal node does not store the key, descend=true and child names
// the subtree to continue in; a leaf miss means the key is nowhere in the
// subtree.
func (n *Node[K, V, I]) Get(key K, compare CompareFunc[K]) (value *V, child I, descend bool) {
	if n.leaf != nil {
		return n.leaf.Get(key, compare), child, false
	}
	value, child = n.internal.Get(key, compare)
	return value, child, value == nil
}

// OffsetOf locates key in this node. When found, at is the item's offset.
// Otherwise pos is the insertion index on a leaf, or the index of the child
// to descend into on an internal node, with the child's address in child and
// hasChild=true.
func (n *Node[K, V, I]) OffsetOf(key K, compare CompareFunc[K]) (at Offset, pos int, child I, hasChild bool, found bool) {
	if n.leaf != nil {
		at, pos, found = n.leaf.OffsetOf(key, compare)
		return at, pos, child, false, found
	}
	at, pos, child, found = n.internal.OffsetOf(key, compare)
	return at, pos, child, !found, found
}

// Item returns a reference to the item at the given offset, or nil when the
// offset is out of range.
func (n *Node[K, V, I]) Item(at Offset) *Item[K, V] {
	if n.leaf != nil {
		return n.leaf.Item(at)
	}
	return n.internal.Item(at)
}

// InsertByKey stores value under key in this node. Leaves insert or replace
// and never fail; internal nodes only ever replace and fail with
// ErrKeyNotSeparator for an absent key. When a previous value existed it is
// returned with replaced=true.
func (n *Node[K, V, I]) InsertByKey(key K, value V, compare CompareFunc[K]) (at Offset, previous V, replaced bool, err error) {
	if n.leaf != nil {
		at, previous, replaced = n.leaf.InsertByKey(key, value, compare)
		return at, previous, replaced, nil
	}
	at, previous, err = n.internal.InsertByKey(key, value, compare)
	return at, previous, err == nil, err
}

// Insert places item at the given offset. Internal nodes require the right
// child riding along with the separator (hasChild=true); leaves forbid it.
// A mismatch panics.
func (n *Node[K, V, I]) Insert(at Offset, item Item[K, V], child I, hasChild bool) {
	if n.leaf != nil {
		assert(!hasChild, "leaf items carry no child")
		n.leaf.Insert(at, item)
		return
	}
	assert(hasChild, "internal separators require a right child")
	n.internal.Insert(at, item, child)
}

// Replace swaps the separator item at the given offset and returns the old
// one. Only internal nodes can replace; a leaf panics.
func (n *Node[K, V, I]) Replace(at Offset, item Item[K, V]) Item[K, V] {
	assert(n.internal != nil, "can only replace in internal nodes")
	return n.internal.Replace(at, item)
}

// Remove deletes the entry at the given offset: the bare item on a leaf, the
// branch with the separator's right child on an internal node (hasChild
// reports which).
func (n *Node[K, V, I]) Remove(at Offset) (item Item[K, V], child I, hasChild bool) {
	if n.leaf != nil {
		return n.leaf.Remove(at), child, false
	}
	item, child = n.internal.Remove(at)
	return item, child, true
}

// LeafRemove removes and returns the item at the given offset if this node
// is a leaf (ok=true). On an internal node nothing is removed: the returned
// child address names the subtree holding the item's in-order predecessor
// (the left child at the offset), and the caller loops one level down until
// a leaf answers.
func (n *Node[K, V, I]) LeafRemove(at Offset) (item Item[K, V], ok bool, child I) {
	if n.leaf != nil {
		return n.leaf.Remove(at), true, child
	}
	i := at.Index()
	assert(i < len(n.internal.branches), "remove offset out of range")
	return item, false, n.internal.ChildID(i)
}

// RemoveRightmostLeaf pops and returns the maximum item of a leaf (ok=true).
// On an internal node it returns the address of the final child so the
// caller can recurse toward the true rightmost leaf, which supplies the
// replacement when an internal separator is deleted.
func (n *Node[K, V, I]) RemoveRightmostLeaf() (item Item[K, V], ok bool, child I) {
	if n.leaf != nil {
		return n.leaf.RemoveLast(), true, child
	}
	return item, false, n.internal.ChildID(len(n.internal.branches))
}

// Popped is a boundary item removed from a node, together with the child
// address that moved with it when the node was internal. At reports the
// offset the item occupied before removal.
type Popped[K, V any, I comparable] struct {
	At       Offset
	Item     Item[K, V]
	Child    I
	HasChild bool
}

// PushLeft inserts an item at the low boundary. Internal nodes require the
// accompanying child (hasChild=true); leaves forbid it.
func (n *Node[K, V, I]) PushLeft(item Item[K, V], child I, hasChild bool) {
	if n.leaf != nil {
		assert(!hasChild, "leaf items carry no child")
		n.leaf.PushLeft(item)
		return
	}
	assert(hasChild, "internal separators require a child")
	n.internal.PushLeft(item, child)
}

// PushRight inserts an item at the high boundary, symmetric to PushLeft.
func (n *Node[K, V, I]) PushRight(item Item[K, V], child I, hasChild bool) {
	if n.leaf != nil {
		assert(!hasChild, "leaf items carry no child")
		n.leaf.PushRight(item)
		return
	}
	assert(hasChild, "internal separators require a child")
	n.internal.PushRight(item, child)
}

// PopLeft removes the minimum item, on internal nodes together with the
// leading child. ErrWouldUnderflow tells the caller to merge instead.
func (n *Node[K, V, I]) PopLeft(ord Order) (Popped[K, V, I], error) {
	if n.leaf != nil {
		item, err := n.leaf.PopLeft(ord)
		if err != nil {
			return Popped[K, V, I]{}, err
		}
		return Popped[K, V, I]{At: At(0), Item: item}, nil
	}
	item, child, err := n.internal.PopLeft(ord)
	if err != nil {
		return Popped[K, V, I]{}, err
	}
	return Popped[K, V, I]{At: At(0), Item: item, Child: child, HasChild: true}, nil
}

// PopRight removes the maximum item, on internal nodes together with the
// separator's right child. ErrWouldUnderflow tells the caller to merge
// instead.
func (n *Node[K, V, I]) PopRight(ord Order) (Popped[K, V, I], error) {
	if n.leaf != nil {
		at, item, err := n.leaf.PopRight(ord)
		if err != nil {
			return Popped[K, V, I]{}, err
		}
		return Popped[K, V, I]{At: at, Item: item}, nil
	}
	at, item, child, err := n.internal.PopRight(ord)
	if err != nil {
		return Popped[K, V, I]{}, err
	}
	return Popped[K, V, I]{At: at, Item: item, Child: child, HasChild: true}, nil
}

// Split partitions an overfull node, returning its reduced length, the
// promoted median and the freshly built right sibling. The caller wires the
// sibling into the arena and, for internal splits, re-homes the children the
// sibling took over.
func (n *Node[K, V, I]) Split() (int, Item[K, V], Node[K, V, I]) {
	if n.leaf != nil {
		length, median, right := n.leaf.Split()
		return length, median, Node[K, V, I]{leaf: right}
	}
	length, median, right := n.internal.Split()
	return length, median, Node[K, V, I]{internal: right}
}

// Merge books the merge of two adjacent children. Only internal nodes have
// children to merge; a leaf panics.
func (n *Node[K, V, I]) Merge(leftIndex, rightIndex int, ord Order) Merged[K, V, I] {
	assert(n.internal != nil, "can only merge children of internal nodes")
	return n.internal.Merge(leftIndex, rightIndex, ord)
}

// Append absorbs other into this node around a separator item and returns
// the separator's offset. Both nodes must be of the same variant; mixing a
// leaf and an internal node panics.
func (n *Node[K, V, I]) Append(separator Item[K, V], other *Node[K, V, I]) Offset {
	switch {
	case n.leaf != nil && other.leaf != nil:
		return n.leaf.Append(separator, other.leaf)
	case n.internal != nil && other.internal != nil:
		return n.internal.Append(separator, other.internal)
	}
	panic("cannot append incompatible node variants")
}

// ChildID returns the address of the child at position i. Only internal
// nodes can be indexed; a leaf panics.
func (n *Node[K, V, I]) ChildID(i int) I {
	assert(n.internal != nil, "only internal nodes can be indexed")
	return n.internal.ChildID(i)
}

// ChildIDOpt returns the address of the child at position i, with ok=false
// for leaves and out-of-range positions.
func (n *Node[K, V, I]) ChildIDOpt(i int) (I, bool) {
	if n.internal == nil {
		var none I
		return none, false
	}
	return n.internal.ChildIDOpt(i)
}

// ChildIndex returns the position of the child with the given address, with
// ok=false for leaves and unreferenced addresses.
func (n *Node[K, V, I]) ChildIndex(id I) (int, bool) {
	if n.internal == nil {
		return 0, false
	}
	return n.internal.ChildIndex(id)
}

// Separators returns the separator keys bounding the child at the given
// position. Leaves have no separators and answer (nil, nil).
func (n *Node[K, V, I]) Separators(childIndex int) (left, right *K) {
	if n.internal == nil {
		return nil, nil
	}
	return n.internal.Separators(childIndex)
}

// Children yields the child addresses of an internal node; a leaf yields
// nothing.
func (n *Node[K, V, I]) Children() iter.Seq[I] {
	if n.internal != nil {
		return n.internal.Children()
	}
	return func(yield func(I) bool) {}
}

// ChildrenWithSeparators yields the children of an internal node with their
// bounding separators; a leaf yields nothing.
func (n *Node[K, V, I]) ChildrenWithSeparators() iter.Seq[ChildSpan[K, V, I]] {
	if n.internal != nil {
		return n.internal.ChildrenWithSeparators()
	}
	return func(yield func(ChildSpan[K, V, I]) bool) {}
}
