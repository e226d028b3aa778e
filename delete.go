package slabtree

/*
BSD 3-Clause License

Copyright (c) 2025–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/slabtree/node"
)

// Delete removes key from the map and returns the value it held.
//
// Removing a separator from an internal node is realized by promoting the
// key's in-order predecessor out of a leaf, so the structural shrinking
// always starts at leaf level and repairs itself bottom-up: borrow from a
// sibling that can spare an item, merge with one that cannot.
func (m *Map[K, V, I]) Delete(key K) (previous V, removed bool) {
	if !m.hasRoot {
		return previous, false
	}
	cur := m.root
	var at node.Offset
	for {
		n := m.store.Node(cur)
		offset, _, child, hasChild, found := n.OffsetOf(key, m.compare)
		if found {
			at = offset
			break
		}
		if !hasChild {
			return previous, false
		}
		cur = child
	}
	item, shrunk := m.removeAt(cur, at)
	m.length--
	m.repair(shrunk)
	return item.Value(), true
}

// removeAt takes the item at the given offset out of the node at id. A leaf
// gives its item up directly. An internal node has its separator replaced by
// the in-order predecessor, pulled from the rightmost leaf of the left
// subtree. Either way a leaf shrinks; its address is returned as the starting
// point for rebalancing.
func (m *Map[K, V, I]) removeAt(id I, at node.Offset) (node.Item[K, V], I) {
	n := m.store.Node(id)
	item, ok, child := n.LeafRemove(at)
	if ok {
		return item, id
	}
	cur := child
	for {
		pred, isLeaf, next := m.store.Node(cur).RemoveRightmostLeaf()
		if isLeaf {
			return n.Replace(at, pred), cur
		}
		cur = next
	}
}

// repair walks from a shrunken node toward the root, restoring minimum
// occupancy level by level. A merge demotes a parent separator and may leave
// the parent underfull in turn, which keeps the loop going; borrowing is
// always local and ends it.
func (m *Map[K, V, I]) repair(cur I) {
	for {
		n := m.store.Node(cur)
		parent, hasParent := n.Parent()
		if !hasParent {
			m.collapseRoot(cur)
			return
		}
		if !n.Balance(m.order).Underflowing() {
			return
		}
		p := m.store.Node(parent)
		ci, ok := p.ChildIndex(cur)
		assert(ok, "underflowing node is unknown to its parent")
		if m.borrow(p, cur, ci) {
			m.publish(EventBorrow)
			return
		}
		li := ci
		if li > 0 {
			li = ci - 1
		}
		merged := p.Merge(li, li+1, m.order)
		m.store.Node(merged.Surviving).Append(merged.Separator, m.store.Node(merged.Freed))
		m.adoptChildren(merged.Surviving)
		m.store.Free(merged.Freed)
		m.publish(EventMerge)
		cur = parent
	}
}

// borrow rotates one item through the parent separator from a sibling that
// can spare it: the sibling's boundary item becomes the new separator and the
// old separator drops into the underfull node, together with the boundary
// child that moved along. The boundary pops refuse at minimum occupancy, so
// borrow simply tries left, then right.
func (m *Map[K, V, I]) borrow(p *node.Node[K, V, I], cur I, ci int) bool {
	n := m.store.Node(cur)
	if ci > 0 {
		left := m.store.Node(p.ChildID(ci - 1))
		if popped, err := left.PopRight(m.order); err == nil {
			separator := p.Replace(node.At(ci-1), popped.Item)
			n.PushLeft(separator, popped.Child, popped.HasChild)
			if popped.HasChild {
				m.store.Node(popped.Child).SetParent(cur)
			}
			return true
		}
	}
	if ci < p.ItemCount() {
		right := m.store.Node(p.ChildID(ci + 1))
		if popped, err := right.PopLeft(m.order); err == nil {
			separator := p.Replace(node.At(ci), popped.Item)
			n.PushRight(separator, popped.Child, popped.HasChild)
			if popped.HasChild {
				m.store.Node(popped.Child).SetParent(cur)
			}
			return true
		}
	}
	return false
}

// collapseRoot shrinks the tree when the root has run empty: an internal root
// hands over to its single remaining child, an empty leaf root leaves an
// empty map behind. Roots holding items are exempt from minimum occupancy and
// stay untouched.
func (m *Map[K, V, I]) collapseRoot(id I) {
	n := m.store.Node(id)
	if !n.Balance(m.order).Empty() {
		return
	}
	if n.IsLeaf() {
		m.store.Free(id)
		var none I
		m.root = none
		m.hasRoot = false
		m.height = 0
		m.publish(EventCollapse)
		return
	}
	heir := n.ChildID(0)
	m.store.Node(heir).ClearParent()
	m.store.Free(id)
	m.root = heir
	m.height--
	T().Debugf("slabtree: root collapse, tree shrinks to height %d", m.height)
	m.publish(EventCollapse)
}
