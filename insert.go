package slabtree

/*
BSD 3-Clause License

Copyright (c) 2025–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/slabtree/node"
)

// Set stores value under key. A previous value under the same key is
// replaced and returned with replaced=true.
//
// Keys already present anywhere on the descent path, separators included,
// are updated in place without structural change. A genuinely new key always
// lands in a leaf first and bubbles upward through splits from there.
func (m *Map[K, V, I]) Set(key K, value V) (previous V, replaced bool) {
	if !m.hasRoot {
		m.root = m.store.Allocate(node.NewLeaf[K, V, I](node.NewItem(key, value)))
		m.hasRoot = true
		m.length = 1
		m.height = 1
		return previous, false
	}
	cur := m.root
	for {
		n := m.store.Node(cur)
		if n.IsLeaf() {
			break
		}
		at, _, child, _, found := n.OffsetOf(key, m.compare)
		if found {
			return n.Item(at).SetValue(value), true
		}
		cur = child
	}
	_, previous, replaced, err := m.store.Node(cur).InsertByKey(key, value, m.compare)
	assert(err == nil, "insert into a leaf cannot fail")
	if replaced {
		return previous, true
	}
	m.length++
	m.splitUpward(cur)
	return previous, false
}

// splitUpward restores occupancy after an insert: while the node at cur is
// overfull it is split around its median, the median moves one level up, and
// the check repeats there. A split root grows a fresh binary root on top.
func (m *Map[K, V, I]) splitUpward(cur I) {
	for {
		n := m.store.Node(cur)
		if !n.Balance(m.order).Overflowing() {
			return
		}
		_, median, sibling := n.Split()
		right := m.store.Allocate(sibling)
		m.adoptChildren(right)
		parent, hasParent := n.Parent()
		if !hasParent {
			grown := m.store.Allocate(node.NewBinary(cur, median, right))
			m.store.Node(cur).SetParent(grown)
			m.store.Node(right).SetParent(grown)
			m.root = grown
			m.height++
			T().Debugf("slabtree: root split, tree grows to height %d", m.height)
			m.publish(EventSplit)
			m.publish(EventGrow)
			return
		}
		p := m.store.Node(parent)
		_, pos, _, _, found := p.OffsetOf(median.Key(), m.compare)
		assert(!found, "median of a split cannot be a separator one level up")
		p.Insert(node.At(pos), median, right, true)
		m.store.Node(right).SetParent(parent)
		m.publish(EventSplit)
		cur = parent
	}
}
