package slabtree

/*
BSD 3-Clause License

Copyright (c) 2025–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"

	"github.com/npillmayer/slabtree/node"
)

// RangeItems returns an iterator over all key/value pairs in ascending key
// order. The map must not be structurally modified while ranging.
func (m *Map[K, V, I]) RangeItems() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.hasRoot {
			m.rangeNode(m.root, yield)
		}
	}
}

// RangeKeys returns an iterator over all keys in ascending order.
func (m *Map[K, V, I]) RangeKeys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.RangeItems() {
			if !yield(k) {
				return
			}
		}
	}
}

// RangeFrom returns an iterator over the key/value pairs with keys greater
// than or equal to key, in ascending order.
func (m *Map[K, V, I]) RangeFrom(key K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.hasRoot {
			m.rangeNodeFrom(m.root, key, yield)
		}
	}
}

// rangeNode walks the subtree under id in order: children interleaved with
// the separators between them, plain items on a leaf.
func (m *Map[K, V, I]) rangeNode(id I, yield func(K, V) bool) bool {
	n := m.store.Node(id)
	if n.IsLeaf() {
		for item := range n.Items() {
			if !yield(item.Pair()) {
				return false
			}
		}
		return true
	}
	if !m.rangeNode(n.ChildID(0), yield) {
		return false
	}
	for i := 0; i < n.ItemCount(); i++ {
		if !yield(n.Item(node.At(i)).Pair()) {
			return false
		}
		if !m.rangeNode(n.ChildID(i+1), yield) {
			return false
		}
	}
	return true
}

// rangeNodeFrom is rangeNode with a lower bound: subtrees entirely below key
// are skipped on the way down, everything after the entry point streams
// through the unbounded walk.
func (m *Map[K, V, I]) rangeNodeFrom(id I, key K, yield func(K, V) bool) bool {
	n := m.store.Node(id)
	if n.IsLeaf() {
		at, start, found := n.Leaf().OffsetOf(key, m.compare)
		if found {
			start = at.Index()
		}
		for i := start; i < n.ItemCount(); i++ {
			if !yield(n.Item(node.At(i)).Pair()) {
				return false
			}
		}
		return true
	}
	at, entry, _, _, found := n.OffsetOf(key, m.compare)
	if found {
		if !yield(n.Item(at).Pair()) {
			return false
		}
		entry = at.Index()
	} else {
		if !m.rangeNodeFrom(n.ChildID(entry), key, yield) {
			return false
		}
		if entry < n.ItemCount() && !yield(n.Item(node.At(entry)).Pair()) {
			return false
		}
	}
	for i := entry + 1; i <= n.ItemCount(); i++ {
		if !m.rangeNode(n.ChildID(i), yield) {
			return false
		}
		if i < n.ItemCount() && !yield(n.Item(node.At(i)).Pair()) {
			return false
		}
	}
	return true
}
