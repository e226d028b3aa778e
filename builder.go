package slabtree

/*
BSD 3-Clause License

Copyright (c) 2025–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"

	"github.com/npillmayer/slabtree/arena"
	"github.com/npillmayer/slabtree/node"
)

// Builder ingests items in ascending key order and finalizes them into a Map.
//
// Loading pre-sorted input through a builder skips the per-item descent that
// Set pays: every item appends to the rightmost leaf and splits bubble up
// along the right spine only. Adding a key equal to the previous one replaces
// the staged value, the last one wins; a key below the previous one fails
// with ErrKeyOrder.
//
// The empty instance is not a valid builder, clients use NewBuilder or
// NewBuilderIn.
type Builder[K, V any, I comparable] struct {
	m    *Map[K, V, I]
	last I // rightmost leaf, tracked across splits; valid once the map has a root
	done bool
}

// NewBuilder creates an empty builder on a fresh slab store.
func NewBuilder[K, V any](cfg Config[K]) (*Builder[K, V, arena.Index], error) {
	return NewBuilderIn[K, V, arena.Index](arena.NewSlab[K, V](), cfg)
}

// NewBuilderIn creates an empty builder on a client-provided node store.
func NewBuilderIn[K, V any, I comparable](store Store[K, V, I], cfg Config[K]) (*Builder[K, V, I], error) {
	m, err := NewIn[K, V, I](store, cfg)
	if err != nil {
		return nil, err
	}
	return &Builder[K, V, I]{m: m}, nil
}

// Add stages one item at the high end of the staged build.
func (b *Builder[K, V, I]) Add(key K, value V) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrBuilderCompleted
	}
	m := b.m
	if !m.hasRoot {
		m.Set(key, value)
		b.last = m.root
		return nil
	}
	leaf := m.store.Node(b.last)
	top := leaf.Item(node.At(leaf.ItemCount() - 1))
	switch c := m.compare(key, top.Key()); {
	case c < 0:
		return fmt.Errorf("%w: key %v after %v", ErrKeyOrder, key, top.Key())
	case c == 0:
		top.SetValue(value)
		return nil
	}
	var none I
	leaf.PushRight(node.NewItem(key, value), none, false)
	m.length++
	if leaf.Balance(m.order).Overflowing() {
		m.splitUpward(b.last)
		b.last = m.rightmostLeaf()
	}
	return nil
}

// Map returns the map built from all staged items.
//
// It is illegal to continue adding items after Map has been called, but Map
// may be called multiple times.
func (b *Builder[K, V, I]) Map() *Map[K, V, I] {
	if b == nil {
		return nil
	}
	b.done = true
	return b.m
}

// Reset drops the staged build and prepares the builder for a fresh build on
// the same store.
func (b *Builder[K, V, I]) Reset() {
	b.m.Clear()
	var none I
	b.last = none
	b.done = false
}
