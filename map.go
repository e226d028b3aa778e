package slabtree

/*
BSD 3-Clause License

Copyright (c) 2025–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/guiguan/caster"

	"github.com/npillmayer/slabtree/arena"
	"github.com/npillmayer/slabtree/node"
)

// Config parametrizes a Map.
type Config[K any] struct {
	// Compare imposes the key order: negative for a < b, zero for equal keys,
	// positive for a > b. Required; NewOrdered fills it in for naturally
	// ordered key types.
	Compare node.CompareFunc[K]
	// Order bounds node occupancy. The zero value means node.DefaultOrder().
	Order node.Order
}

func (cfg Config[K]) normalized() Config[K] {
	if cfg.Order == (node.Order{}) {
		cfg.Order = node.DefaultOrder()
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparison function is required", ErrInvalidConfig)
	}
	if err := cfg.Order.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Map is an ordered key/value map backed by an arena-addressed B-tree.
//
// Items live in leaf and internal nodes alike. The map owns the root address
// and an occupancy order; nodes are held in a Store and resolved on every
// step of a walk, so the map works unchanged on top of any address type the
// store hands out.
//
// A Map is not safe for concurrent use.
type Map[K, V any, I comparable] struct {
	store   Store[K, V, I]
	compare node.CompareFunc[K]
	order   node.Order
	root    I
	hasRoot bool
	length  int
	height  int
	cast    *caster.Caster // broadcaster for structural change events
}

// New creates an empty map backed by a fresh slab store.
func New[K, V any](cfg Config[K]) (*Map[K, V, arena.Index], error) {
	return NewIn[K, V, arena.Index](arena.NewSlab[K, V](), cfg)
}

// NewIn creates an empty map on top of a client-provided node store. The
// store must be empty and must not be shared with another map.
func NewIn[K, V any, I comparable](store Store[K, V, I], cfg Config[K]) (*Map[K, V, I], error) {
	if store == nil {
		return nil, fmt.Errorf("%w: node store is required", ErrInvalidConfig)
	}
	cfg = cfg.normalized()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Map[K, V, I]{
		store:   store,
		compare: cfg.Compare,
		order:   cfg.Order,
	}, nil
}

// NewOrdered creates an empty map for naturally ordered keys, backed by a
// fresh slab store.
func NewOrdered[K cmp.Ordered, V any]() *Map[K, V, arena.Index] {
	m, err := New[K, V](Config[K]{Compare: cmp.Compare[K]})
	assert(err == nil, "default configuration must validate")
	return m
}

// Len returns the number of items in the map.
func (m *Map[K, V, I]) Len() int {
	return m.length
}

// IsEmpty reports whether the map holds no items.
func (m *Map[K, V, I]) IsEmpty() bool {
	return m.length == 0
}

// Height returns the number of node levels. An empty map has height 0, a map
// with a lone leaf root has height 1.
func (m *Map[K, V, I]) Height() int {
	return m.height
}

// Order returns the node occupancy bounds the map enforces.
func (m *Map[K, V, I]) Order() node.Order {
	return m.order
}

// Store exposes the node store the map allocates from.
func (m *Map[K, V, I]) Store() Store[K, V, I] {
	return m.store
}

// Root returns the address of the root node, if the map has one. Together
// with Store it lets structure-aware tools walk the tree read-only.
func (m *Map[K, V, I]) Root() (I, bool) {
	return m.root, m.hasRoot
}

// Get returns the value stored under key.
func (m *Map[K, V, I]) Get(key K) (V, bool) {
	if v := m.lookup(key); v != nil {
		return *v, true
	}
	var none V
	return none, false
}

// Has reports whether key is present in the map.
func (m *Map[K, V, I]) Has(key K) bool {
	return m.lookup(key) != nil
}

// lookup descends from the root until a node stores key or a leaf rules it
// out. Nodes answer lookups one level at a time; the chaining happens here.
func (m *Map[K, V, I]) lookup(key K) *V {
	if !m.hasRoot {
		return nil
	}
	cur := m.root
	for {
		value, child, descend := m.store.Node(cur).Get(key, m.compare)
		if !descend {
			return value
		}
		cur = child
	}
}

// Min returns the smallest key of the map and its value.
func (m *Map[K, V, I]) Min() (key K, value V, ok bool) {
	if !m.hasRoot {
		return key, value, false
	}
	cur := m.root
	for {
		n := m.store.Node(cur)
		if n.IsLeaf() {
			item := n.Item(node.At(0))
			return item.Key(), item.Value(), true
		}
		cur = n.ChildID(0)
	}
}

// Max returns the greatest key of the map and its value.
func (m *Map[K, V, I]) Max() (key K, value V, ok bool) {
	if !m.hasRoot {
		return key, value, false
	}
	cur := m.root
	for {
		n := m.store.Node(cur)
		if n.IsLeaf() {
			item := n.Item(node.At(n.ItemCount() - 1))
			return item.Key(), item.Value(), true
		}
		cur = n.ChildID(n.ItemCount())
	}
}

// Clear removes all items and resets the node store. Addresses issued so far
// become invalid.
func (m *Map[K, V, I]) Clear() {
	m.store.Reset()
	var none I
	m.root = none
	m.hasRoot = false
	m.length = 0
	m.height = 0
}

// String returns the map's items as "{k=v, …}". This is an expensive
// operation on large maps, meant for tracing and tests.
func (m *Map[K, V, I]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for k, v := range m.RangeItems() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v=%v", k, v)
	}
	sb.WriteByte('}')
	return sb.String()
}

// rightmostLeaf descends along final children down to the leaf holding the
// map's greatest key.
func (m *Map[K, V, I]) rightmostLeaf() I {
	assert(m.hasRoot, "rightmost leaf of an empty map")
	cur := m.root
	for {
		n := m.store.Node(cur)
		if n.IsLeaf() {
			return cur
		}
		cur = n.ChildID(n.ItemCount())
	}
}

// adoptChildren re-homes the parent references of all children of the node at
// id. Splitting, appending and merging move children into nodes which at that
// moment have no address yet, so the stale back-references get fixed here,
// the first place that knows the final address.
func (m *Map[K, V, I]) adoptChildren(id I) {
	for child := range m.store.Node(id).Children() {
		m.store.Node(child).SetParent(id)
	}
}
