package arena

import (
	"github.com/npillmayer/slabtree/node"
)

// Index addresses a node within a Slab. Indexes are small, copyable and
// comparable, which is all the node layer asks of an address type.
type Index uint32

// Stats counts the allocation traffic of a store.
type Stats struct {
	Allocs uint64 // nodes handed out, including recycled slots
	Frees  uint64 // nodes released
	Reuses uint64 // allocations served from the free list
}

// Slab is a dense node store. Released indexes go onto a free list and get
// recycled by later allocations, so a long-lived tree does not leak slots.
//
// A Slab is not safe for concurrent use; the tree driver on top of it is
// expected to serialize access.
type Slab[K, V any] struct {
	slots []*node.Node[K, V, Index]
	free  []Index
	stats Stats
}

// NewSlab creates an empty slab.
func NewSlab[K, V any]() *Slab[K, V] {
	return &Slab[K, V]{}
}

// Allocate stores n and returns its address.
func (s *Slab[K, V]) Allocate(n node.Node[K, V, Index]) Index {
	s.stats.Allocs++
	if k := len(s.free); k > 0 {
		id := s.free[k-1]
		s.free = s.free[:k-1]
		s.slots[id] = &n
		s.stats.Reuses++
		return id
	}
	s.slots = append(s.slots, &n)
	return Index(len(s.slots) - 1)
}

// Node resolves an address. The returned node stays valid until the address
// is freed. Resolving a freed or never-issued address panics.
func (s *Slab[K, V]) Node(id Index) *node.Node[K, V, Index] {
	assert(int(id) < len(s.slots), "node address out of range")
	n := s.slots[id]
	assert(n != nil, "dereference of freed node address")
	return n
}

// Free releases an address for recycling. Freeing an address twice panics.
func (s *Slab[K, V]) Free(id Index) {
	assert(int(id) < len(s.slots), "node address out of range")
	assert(s.slots[id] != nil, "double free of node address")
	s.slots[id] = nil
	s.free = append(s.free, id)
	s.stats.Frees++
}

// Len returns the number of live nodes.
func (s *Slab[K, V]) Len() int {
	return len(s.slots) - len(s.free)
}

// Reset drops every node and forgets all issued addresses. Allocation
// counters survive a reset.
func (s *Slab[K, V]) Reset() {
	s.slots = s.slots[:0]
	s.free = s.free[:0]
}

// Stats returns the allocation counters of the slab.
func (s *Slab[K, V]) Stats() Stats {
	return s.stats
}
