package arena

import (
	"github.com/google/uuid"

	"github.com/npillmayer/slabtree/node"
)

// Registry is a node store addressed by universally unique ids. Compared to
// a Slab its addresses cost more to mint, but they stay unique across stores
// and across the lifetime of a process, which makes registries the right
// backing for trees whose nodes are logged, exported or shipped elsewhere.
//
// A Registry is not safe for concurrent use.
type Registry[K, V any] struct {
	nodes map[uuid.UUID]*node.Node[K, V, uuid.UUID]
	stats Stats
}

// NewRegistry creates an empty registry.
func NewRegistry[K, V any]() *Registry[K, V] {
	return &Registry[K, V]{
		nodes: make(map[uuid.UUID]*node.Node[K, V, uuid.UUID]),
	}
}

// Allocate stores n under a fresh id and returns the id.
func (r *Registry[K, V]) Allocate(n node.Node[K, V, uuid.UUID]) uuid.UUID {
	id := uuid.New()
	r.nodes[id] = &n
	r.stats.Allocs++
	return id
}

// Node resolves an id. The returned node stays valid until the id is freed.
// Resolving a freed or never-issued id panics.
func (r *Registry[K, V]) Node(id uuid.UUID) *node.Node[K, V, uuid.UUID] {
	n, ok := r.nodes[id]
	assert(ok, "dereference of freed node address")
	return n
}

// Free releases an id. Freeing an id twice panics.
func (r *Registry[K, V]) Free(id uuid.UUID) {
	_, ok := r.nodes[id]
	assert(ok, "double free of node address")
	delete(r.nodes, id)
	r.stats.Frees++
}

// Len returns the number of live nodes.
func (r *Registry[K, V]) Len() int {
	return len(r.nodes)
}

// Reset drops every node and forgets all issued ids.
func (r *Registry[K, V]) Reset() {
	clear(r.nodes)
}

// Stats returns the allocation counters of the registry.
func (r *Registry[K, V]) Stats() Stats {
	return r.stats
}
