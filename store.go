package slabtree

/*
BSD 3-Clause License

Copyright (c) 2025–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/google/uuid"

	"github.com/npillmayer/slabtree/arena"
	"github.com/npillmayer/slabtree/node"
)

// Store is the arena a map allocates its nodes from. Nodes reference each
// other through opaque addresses of type I; the map driver is the only layer
// that both holds addresses and can resolve them.
//
// Stores treat addresses as trusted capabilities: resolving or freeing a dead
// address panics, since only a driver bug can produce one.
type Store[K, V any, I comparable] interface {
	// Allocate stores n and returns its address.
	Allocate(n node.Node[K, V, I]) I
	// Node resolves an address. The returned node stays valid until the
	// address is freed.
	Node(id I) *node.Node[K, V, I]
	// Free releases an address.
	Free(id I)
	// Len returns the number of live nodes.
	Len() int
	// Reset drops every node and forgets all issued addresses.
	Reset()
}

var (
	_ Store[int, any, arena.Index] = (*arena.Slab[int, any])(nil)
	_ Store[int, any, uuid.UUID]   = (*arena.Registry[int, any])(nil)
)
