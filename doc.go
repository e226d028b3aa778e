/*
Package slabtree provides an ordered key/value map backed by an in-memory,
arena-addressed B-tree.

# Slab trees

Most tree containers wire their nodes together with pointers. Slab trees do
not: every node lives in an arena store and knows its parent and children only
as opaque addresses, small comparable values that mean nothing outside the
store that issued them. The tree driver is the single place where addresses
get resolved, so the node layer stays a plain, self-contained engine for
ordered items, and the arena decides memory layout, recycling and address
shape on its own.

This buys the properties arenas are usually bought for. Nodes of one tree sit
densely in one store instead of being sprinkled across the heap, which is
friendly to caches and to the garbage collector, since an arena of n nodes is
one object to trace rather than n. Addresses are stable: a 4-byte slab index
survives any amount of rebalancing, can be logged, exported or kept in
secondary structures, where a Go pointer could not be printed meaningfully or
compared across runs. And because the address type is a mere type parameter,
the same tree code runs on dense uint32 slabs and on universally unique ids
alike.

The trees here are B-trees in the original sense of Bayer and McCreight
(Organization and Maintenance of Large Ordered Indices, Acta Informatica 1,
1972): items live in leaf and internal nodes alike, and an internal node with
n items references exactly n+1 children through separator items that bound
the subtrees between them. High fan-out keeps trees shallow; a map of a
million items is typically 5 or 6 levels deep at the default node order.

The package is organized in three layers:
  - node implements the single-node engine: ordered items, offsets, balance
    grading, splitting, merging and boundary rotation, all without ever
    resolving an address,
  - arena implements the stores: a dense Slab with recycled uint32 indexes
    and a Registry keyed by UUIDs,
  - slabtree (this package) is the driver: it owns the root address, walks
    and mutates the tree through a store, rebalances after inserts and
    deletes, and offers iteration, bulk building, structure export and
    change events on top.

Map is the entry point for clients:

	m := slabtree.NewOrdered[int, string]()
	m.Set(1, "one")
	m.Set(2, "two")
	for k, v := range m.RangeItems() {
		…
	}

Maps are not safe for concurrent use; callers wrap them in their own locking
when sharing one across goroutines.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2025–26, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package slabtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
