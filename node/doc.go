/*
Package node implements the node-level engine of an in-memory, arena-addressed
B-tree.

Both leaf and internal nodes store key/value items (a true B-tree, not a
B+tree), and nodes reference each other exclusively through opaque, comparable
addresses that only an external arena can resolve. The package therefore
contains no recursion and no allocation policy: every operation manipulates a
single node's item and branch sequences and reports, through Balance values,
returned child addresses and two recoverable errors, what the tree-walking
driver has to do next.

Current surface:
  - offset addressing inside a node, including the before-first sentinel,
  - items usable as leaf entries and as internal separators,
  - occupancy classification against a tree-wide Order,
  - distinct LeafNode and InternalNode representations,
  - a uniform Node dispatch over the two variants,
  - structural primitives: insert/replace/remove, boundary push/pop,
    split, merge bookkeeping and append,
  - lazy child traversal sequences with bounding separators,
  - a per-node invariant validator and a DOT label hook.

Rebalancing is deliberately not decided here. Overflow and underflow are
reported; splitting, borrowing and merging across node boundaries are composed
by the driver one parent/child pair at a time, since only the driver can
dereference and allocate node addresses.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package node

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
