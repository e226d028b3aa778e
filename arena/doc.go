/*
Package arena provides the node stores behind an arena-addressed B-tree.

Nodes never hold pointers to each other; they reference their parent and
children through opaque addresses that only a store can resolve. The package
ships two stores with the same surface: Slab hands out dense, recycled uint32
indexes, Registry hands out universally unique ids. Allocation policy is all
they do — re-homing parent references of moved children stays with the
tree-walking driver.

Addresses are trusted capabilities: dereferencing or freeing a dead address
panics instead of returning an error, since only a driver bug can produce one.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package arena

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
