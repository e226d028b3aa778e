/*
Package dump renders the node structure of a slab tree onto a console.

Maps print one node per line, children indented below their parent with
tree-style connectors, and node roles (root, inner node, leaf) told apart
by color. Item cells are measured in fixed-width terminal cells, so keys
and values containing East Asian wide or ambiguous characters still line
up, and over-long cells are clamped with an ellipsis.

	m := slabtree.NewOrdered[int, string]()
	…
	p := dump.NewPrinter[int, string, arena.Index](nil)
	p.Print(m)

With a nil configuration the printer probes the terminal for a sensible
line width and derives the East Asian width context from the user
environment.

# Status

Output format is meant for humans debugging tree shapes and is not part
of the stable API.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package dump

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'slabtree'
func tracer() tracing.Trace {
	return tracing.Select("slabtree")
}
