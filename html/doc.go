/*
Package html ingests HTML tables into slab tree maps.

The two-column case is the interesting one: a `<table>` with key cells in
the first column and value cells in the second is a serialized ordered map,
and this package deserializes it. Rows arrive in document order, get sorted
by key and are bulk-loaded through a map builder.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package html

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'slabtree'
func tracer() tracing.Trace {
	return tracing.Select("slabtree")
}
