package node

import (
	"fmt"
	"io"
)

// WriteDotLabel writes a short human-readable rendering of the node's items,
// suitable as a node label in Graphviz DOT output (child slots are implied
// by outgoing edges, which the caller draws from Children).
func (n *Node[K, V, I]) WriteDotLabel(w io.Writer) error {
	first := true
	for item := range n.Items() {
		format := " | %v"
		if first {
			format = "%v"
		}
		if _, err := fmt.Fprintf(w, format, item); err != nil {
			return err
		}
		first = false
	}
	return nil
}
