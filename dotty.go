package slabtree

/*
BSD 3-Clause License

Copyright (c) 2025–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"strings"
)

// Map2Dot outputs the internal structure of a Map in Graphviz DOT format
// (for debugging purposes). Arena addresses double as DOT node names, so a
// rendering can be read side by side with trace output.
func Map2Dot[K, V any, I comparable](m *Map[K, V, I], w io.Writer) error {
	nodelist, edgelist := "", ""
	if m.hasRoot {
		var visit func(id I, depth int)
		visit = func(id I, depth int) {
			n := m.store.Node(id)
			var label strings.Builder
			if err := n.WriteDotLabel(&label); err != nil {
				T().Errorf("map DOT: %s", err.Error())
				return
			}
			nodelist += fmt.Sprintf("\"%v\" [label=\"%s\"%s];\n", id, label.String(), nodeDotStyles(n.IsLeaf(), depth))
			for child := range n.Children() {
				edgelist += fmt.Sprintf("\"%v\" -> \"%v\";\n", id, child)
				visit(child, depth+1)
			}
		}
		visit(m.root, 0)
	}
	for _, part := range []string{
		"strict digraph {\n",
		"\tnode [fontname=Arial,fontsize=12,shape=box,style=filled];\n",
		nodelist,
		edgelist,
		"}\n",
	} {
		if _, err := io.WriteString(w, part); err != nil {
			return err
		}
	}
	return nil
}

func nodeDotStyles(isleaf bool, depth int) string {
	if isleaf {
		return ",fillcolor=white"
	}
	if depth >= len(hexcolors) {
		depth = len(hexcolors) - 1
	}
	return fmt.Sprintf(",color=black,fillcolor=\"%s\"", hexcolors[depth])
}

var hexcolors = [...]string{"#a3d7e4", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
