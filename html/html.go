package html

/*
BSD 3-Clause License

Copyright (c) 2025–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"

	"github.com/npillmayer/slabtree"
	"github.com/npillmayer/slabtree/arena"
)

// FromTable creates a map from the rows of an HTML fragment containing a
// `<table>`. The first two `<td>` cells of each row become key and value of
// one map entry. Header cells (`<th>`), rows with fewer than two data cells
// and cells beyond the second are ignored. When several rows carry the same
// key, the last one in document order wins.
func FromTable(input io.Reader) (*slabtree.Map[string, string, arena.Index], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	var rows [][]string
	for _, n := range nodes {
		collectRows(n, &rows)
	}
	return mapFromRows(rows)
}

// TableOf is the counterpart of FromTable for a pre-parsed document: it
// creates a map from the rows of all tables below element node n.
func TableOf(n *html.Node) (*slabtree.Map[string, string, arena.Index], error) {
	if n == nil {
		return nil, slabtree.ErrIllegalArguments
	}
	var rows [][]string
	collectRows(n, &rows)
	return mapFromRows(rows)
}

// collectRows gathers the data cells of every `<tr>` below n. Rows nested
// inside a cell, as in a table within a table, count as content of that cell
// and not as rows of their own.
func collectRows(n *html.Node, rows *[][]string) {
	if n.Type == html.ElementNode && n.Data == "tr" {
		var cells []string
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "td" {
				var sb strings.Builder
				collectText(c, &sb)
				cells = append(cells, strings.TrimSpace(sb.String()))
			}
		}
		if len(cells) > 0 {
			*rows = append(*rows, cells)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectRows(c, rows)
	}
}

// collectText concatenates the textual content of an element node and all
// its descendents, like the innerText of a table cell.
func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

// mapFromRows bulk-loads the key/value rows into a fresh map. The builder
// wants keys in ascending order, so rows are sorted first; the sort is
// stable, which keeps the builder's last-wins rule on equal keys aligned
// with document order.
func mapFromRows(rows [][]string) (*slabtree.Map[string, string, arena.Index], error) {
	entries := make([][2]string, 0, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		entries = append(entries, [2]string{row[0], row[1]})
	}
	tracer().Debugf("collected %d data rows out of %d table rows", len(entries), len(rows))
	slices.SortStableFunc(entries, func(a, b [2]string) int {
		return strings.Compare(a[0], b[0])
	})
	b, err := slabtree.NewBuilder[string, string](slabtree.Config[string]{Compare: strings.Compare})
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := b.Add(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	return b.Map(), nil
}
