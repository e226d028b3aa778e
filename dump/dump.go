package dump

/*
BSD 3-Clause License

Copyright (c) 2025–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"

	"github.com/npillmayer/slabtree"
	"github.com/npillmayer/slabtree/node"
)

// Role classifies a node's position in the tree. Colors are assigned per
// role.
type Role int

// Node roles distinguished by the palette.
const (
	RoleRoot Role = iota
	RoleInner
	RoleLeaf
)

// Config represents a set of parameters for rendering a tree dump.
type Config struct {
	Width       int                   // target line width in fixed-width ‘en’s
	MaxKeyCells int                   // clamp for a single item cell, 0 means no clamp
	Colors      map[Role]*color.Color // may cover just a subset of roles
	Context     *uax11.Context        // East Asian width context for measuring cells
}

// ConfigFromTerminal is a simple helper for creating a dump Config.
// It checks whether the process is attached to a terminal, and if so it reads
// the terminal's width and sets the Config.Width parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.Width = 65
		} else {
			if w > 65 {
				config.Width = w - 10
			} else if w > 30 {
				config.Width = w - 5
			} else if w > 10 {
				config.Width = w
			} else {
				config.Width = 10
			}
		}
	} else {
		config.Width = 65
	}
	tracer().P("format", "dump").Infof("setting dump width to %d en", config.Width)
	return config
}

// Printer renders the node structure of a map, one node per line, children
// indented below their parent. Items show up as “key=value” cells, clamped
// to Config.MaxKeyCells display cells each, and node lines are elided to
// honor Config.Width.
type Printer[K, V any, I comparable] struct {
	config Config
	colors map[Role]*color.Color
}

// NewPrinter creates a printer for maps with a given key, value and address
// type.
//
// If config is nil, a heuristic will create one from the current terminal's
// properties (if the process is interactive) and from the user environment.
// A nil Colors entry selects the default palette; pass an empty map to
// switch coloring off entirely.
func NewPrinter[K, V any, I comparable](config *Config) *Printer[K, V, I] {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	p := &Printer[K, V, I]{config: *config}
	if p.config.Width <= 0 {
		p.config.Width = 65
	}
	if p.config.Context == nil {
		p.config.Context = uax11.LatinContext
	}
	if p.config.Colors == nil {
		p.colors = makeDefaultPalette()
	} else {
		p.colors = p.config.Colors
	}
	return p
}

func makeDefaultPalette() map[Role]*color.Color {
	palette := map[Role]*color.Color{
		RoleRoot:  color.New(color.FgRed),
		RoleInner: color.New(color.FgBlue),
		RoleLeaf:  color.New(color.FgGreen),
	}
	return palette
}

// Print renders the node structure of m to stdout.
func (p *Printer[K, V, I]) Print(m *slabtree.Map[K, V, I]) error {
	return p.Fprint(os.Stdout, m)
}

// Fprint renders the node structure of m to w. A summary line comes first,
// then one line per node, depth first.
func (p *Printer[K, V, I]) Fprint(w io.Writer, m *slabtree.Map[K, V, I]) error {
	if w == nil || m == nil {
		return errors.New("illegal argument: nil")
	}
	_, err := fmt.Fprintf(w, "map of %d items in %d nodes, height %d\n",
		m.Len(), m.Store().Len(), m.Height())
	if err != nil {
		return err
	}
	root, ok := m.Root()
	if !ok {
		return nil
	}
	return p.fprintNode(w, m, root, "", "", RoleRoot)
}

// fprintNode writes the line for the node at id, then recurses into its
// children. head is the connector prefix for this node's line, tail the
// prefix all of its children share.
func (p *Printer[K, V, I]) fprintNode(w io.Writer, m *slabtree.Map[K, V, I], id I,
	head, tail string, role Role) error {
	//
	n := m.Store().Node(id)
	if _, err := io.WriteString(w, head); err != nil {
		return err
	}
	if err := p.paint(w, role, p.label(n, p.width(head))); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	if n.IsLeaf() {
		return nil
	}
	for i := 0; i <= n.ItemCount(); i++ {
		connector, indent := "├─ ", "│  "
		if i == n.ItemCount() {
			connector, indent = "└─ ", "   "
		}
		child := n.ChildID(i)
		role := RoleInner
		if m.Store().Node(child).IsLeaf() {
			role = RoleLeaf
		}
		if err := p.fprintNode(w, m, child, tail+connector, tail+indent, role); err != nil {
			return err
		}
	}
	return nil
}

// label renders a node's items as “[k=v | k=v | …]”, keeping the line within
// the width budget left over after used display cells.
func (p *Printer[K, V, I]) label(n *node.Node[K, V, I], used int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	spaceleft := p.config.Width - used - 2
	for i := 0; i < n.ItemCount(); i++ {
		item := n.Item(node.At(i))
		cell := p.clamp(fmt.Sprintf("%v=%v", item.Key(), item.Value()))
		if i > 0 {
			cell = " | " + cell
		}
		cw := p.width(cell)
		if i > 0 && cw > spaceleft {
			sb.WriteString(" …")
			break
		}
		sb.WriteString(cell)
		spaceleft -= cw
	}
	sb.WriteByte(']')
	return sb.String()
}

// clamp shortens a cell to at most Config.MaxKeyCells display cells,
// truncating at rune boundaries and appending an ellipsis.
func (p *Printer[K, V, I]) clamp(cell string) string {
	max := p.config.MaxKeyCells
	if max <= 0 || p.width(cell) <= max {
		return cell
	}
	ellipsis := "…"
	budget := max - p.width(ellipsis)
	runes := []rune(cell)
	for end := len(runes) - 1; end > 0; end-- {
		prefix := string(runes[:end])
		if p.width(prefix) <= budget {
			return prefix + ellipsis
		}
	}
	return ellipsis
}

// width measures a string in fixed-width ‘en’s, respecting East Asian wide
// and ambiguous characters.
func (p *Printer[K, V, I]) width(s string) int {
	gstr := grapheme.StringFromString(s)
	return uax11.StringWidth(gstr, p.config.Context)
}

// paint writes s through the color assigned to role, if there is one.
func (p *Printer[K, V, I]) paint(w io.Writer, role Role, s string) error {
	if c, ok := p.colors[role]; ok {
		_, err := c.Fprint(w, s)
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}
