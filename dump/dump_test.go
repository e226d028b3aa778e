package dump

import (
	"bytes"
	"cmp"
	"strconv"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/slabtree"
	"github.com/npillmayer/slabtree/arena"
	"github.com/npillmayer/slabtree/node"
)

func TestDumpTreeShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slabtree")
	defer teardown()
	grapheme.SetupGraphemeClasses()
	//
	m := tinyMap(t, 1, 2, 3, 4, 5, 6, 7)
	p := NewPrinter[int, string, arena.Index](&Config{
		Width:   60,
		Colors:  map[Role]*color.Color{},
		Context: uax11.LatinContext,
	})
	var buf bytes.Buffer
	require.NoError(t, p.Fprint(&buf, m))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	require.Equal(t, "map of 7 items in 4 nodes, height 2", lines[0])
	require.Equal(t, "[3=v3 | 6=v6]", lines[1])
	require.Equal(t, "├─ [1=v1 | 2=v2]", lines[2])
	require.Equal(t, "├─ [4=v4 | 5=v5]", lines[3])
	require.Equal(t, "└─ [7=v7]", lines[4])
}

func TestDumpElidesLongLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slabtree")
	defer teardown()
	grapheme.SetupGraphemeClasses()
	//
	m := tinyMap(t, 1, 2, 3) // a lone leaf root with three items
	p := NewPrinter[int, string, arena.Index](&Config{
		Width:   14,
		Colors:  map[Role]*color.Color{},
		Context: uax11.LatinContext,
	})
	var buf bytes.Buffer
	require.NoError(t, p.Fprint(&buf, m))
	require.Contains(t, buf.String(), "[1=v1 | 2=v2 …]")
	require.NotContains(t, buf.String(), "3=v3")
}

func TestDumpClampsWideCells(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slabtree")
	defer teardown()
	grapheme.SetupGraphemeClasses()
	//
	m, err := slabtree.New[string, string](slabtree.Config[string]{Compare: cmp.Compare[string]})
	require.NoError(t, err)
	m.Set("k", "abcdefghijklmnop")
	p := NewPrinter[string, string, arena.Index](&Config{
		Width:       60,
		MaxKeyCells: 8,
		Colors:      map[Role]*color.Color{},
		Context:     uax11.LatinContext,
	})
	var buf bytes.Buffer
	require.NoError(t, p.Fprint(&buf, m))
	require.Contains(t, buf.String(), "[k=abcde…]")
	require.NotContains(t, buf.String(), "abcdefgh")
}

func TestDumpEmptyMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slabtree")
	defer teardown()
	//
	m := slabtree.NewOrdered[int, string]()
	var buf bytes.Buffer
	require.NoError(t, NewPrinter[int, string, arena.Index](&Config{Width: 40}).Fprint(&buf, m))
	require.Equal(t, "map of 0 items in 0 nodes, height 0\n", buf.String())
}

func TestConfigFromTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slabtree")
	defer teardown()
	//
	// test binaries do not run attached to a terminal
	config := ConfigFromTerminal()
	require.Equal(t, 65, config.Width)
}

func tinyMap(t *testing.T, keys ...int) *slabtree.Map[int, string, arena.Index] {
	t.Helper()
	m, err := slabtree.New[int, string](slabtree.Config[int]{
		Compare: cmp.Compare[int],
		Order:   node.Order{MinItems: 1, MaxItems: 3},
	})
	require.NoError(t, err)
	for _, k := range keys {
		m.Set(k, "v"+strconv.Itoa(k))
	}
	return m
}
