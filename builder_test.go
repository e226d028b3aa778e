package slabtree

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/slabtree/arena"
	"github.com/npillmayer/slabtree/node"
)

func newTinyBuilder(t *testing.T) *Builder[int, string, arena.Index] {
	t.Helper()
	b, err := NewBuilder[int, string](Config[int]{Compare: intCompare, Order: node.Order{MinItems: 1, MaxItems: 3}})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestBuilderAscendingLoad(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	b := newTinyBuilder(t)
	for k := 1; k <= 200; k++ {
		if err := b.Add(k, payloadOf(k)); err != nil {
			t.Fatalf("Add(%d): %v", k, err)
		}
	}
	m := b.Map()
	if m.Len() != 200 {
		t.Fatalf("built map has %d items", m.Len())
	}
	if err := m.Check(); err != nil {
		t.Fatal(err)
	}
	keys := slices.Collect(m.RangeKeys())
	if len(keys) != 200 || !slices.IsSorted(keys) {
		t.Errorf("built map iterates %d keys, sorted=%v", len(keys), slices.IsSorted(keys))
	}
	if v, ok := m.Get(137); !ok || v != payloadOf(137) {
		t.Errorf("Get(137) = %q,%v", v, ok)
	}
}

func TestBuilderLastWins(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	b := newTinyBuilder(t)
	b.Add(1, "one")
	b.Add(2, "two")
	if err := b.Add(2, "zwei"); err != nil {
		t.Fatalf("duplicate add: %v", err)
	}
	m := b.Map()
	if m.Len() != 2 {
		t.Fatalf("len = %d, want 2", m.Len())
	}
	if v, _ := m.Get(2); v != "zwei" {
		t.Errorf("Get(2) = %q, want the last value", v)
	}
}

func TestBuilderKeyOrder(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	b := newTinyBuilder(t)
	b.Add(10, "ten")
	if err := b.Add(5, "five"); !errors.Is(err, ErrKeyOrder) {
		t.Fatalf("descending add: %v", err)
	}
	// the rejected item left no trace
	m := b.Map()
	if m.Len() != 1 || m.Has(5) {
		t.Errorf("rejected key leaked into the map: %s", m)
	}
}

func TestBuilderCompleted(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	b := newTinyBuilder(t)
	b.Add(1, "one")
	_ = b.Map()
	if err := b.Add(2, "two"); !errors.Is(err, ErrBuilderCompleted) {
		t.Fatalf("add after completion: %v", err)
	}
}

func TestBuilderReset(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	b := newTinyBuilder(t)
	for k := 1; k <= 50; k++ {
		b.Add(k, payloadOf(k))
	}
	_ = b.Map()
	b.Reset()
	if err := b.Add(7, "seven"); err != nil {
		t.Fatalf("add after reset: %v", err)
	}
	m := b.Map()
	if m.Len() != 1 {
		t.Fatalf("reset builder delivered %d items", m.Len())
	}
	if err := m.Check(); err != nil {
		t.Error(err)
	}
}

func TestBuilderMatchesSetInserts(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	b := newTinyBuilder(t)
	direct := newTinyMap(t)
	for k := 1; k <= 64; k++ {
		b.Add(k, payloadOf(k))
		direct.Set(k, payloadOf(k))
	}
	built := b.Map()
	if built.Len() != direct.Len() {
		t.Fatalf("built %d items, direct %d", built.Len(), direct.Len())
	}
	if !slices.Equal(slices.Collect(built.RangeKeys()), slices.Collect(direct.RangeKeys())) {
		t.Error("built and direct maps disagree on key order")
	}
	if err := built.Check(); err != nil {
		t.Fatal(err)
	}
}
