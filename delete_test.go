package slabtree

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/slabtree/arena"
)

func TestDeleteMissing(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	m := NewOrdered[int, string]()
	if _, removed := m.Delete(1); removed {
		t.Error("empty map removed something")
	}
	m.Set(1, "one")
	m.Set(2, "two")
	if _, removed := m.Delete(3); removed {
		t.Error("map removed a key it never held")
	}
	if m.Len() != 2 {
		t.Errorf("miss changed item count to %d", m.Len())
	}
}

func TestDeleteFromLeafRoot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	m := NewOrdered[int, string]()
	m.Set(1, "one")
	m.Set(2, "two")
	previous, removed := m.Delete(1)
	if !removed || previous != "one" {
		t.Fatalf("Delete(1) = %q,%v", previous, removed)
	}
	if m.Len() != 1 || m.Height() != 1 {
		t.Errorf("len=%d height=%d after delete", m.Len(), m.Height())
	}
	m.Delete(2)
	if !m.IsEmpty() || m.Height() != 0 || m.Store().Len() != 0 {
		t.Errorf("emptied map: len=%d height=%d nodes=%d", m.Len(), m.Height(), m.Store().Len())
	}
	if err := m.Check(); err != nil {
		t.Error(err)
	}
}

// TestDeleteRebalanceScript walks one map through every repair strategy:
// borrowing from the left and the right sibling, merging, replacing a
// separator by its in-order predecessor, collapsing the root and finally
// emptying the map.
func TestDeleteRebalanceScript(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	m := newTinyMap(t, 1, 2, 3, 4, 5, 6, 7)
	if got := rootKeys(m); !slices.Equal(got, []int{3, 6}) {
		t.Fatalf("setup root separators = %v, want [3 6]", got)
	}
	steps := []struct {
		name      string
		deleteKey int
		keys      []int
		height    int
		rootKeys  []int
	}{
		{"borrow from left sibling", 7, []int{1, 2, 3, 4, 5, 6}, 2, []int{3, 5}},
		{"merge with left sibling", 6, []int{1, 2, 3, 4, 5}, 2, []int{3}},
		{"separator replaced by predecessor", 3, []int{1, 2, 4, 5}, 2, []int{2}},
		{"borrow from right sibling", 1, []int{2, 4, 5}, 2, []int{4}},
		{"merge collapses the root", 2, []int{4, 5}, 1, []int{4, 5}},
		{"shrink leaf root", 4, []int{5}, 1, []int{5}},
		{"empty the map", 5, []int{}, 0, []int{}},
	}
	for _, step := range steps {
		previous, removed := m.Delete(step.deleteKey)
		if !removed || previous != payloadOf(step.deleteKey) {
			t.Fatalf("%s: Delete(%d) = %q,%v", step.name, step.deleteKey, previous, removed)
		}
		if err := m.Check(); err != nil {
			t.Fatalf("%s: %v", step.name, err)
		}
		if got := slices.Collect(m.RangeKeys()); !slices.Equal(got, step.keys) {
			t.Fatalf("%s: keys = %v, want %v", step.name, got, step.keys)
		}
		if m.Height() != step.height {
			t.Fatalf("%s: height = %d, want %d", step.name, m.Height(), step.height)
		}
		if got := rootKeys(m); !slices.Equal(got, step.rootKeys) {
			t.Fatalf("%s: root keys = %v, want %v", step.name, got, step.rootKeys)
		}
	}
	if m.Store().Len() != 0 {
		t.Errorf("emptied map leaks %d nodes", m.Store().Len())
	}
}

func TestDeleteReleasesNodes(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	m := newTinyMap(t)
	for k := 1; k <= 100; k++ {
		m.Set(k, payloadOf(k))
	}
	grown := m.Store().Len()
	for k := 1; k <= 100; k++ {
		m.Delete(k)
	}
	if m.Store().Len() != 0 {
		t.Fatalf("store still holds %d of %d nodes", m.Store().Len(), grown)
	}
	slab, ok := m.Store().(*arena.Slab[int, string])
	if !ok {
		t.Fatal("expected the default slab store")
	}
	stats := slab.Stats()
	if stats.Frees == 0 || stats.Allocs < stats.Frees {
		t.Errorf("implausible slab stats %+v", stats)
	}
}

// rootKeys returns the keys stored in the root node, empty for an empty map.
func rootKeys[V any, I comparable](m *Map[int, V, I]) []int {
	if !m.hasRoot {
		return []int{}
	}
	keys := []int{}
	for item := range m.store.Node(m.root).Items() {
		keys = append(keys, item.Key())
	}
	return keys
}
