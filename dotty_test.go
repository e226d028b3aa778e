package slabtree

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMap2Dot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	m := newTinyMap(t, 1, 2, 3, 4, 5, 6, 7)
	var sb strings.Builder
	if err := Map2Dot(m, &sb); err != nil {
		t.Fatal(err)
	}
	dot := sb.String()
	if !strings.HasPrefix(dot, "strict digraph {") {
		t.Errorf("missing digraph header:\n%s", dot)
	}
	if !strings.Contains(dot, `label="3=v3 | 6=v6"`) {
		t.Errorf("missing root label:\n%s", dot)
	}
	if got := strings.Count(dot, "->"); got != 3 {
		t.Errorf("%d edges, want 3:\n%s", got, dot)
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Errorf("unterminated graph:\n%s", dot)
	}
}

func TestMap2DotEmpty(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	m := NewOrdered[int, string]()
	var sb strings.Builder
	if err := Map2Dot(m, &sb); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), "strict digraph {") {
		t.Error("empty map produces no graph skeleton")
	}
	if strings.Contains(sb.String(), "->") {
		t.Error("empty map produces edges")
	}
}
