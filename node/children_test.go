package node

import (
	"slices"
	"testing"
)

func TestChildrenYieldsLeadingChildFirst(t *testing.T) {
	n := testInternal(t, []int{20, 40}, []int{1, 2, 3})
	if got := internalChildren(t, n); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("unexpected child order: %v", got)
	}
}

func TestChildrenIsRestartable(t *testing.T) {
	n := testInternal(t, []int{20, 40}, []int{1, 2, 3})
	seq := n.Children()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Fatalf("re-running the sequence differs: %v vs %v", first, second)
	}
	// early break must not poison later runs
	for range seq {
		break
	}
	if got := slices.Collect(seq); !slices.Equal(got, first) {
		t.Fatalf("sequence broken after early exit: %v", got)
	}
}

func TestChildrenWithSeparatorsBounds(t *testing.T) {
	n := testInternal(t, []int{20, 40}, []int{1, 2, 3})
	type bound struct {
		left  *int
		child int
		right *int
	}
	k20, k40 := 20, 40
	want := []bound{
		{nil, 1, &k20},
		{&k20, 2, &k40},
		{&k40, 3, nil},
	}
	i := 0
	for span := range n.ChildrenWithSeparators() {
		if i >= len(want) {
			t.Fatalf("too many spans")
		}
		w := want[i]
		if span.Child != w.child {
			t.Fatalf("span %d: expected child %d, got %d", i, w.child, span.Child)
		}
		switch {
		case w.left == nil && span.Left != nil:
			t.Fatalf("span %d: expected open left bound, got %v", i, span.Left)
		case w.left != nil && (span.Left == nil || span.Left.Key() != *w.left):
			t.Fatalf("span %d: expected left bound %d, got %v", i, *w.left, span.Left)
		}
		switch {
		case w.right == nil && span.Right != nil:
			t.Fatalf("span %d: expected open right bound, got %v", i, span.Right)
		case w.right != nil && (span.Right == nil || span.Right.Key() != *w.right):
			t.Fatalf("span %d: expected right bound %d, got %v", i, *w.right, span.Right)
		}
		i++
	}
	if i != len(want) {
		t.Fatalf("expected %d spans, got %d", len(want), i)
	}
}

func TestChildrenWithSeparatorsSingleChild(t *testing.T) {
	// an internal node holding no items still has its leading child
	n := &InternalNode[int, string, int]{first: 5}
	spans := slices.Collect(n.ChildrenWithSeparators())
	if len(spans) != 1 || spans[0].Child != 5 || spans[0].Left != nil || spans[0].Right != nil {
		t.Fatalf("unexpected spans for item-less node: %+v", spans)
	}
}
