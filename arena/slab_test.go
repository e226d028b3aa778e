package arena

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/npillmayer/slabtree/node"
)

func slabLeaf(key int) node.Node[int, string, Index] {
	return node.NewLeaf[int, string, Index](node.NewItem(key, "v"))
}

func TestSlabAllocateAndResolve(t *testing.T) {
	s := NewSlab[int, string]()
	a := s.Allocate(slabLeaf(10))
	b := s.Allocate(slabLeaf(20))
	require.NotEqual(t, a, b, "distinct allocations must get distinct addresses")
	require.Equal(t, 2, s.Len())
	v, _, descend := s.Node(a).Get(10, func(x, y int) int { return x - y })
	require.False(t, descend)
	require.NotNil(t, v)
	require.Equal(t, "v", *v)
}

func TestSlabNodeIsStable(t *testing.T) {
	s := NewSlab[int, string]()
	a := s.Allocate(slabLeaf(10))
	n := s.Node(a)
	for k := 0; k < 100; k++ { // force the slot table to regrow
		s.Allocate(slabLeaf(k))
	}
	require.Same(t, n, s.Node(a), "resolved nodes must survive slab growth")
}

func TestSlabRecyclesAddresses(t *testing.T) {
	s := NewSlab[int, string]()
	a := s.Allocate(slabLeaf(10))
	s.Allocate(slabLeaf(20))
	s.Free(a)
	require.Equal(t, 1, s.Len())
	c := s.Allocate(slabLeaf(30))
	require.Equal(t, a, c, "freed addresses should be recycled")
	require.Equal(t, 2, s.Len())

	stats := s.Stats()
	require.Equal(t, uint64(3), stats.Allocs)
	require.Equal(t, uint64(1), stats.Frees)
	require.Equal(t, uint64(1), stats.Reuses)
}

func TestSlabPanicsOnDeadAddress(t *testing.T) {
	s := NewSlab[int, string]()
	a := s.Allocate(slabLeaf(10))
	s.Free(a)
	require.Panics(t, func() { s.Node(a) }, "resolving a freed address")
	require.Panics(t, func() { s.Free(a) }, "double free")
	require.Panics(t, func() { s.Node(Index(99)) }, "resolving a never-issued address")
}

func TestSlabReset(t *testing.T) {
	s := NewSlab[int, string]()
	s.Allocate(slabLeaf(10))
	s.Allocate(slabLeaf(20))
	s.Reset()
	require.Equal(t, 0, s.Len())
	a := s.Allocate(slabLeaf(30))
	require.Equal(t, Index(0), a, "a reset slab starts issuing addresses from scratch")
}
