package slabtree

/*
BSD 3-Clause License

Copyright (c) 2025–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
)

// Check validates the structural invariants of the whole tree: per-node key
// order and occupancy, parent back-references, separator bounds on every
// subtree, uniform leaf depth, single ownership of every node address, and
// the booked item count and height. It returns nil for a healthy tree.
//
// Check visits every node and is meant for tests and debugging, not for
// normal operation.
func (m *Map[K, V, I]) Check() error {
	if !m.hasRoot {
		switch {
		case m.length != 0:
			return fmt.Errorf("%w: empty tree books %d items", ErrInvariantViolation, m.length)
		case m.height != 0:
			return fmt.Errorf("%w: empty tree books height %d", ErrInvariantViolation, m.height)
		case m.store.Len() != 0:
			return fmt.Errorf("%w: empty tree leaks %d nodes", ErrInvariantViolation, m.store.Len())
		}
		return nil
	}
	c := checker[K, V, I]{m: m, seen: make(map[I]bool, m.store.Len()), leafDepth: -1}
	if err := c.walk(m.root, m.root, false, nil, nil, 0); err != nil {
		return err
	}
	switch {
	case c.items != m.length:
		return fmt.Errorf("%w: tree holds %d items but books %d", ErrInvariantViolation, c.items, m.length)
	case c.leafDepth+1 != m.height:
		return fmt.Errorf("%w: leaves at depth %d but booked height is %d", ErrInvariantViolation, c.leafDepth, m.height)
	case len(c.seen) != m.store.Len():
		return fmt.Errorf("%w: tree references %d nodes but the store holds %d", ErrInvariantViolation, len(c.seen), m.store.Len())
	}
	return nil
}

type checker[K, V any, I comparable] struct {
	m         *Map[K, V, I]
	seen      map[I]bool
	items     int
	leafDepth int
}

func (c *checker[K, V, I]) walk(id I, parent I, hasParent bool, min, max *K, depth int) error {
	if c.seen[id] {
		return fmt.Errorf("%w: node %v is owned twice", ErrInvariantViolation, id)
	}
	c.seen[id] = true
	m := c.m
	n := m.store.Node(id)
	if err := n.Validate(parent, hasParent, min, max, m.compare, m.order); err != nil {
		return fmt.Errorf("%w: node %v: %w", ErrInvariantViolation, id, err)
	}
	if !hasParent && n.ItemCount() == 0 {
		return fmt.Errorf("%w: root %v holds no items", ErrInvariantViolation, id)
	}
	c.items += n.ItemCount()
	if n.IsLeaf() {
		if c.leafDepth < 0 {
			c.leafDepth = depth
		} else if depth != c.leafDepth {
			return fmt.Errorf("%w: leaves at depths %d and %d", ErrInvariantViolation, c.leafDepth, depth)
		}
		return nil
	}
	for span := range n.ChildrenWithSeparators() {
		childMin, childMax := min, max
		if span.Left != nil {
			k := span.Left.Key()
			childMin = &k
		}
		if span.Right != nil {
			k := span.Right.Key()
			childMax = &k
		}
		if err := c.walk(span.Child, id, true, childMin, childMax, depth+1); err != nil {
			return err
		}
	}
	return nil
}
