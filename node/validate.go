package node

import "fmt"

// Validate checks the node's local invariants: strictly ascending keys that
// stay inside the open (min, max) bounds, occupancy within ord for non-root
// nodes, and a parent back-reference matching the caller's expectation.
// Descending into children is up to the caller, the only layer able to
// resolve addresses.
//
// Validate serves test harnesses and debug builds, not normal operation.
func (n *Node[K, V, I]) Validate(parent I, hasParent bool, min, max *K, compare CompareFunc[K], ord Order) error {
	p, ok := n.Parent()
	if ok != hasParent {
		return fmt.Errorf("%w: root/non-root parent mismatch", ErrInvariant)
	}
	if ok && p != parent {
		return fmt.Errorf("%w: parent reference does not match owner", ErrInvariant)
	}
	cnt := n.ItemCount()
	if hasParent {
		if b := n.Balance(ord); !b.Balanced() {
			return fmt.Errorf("%w: non-root node with %d items is %s", ErrInvariant, cnt, b)
		}
	} else if cnt > ord.MaxItems {
		return fmt.Errorf("%w: root with %d items overflows order (%d,%d)",
			ErrInvariant, cnt, ord.MinItems, ord.MaxItems)
	}
	var prev K
	first := true
	for item := range n.Items() {
		key := item.Key()
		if min != nil && compare(key, *min) <= 0 {
			return fmt.Errorf("%w: key %v at or below lower bound %v", ErrInvariant, key, *min)
		}
		if max != nil && compare(key, *max) >= 0 {
			return fmt.Errorf("%w: key %v at or above upper bound %v", ErrInvariant, key, *max)
		}
		if !first && compare(prev, key) >= 0 {
			return fmt.Errorf("%w: keys not strictly ascending (%v before %v)", ErrInvariant, prev, key)
		}
		prev, first = key, false
	}
	return nil
}
