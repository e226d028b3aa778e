package node

import "fmt"

const (
	// DefaultMaxItems is the default upper occupancy bound per node.
	DefaultMaxItems = 12
	// DefaultMinItems is the default lower occupancy bound for non-root nodes.
	DefaultMinItems = 6
)

// Order configures the occupancy bounds shared by every node of one tree.
//
// Order is deliberately not stored per node: the tree keeps a single value
// and threads it into each balance-sensitive operation as an explicit
// parameter.
type Order struct {
	MinItems int
	MaxItems int
}

// DefaultOrder returns the bounds used when a configuration leaves them zero.
func DefaultOrder() Order {
	return Order{MinItems: DefaultMinItems, MaxItems: DefaultMaxItems}
}

// Validate checks that the bounds describe a workable B-tree order.
// Splitting a node that just overflowed must leave two halves at or above
// MinItems, which requires MaxItems ≥ 2·MinItems.
func (ord Order) Validate() error {
	if ord.MinItems < 1 {
		return fmt.Errorf("%w: MinItems must be at least 1, have %d", ErrInvalidOrder, ord.MinItems)
	}
	if ord.MaxItems < 2*ord.MinItems {
		return fmt.Errorf("%w: MaxItems must be at least 2*MinItems, have (%d,%d)",
			ErrInvalidOrder, ord.MinItems, ord.MaxItems)
	}
	return nil
}

// Classify grades an item count against the order's bounds.
func (ord Order) Classify(itemCount int) Balance {
	switch {
	case itemCount > ord.MaxItems:
		return Balance{kind: overflow}
	case itemCount < ord.MinItems:
		return Balance{kind: underflow, empty: itemCount == 0}
	}
	return Balance{kind: balanced}
}

// Balance classifies a node's occupancy relative to a tree order.
//
// Overflow obliges the caller to split the node before considering its
// mutation complete. Underflow outside the root obliges the parent to borrow
// from or merge with a sibling; an empty underflowing node is legitimate only
// at the root, right before the driver collapses the tree by one level.
type Balance struct {
	kind  balanceKind
	empty bool
}

type balanceKind int8

const (
	balanced balanceKind = iota
	overflow
	underflow
)

// Balanced is true when the occupancy lies within the order's bounds.
func (b Balance) Balanced() bool {
	return b.kind == balanced
}

// Overflowing is true when the node holds more items than the order allows.
func (b Balance) Overflowing() bool {
	return b.kind == overflow
}

// Underflowing is true when the node holds fewer items than non-root nodes
// may.
func (b Balance) Underflowing() bool {
	return b.kind == underflow
}

// Empty is true when the node holds no items at all.
func (b Balance) Empty() bool {
	return b.kind == underflow && b.empty
}

func (b Balance) String() string {
	switch b.kind {
	case overflow:
		return "overflow"
	case underflow:
		if b.empty {
			return "underflow(empty)"
		}
		return "underflow"
	}
	return "balanced"
}
