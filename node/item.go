package node

import "fmt"

// CompareFunc orders keys: negative for a < b, zero for equal keys, positive
// for a > b. Every ordered operation takes the comparison explicitly; nodes
// never store it.
type CompareFunc[K any] func(a, b K) int

// Item is one key/value entry. Items serve as leaf entries and, in internal
// nodes, as the separators bounding adjacent subtrees. The key is fixed at
// construction time; node ordering depends on it never changing.
type Item[K, V any] struct {
	key   K
	value V
}

// NewItem creates an item from a key and a value.
func NewItem[K, V any](key K, value V) Item[K, V] {
	return Item[K, V]{key: key, value: value}
}

// Key returns the item's key.
func (it Item[K, V]) Key() K {
	return it.key
}

// Value returns the item's value.
func (it Item[K, V]) Value() V {
	return it.value
}

// ValueRef returns a reference to the item's value for in-place updates.
func (it *Item[K, V]) ValueRef() *V {
	return &it.value
}

// SetValue replaces the item's value and returns the previous one.
func (it *Item[K, V]) SetValue(value V) V {
	previous := it.value
	it.value = value
	return previous
}

// Pair returns the item's key and value.
func (it Item[K, V]) Pair() (K, V) {
	return it.key, it.value
}

func (it Item[K, V]) String() string {
	return fmt.Sprintf("%v=%v", it.key, it.value)
}
