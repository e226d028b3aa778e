package slabtree

/*
BSD 3-Clause License

Copyright (c) 2025–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// TreeError is an error type for the slabtree module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrInvalidConfig is flagged when a map configuration does not validate,
// e.g. for a missing comparison function or inconsistent occupancy bounds.
const ErrInvalidConfig = TreeError("invalid map configuration")

// ErrBuilderCompleted signals that a builder has already delivered its map and
// it's illegal to further add items.
const ErrBuilderCompleted = TreeError("forbidden to add items; map has been completed")

// ErrKeyOrder is flagged when bulk-load input breaks ascending key order.
const ErrKeyOrder = TreeError("keys must be added in ascending order")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrInvariantViolation reports a structural defect found by Map.Check.
const ErrInvariantViolation = TreeError("tree invariant violated")
